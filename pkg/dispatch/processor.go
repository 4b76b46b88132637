package dispatch

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/ClassWYZ/floodlight/pkg/devicemanager"
	"github.com/ClassWYZ/floodlight/pkg/logger"
	"github.com/ClassWYZ/floodlight/pkg/models"
	"github.com/ClassWYZ/floodlight/pkg/packet"
)

var (
	ErrEmptyMessage = errors.New("empty message received")
	ErrUnmarshal    = errors.New("failed to unmarshal packet-in")
)

// Processor drives the learning pipeline for one packet-in event:
// unmarshal, normalize, learn. Malformed frames are dropped here and
// never retried.
type Processor struct {
	devices devicemanager.Service
	log     logger.Logger
}

func NewProcessor(devices devicemanager.Service, log logger.Logger) *Processor {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Processor{devices: devices, log: log}
}

func (p *Processor) Process(ctx context.Context, msg jetstream.Msg) error {
	data := msg.Data()
	if len(data) == 0 {
		return ErrEmptyMessage
	}

	var pi models.PacketIn
	if err := json.Unmarshal(data, &pi); err != nil {
		p.log.Warn().Err(err).Msg("Failed to unmarshal packet-in event")
		return ErrUnmarshal
	}

	entity, err := packet.Normalize(&pi)
	if err != nil {
		// A frame the normalizer rejects will never become valid;
		// drop it without surfacing an error to the consumer.
		p.log.Debug().
			Err(err).
			Uint64("switch_dpid", pi.SwitchDPID).
			Int("port", pi.Port).
			Msg("Dropping unusable observation")

		return nil
	}

	if _, err := p.devices.LearnDeviceByEntity(ctx, entity); err != nil {
		p.log.Error().
			Err(err).
			Str("mac", entity.MACString()).
			Msg("Failed to learn device from observation")

		return err
	}

	return nil
}
