package packet

import (
	"errors"
	"time"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

var ErrEmptyObservation = errors.New("observation carries no frame data")

// Normalize converts a raw packet-in observation into an immutable
// entity. Frames without a usable source MAC are rejected here and never
// reach the device registry.
func Normalize(pi *models.PacketIn) (*models.Entity, error) {
	if pi == nil || len(pi.Data) == 0 {
		return nil, ErrEmptyObservation
	}

	fields, err := Decode(pi.Data)
	if err != nil {
		return nil, err
	}

	observed := pi.Timestamp
	if observed.IsZero() {
		observed = time.Now()
	}

	return &models.Entity{
		MAC:        fields.SrcMAC,
		VLAN:       fields.VLAN,
		IPv4:       fields.IPv4,
		SwitchDPID: pi.SwitchDPID,
		SwitchPort: pi.Port,
		LastSeen:   observed,
	}, nil
}
