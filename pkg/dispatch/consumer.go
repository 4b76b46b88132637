package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/ClassWYZ/floodlight/pkg/logger"
)

const (
	defaultMaxPullMessages = 10
	defaultPullExpiry      = 30 * time.Second
	defaultMaxRetries      = 3
)

// Consumer pulls packet-in events off a JetStream stream and feeds them
// to a Processor. Messages in a batch are handled in order; failed ones
// are redelivered until the delivery cap is reached.
type Consumer struct {
	streamName   string
	consumerName string
	consumer     jetstream.Consumer
	log          logger.Logger
}

func NewConsumer(ctx context.Context, js jetstream.JetStream, streamName, consumerName, subject string, log logger.Logger) (*Consumer, error) {
	if log == nil {
		log = logger.NewTestLogger()
	}

	consumer, err := js.Consumer(ctx, streamName, consumerName)
	if err != nil {
		cfg := jetstream.ConsumerConfig{
			Durable:       consumerName,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    defaultMaxRetries,
			MaxAckPending: 1000,
		}
		if subject != "" {
			cfg.FilterSubject = subject
		}

		consumer, err = js.CreateConsumer(ctx, streamName, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create consumer: %w", err)
		}
	}

	return &Consumer{
		streamName:   streamName,
		consumerName: consumerName,
		consumer:     consumer,
		log:          log,
	}, nil
}

func (c *Consumer) handleMessage(ctx context.Context, msg jetstream.Msg, processor *Processor) {
	metadata, _ := msg.Metadata()

	if err := processor.Process(ctx, msg); err != nil {
		c.log.Warn().Err(err).Str("subject", msg.Subject()).Msg("Failed to process packet-in")

		if metadata != nil && metadata.NumDelivered >= defaultMaxRetries {
			c.log.Warn().Str("subject", msg.Subject()).Msg("Max retries reached, acknowledging message")
			_ = msg.Ack()
			return
		}

		_ = msg.Nak()

		return
	}

	_ = msg.Ack()
}

// ProcessMessages runs the pull loop until ctx is cancelled.
func (c *Consumer) ProcessMessages(ctx context.Context, processor *Processor) {
	c.log.Info().
		Str("stream", c.streamName).
		Str("consumer", c.consumerName).
		Msg("Starting packet-in consumer")

	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("Stopping packet-in consumer")
			return
		default:
			msgs, err := c.consumer.Fetch(defaultMaxPullMessages, jetstream.FetchMaxWait(defaultPullExpiry))
			if err != nil {
				c.log.Warn().Err(err).Msg("Failed to fetch packet-in messages")
				time.Sleep(time.Second)

				continue
			}

			for msg := range msgs.Messages() {
				c.handleMessage(ctx, msg, processor)
			}

			if fetchErr := msgs.Error(); fetchErr != nil {
				c.log.Warn().Err(fetchErr).Msg("Fetch error on packet-in stream")
			}
		}
	}
}
