// Package broadcaster drains the report outbox to Kafka. Delivery is
// at-least-once: a report is marked SENT before publishing and ACKED only
// after the broker confirms it, so a crash between the two replays the send.
package broadcaster

import (
	"context"
	"encoding/binary"
	"log"
	"time"

	"github.com/IBM/sarama"

	"chronos/infra/outbox"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// New connects a synchronous producer requiring acks from all in-sync
// replicas; execution reports are not market data.
func New(ob *outbox.Outbox, brokers []string, topic string, interval time.Duration) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// Start launches the drain loop until ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[broadcaster] stopped")
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(rec *outbox.Record) error {
		now := time.Now().UnixNano()

		if err := b.outbox.MarkSent(rec.ExecID, now); err != nil {
			return err
		}

		var key [8]byte
		binary.BigEndian.PutUint64(key[:], rec.ExecID)
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.ByteEncoder(key[:]),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// Mark it FAILED; it stays pending and the next pass retries.
			_ = b.outbox.MarkFailed(rec.ExecID, now)
			return nil
		}

		return b.outbox.MarkAcked(rec.ExecID, time.Now().UnixNano())
	})
	if err != nil {
		log.Printf("[broadcaster] drain failed: %v", err)
	}
}

// Close shuts the producer down.
func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
