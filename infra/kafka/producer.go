// Package kafka publishes market-data updates. Depth is best-effort fan-out:
// acks from one replica are enough and the writer runs async so a slow broker
// never backs up into the matching path.
package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Producer writes depth updates keyed by instrument so per-instrument
// ordering is preserved within a partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
	}
}

func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
