package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/segmentio/kafka-go"
)

type BookingEvent struct {
	Type       string            `json:"type"`
	BID        string            `json:"bid"`
	PID        string            `json:"pid"`
	FlNo       string            `json:"flno"`
	Seat       string            `json:"seat_number"`
	Class      domain.CabinClass `json:"class"`
	Status     string            `json:"status"`
	Email      string            `json:"email"`
	PricePaid  float64           `json:"price_paid"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
