package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, km...)
}

// PublishOrderEvent marshals and publishes a single order event, keyed by
// order id so consumers see per-order events in order.
func PublishOrderEvent(p domain.PublisherPort, event OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(OrderEventsTopic, domain.Message{Key: []byte(event.OrderID), Value: v})
}

func PublishReportEvent(p domain.PublisherPort, event ReportEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(ReportEventsTopic, domain.Message{Key: []byte(event.OrderID), Value: v})
}
