package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"foodorder/internal/entities"
	"github.com/IBM/sarama"
)

const eventType = "order.status.changed"

// Publisher пишет order.status.changed в Kafka. Ключ сообщения - id заказа,
// поэтому события одного заказа попадают в одну партицию в порядке публикации.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event entities.OrderStatusChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(statusChangedEvent{
		OrderID:        event.OrderID,
		Status:         event.Status.String(),
		PreviousStatus: event.PreviousStatus.String(),
		OccurredAt:     event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s for order %d: %w", eventType, event.OrderID, err)
	}

	return nil
}

// Noop используется когда Kafka не сконфигурирована.
type Noop struct{}

func (Noop) PublishOrderStatusChanged(context.Context, entities.OrderStatusChange) error {
	return nil
}
