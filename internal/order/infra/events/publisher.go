package events

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/kafka"
)

// KafkaPublisher writes order events keyed by order id so one order's events
// stay on one partition.
type KafkaPublisher struct {
	writer kafka.Writer
}

func NewKafkaPublisher(w kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt domain.Event) error {
	return kafka.PublishJSON(ctx, p.writer, evt.OrderID, evt)
}
