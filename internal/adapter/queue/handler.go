package queue

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes a single delivery and should be idempotent.
// nil return => ACK; error => NACK, with requeue behavior decided by Router.
type Handler interface {
	Handle(ctx context.Context, d amqp.Delivery) error
}
