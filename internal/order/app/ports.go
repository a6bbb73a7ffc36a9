package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderRepo interface {
	// CreateOrderTx persists the order and its lines atomically, assigning
	// the id and timestamps. A non-empty idempotencyKey is recorded in the
	// same transaction; ErrDuplicateKey when another order already holds it.
	CreateOrderTx(ctx context.Context, order domain.Order, idempotencyKey string) (domain.Order, error)
	// FindByIdempotencyKey returns ErrNotFound when no order holds key.
	FindByIdempotencyKey(ctx context.Context, key string) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	List(ctx context.Context, status domain.Status) ([]domain.Order, error)
	// UpdateStatus writes only the status column; ErrNotFound when id is unknown.
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event) error
}
