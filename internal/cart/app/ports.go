package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

type CatalogReader interface {
	// GetProduct returns ErrProductNotFound when the catalog has no such id.
	GetProduct(ctx context.Context, productID string) (domain.ProductSnapshot, error)
}

type SessionStore interface {
	// Load returns the session for id, creating an empty one if needed.
	Load(id string) *Session
}

type Checkout interface {
	Submit(ctx context.Context, cart *domain.Cart, form checkoutdomain.Form, idempotencyKey string) (orderdomain.Order, error)
}
