package app

import (
	"context"
	"log/slog"
	"strings"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, draft orderdomain.Draft) (orderdomain.Order, error)
}

type Service struct {
	orders OrderCreator
	log    *slog.Logger
}

func NewService(orders OrderCreator, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{orders: orders, log: log}
}

// Submit turns the cart into an order. Prices come from the cart snapshot, the
// catalog is not consulted again. Submit never mutates the cart; clearing it
// after a successful submission is up to the caller. A non-empty
// idempotencyKey travels with the draft so the order service can answer a
// retried submission with the order it already created.
func (s *Service) Submit(ctx context.Context, cart *cartdomain.Cart, form domain.Form, idempotencyKey string) (orderdomain.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return orderdomain.Order{}, &domain.ValidationError{Field: "items", Reason: "cart is empty"}
	}

	form = form.Trimmed()
	if err := validate(form); err != nil {
		return orderdomain.Order{}, err
	}

	cartLines := cart.Lines()
	lines := make([]orderdomain.Line, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, orderdomain.Line{
			ProductID:   l.ProductID,
			ProductName: l.Name,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	draft := orderdomain.Draft{
		Contact:        orderdomain.Contact{Name: form.Name, Email: form.Email, Phone: form.Phone},
		Shipping:       orderdomain.Shipping{Address: form.Address, City: form.City, Zip: form.Zip},
		Lines:          lines,
		TotalPrice:     cart.Total(),
		IdempotencyKey: idempotencyKey,
	}

	order, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		s.log.WarnContext(ctx, "order submission failed", "err", err, "lines", len(lines))
		return orderdomain.Order{}, &domain.SubmissionError{Err: err}
	}
	return order, nil
}

func validate(f domain.Form) error {
	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"zip", f.Zip},
	}
	for _, r := range required {
		if r.value == "" {
			return &domain.ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	at := strings.Index(f.Email, "@")
	if at <= 0 || at == len(f.Email)-1 || strings.Contains(f.Email, " ") {
		return &domain.ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	return nil
}
