package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = fmt.Errorf("quantity must be between 1 and %d", domain.MaxQuantity)
	ErrNotInCart       = errors.New("product is not in the cart")
)

// orderKeySpace namespaces the keys sent to the order service.
var orderKeySpace = uuid.MustParse("5b1f8a52-3f0e-4c6a-9a55-0d2f3a8c7e41")

// orderKey scopes a client idempotency key to its session so two sessions
// reusing the same key never see each other's order.
func orderKey(sessionID, idempotencyKey string) string {
	if idempotencyKey == "" {
		return ""
	}
	return uuid.NewSHA1(orderKeySpace, []byte(sessionID+"\x00"+idempotencyKey)).String()
}

// View is a read-only copy of a cart.
type View struct {
	Lines []domain.Line
	Total decimal.Decimal
	Count int
}

type Service struct {
	catalog  CatalogReader
	sessions SessionStore
	checkout Checkout
	log      *slog.Logger
}

func NewService(catalog CatalogReader, sessions SessionStore, checkout Checkout, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		catalog:  catalog,
		sessions: sessions,
		checkout: checkout,
		log:      log,
	}
}

func viewOf(c *domain.Cart) View {
	return View{Lines: c.Lines(), Total: c.Total(), Count: c.Count()}
}

func (s *Service) with(sessionID string, fn func(*Session) error) error {
	sess := s.sessions.Load(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

func (s *Service) Cart(_ context.Context, sessionID string) View {
	var v View
	_ = s.with(sessionID, func(sess *Session) error {
		v = viewOf(sess.cart)
		return nil
	})
	return v
}

func (s *Service) AddItem(ctx context.Context, sessionID, productID string) (View, error) {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return View{}, fmt.Errorf("add %s to cart: %w", productID, err)
	}

	var v View
	err = s.with(sessionID, func(sess *Session) error {
		if !sess.cart.AddItem(p) {
			return ErrInvalidQuantity
		}
		v = viewOf(sess.cart)
		return nil
	})
	return v, err
}

func (s *Service) RemoveItem(_ context.Context, sessionID, productID string) View {
	var v View
	_ = s.with(sessionID, func(sess *Session) error {
		sess.cart.RemoveItem(productID)
		v = viewOf(sess.cart)
		return nil
	})
	return v
}

func (s *Service) SetQuantity(_ context.Context, sessionID, productID string, qty int32) (View, error) {
	if qty < 1 || qty > domain.MaxQuantity {
		return View{}, ErrInvalidQuantity
	}

	var v View
	err := s.with(sessionID, func(sess *Session) error {
		if !sess.cart.SetQuantity(productID, qty) {
			return ErrNotInCart
		}
		v = viewOf(sess.cart)
		return nil
	})
	return v, err
}

func (s *Service) Clear(_ context.Context, sessionID string) {
	_ = s.with(sessionID, func(sess *Session) error {
		sess.cart.Clear()
		return nil
	})
}

// Checkout submits the session's cart and empties it once the order exists.
// A non-empty idempotency key that was already used by this session returns
// the earlier order and replayed=true without submitting again. The key is
// also sent to the order service, which dedupes retries whose first reply
// never arrived.
func (s *Service) Checkout(ctx context.Context, sessionID, idempotencyKey string, form checkoutdomain.Form) (order orderdomain.Order, replayed bool, err error) {
	err = s.with(sessionID, func(sess *Session) error {
		if idempotencyKey != "" {
			if prev, ok := sess.replays[idempotencyKey]; ok {
				order, replayed = prev, true
				return nil
			}
		}

		o, err := s.checkout.Submit(ctx, sess.cart, form, orderKey(sessionID, idempotencyKey))
		if err != nil {
			return err
		}

		sess.cart.Clear()
		sess.remember(idempotencyKey, o)
		order = o
		s.log.InfoContext(ctx, "order placed", "order_id", o.ID, "total", o.TotalPrice.String())
		return nil
	})
	return order, replayed, err
}
