package app

import (
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

const maxReplays = 16

// Session is one customer's cart plus the orders it already submitted under an
// idempotency key. All access goes through the Service, which holds mu.
type Session struct {
	mu      sync.Mutex
	cart    *domain.Cart
	replays map[string]orderdomain.Order
	keys    []string
}

func NewSession() *Session {
	return &Session{
		cart:    domain.New(),
		replays: make(map[string]orderdomain.Order),
	}
}

func (s *Session) remember(key string, o orderdomain.Order) {
	if key == "" {
		return
	}
	if len(s.keys) == maxReplays {
		delete(s.replays, s.keys[0])
		s.keys = s.keys[1:]
	}
	s.keys = append(s.keys, key)
	s.replays[key] = o
}
