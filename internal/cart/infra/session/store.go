package session

import (
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps cart sessions in memory. Idle sessions are evicted after ttl and
// the least recently used ones go first once capacity is reached.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *app.Session]
}

func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{cache: expirable.NewLRU[string, *app.Session](capacity, nil, ttl)}
}

func (s *Store) Load(id string) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.cache.Get(id); ok {
		return sess
	}
	sess := app.NewSession()
	s.cache.Add(id, sess)
	return sess
}

func (s *Store) Len() int {
	return s.cache.Len()
}
