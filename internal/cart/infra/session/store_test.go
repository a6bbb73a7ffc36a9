package session

import (
	"sync"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/stretchr/testify/assert"
)

func TestStore_LoadReturnsSameSession(t *testing.T) {
	s := NewStore(10, time.Hour)

	a := s.Load("one")
	b := s.Load("one")
	c := s.Load("two")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, s.Len())
}

func TestStore_EvictsOldest(t *testing.T) {
	s := NewStore(2, time.Hour)

	first := s.Load("a")
	s.Load("b")
	s.Load("c")

	assert.Equal(t, 2, s.Len())
	assert.NotSame(t, first, s.Load("a"))
}

func TestStore_ConcurrentLoadCreatesOnce(t *testing.T) {
	s := NewStore(10, time.Hour)

	const n = 50
	got := make([]*app.Session, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = s.Load("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}
