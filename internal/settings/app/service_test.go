package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	data     map[string]string
	upserts  int
	failNext error
}

func newMemRepo() *memRepo { return &memRepo{data: map[string]string{}} }

func (m *memRepo) All(context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func (m *memRepo) Upsert(_ context.Context, values map[string]string) error {
	if m.failNext != nil {
		return m.failNext
	}
	m.upserts++
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memRepo) InsertMissing(_ context.Context, values map[string]string) error {
	for k, v := range values {
		if _, ok := m.data[k]; !ok {
			m.data[k] = v
		}
	}
	return nil
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("trims keys", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo)

		all, err := svc.Update(ctx, map[string]string{" about_us ": "hi"})
		require.NoError(t, err)
		assert.Equal(t, "hi", all["about_us"])
	})

	t.Run("rejects blank and oversized keys", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, map[string]string{"": "x"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Update(ctx, map[string]string{strings.Repeat("k", maxKeyLen+1): "x"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, repo.upserts)
	})

	t.Run("empty update is a read", func(t *testing.T) {
		repo := newMemRepo()
		repo.data["website_name"] = "Shop"
		svc := NewService(repo)

		all, err := svc.Update(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "Shop", all["website_name"])
		assert.Zero(t, repo.upserts)
	})

	t.Run("store error", func(t *testing.T) {
		repo := newMemRepo()
		repo.failNext = errors.New("disk full")
		svc := NewService(repo)

		_, err := svc.Update(ctx, map[string]string{"a": "b"})
		assert.EqualError(t, err, "disk full")
	})
}

func TestSeedKeepsExistingValues(t *testing.T) {
	repo := newMemRepo()
	repo.data["website_name"] = "Mine"
	svc := NewService(repo)

	require.NoError(t, svc.Seed(context.Background(), Defaults))
	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mine", all["website_name"])
	assert.Equal(t, Defaults["refund_policy"], all["refund_policy"])
}
