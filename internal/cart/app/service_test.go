package app_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/cart/infra/session"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type fakeCatalog map[string]domain.ProductSnapshot

func (f fakeCatalog) GetProduct(_ context.Context, id string) (domain.ProductSnapshot, error) {
	p, ok := f[id]
	if !ok {
		return domain.ProductSnapshot{}, app.ErrProductNotFound
	}
	return p, nil
}

// fakeOrders stands in for the order service. Orders created with an
// idempotency key are remembered so a repeated key returns the stored order.
// lostReplies > 0 commits the order and then reports a deadline, as when the
// response is lost on the way back.
type fakeOrders struct {
	mu          sync.Mutex
	calls       int
	err         error
	lostReplies int
	created     []orderdomain.Order
	byKey       map[string]orderdomain.Order
}

func (f *fakeOrders) CreateOrder(_ context.Context, d orderdomain.Draft) (orderdomain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return orderdomain.Order{}, f.err
	}
	if o, ok := f.byKey[d.IdempotencyKey]; ok && d.IdempotencyKey != "" {
		return o, nil
	}

	o := orderdomain.Order{
		ID:         uuid.NewString(),
		Contact:    d.Contact,
		Shipping:   d.Shipping,
		Lines:      d.Lines,
		TotalPrice: d.TotalPrice,
		Status:     orderdomain.StatusPending,
	}
	f.created = append(f.created, o)
	if d.IdempotencyKey != "" {
		if f.byKey == nil {
			f.byKey = make(map[string]orderdomain.Order)
		}
		f.byKey[d.IdempotencyKey] = o
	}

	if f.lostReplies > 0 {
		f.lostReplies--
		return orderdomain.Order{}, context.DeadlineExceeded
	}
	return o, nil
}

var catalog = fakeCatalog{
	"A": {ID: "A", Name: "Robot", Price: decimal.RequireFromString("9.99")},
	"B": {ID: "B", Name: "Kite", Price: decimal.RequireFromString("5.00")},
}

func newTestService(t *testing.T, orders *fakeOrders) *app.Service {
	t.Helper()
	sessions := session.NewStore(100, time.Hour)
	return app.NewService(catalog, sessions, checkoutapp.NewService(orders, nil), nil)
}

func form() checkoutdomain.Form {
	return checkoutdomain.Form{
		Name: "Ana", Email: "ana@example.com", Phone: "555", Address: "1 Main", City: "Town", Zip: "12345",
	}
}

func TestCart_AddAndSetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeOrders{})
	sid := uuid.NewString()

	_, err := svc.AddItem(ctx, sid, "A")
	require.NoError(t, err)
	v, err := svc.AddItem(ctx, sid, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Count)
	assert.True(t, decimal.RequireFromString("19.98").Equal(v.Total))

	_, err = svc.SetQuantity(ctx, sid, "A", 0)
	assert.ErrorIs(t, err, app.ErrInvalidQuantity)
	assert.Equal(t, 2, svc.Cart(ctx, sid).Count)

	_, err = svc.SetQuantity(ctx, sid, "B", 3)
	assert.ErrorIs(t, err, app.ErrNotInCart)

	v, err = svc.SetQuantity(ctx, sid, "A", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Count)

	v = svc.RemoveItem(ctx, sid, "A")
	assert.Empty(t, v.Lines)
}

func TestCart_QuantityLimit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeOrders{})
	sid := uuid.NewString()

	_, err := svc.AddItem(ctx, sid, "A")
	require.NoError(t, err)

	_, err = svc.SetQuantity(ctx, sid, "A", math.MaxInt32)
	assert.ErrorIs(t, err, app.ErrInvalidQuantity)

	_, err = svc.SetQuantity(ctx, sid, "A", domain.MaxQuantity)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, sid, "A")
	assert.ErrorIs(t, err, app.ErrInvalidQuantity)

	v := svc.Cart(ctx, sid)
	assert.Equal(t, int(domain.MaxQuantity), v.Count)
	assert.True(t, v.Total.IsPositive())
}

func TestCart_UnknownProduct(t *testing.T) {
	svc := newTestService(t, &fakeOrders{})
	sid := uuid.NewString()

	_, err := svc.AddItem(context.Background(), sid, "nope")
	assert.ErrorIs(t, err, app.ErrProductNotFound)
	assert.Zero(t, svc.Cart(context.Background(), sid).Count)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeOrders{})

	_, err := svc.AddItem(ctx, "s1", "A")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Cart(ctx, "s1").Count)
	assert.Equal(t, 0, svc.Cart(ctx, "s2").Count)
}

func TestCart_ConcurrentAddItemIncrement(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeOrders{})
	sid := uuid.NewString()

	const N = 100
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(gctx, sid, "A")
			return err
		})
	}
	require.NoError(t, g.Wait())

	v := svc.Cart(ctx, sid)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, int32(N), v.Lines[0].Quantity)
}

func TestCheckout_ClearsCartOnSuccess(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrders{}
	svc := newTestService(t, orders)
	sid := uuid.NewString()

	_, _ = svc.AddItem(ctx, sid, "A")
	_, _ = svc.AddItem(ctx, sid, "B")

	order, replayed, err := svc.Checkout(ctx, sid, "", form())
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.True(t, decimal.RequireFromString("14.99").Equal(order.TotalPrice))
	assert.Zero(t, svc.Cart(ctx, sid).Count)
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeOrders{err: errors.New("unavailable")})
	sid := uuid.NewString()
	_, _ = svc.AddItem(ctx, sid, "A")

	_, _, err := svc.Checkout(ctx, sid, "", form())

	var sErr *checkoutdomain.SubmissionError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 1, svc.Cart(ctx, sid).Count)
}

func TestCheckout_ValidationKeepsCart(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrders{}
	svc := newTestService(t, orders)
	sid := uuid.NewString()
	_, _ = svc.AddItem(ctx, sid, "A")

	f := form()
	f.Zip = ""
	_, _, err := svc.Checkout(ctx, sid, "", f)

	var vErr *checkoutdomain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "zip", vErr.Field)
	assert.Equal(t, 0, orders.calls)
	assert.Equal(t, 1, svc.Cart(ctx, sid).Count)
}

func TestCheckout_IdempotencyKeyReplays(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrders{}
	svc := newTestService(t, orders)
	sid := uuid.NewString()
	_, _ = svc.AddItem(ctx, sid, "A")

	first, replayed, err := svc.Checkout(ctx, sid, "key-1", form())
	require.NoError(t, err)
	assert.False(t, replayed)

	again, replayed, err := svc.Checkout(ctx, sid, "key-1", form())
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 1, orders.calls)

	// a fresh key on the now empty cart is a validation failure
	_, _, err = svc.Checkout(ctx, sid, "key-2", form())
	var vErr *checkoutdomain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items", vErr.Field)
}

func TestCheckout_RetryAfterLostReplyCreatesOneOrder(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrders{lostReplies: 1}
	svc := newTestService(t, orders)
	sid := uuid.NewString()
	_, _ = svc.AddItem(ctx, sid, "A")

	_, _, err := svc.Checkout(ctx, sid, "key-1", form())
	var sErr *checkoutdomain.SubmissionError
	require.ErrorAs(t, err, &sErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, svc.Cart(ctx, sid).Count)

	order, replayed, err := svc.Checkout(ctx, sid, "key-1", form())
	require.NoError(t, err)
	assert.False(t, replayed)

	require.Len(t, orders.created, 1)
	assert.Equal(t, orders.created[0].ID, order.ID)
	assert.Equal(t, 2, orders.calls)
	assert.Zero(t, svc.Cart(ctx, sid).Count)
}

func TestCheckout_SameKeyInTwoSessionsCreatesTwoOrders(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrders{}
	svc := newTestService(t, orders)

	_, _ = svc.AddItem(ctx, "s1", "A")
	_, _ = svc.AddItem(ctx, "s2", "B")

	o1, _, err := svc.Checkout(ctx, "s1", "shared", form())
	require.NoError(t, err)
	o2, replayed, err := svc.Checkout(ctx, "s2", "shared", form())
	require.NoError(t, err)

	assert.False(t, replayed)
	assert.NotEqual(t, o1.ID, o2.ID)
	assert.Len(t, orders.created, 2)
	assert.True(t, decimal.RequireFromString("5.00").Equal(o2.TotalPrice))
}
