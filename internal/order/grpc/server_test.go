package grpc

import (
	"context"
	"net"
	"testing"

	orderv1 "github.com/dwikikusuma/storefront/api/orderv1"
	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/infra/sqlstore"
	"github.com/dwikikusuma/storefront/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) orderv1.OrderServiceClient {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	orderv1.RegisterOrderServiceServer(srv, NewServer(app.NewService(sqlstore.NewOrderRepo(db), nil, nil)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return orderv1.NewOrderServiceClient(conn)
}

func createReq() *orderv1.CreateOrderRequest {
	return &orderv1.CreateOrderRequest{
		Contact:  orderv1.Contact{Name: "Ada", Email: "ada@example.com", Phone: "555"},
		Shipping: orderv1.Shipping{Address: "1 Main", City: "Sheridan", Zip: "82801"},
		Lines: []orderv1.OrderLine{
			{ProductID: "A", ProductName: "Teddy", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 2},
		},
		TotalPrice: decimal.RequireFromString("19.98"),
	}
}

func TestOrderServiceOverGRPC(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	created, err := client.CreateOrder(ctx, createReq())
	require.NoError(t, err)
	assert.Equal(t, "Pending", created.Order.Status)
	assert.Equal(t, "19.98", created.Order.TotalPrice.StringFixed(2))

	delivered, err := client.SetOrderStatus(ctx, &orderv1.SetOrderStatusRequest{ID: created.Order.ID, Status: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, "Delivered", delivered.Order.Status)

	back, err := client.SetOrderStatus(ctx, &orderv1.SetOrderStatusRequest{ID: created.Order.ID, Status: "Pending"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", back.Order.Status)

	list, err := client.ListOrders(ctx, &orderv1.ListOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "Teddy", list.Orders[0].Lines[0].ProductName)

	stats, err := client.GetStats(ctx, &orderv1.GetStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
}

func TestOrderServiceErrorCodes(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.SetOrderStatus(ctx, &orderv1.SetOrderStatusRequest{ID: "missing", Status: "Shipped"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetOrder(ctx, &orderv1.GetOrderRequest{ID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	empty := createReq()
	empty.Lines = nil
	_, err = client.CreateOrder(ctx, empty)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	mismatch := createReq()
	mismatch.TotalPrice = decimal.NewFromInt(1)
	_, err = client.CreateOrder(ctx, mismatch)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	created, err := client.CreateOrder(ctx, createReq())
	require.NoError(t, err)
	_, err = client.SetOrderStatus(ctx, &orderv1.SetOrderStatusRequest{ID: created.Order.ID, Status: "Lost"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOrderServiceRetryWithIdempotencyKey(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	req := createReq()
	req.IdempotencyKey = " checkout-7 "
	first, err := client.CreateOrder(ctx, req)
	require.NoError(t, err)

	req.IdempotencyKey = "checkout-7"
	retried, err := client.CreateOrder(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.Order.ID, retried.Order.ID)

	list, err := client.ListOrders(ctx, &orderv1.ListOrdersRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Orders, 1)

	subCent := createReq()
	subCent.Lines[0].UnitPrice = decimal.RequireFromString("9.995")
	subCent.TotalPrice = decimal.RequireFromString("19.99")
	_, err = client.CreateOrder(ctx, subCent)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
