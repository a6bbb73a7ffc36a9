// Package orderv1 is the order.v1.OrderService contract used by the storefront
// checkout (CreateOrder) and the admin order console (everything else).
package orderv1

import (
	"context"
	"time"

	"github.com/dwikikusuma/storefront/api/rpcjson"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Shipping struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type OrderLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int32           `json:"quantity"`
}

type Order struct {
	ID         string          `json:"id"`
	Contact    Contact         `json:"contact"`
	Shipping   Shipping        `json:"shipping"`
	Lines      []OrderLine     `json:"lines"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CreateOrderRequest struct {
	Contact    Contact         `json:"contact"`
	Shipping   Shipping        `json:"shipping"`
	Lines      []OrderLine     `json:"lines"`
	TotalPrice decimal.Decimal `json:"total_price"`
	// IdempotencyKey, when set, makes retries of the same request return the
	// order created by the first one.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type CreateOrderResponse struct {
	Order *Order `json:"order"`
}

type ListOrdersRequest struct {
	// Status optionally filters by status.
	Status string `json:"status,omitempty"`
}

type ListOrdersResponse struct {
	Orders []*Order `json:"orders"`
}

type GetOrderRequest struct {
	ID string `json:"id"`
}

type GetOrderResponse struct {
	Order *Order `json:"order"`
}

type SetOrderStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetOrderStatusResponse struct {
	Order *Order `json:"order"`
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	Revenue       decimal.Decimal `json:"revenue"`
}

const (
	OrderService_CreateOrder_FullMethodName    = "/order.v1.OrderService/CreateOrder"
	OrderService_ListOrders_FullMethodName     = "/order.v1.OrderService/ListOrders"
	OrderService_GetOrder_FullMethodName       = "/order.v1.OrderService/GetOrder"
	OrderService_SetOrderStatus_FullMethodName = "/order.v1.OrderService/SetOrderStatus"
	OrderService_GetStats_FullMethodName       = "/order.v1.OrderService/GetStats"
)

type OrderServiceClient interface {
	CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*CreateOrderResponse, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
	GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error)
	SetOrderStatus(ctx context.Context, in *SetOrderStatusRequest, opts ...grpc.CallOption) (*SetOrderStatusResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc: cc}
}

func (c *orderServiceClient) CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*CreateOrderResponse, error) {
	return rpcjson.Invoke[CreateOrderResponse](ctx, c.cc, OrderService_CreateOrder_FullMethodName, in, opts...)
}

func (c *orderServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return rpcjson.Invoke[ListOrdersResponse](ctx, c.cc, OrderService_ListOrders_FullMethodName, in, opts...)
}

func (c *orderServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*GetOrderResponse, error) {
	return rpcjson.Invoke[GetOrderResponse](ctx, c.cc, OrderService_GetOrder_FullMethodName, in, opts...)
}

func (c *orderServiceClient) SetOrderStatus(ctx context.Context, in *SetOrderStatusRequest, opts ...grpc.CallOption) (*SetOrderStatusResponse, error) {
	return rpcjson.Invoke[SetOrderStatusResponse](ctx, c.cc, OrderService_SetOrderStatus_FullMethodName, in, opts...)
}

func (c *orderServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	return rpcjson.Invoke[GetStatsResponse](ctx, c.cc, OrderService_GetStats_FullMethodName, in, opts...)
}

type OrderServiceServer interface {
	CreateOrder(context.Context, *CreateOrderRequest) (*CreateOrderResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error)
	SetOrderStatus(context.Context, *SetOrderStatusRequest) (*SetOrderStatusResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
}

type UnimplementedOrderServiceServer struct{}

func (UnimplementedOrderServiceServer) CreateOrder(context.Context, *CreateOrderRequest) (*CreateOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateOrder not implemented")
}
func (UnimplementedOrderServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOrders not implemented")
}
func (UnimplementedOrderServiceServer) GetOrder(context.Context, *GetOrderRequest) (*GetOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}
func (UnimplementedOrderServiceServer) SetOrderStatus(context.Context, *SetOrderStatusRequest) (*SetOrderStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOrderStatus not implemented")
}
func (UnimplementedOrderServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "order.v1.OrderService",
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateOrder", Handler: rpcjson.Unary(OrderService_CreateOrder_FullMethodName, OrderServiceServer.CreateOrder)},
		{MethodName: "ListOrders", Handler: rpcjson.Unary(OrderService_ListOrders_FullMethodName, OrderServiceServer.ListOrders)},
		{MethodName: "GetOrder", Handler: rpcjson.Unary(OrderService_GetOrder_FullMethodName, OrderServiceServer.GetOrder)},
		{MethodName: "SetOrderStatus", Handler: rpcjson.Unary(OrderService_SetOrderStatus_FullMethodName, OrderServiceServer.SetOrderStatus)},
		{MethodName: "GetStats", Handler: rpcjson.Unary(OrderService_GetStats_FullMethodName, OrderServiceServer.GetStats)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/orderv1/order.go",
}
