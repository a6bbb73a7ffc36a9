package grpc

import (
	"context"
	"errors"
	"strings"

	orderv1 "github.com/dwikikusuma/storefront/api/orderv1"
	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	orderv1.UnimplementedOrderServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateOrder(ctx context.Context, req *orderv1.CreateOrderRequest) (*orderv1.CreateOrderResponse, error) {
	if len(req.Lines) == 0 {
		return nil, status.Error(codes.InvalidArgument, "lines must not be empty")
	}

	order, err := s.svc.CreateOrder(ctx, FromProtoDraft(req))
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.CreateOrderResponse{Order: ToProto(order)}, nil
}

func (s *Server) ListOrders(ctx context.Context, req *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(ctx, req.Status)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*orderv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToProto(o))
	}
	return &orderv1.ListOrdersResponse{Orders: out}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.GetOrderResponse, error) {
	o, err := s.svc.GetOrder(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.GetOrderResponse{Order: ToProto(o)}, nil
}

func (s *Server) SetOrderStatus(ctx context.Context, req *orderv1.SetOrderStatusRequest) (*orderv1.SetOrderStatusResponse, error) {
	o, err := s.svc.SetOrderStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.SetOrderStatusResponse{Order: ToProto(o)}, nil
}

func (s *Server) GetStats(ctx context.Context, _ *orderv1.GetStatsRequest) (*orderv1.GetStatsResponse, error) {
	st, err := s.svc.Stats(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.GetStatsResponse{
		TotalOrders:   st.TotalOrders,
		PendingOrders: st.PendingOrders,
		Revenue:       st.Revenue,
	}, nil
}

func FromProtoDraft(req *orderv1.CreateOrderRequest) domain.Draft {
	lines := make([]domain.Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, domain.Line{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	return domain.Draft{
		Contact:        domain.Contact{Name: req.Contact.Name, Email: req.Contact.Email, Phone: req.Contact.Phone},
		Shipping:       domain.Shipping{Address: req.Shipping.Address, City: req.Shipping.City, Zip: req.Shipping.Zip},
		Lines:          lines,
		TotalPrice:     req.TotalPrice,
		IdempotencyKey: strings.TrimSpace(req.IdempotencyKey),
	}
}

func ToProto(o domain.Order) *orderv1.Order {
	lines := make([]orderv1.OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderv1.OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	return &orderv1.Order{
		ID:         o.ID,
		Contact:    orderv1.Contact{Name: o.Contact.Name, Email: o.Contact.Email, Phone: o.Contact.Phone},
		Shipping:   orderv1.Shipping{Address: o.Shipping.Address, City: o.Shipping.City, Zip: o.Shipping.Zip},
		Lines:      lines,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
