package grpc

import (
	"context"
	"errors"

	catalogv1 "github.com/dwikikusuma/storefront/api/catalogv1"
	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.CreateProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}
	product, err := s.svc.CreateProduct(ctx, fromProtoFields(req.Fields))
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.CreateProductResponse{Product: ToProto(product)}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetProductResponse{Product: ToProto(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, err := s.svc.ListProducts(ctx, domain.ListFilter{Query: req.Query, Category: req.Category})
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, ToProto(p))
	}

	return &catalogv1.ListProductsResponse{Products: out}, nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *catalogv1.UpdateProductRequest) (*catalogv1.UpdateProductResponse, error) {
	p, err := s.svc.UpdateProduct(ctx, req.ID, fromProtoFields(req.Fields))
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.UpdateProductResponse{Product: ToProto(p)}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *catalogv1.DeleteProductRequest) (*catalogv1.DeleteProductResponse, error) {
	if err := s.svc.DeleteProduct(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.DeleteProductResponse{}, nil
}

func ToProto(p domain.Product) *catalogv1.Product {
	return &catalogv1.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromProtoFields(f catalogv1.ProductFields) domain.ProductPatch {
	return domain.ProductPatch{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		Stock:       f.Stock,
		ImageURL:    f.ImageURL,
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
