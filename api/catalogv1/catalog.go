// Package catalogv1 is the catalog.v1.CatalogService contract.
package catalogv1

import (
	"context"
	"time"

	"github.com/dwikikusuma/storefront/api/rpcjson"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int32           `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductFields carries a create payload or a partial update; nil fields are
// left untouched on update.
type ProductFields struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Stock       *int32           `json:"stock,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
}

type ListProductsRequest struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type CreateProductRequest struct {
	Fields ProductFields `json:"fields"`
}

type CreateProductResponse struct {
	Product *Product `json:"product"`
}

type UpdateProductRequest struct {
	ID     string        `json:"id"`
	Fields ProductFields `json:"fields"`
}

type UpdateProductResponse struct {
	Product *Product `json:"product"`
}

type DeleteProductRequest struct {
	ID string `json:"id"`
}

type DeleteProductResponse struct{}

const (
	CatalogService_ListProducts_FullMethodName  = "/catalog.v1.CatalogService/ListProducts"
	CatalogService_GetProduct_FullMethodName    = "/catalog.v1.CatalogService/GetProduct"
	CatalogService_CreateProduct_FullMethodName = "/catalog.v1.CatalogService/CreateProduct"
	CatalogService_UpdateProduct_FullMethodName = "/catalog.v1.CatalogService/UpdateProduct"
	CatalogService_DeleteProduct_FullMethodName = "/catalog.v1.CatalogService/DeleteProduct"
)

type CatalogServiceClient interface {
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*UpdateProductResponse, error)
	DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return rpcjson.Invoke[ListProductsResponse](ctx, c.cc, CatalogService_ListProducts_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return rpcjson.Invoke[GetProductResponse](ctx, c.cc, CatalogService_GetProduct_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error) {
	return rpcjson.Invoke[CreateProductResponse](ctx, c.cc, CatalogService_CreateProduct_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*UpdateProductResponse, error) {
	return rpcjson.Invoke[UpdateProductResponse](ctx, c.cc, CatalogService_UpdateProduct_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error) {
	return rpcjson.Invoke[DeleteProductResponse](ctx, c.cc, CatalogService_DeleteProduct_FullMethodName, in, opts...)
}

type CatalogServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*UpdateProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*DeleteProductResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to satisfy the interface
// while only some methods are implemented.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedCatalogServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}
func (UnimplementedCatalogServiceServer) UpdateProduct(context.Context, *UpdateProductRequest) (*UpdateProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}
func (UnimplementedCatalogServiceServer) DeleteProduct(context.Context, *DeleteProductRequest) (*DeleteProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: rpcjson.Unary(CatalogService_ListProducts_FullMethodName, CatalogServiceServer.ListProducts)},
		{MethodName: "GetProduct", Handler: rpcjson.Unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct)},
		{MethodName: "CreateProduct", Handler: rpcjson.Unary(CatalogService_CreateProduct_FullMethodName, CatalogServiceServer.CreateProduct)},
		{MethodName: "UpdateProduct", Handler: rpcjson.Unary(CatalogService_UpdateProduct_FullMethodName, CatalogServiceServer.UpdateProduct)},
		{MethodName: "DeleteProduct", Handler: rpcjson.Unary(CatalogService_DeleteProduct_FullMethodName, CatalogServiceServer.DeleteProduct)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/catalogv1/catalog.go",
}
