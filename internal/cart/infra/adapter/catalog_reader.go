package adapter

import (
	"context"

	catalogv1 "github.com/dwikikusuma/storefront/api/catalogv1"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CatalogClientReader struct {
	client catalogv1.CatalogServiceClient
}

func NewCatalogClientReader(client catalogv1.CatalogServiceClient) *CatalogClientReader {
	return &CatalogClientReader{client: client}
}

func (r *CatalogClientReader) GetProduct(ctx context.Context, productID string) (domain.ProductSnapshot, error) {
	resp, err := r.client.GetProduct(ctx, &catalogv1.GetProductRequest{ID: productID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ProductSnapshot{}, cartapp.ErrProductNotFound
		}
		return domain.ProductSnapshot{}, err
	}

	p := resp.Product
	if p == nil {
		return domain.ProductSnapshot{}, cartapp.ErrProductNotFound
	}
	return domain.ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Category: p.Category,
	}, nil
}
