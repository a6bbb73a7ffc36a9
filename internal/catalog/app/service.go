package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateProduct requires name and price; the remaining fields default to
// their zero values.
func (s *Service) CreateProduct(ctx context.Context, fields domain.ProductPatch) (domain.Product, error) {
	if fields.Name == nil || fields.Price == nil {
		return domain.Product{}, fmt.Errorf("%w: name and price are required", ErrInvalidInput)
	}

	var p domain.Product
	p.Apply(fields)
	if err := validate(&p); err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Category = strings.TrimSpace(filter.Category)
	return s.repo.List(ctx, filter)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	current, err := s.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	current.Apply(patch)
	if err := validate(&current); err != nil {
		return domain.Product{}, err
	}

	return s.repo.Update(ctx, current)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func validate(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)

	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	case !money.IsCents(p.Price):
		return fmt.Errorf("%w: price has more than 2 decimals", ErrInvalidInput)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidInput)
	}
	return nil
}
