package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type SettingsRepo interface {
	All(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
	InsertMissing(ctx context.Context, values map[string]string) error
}

// Defaults are written on startup for keys that do not exist yet.
var Defaults = map[string]string{
	"website_name":         "UNICORNKART LLC",
	"company_address":      "30 N GOULD ST STE 4000, SHERIDAN, WY 82801, United States",
	"company_phone":        "+1 (555) 123-4567",
	"company_email":        "info@unicornkart.com",
	"privacy_policy":       "Your privacy policy content here...",
	"terms_and_conditions": "Your terms and conditions content here...",
	"refund_policy":        "Your refund policy content here...",
	"about_us":             "Welcome to UNICORNKART LLC - Your trusted source for quality toys and products!",
	"meta_description":     "Shop the best toys and products at UNICORNKART LLC",
	"meta_keywords":        "toys, kids toys, educational toys, fun toys, unicornkart",
}

const maxKeyLen = 64

type Service struct {
	repo SettingsRepo
}

func NewService(repo SettingsRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Seed(ctx context.Context, defaults map[string]string) error {
	return s.repo.InsertMissing(ctx, defaults)
}

func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	return s.repo.All(ctx)
}

// Update upserts the given keys and returns the full settings map.
func (s *Service) Update(ctx context.Context, values map[string]string) (map[string]string, error) {
	clean := make(map[string]string, len(values))
	for k, v := range values {
		k = strings.TrimSpace(k)
		if k == "" || len(k) > maxKeyLen {
			return nil, fmt.Errorf("%w: setting key %q", ErrInvalidInput, k)
		}
		clean[k] = v
	}
	if len(clean) > 0 {
		if err := s.repo.Upsert(ctx, clean); err != nil {
			return nil, err
		}
	}
	return s.repo.All(ctx)
}
