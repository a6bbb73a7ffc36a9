package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("order not found")
	ErrDuplicateKey = errors.New("idempotency key already used")
)

const maxIdempotencyKeyLen = 128

type Service struct {
	repo   OrderRepo
	events EventPublisher
	log    *slog.Logger
}

// NewService wires the order store. events and log may be nil.
func NewService(repo OrderRepo, events EventPublisher, log *slog.Logger) *Service {
	if events == nil {
		events = nopPublisher{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{repo: repo, events: events, log: log}
}

// CreateOrder persists a draft as a Pending order. The total is taken from the
// draft and must equal the sum of its lines; it is never recomputed later.
// A draft whose IdempotencyKey was already used returns the order created
// under that key and publishes nothing.
func (s *Service) CreateOrder(ctx context.Context, draft domain.Draft) (domain.Order, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Order{}, err
	}

	key := draft.IdempotencyKey
	if key != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, key)
		if err == nil {
			s.log.InfoContext(ctx, "order create replayed", slog.String("order_id", existing.ID))
			return existing, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return domain.Order{}, err
		}
	}

	lines := make([]domain.Line, len(draft.Lines))
	copy(lines, draft.Lines)

	order := domain.Order{
		Contact:    draft.Contact,
		Shipping:   draft.Shipping,
		Lines:      lines,
		TotalPrice: draft.TotalPrice,
		Status:     domain.StatusPending,
	}

	created, err := s.repo.CreateOrderTx(ctx, order, key)
	if errors.Is(err, ErrDuplicateKey) {
		// a concurrent request with the same key committed first
		existing, ferr := s.repo.FindByIdempotencyKey(ctx, key)
		if ferr != nil {
			return domain.Order{}, fmt.Errorf("load order for idempotency key: %w", ferr)
		}
		s.log.InfoContext(ctx, "order create replayed", slog.String("order_id", existing.ID))
		return existing, nil
	}
	if err != nil {
		return domain.Order{}, err
	}

	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", created.ID),
		slog.String("total", created.TotalPrice.StringFixed(2)),
		slog.Int("lines", len(created.Lines)),
	)
	s.publish(ctx, domain.EventOrderCreated, created, map[string]any{
		"total_price": created.TotalPrice.StringFixed(2),
		"lines":       len(created.Lines),
	})

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repo.Get(ctx, id)
}

// ListOrders returns newest first. An empty status lists everything.
func (s *Service) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	var st domain.Status
	if strings.TrimSpace(status) != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		st = parsed
	}
	return s.repo.List(ctx, st)
}

// SetOrderStatus moves an order to any of the known statuses. No ordering is
// enforced between them; concurrent updates are last-write-wins.
func (s *Service) SetOrderStatus(ctx context.Context, id, status string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return domain.Order{}, err
	}

	s.log.InfoContext(ctx, "order status changed",
		slog.String("order_id", updated.ID),
		slog.String("status", string(updated.Status)),
	)
	s.publish(ctx, domain.EventOrderStatusChanged, updated, nil)

	return updated, nil
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx)
}

// publish is best effort: the order is already committed, so a broker
// failure is logged and otherwise ignored.
func (s *Service) publish(ctx context.Context, typ string, o domain.Order, payload map[string]any) {
	evt := domain.Event{
		EventID:    uuid.NewString(),
		Type:       typ,
		OrderID:    o.ID,
		Status:     o.Status,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.WarnContext(ctx, "publish order event failed",
			slog.String("type", typ),
			slog.String("order_id", o.ID),
			slog.Any("err", err),
		)
	}
}

func validateDraft(d domain.Draft) error {
	required := []struct {
		name, value string
	}{
		{"name", d.Contact.Name},
		{"email", d.Contact.Email},
		{"phone", d.Contact.Phone},
		{"address", d.Shipping.Address},
		{"city", d.Shipping.City},
		{"zip", d.Shipping.Zip},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if len(d.IdempotencyKey) > maxIdempotencyKeyLen {
		return fmt.Errorf("%w: idempotency key longer than %d bytes", ErrInvalidInput, maxIdempotencyKeyLen)
	}

	if len(d.Lines) == 0 {
		return fmt.Errorf("%w: order must have at least one line", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(d.Lines))
	for i, item := range d.Lines {
		if strings.TrimSpace(item.ProductID) == "" {
			return fmt.Errorf("%w: item %d: product id is required", ErrInvalidInput, i)
		}
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("%w: item %d: duplicate product %s", ErrInvalidInput, i, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d: unit price cannot be negative, got %s", ErrInvalidInput, i, item.UnitPrice)
		}
		if !money.IsCents(item.UnitPrice) {
			return fmt.Errorf("%w: item %d: unit price %s has more than 2 decimals", ErrInvalidInput, i, item.UnitPrice)
		}
	}

	if !money.IsCents(d.TotalPrice) {
		return fmt.Errorf("%w: total %s has more than 2 decimals", ErrInvalidInput, d.TotalPrice)
	}

	if sum := domain.SumLines(d.Lines); !sum.Equal(d.TotalPrice) {
		return fmt.Errorf("%w: total %s does not match line sum %s", ErrInvalidInput, d.TotalPrice, sum)
	}
	return nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }
