package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, customer_name, email, phone, address, city, zip_code, total_price, status, created_at, updated_at`

type OrderRepo struct {
	db *database.DB
}

func NewOrderRepo(db *database.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderTx writes the order, its lines and the idempotency key (when
// set) in one transaction. A key held by another order rolls everything back
// with app.ErrDuplicateKey.
func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order, idempotencyKey string) (domain.Order, error) {
	now := time.Now().UTC()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now

	err := r.db.ExecTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			order.ID,
			order.Contact.Name, order.Contact.Email, order.Contact.Phone,
			order.Shipping.Address, order.Shipping.City, order.Shipping.Zip,
			order.TotalPrice, string(order.Status), order.CreatedAt, order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if idempotencyKey != "" {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO order_idempotency (idempotency_key, order_id, created_at) VALUES ($1, $2, $3)`,
				idempotencyKey, order.ID, now,
			)
			if database.IsUniqueViolation(err) {
				return app.ErrDuplicateKey
			}
			if err != nil {
				return fmt.Errorf("failed to record idempotency key: %w", err)
			}
		}

		for i, item := range order.Lines {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO order_lines (order_id, position, product_id, product_name, unit_price, quantity)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				order.ID, i, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}

	lines, err := r.lines(ctx, `WHERE l.order_id = $1`, id)
	if err != nil {
		return domain.Order{}, err
	}
	o.Lines = lines[o.ID]
	return o, nil
}

func (r *OrderRepo) FindByIdempotencyKey(ctx context.Context, key string) (domain.Order, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT order_id FROM order_idempotency WHERE idempotency_key = $1`, key,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return r.Get(ctx, id)
}

func (r *OrderRepo) List(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE ($1 = '' OR status = $1)
		 ORDER BY created_at DESC, id DESC`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := r.lines(ctx, `WHERE ($1 = '' OR o.status = $1)`, string(status))
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}
	return orders, nil
}

// UpdateStatus is a single UPDATE; totals and lines are never written here.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), time.Now().UTC(),
	)
	if err != nil {
		return domain.Order{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Order{}, err
	}
	if n == 0 {
		return domain.Order{}, app.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *OrderRepo) Stats(ctx context.Context) (domain.Stats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, total_price FROM orders`)
	if err != nil {
		return domain.Stats{}, err
	}
	defer rows.Close()

	stats := domain.Stats{Revenue: decimal.Zero}
	for rows.Next() {
		var (
			status string
			total  decimal.Decimal
		)
		if err := rows.Scan(&status, &total); err != nil {
			return domain.Stats{}, err
		}
		stats.TotalOrders++
		if domain.Status(status) == domain.StatusPending {
			stats.PendingOrders++
		}
		stats.Revenue = stats.Revenue.Add(total)
	}
	return stats, rows.Err()
}

func (r *OrderRepo) lines(ctx context.Context, where string, args ...any) (map[string][]domain.Line, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT l.order_id, l.product_id, l.product_name, l.unit_price, l.quantity
		 FROM order_lines l JOIN orders o ON o.id = l.order_id `+where+`
		 ORDER BY l.order_id, l.position`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.Line)
	for rows.Next() {
		var (
			orderID string
			l       domain.Line
		)
		if err := rows.Scan(&orderID, &l.ProductID, &l.ProductName, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	err := s.Scan(
		&o.ID,
		&o.Contact.Name, &o.Contact.Email, &o.Contact.Phone,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.Zip,
		&o.TotalPrice, &status, &o.CreatedAt, &o.UpdatedAt,
	)
	o.Status = domain.Status(status)
	return o, err
}
