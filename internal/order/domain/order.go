package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contact struct {
	Name  string
	Email string
	Phone string
}

type Shipping struct {
	Address string
	City    string
	Zip     string
}

// Line is a frozen copy of what the customer bought; it never points back at
// the live catalog record.
type Line struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int32
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// Draft is an order that has not been persisted yet. Drafts sharing a
// non-empty IdempotencyKey produce a single order.
type Draft struct {
	Contact        Contact
	Shipping       Shipping
	Lines          []Line
	TotalPrice     decimal.Decimal
	IdempotencyKey string
}

type Order struct {
	ID         string
	Contact    Contact
	Shipping   Shipping
	Lines      []Line
	TotalPrice decimal.Decimal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Stats struct {
	TotalOrders   int64
	PendingOrders int64
	Revenue       decimal.Decimal
}

func SumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
