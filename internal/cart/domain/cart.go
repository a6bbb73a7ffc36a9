package domain

import "github.com/shopspring/decimal"

// ProductSnapshot is the catalog data a line keeps from the moment the product
// was first added.
type ProductSnapshot struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Category string
}

// MaxQuantity caps the units of a single line.
const MaxQuantity int32 = 999

type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Category  string
	Quantity  int32
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// Cart holds at most one line per product id, in insertion order. A Cart is not
// safe for concurrent use; the session that owns it serialises access.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem bumps the quantity of an existing line or appends a new one with
// quantity 1. The snapshot of an existing line is not refreshed. It reports
// false, leaving the cart unchanged, when the line is already at MaxQuantity.
func (c *Cart) AddItem(p ProductSnapshot) bool {
	if i := c.index(p.ID); i >= 0 {
		if c.lines[i].Quantity >= MaxQuantity {
			return false
		}
		c.lines[i].Quantity++
		return true
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		Quantity:  1,
	})
	return true
}

func (c *Cart) RemoveItem(productID string) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity reports whether the cart changed. Quantities outside
// [1, MaxQuantity] and unknown product ids leave the cart as it was.
func (c *Cart) SetQuantity(productID string, qty int32) bool {
	if qty < 1 || qty > MaxQuantity {
		return false
	}
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = qty
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count is the number of units, not the number of lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += int(l.Quantity)
	}
	return n
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
