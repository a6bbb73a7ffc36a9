package adapter

import (
	"context"

	orderv1 "github.com/dwikikusuma/storefront/api/orderv1"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

// OrderClientCreator submits drafts to the order service over gRPC.
type OrderClientCreator struct {
	client orderv1.OrderServiceClient
}

func NewOrderClientCreator(client orderv1.OrderServiceClient) *OrderClientCreator {
	return &OrderClientCreator{client: client}
}

func (c *OrderClientCreator) CreateOrder(ctx context.Context, d orderdomain.Draft) (orderdomain.Order, error) {
	lines := make([]orderv1.OrderLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, orderv1.OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	resp, err := c.client.CreateOrder(ctx, &orderv1.CreateOrderRequest{
		Contact:        orderv1.Contact{Name: d.Contact.Name, Email: d.Contact.Email, Phone: d.Contact.Phone},
		Shipping:       orderv1.Shipping{Address: d.Shipping.Address, City: d.Shipping.City, Zip: d.Shipping.Zip},
		Lines:          lines,
		TotalPrice:     d.TotalPrice,
		IdempotencyKey: d.IdempotencyKey,
	})
	if err != nil {
		return orderdomain.Order{}, err
	}
	return FromProto(resp.Order), nil
}

func FromProto(o *orderv1.Order) orderdomain.Order {
	if o == nil {
		return orderdomain.Order{}
	}
	lines := make([]orderdomain.Line, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderdomain.Line{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}
	return orderdomain.Order{
		ID:         o.ID,
		Contact:    orderdomain.Contact{Name: o.Contact.Name, Email: o.Contact.Email, Phone: o.Contact.Phone},
		Shipping:   orderdomain.Shipping{Address: o.Shipping.Address, City: o.Shipping.City, Zip: o.Shipping.Zip},
		Lines:      lines,
		TotalPrice: o.TotalPrice,
		Status:     orderdomain.Status(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
