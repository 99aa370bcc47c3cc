package models

const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderCancelled = "cancelled"
)

type Order struct {
	UserEmail *string    `json:"user_email" bson:"user_email" validate:"required" description:"Email of the student placing the order"`
	Items     []LineItem `json:"items" bson:"items" validate:"required,dive" description:"Ordered items with qty and price"`
	Subtotal  *float64   `json:"subtotal" bson:"subtotal" validate:"required,gte=0"`
	Status    *string    `json:"status" bson:"status" validate:"omitempty,oneof=pending paid cancelled" default:"pending"`
}

// LineItem is one row of an order. Qty and UnitPrice are filled from
// their defaults when the client leaves them out.
type LineItem struct {
	MenuItemID string   `json:"menuitem_id" bson:"menuitem_id,omitempty"`
	Title      string   `json:"title" bson:"title,omitempty"`
	Qty        *int     `json:"qty" bson:"qty" validate:"omitempty,gte=0" default:"1"`
	UnitPrice  *float64 `json:"unit_price" bson:"unit_price" validate:"omitempty,gte=0" default:"0"`
	LineTotal  *float64 `json:"line_total" bson:"line_total,omitempty"`
}

// Cost is qty × unit_price with the defaults applied.
func (li LineItem) Cost() float64 {
	qty, price := 1, 0.0
	if li.Qty != nil {
		qty = *li.Qty
	}
	if li.UnitPrice != nil {
		price = *li.UnitPrice
	}
	return float64(qty) * price
}
