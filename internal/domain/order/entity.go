package order

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Type tags the origin of an internal order.
type Type string

const (
	TypeDineIn Type = "dine_in"
	TypeZomato Type = "zomato"
	TypeSwiggy Type = "swiggy"
)

// OrderItem is one line in an internal order. Price is captured at order
// time so later menu edits never change a bill.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   int
	Price      float64
	Notes      string
	CreatedAt  time.Time
}

// Subtotal is price × quantity for this line.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is the internal order shared by the dine-in and delivery flows.
// Delivery-origin orders have no table and carry the customer fields instead.
type Order struct {
	ID              string
	Type            Type
	Status          Status
	DeliveryID      string // platform order id for delivery-origin orders
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []OrderItem
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// TotalAmount is always derived from the items, never stored.
func (o *Order) TotalAmount() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}
