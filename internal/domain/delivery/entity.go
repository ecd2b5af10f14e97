package delivery

import (
	"encoding/json"
	"time"
)

// DeliveryOrder is the persisted record of an order pushed in by a delivery
// platform. It is the source of truth for the webhook-origin data and is
// never deleted; once accepted it carries a link to the materialized
// internal order in OrderID.
type DeliveryOrder struct {
	ID              string
	Platform        Platform
	PlatformOrderID string
	OrderID         string // internal order id, empty until accepted
	Status          Status
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DeliveryFee     float64
	PlatformFee     float64
	ItemsData       []byte // canonical item list, JSON-encoded
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDeliveryOrder builds a pending delivery order from a validated canonical
// payload and its extracted items.
func NewDeliveryOrder(id string, platform Platform, c CanonicalDeliveryOrder, items []CanonicalItem) (*DeliveryOrder, error) {
	var itemsData []byte
	if len(items) > 0 {
		data, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		itemsData = data
	}

	now := time.Now().UTC()
	return &DeliveryOrder{
		ID:              id,
		Platform:        platform,
		PlatformOrderID: c.OrderID,
		Status:          StatusPending,
		CustomerName:    c.Customer.Name,
		CustomerPhone:   c.Customer.Phone,
		CustomerAddress: c.Address,
		DeliveryFee:     c.Fees.DeliveryFee,
		PlatformFee:     c.Fees.PlatformFee,
		ItemsData:       itemsData,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Items decodes the stored canonical item list. An empty ItemsData yields an
// empty slice, not an error.
func (d *DeliveryOrder) Items() ([]CanonicalItem, error) {
	if len(d.ItemsData) == 0 {
		return nil, nil
	}
	var items []CanonicalItem
	if err := json.Unmarshal(d.ItemsData, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Materialized reports whether an internal order has already been created
// for this delivery order.
func (d *DeliveryOrder) Materialized() bool {
	return d.OrderID != ""
}
