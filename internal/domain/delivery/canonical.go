package delivery

// Customer holds the customer fields every platform payload is reduced to.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Fees holds the charge breakdown reported by the platform.
type Fees struct {
	DeliveryFee float64 `json:"delivery_fee"`
	PlatformFee float64 `json:"platform_fee"`
	Total       float64 `json:"total"`
}

// CanonicalItem is a single line item in the platform-agnostic shape
// persisted as the delivery order's items payload.
type CanonicalItem struct {
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
	Notes      string   `json:"notes"`
	Variations []string `json:"variations"`
}

// CanonicalDeliveryOrder is the platform-agnostic representation produced by
// the normalizer. RawItems keeps the platform's item structures untouched;
// the item extractor maps them to CanonicalItem separately.
type CanonicalDeliveryOrder struct {
	OrderID  string
	Customer Customer
	Address  string
	RawItems []interface{}
	Fees     Fees
}

// Empty reports whether normalization produced nothing usable
// (unknown platform or a payload with no recognizable fields).
func (c CanonicalDeliveryOrder) Empty() bool {
	return c.OrderID == "" && c.Customer.Name == "" && c.Customer.Phone == "" &&
		c.Address == "" && len(c.RawItems) == 0
}
