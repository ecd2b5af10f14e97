package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
)

func validCanonical() domain.CanonicalDeliveryOrder {
	return domain.CanonicalDeliveryOrder{
		OrderID: "A123",
		Customer: domain.Customer{
			Name:  "Jane Doe",
			Phone: "555-0101",
		},
		Address: "221B Baker St",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.CanonicalDeliveryOrder)
		wantValid  bool
		wantReason string
	}{
		{
			name:      "complete payload",
			mutate:    func(*domain.CanonicalDeliveryOrder) {},
			wantValid: true,
		},
		{
			name:       "missing order id",
			mutate:     func(c *domain.CanonicalDeliveryOrder) { c.OrderID = "" },
			wantValid:  false,
			wantReason: "Missing order ID",
		},
		{
			name:       "whitespace order id",
			mutate:     func(c *domain.CanonicalDeliveryOrder) { c.OrderID = "   " },
			wantValid:  false,
			wantReason: "Missing order ID",
		},
		{
			name:       "missing customer name",
			mutate:     func(c *domain.CanonicalDeliveryOrder) { c.Customer.Name = "" },
			wantValid:  false,
			wantReason: "Missing customer name",
		},
		{
			name:       "missing customer phone",
			mutate:     func(c *domain.CanonicalDeliveryOrder) { c.Customer.Phone = "\t" },
			wantValid:  false,
			wantReason: "Missing customer phone",
		},
		{
			name:       "missing delivery address",
			mutate:     func(c *domain.CanonicalDeliveryOrder) { c.Address = "" },
			wantValid:  false,
			wantReason: "Missing delivery address",
		},
		{
			name: "order id reported before other missing fields",
			mutate: func(c *domain.CanonicalDeliveryOrder) {
				c.OrderID = ""
				c.Customer.Name = ""
				c.Address = ""
			},
			wantValid:  false,
			wantReason: "Missing order ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCanonical()
			tt.mutate(&c)

			valid, reason := Validate(c)

			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
