package delivery

import (
	"strings"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
)

// ValidationError carries the caller-visible reason a payload was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate checks the canonical payload for the required fields, in a fixed
// order, and fails fast on the first missing one. Whitespace-only values
// count as missing.
func Validate(c domain.CanonicalDeliveryOrder) (bool, string) {
	if strings.TrimSpace(c.OrderID) == "" {
		return false, "Missing order ID"
	}
	if strings.TrimSpace(c.Customer.Name) == "" {
		return false, "Missing customer name"
	}
	if strings.TrimSpace(c.Customer.Phone) == "" {
		return false, "Missing customer phone"
	}
	if strings.TrimSpace(c.Address) == "" {
		return false, "Missing delivery address"
	}
	return true, ""
}
