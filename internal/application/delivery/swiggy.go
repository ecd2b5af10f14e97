package delivery

import (
	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
)

// swiggyNormalizer maps Swiggy's payload shape: customer under
// "customer_details", address nested in "delivery_address", fees under
// "charges".
type swiggyNormalizer struct{}

func (swiggyNormalizer) Normalize(payload map[string]interface{}) domain.CanonicalDeliveryOrder {
	customer := getMap(payload, "customer_details")
	address := getMap(payload, "delivery_address")
	charges := getMap(payload, "charges")
	return domain.CanonicalDeliveryOrder{
		OrderID: getString(payload, "order_id"),
		Customer: domain.Customer{
			Name:  getString(customer, "name"),
			Phone: getString(customer, "phone"),
		},
		Address:  getString(address, "address"),
		RawItems: getList(payload, "order_items"),
		Fees: domain.Fees{
			DeliveryFee: getFloat(charges, "delivery_fee"),
			PlatformFee: getFloat(charges, "platform_fee"),
			Total:       getFloat(payload, "order_total"),
		},
	}
}

func (swiggyNormalizer) ExtractItems(rawItems []interface{}) []domain.CanonicalItem {
	items := make([]domain.CanonicalItem, 0, len(rawItems))
	for _, raw := range rawItems {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		// Swiggy reports addons for some categories and variations for
		// others; addons win when both are present.
		variations := addonNames(getList(m, "addons"))
		if len(variations) == 0 {
			variations = addonNames(getList(m, "variations"))
		}
		items = append(items, domain.CanonicalItem{
			Name:       getString(m, "item_name"),
			Quantity:   getInt(m, "quantity", 1),
			Price:      getFloat(m, "item_price"),
			Notes:      getString(m, "special_instructions"),
			Variations: variations,
		})
	}
	return items
}
