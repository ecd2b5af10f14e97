package delivery

import (
	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
)

// zomatoNormalizer maps Zomato's payload shape: customer under "customer",
// address as a flat string, fees at the top level.
type zomatoNormalizer struct{}

func (zomatoNormalizer) Normalize(payload map[string]interface{}) domain.CanonicalDeliveryOrder {
	customer := getMap(payload, "customer")
	return domain.CanonicalDeliveryOrder{
		OrderID: getString(payload, "order_id"),
		Customer: domain.Customer{
			Name:  getString(customer, "name"),
			Phone: getString(customer, "phone"),
		},
		Address:  getString(payload, "delivery_address"),
		RawItems: getList(payload, "items"),
		Fees: domain.Fees{
			DeliveryFee: getFloat(payload, "delivery_fee"),
			PlatformFee: getFloat(payload, "platform_fee"),
			Total:       getFloat(payload, "total_amount"),
		},
	}
}

func (zomatoNormalizer) ExtractItems(rawItems []interface{}) []domain.CanonicalItem {
	items := make([]domain.CanonicalItem, 0, len(rawItems))
	for _, raw := range rawItems {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, domain.CanonicalItem{
			Name:       getString(m, "name"),
			Quantity:   getInt(m, "quantity", 1),
			Price:      getFloat(m, "price"),
			Notes:      getString(m, "special_instructions"),
			Variations: addonNames(getList(m, "addons")),
		})
	}
	return items
}
