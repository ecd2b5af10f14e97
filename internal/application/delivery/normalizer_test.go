package delivery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// decode runs payloads through encoding/json so tests exercise the same
// float64-typed maps the webhook handler produces.
func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalizerRegistry_Normalize_Zomato(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())
	payload := decode(t, `{
		"order_id": "A123",
		"customer": {"name": "Jane Doe", "phone": "555-0101"},
		"delivery_address": "221B Baker St",
		"items": [{"name": "Spring Rolls", "quantity": 2, "price": 9.99}],
		"delivery_fee": 30,
		"platform_fee": 12.5,
		"total_amount": 62.48
	}`)

	c := registry.Normalize(domain.PlatformZomato, payload)

	assert.Equal(t, "A123", c.OrderID)
	assert.Equal(t, "Jane Doe", c.Customer.Name)
	assert.Equal(t, "555-0101", c.Customer.Phone)
	assert.Equal(t, "221B Baker St", c.Address)
	assert.Len(t, c.RawItems, 1)
	assert.Equal(t, 30.0, c.Fees.DeliveryFee)
	assert.Equal(t, 12.5, c.Fees.PlatformFee)
	assert.Equal(t, 62.48, c.Fees.Total)
}

func TestNormalizerRegistry_Normalize_Swiggy(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())
	payload := decode(t, `{
		"order_id": "SW-77",
		"customer_details": {"name": "Ravi Kumar", "phone": "555-0202"},
		"delivery_address": {"address": "12 MG Road"},
		"order_items": [{"item_name": "Masala Dosa", "quantity": 1, "item_price": 120}],
		"charges": {"delivery_fee": 25, "platform_fee": 8},
		"order_total": 153
	}`)

	c := registry.Normalize(domain.PlatformSwiggy, payload)

	assert.Equal(t, "SW-77", c.OrderID)
	assert.Equal(t, "Ravi Kumar", c.Customer.Name)
	assert.Equal(t, "555-0202", c.Customer.Phone)
	assert.Equal(t, "12 MG Road", c.Address)
	assert.Len(t, c.RawItems, 1)
	assert.Equal(t, 25.0, c.Fees.DeliveryFee)
	assert.Equal(t, 8.0, c.Fees.PlatformFee)
	assert.Equal(t, 153.0, c.Fees.Total)
}

func TestNormalizerRegistry_Normalize_UnknownPlatform(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())

	c := registry.Normalize(domain.Platform("ubereats"), decode(t, `{"order_id": "X1"}`))

	assert.True(t, c.Empty())
}

func TestNormalizerRegistry_Normalize_MalformedSections(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())
	// customer is a string, items is an object: wrong types must degrade to
	// zero values, not panic.
	payload := decode(t, `{
		"order_id": "A124",
		"customer": "not-an-object",
		"delivery_address": "somewhere",
		"items": {"name": "oops"}
	}`)

	c := registry.Normalize(domain.PlatformZomato, payload)

	assert.Equal(t, "A124", c.OrderID)
	assert.Empty(t, c.Customer.Name)
	assert.Empty(t, c.RawItems)
}

func TestNormalizerRegistry_ExtractItems_Zomato(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())
	payload := decode(t, `{
		"items": [
			{"name": "Paneer Tikka", "quantity": 2, "price": 250, "special_instructions": "extra spicy", "addons": [{"name": "Mint Chutney"}]},
			{"name": "Naan"}
		]
	}`)

	items := registry.ExtractItems(domain.PlatformZomato, payload["items"].([]interface{}))

	require.Len(t, items, 2)
	assert.Equal(t, "Paneer Tikka", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 250.0, items[0].Price)
	assert.Equal(t, "extra spicy", items[0].Notes)
	assert.Equal(t, []string{"Mint Chutney"}, items[0].Variations)

	// quantity defaults to 1 when absent
	assert.Equal(t, "Naan", items[1].Name)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Zero(t, items[1].Price)
}

func TestNormalizerRegistry_ExtractItems_SwiggyVariationsFallback(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())
	payload := decode(t, `{
		"order_items": [
			{"item_name": "Thali", "quantity": 1, "item_price": 180, "variations": [{"name": "Large"}]},
			{"item_name": "Lassi", "quantity": 2, "item_price": 60, "addons": [{"name": "Sweet"}], "variations": [{"name": "Small"}]}
		]
	}`)

	items := registry.ExtractItems(domain.PlatformSwiggy, payload["order_items"].([]interface{}))

	require.Len(t, items, 2)
	assert.Equal(t, []string{"Large"}, items[0].Variations)
	// addons win over variations when both are present
	assert.Equal(t, []string{"Sweet"}, items[1].Variations)
}

func TestNormalizerRegistry_ExtractItems_Empty(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())

	assert.Nil(t, registry.ExtractItems(domain.PlatformZomato, nil))
	assert.Nil(t, registry.ExtractItems(domain.Platform("ubereats"), []interface{}{map[string]interface{}{"name": "x"}}))
}

func TestNormalizerRegistry_ExtractItems_SkipsNonObjectEntries(t *testing.T) {
	registry := NewNormalizerRegistry(logger.NewNop())
	raw := []interface{}{"bogus", map[string]interface{}{"name": "Samosa"}}

	items := registry.ExtractItems(domain.PlatformZomato, raw)

	require.Len(t, items, 1)
	assert.Equal(t, "Samosa", items[0].Name)
}
