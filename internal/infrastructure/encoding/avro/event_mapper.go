package avro

import (
	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
)

// ToDeliveryEventNative converts an event to the goavro native form.
// goavro requires union values wrapped as map[string]interface{}{"type": value}.
func ToDeliveryEventNative(ev app.Event) map[string]interface{} {
	optional := func(v string) interface{} {
		if v == "" {
			return nil
		}
		return map[string]interface{}{"string": v}
	}

	return map[string]interface{}{
		"event_type":    ev.Type,
		"delivery_id":   ev.DeliveryID,
		"platform":      optional(ev.Platform),
		"status":        optional(ev.Status),
		"customer_name": optional(ev.CustomerName),
		"order_time":    optional(ev.OrderTime),
	}
}

// FromDeliveryEventNative maps a decoded native value back to an event.
// Unexpected shapes degrade to zero fields rather than failing: the consumer
// keeps draining the topic even when a producer misbehaves.
func FromDeliveryEventNative(native interface{}) app.Event {
	record, ok := native.(map[string]interface{})
	if !ok {
		return app.Event{}
	}

	plain := func(key string) string {
		if v, ok := record[key].(string); ok {
			return v
		}
		return ""
	}
	unwrapped := func(key string) string {
		union, ok := record[key].(map[string]interface{})
		if !ok {
			return ""
		}
		if v, ok := union["string"].(string); ok {
			return v
		}
		return ""
	}

	return app.Event{
		Type:         plain("event_type"),
		DeliveryID:   plain("delivery_id"),
		Platform:     unwrapped("platform"),
		Status:       unwrapped("status"),
		CustomerName: unwrapped("customer_name"),
		OrderTime:    unwrapped("order_time"),
	}
}
