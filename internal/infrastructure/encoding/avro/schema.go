package avro

// DeliveryEventSchema is the Avro schema for delivery order notifications.
// event_type and delivery_id are always present; the remaining fields use
// ["null", "string"] unions so consumers tolerate partially filled events.
const DeliveryEventSchema = `{
	"type": "record",
	"name": "DeliveryEvent",
	"namespace": "com.restaurantpos.delivery",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "delivery_id", "type": "string"},
		{"name": "platform", "type": ["null", "string"], "default": null},
		{"name": "status", "type": ["null", "string"], "default": null},
		{"name": "customer_name", "type": ["null", "string"], "default": null},
		{"name": "order_time", "type": ["null", "string"], "default": null}
	]
}`
