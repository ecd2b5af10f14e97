package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
)

func TestDeliveryEvent_EncodeDecode(t *testing.T) {
	encoder, err := NewEncoder(DeliveryEventSchema)
	require.NoError(t, err)

	ev := app.Event{
		Type:         app.EventDeliveryReceived,
		DeliveryID:   "d-1",
		Platform:     "zomato",
		Status:       "pending",
		CustomerName: "Jane Doe",
		OrderTime:    "12:30:45",
	}

	binary, err := encoder.EncodeNative(ToDeliveryEventNative(ev))
	require.NoError(t, err)
	require.NotEmpty(t, binary)

	native, err := encoder.DecodeNative(binary)
	require.NoError(t, err)

	assert.Equal(t, ev, FromDeliveryEventNative(native))
}

func TestDeliveryEvent_OptionalFieldsNull(t *testing.T) {
	encoder, err := NewEncoder(DeliveryEventSchema)
	require.NoError(t, err)

	ev := app.Event{
		Type:       app.EventDeliveryUpdated,
		DeliveryID: "d-2",
		Status:     "accepted",
	}

	binary, err := encoder.EncodeNative(ToDeliveryEventNative(ev))
	require.NoError(t, err)

	native, err := encoder.DecodeNative(binary)
	require.NoError(t, err)

	decoded := FromDeliveryEventNative(native)
	assert.Equal(t, "accepted", decoded.Status)
	assert.Empty(t, decoded.Platform)
	assert.Empty(t, decoded.OrderTime)
}

func TestFromDeliveryEventNative_UnexpectedShape(t *testing.T) {
	assert.Equal(t, app.Event{}, FromDeliveryEventNative("bogus"))
	assert.Equal(t, app.Event{}, FromDeliveryEventNative(nil))
}
