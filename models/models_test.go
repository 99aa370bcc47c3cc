package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_MenuItem(t *testing.T) {
	require.NoError(t, Validate(&MenuItem{Title: strPtr("Idli"), Price: floatPtr(20)}))
	require.NoError(t, Validate(&MenuItem{Title: strPtr("Water"), Price: floatPtr(0)}))

	err := Validate(&MenuItem{Title: strPtr("Dosa"), Price: floatPtr(-1)})
	assert.Equal(t, []string{"price"}, fieldNames(t, err))

	err = Validate(&MenuItem{})
	assert.ElementsMatch(t, []string{"title", "price"}, fieldNames(t, err))
}

func TestValidate_OrderEnumsAndItems(t *testing.T) {
	order := Order{
		UserEmail: strPtr("a@campus.edu"),
		Items:     []LineItem{{Qty: intPtr(2), UnitPrice: floatPtr(10)}},
		Subtotal:  floatPtr(20),
	}
	require.NoError(t, Validate(&order))

	order.Status = strPtr("shipped")
	err := Validate(&order)
	assert.Equal(t, []string{"status"}, fieldNames(t, err))

	order.Status = strPtr(OrderPaid)
	order.Items[0].Qty = intPtr(-1)
	err = Validate(&order)
	assert.Equal(t, []string{"items[0].qty"}, fieldNames(t, err))
}

func TestValidate_OrderRequiresItems(t *testing.T) {
	err := Validate(&Order{UserEmail: strPtr("a@campus.edu"), Subtotal: floatPtr(0)})
	assert.Equal(t, []string{"items"}, fieldNames(t, err))

	require.NoError(t, Validate(&Order{UserEmail: strPtr("a@campus.edu"), Items: []LineItem{}, Subtotal: floatPtr(0)}))
}

func TestValidate_Payment(t *testing.T) {
	p := Payment{OrderID: strPtr("x"), Amount: floatPtr(20), Currency: strPtr("EUR"), Provider: strPtr("paypal")}
	err := Validate(&p)
	assert.ElementsMatch(t, []string{"currency", "provider"}, fieldNames(t, err))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "oneof", verr.Fields[0].Rule)
	assert.Contains(t, verr.Error(), "must be one of")
}

func TestValidate_EmptyStrings(t *testing.T) {
	require.NoError(t, Validate(&MenuItem{Title: strPtr(""), Price: floatPtr(1)}))
	require.NoError(t, Validate(&Payment{OrderID: strPtr(""), Amount: floatPtr(1)}))

	err := Validate(&Order{UserEmail: strPtr("a@campus.edu"), Items: []LineItem{}, Subtotal: floatPtr(0), Status: strPtr("")})
	assert.Equal(t, []string{"status"}, fieldNames(t, err))

	err = Validate(&Payment{OrderID: strPtr("x"), Amount: floatPtr(1), Currency: strPtr("")})
	assert.Equal(t, []string{"currency"}, fieldNames(t, err))
}

func TestValidate_User(t *testing.T) {
	require.NoError(t, Validate(&User{Name: strPtr("Asha"), Email: strPtr("asha@campus.edu"), Role: strPtr("admin")}))

	err := Validate(&User{Name: strPtr("Asha"), Email: strPtr("asha@campus.edu"), Role: strPtr("chef")})
	assert.Equal(t, []string{"role"}, fieldNames(t, err))
}

func TestApplyDefaults(t *testing.T) {
	order := Order{
		UserEmail: strPtr("a@campus.edu"),
		Items:     []LineItem{{Title: "Tea"}, {Qty: intPtr(3), UnitPrice: floatPtr(5)}},
		Subtotal:  floatPtr(15),
	}
	require.NoError(t, ApplyDefaults(&order))

	require.NotNil(t, order.Status)
	assert.Equal(t, OrderPending, *order.Status)
	require.NotNil(t, order.Items[0].Qty)
	require.NotNil(t, order.Items[0].UnitPrice)
	assert.Equal(t, 1, *order.Items[0].Qty)
	assert.Equal(t, 0.0, *order.Items[0].UnitPrice)
	assert.Equal(t, 3, *order.Items[1].Qty)
	assert.Nil(t, order.Items[0].LineTotal)

	payment := Payment{OrderID: strPtr("x"), Amount: floatPtr(1), Status: strPtr(PaymentSucceeded)}
	require.NoError(t, ApplyDefaults(&payment))
	assert.Equal(t, "INR", *payment.Currency)
	assert.Equal(t, "stripe", *payment.Provider)
	assert.Equal(t, PaymentSucceeded, *payment.Status)
	assert.Nil(t, payment.PaidAt)

	item := MenuItem{Title: strPtr("Idli"), Price: floatPtr(20)}
	require.NoError(t, ApplyDefaults(&item))
	require.NotNil(t, item.IsAvailable)
	assert.True(t, *item.IsAvailable)

	unavailable := false
	item = MenuItem{Title: strPtr("Vada"), Price: floatPtr(15), IsAvailable: &unavailable}
	require.NoError(t, ApplyDefaults(&item))
	assert.False(t, *item.IsAvailable)
}

func TestApplyDefaults_RejectsNonPointer(t *testing.T) {
	assert.Error(t, ApplyDefaults(MenuItem{}))
}

func TestLineItemCost(t *testing.T) {
	assert.Equal(t, 0.0, LineItem{}.Cost())
	assert.Equal(t, 7.5, LineItem{UnitPrice: floatPtr(7.5)}.Cost())
	assert.Equal(t, 20.0, LineItem{Qty: intPtr(2), UnitPrice: floatPtr(10)}.Cost())
}

func TestSchemas(t *testing.T) {
	schemas := Schemas()
	require.Len(t, schemas, 4)
	for _, name := range []string{"user", "menuitem", "order", "payment"} {
		require.Contains(t, schemas, name)
		assert.Equal(t, "object", schemas[name]["type"])
	}

	menu := schemas["menuitem"]
	assert.Equal(t, "MenuItem", menu["title"])
	assert.ElementsMatch(t, []string{"title", "price"}, menu["required"])
	props := menu["properties"].(JSONSchema)
	price := props["price"].(JSONSchema)
	assert.Equal(t, "number", price["type"])
	assert.Equal(t, 0.0, price["minimum"])
	assert.Equal(t, true, props["is_available"].(JSONSchema)["default"])

	payment := schemas["payment"]["properties"].(JSONSchema)
	assert.Equal(t, []string{"INR", "USD"}, payment["currency"].(JSONSchema)["enum"])
	assert.Equal(t, "date-time", payment["paid_at"].(JSONSchema)["format"])

	items := schemas["order"]["properties"].(JSONSchema)["items"].(JSONSchema)
	assert.Equal(t, "array", items["type"])
	lineItem := items["items"].(JSONSchema)
	qty := lineItem["properties"].(JSONSchema)["qty"].(JSONSchema)
	assert.Equal(t, "integer", qty["type"])
	assert.Equal(t, 1, qty["default"])
}

func TestSchemas_Nullable(t *testing.T) {
	props := Schemas()["menuitem"]["properties"].(JSONSchema)
	assert.Equal(t, true, props["description"].(JSONSchema)["nullable"])
	assert.NotContains(t, props["title"].(JSONSchema), "nullable")
	assert.NotContains(t, props["price"].(JSONSchema), "nullable")
	assert.NotContains(t, props["is_available"].(JSONSchema), "nullable")
}

func TestRejectNulls(t *testing.T) {
	require.NoError(t, RejectNulls([]byte(`{"title":"Idli","price":20,"description":null}`), &MenuItem{}))

	err := RejectNulls([]byte(`{"title":"Idli","price":20,"is_available":null}`), &MenuItem{})
	assert.Equal(t, []string{"is_available"}, fieldNames(t, err))

	err = RejectNulls([]byte(`{"user_email":"a","subtotal":0,"status":null,"items":[{"qty":1},{"unit_price":null}]}`), &Order{})
	assert.ElementsMatch(t, []string{"status", "items[1].unit_price"}, fieldNames(t, err))

	require.NoError(t, RejectNulls([]byte(`{"order_id":"x","amount":1,"paid_at":null}`), &Payment{}))
	require.NoError(t, RejectNulls([]byte(`not json`), &Payment{}))
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2026-01-01T10:00:00Z",
		"2026-01-01T10:00:00",
		"2026-01-01T15:30:00+05:30",
		"2026-01-01 10:00:00",
		"2026-01-01T10:00:00.000000",
	} {
		got, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
		assert.Equal(t, time.UTC, got.Location(), in)
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestPaymentUnmarshalJSON(t *testing.T) {
	var p Payment
	require.NoError(t, json.Unmarshal([]byte(`{"order_id":"x","amount":5,"status":"succeeded","paid_at":"2026-01-01T10:00:00"}`), &p))
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), *p.PaidAt)
	assert.Equal(t, "x", p.Order())
	assert.True(t, p.Succeeded())

	p = Payment{}
	require.NoError(t, json.Unmarshal([]byte(`{"order_id":"x","amount":5}`), &p))
	assert.Nil(t, p.PaidAt)
	assert.Nil(t, p.Status)

	err := json.Unmarshal([]byte(`{"order_id":"x","amount":5,"paid_at":"soon"}`), &Payment{})
	assert.Equal(t, []string{"paid_at"}, fieldNames(t, err))
}
