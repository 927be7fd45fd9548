package service

import (
	"encoding/json"
	"testing"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RequiredKeysAlwaysPresent(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{
		Cart:     []entity.CartItem{{ProductID: "p1", Price: 10, Quantity: 1}},
		Outlet:   "outlet-1",
		Shift:    "shift-1",
		Subtotal: 10,
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"outlet", "shift", "items_data", "subtotal", "tax", "discount", "total", "payment_method"} {
		assert.Contains(t, decoded, key)
	}
}

func TestBuild_OptionalKeysOmittedNeverNull(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{
		Cart:     []entity.CartItem{{ProductID: "p1", Price: 10, Quantity: 1}},
		Outlet:   "outlet-1",
		Shift:    "shift-1",
		Subtotal: 10,
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"cashier", "customer", "table_id", "guests", "notes", "discount_type", "discount_reason"} {
		_, present := decoded[key]
		assert.False(t, present, "key %q should be absent", key)
	}
}

func TestBuild_CashierKey(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{
		Outlet:  "outlet-1",
		Shift:   "shift-1",
		Cashier: "ada",
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "ada", decoded["cashier"])
}

func TestBuild_Defaults(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{})

	assert.Equal(t, enum.PaymentMethodCash, payload.PaymentMethod)
	assert.Equal(t, enum.PriorityNormal, payload.Priority)
	assert.NotNil(t, payload.ItemsData)
	assert.Empty(t, payload.ItemsData)
}

func TestBuild_TotalFormula(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{
		Cart:     []entity.CartItem{{ProductID: "p1", Price: 40.50, Quantity: 1}},
		Subtotal: 40.50,
		Discount: 4.05,
	})

	assert.Equal(t, 40.50, payload.Subtotal)
	assert.Equal(t, 4.05, payload.Discount)
	assert.Equal(t, 36.45, payload.Total)
}

func TestBuild_ItemNotes(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{
		Cart: []entity.CartItem{
			{ProductID: "p1", Price: 5, Quantity: 1, Modifiers: []string{"no ice", "extra shot"}, Notes: "ignored"},
			{ProductID: "p2", Price: 5, Quantity: 1, Notes: "well done"},
			{ProductID: "p3", Price: 5, Quantity: 1},
		},
	})

	require.Len(t, payload.ItemsData, 3)
	assert.Equal(t, "no ice, extra shot", payload.ItemsData[0].Notes)
	assert.Equal(t, "well done", payload.ItemsData[1].Notes)
	assert.Equal(t, "", payload.ItemsData[2].Notes)
}

func TestBuild_AdditionalMergedIntoPayload(t *testing.T) {
	builder := NewSaleBuilder(nil)

	payload := builder.Build(BuildSaleInput{
		Outlet:     "outlet-1",
		Shift:      "shift-1",
		Additional: map[string]interface{}{"order_type": "takeaway", "guests": 4},
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "takeaway", decoded["order_type"])
	// Additional wins over typed fields.
	assert.Equal(t, float64(4), decoded["guests"])
}

func TestExtractID(t *testing.T) {
	guests := entity.Customer{ID: "c-9", Name: "Ada"}

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"bare string", "abc-123", "abc-123"},
		{"number", 42, "42"},
		{"outlet struct", entity.Outlet{ID: "o-1"}, "o-1"},
		{"outlet pointer", &entity.Outlet{ID: "o-2"}, "o-2"},
		{"nil outlet pointer", (*entity.Outlet)(nil), ""},
		{"shift struct", entity.Shift{ID: "s-1"}, "s-1"},
		{"customer struct", guests, "c-9"},
		{"table pointer", &entity.Table{ID: "t-3"}, "t-3"},
		{"id map", map[string]interface{}{"id": "m-7"}, "m-7"},
		{"numeric id map", map[string]interface{}{"id": 12}, "12"},
		{"map without id", map[string]interface{}{"name": "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractID(tt.in))
		})
	}
}
