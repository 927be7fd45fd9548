package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockReceipts() *ReceiptService {
	svc := NewReceiptService()
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestBuildReceipt_NilResponse(t *testing.T) {
	svc := fixedClockReceipts()

	receipt := svc.BuildReceipt(nil)

	assert.Equal(t, "", receipt.ReceiptNumber)
	assert.Empty(t, receipt.Items)
	assert.Equal(t, "2026-08-30T12:00:00Z", receipt.CreatedAt)
}

func TestBuildReceipt_RawFieldsWinOverCamelCase(t *testing.T) {
	svc := fixedClockReceipts()
	resp := &entity.SaleResponse{
		ReceiptNumber: "R-CAMEL",
		CustomerName:  "Camel Customer",
		TableName:     "5",
		Raw: &entity.RawSale{
			ReceiptNumber:  "R-RAW",
			CustomerDetail: &entity.CustomerDetail{Name: "Raw Customer", Phone: "0700"},
			TableDetail:    &entity.TableDetail{Number: "7"},
		},
	}

	receipt := svc.BuildReceipt(resp)

	assert.Equal(t, "R-RAW", receipt.ReceiptNumber)
	assert.Equal(t, "Raw Customer", receipt.CustomerName)
	assert.Equal(t, "0700", receipt.CustomerPhone)
	assert.Equal(t, "7", receipt.TableName)
}

func TestBuildReceipt_FallsBackToCamelCaseThenID(t *testing.T) {
	svc := fixedClockReceipts()

	receipt := svc.BuildReceipt(&entity.SaleResponse{ReceiptNumber: "R-1"})
	assert.Equal(t, "R-1", receipt.ReceiptNumber)

	receipt = svc.BuildReceipt(&entity.SaleResponse{ID: "sale-99"})
	assert.Equal(t, "sale-99", receipt.ReceiptNumber)
}

func TestBuildReceipt_ItemNameFallbackChain(t *testing.T) {
	svc := fixedClockReceipts()
	resp := &entity.SaleResponse{
		Items: []entity.SaleResponseItem{
			{ProductName: "Camel Name", RawName: "raw name", Name: "bare"},
			{RawName: "raw name", Name: "bare"},
			{Name: "bare"},
			{},
		},
	}

	receipt := svc.BuildReceipt(resp)

	require.Len(t, receipt.Items, 4)
	assert.Equal(t, "Camel Name", receipt.Items[0].Name)
	assert.Equal(t, "raw name", receipt.Items[1].Name)
	assert.Equal(t, "bare", receipt.Items[2].Name)
	assert.Equal(t, "Item", receipt.Items[3].Name)
}

func TestBuildReceipt_ItemIDFallbackChain(t *testing.T) {
	svc := fixedClockReceipts()
	resp := &entity.SaleResponse{
		Items: []entity.SaleResponseItem{
			{ID: "line-1", ProductID: "p-1"},
			{ProductID: "p-2"},
			{},
		},
	}

	receipt := svc.BuildReceipt(resp)

	require.Len(t, receipt.Items, 3)
	assert.Equal(t, "line-1", receipt.Items[0].ID)
	assert.Equal(t, "p-2-1", receipt.Items[1].ID)
	assert.Equal(t, "item-2", receipt.Items[2].ID)
}

func TestBuildReceipt_NumericIDsDecodeAsStrings(t *testing.T) {
	svc := fixedClockReceipts()

	var resp entity.SaleResponse
	raw := `{"id": 1234, "items": [{"productId": 7, "productName": "Soda", "price": 2.5, "quantity": 2, "total": 5}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	receipt := svc.BuildReceipt(&resp)

	assert.Equal(t, "1234", receipt.ReceiptNumber)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "7-0", receipt.Items[0].ID)
}

func TestNormalizeForPrint_RoundTrip(t *testing.T) {
	svc := fixedClockReceipts()
	original := entity.Receipt{
		ReceiptNumber: "R-42",
		Items: []entity.ReceiptItem{
			{ID: "p-1-0", Name: "Coffee", Price: 3.50, Quantity: 2, Total: 7.00},
			{ID: "item-1", Name: "Cake", Price: 4.00, Quantity: 1, Total: 4.00},
		},
		Subtotal:      11.00,
		Tax:           0,
		Discount:      1.00,
		Total:         10.00,
		CustomerName:  "Ada",
		CustomerPhone: "0711",
		TableName:     "3",
		CreatedAt:     "2026-08-30T11:00:00Z",
	}

	// Normalizing and rebuilding must reproduce the same receipt.
	rebuilt := svc.BuildReceipt(svc.NormalizeForPrint(original, "outlet-1"))

	assert.Equal(t, original, rebuilt)
}

func TestNormalizeForPrint_Shape(t *testing.T) {
	svc := fixedClockReceipts()
	receipt := entity.Receipt{
		ReceiptNumber: "R-7",
		CustomerName:  "Ada",
		TableName:     "2",
	}

	out := svc.NormalizeForPrint(receipt, "outlet-9")

	require.NotNil(t, out.Raw)
	assert.Equal(t, "R-7", out.Raw.ReceiptNumber)
	assert.Equal(t, "Ada", out.Raw.CustomerDetail.Name)
	assert.Equal(t, "2", out.Raw.TableDetail.Number)
	assert.Equal(t, "outlet-9", out.Outlet.String())
}

func TestFlexString_ToleratesMalformedInput(t *testing.T) {
	var s entity.FlexString
	require.NoError(t, json.Unmarshal([]byte(`{"nested": true}`), &s))
	assert.Equal(t, "", s.String())

	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &s))
	assert.Equal(t, "abc", s.String())

	require.NoError(t, json.Unmarshal([]byte(`42.5`), &s))
	assert.Equal(t, "42.5", s.String())
}
