package service

import (
	"fmt"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
)

// ReceiptService translates between backend sale-response shapes and the
// canonical receipt model, in both directions. Both directions are pure and
// total: missing backend fields become defaults, never errors, because a
// receipt must render even when the backend response is inconsistent.
type ReceiptService struct {
	now func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService() *ReceiptService {
	return &ReceiptService{now: time.Now}
}

// BuildReceipt normalizes a backend sale response into the canonical
// Receipt. Each field walks its fallback chain left to right — camelCase
// first, then the snake_case _raw nest — and takes the first defined value.
func (s *ReceiptService) BuildReceipt(resp *entity.SaleResponse) entity.Receipt {
	if resp == nil {
		resp = &entity.SaleResponse{}
	}

	items := make([]entity.ReceiptItem, 0, len(resp.Items))
	for i, item := range resp.Items {
		items = append(items, entity.ReceiptItem{
			ID:       receiptItemID(item, i),
			Name:     receiptItemName(item),
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}

	receipt := entity.Receipt{
		ReceiptNumber: resp.ReceiptNumber,
		Items:         items,
		Subtotal:      resp.Subtotal,
		Tax:           resp.Tax,
		Discount:      resp.Discount,
		Total:         resp.Total,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		TableName:     resp.TableName,
		CreatedAt:     resp.CreatedAt,
	}

	if raw := resp.Raw; raw != nil {
		if raw.ReceiptNumber != "" {
			receipt.ReceiptNumber = raw.ReceiptNumber
		}
		if raw.CustomerDetail != nil {
			if raw.CustomerDetail.Name != "" {
				receipt.CustomerName = raw.CustomerDetail.Name
			}
			if raw.CustomerDetail.Phone != "" {
				receipt.CustomerPhone = raw.CustomerDetail.Phone
			}
		}
		if raw.TableDetail != nil && raw.TableDetail.Number != "" {
			receipt.TableName = raw.TableDetail.Number
		}
	}

	if receipt.ReceiptNumber == "" {
		receipt.ReceiptNumber = resp.ID.String()
	}
	if receipt.CreatedAt == "" {
		receipt.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}
	return receipt
}

// NormalizeForPrint converts a canonical receipt back into the _raw-nested
// response shape the print subsystem was written against. Feeding the result
// through BuildReceipt again reproduces the same items and totals.
func (s *ReceiptService) NormalizeForPrint(receipt entity.Receipt, outletID string) *entity.SaleResponse {
	items := make([]entity.SaleResponseItem, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, entity.SaleResponseItem{
			ID:       entity.FlexString(item.ID),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}

	out := &entity.SaleResponse{
		ID:        entity.FlexString(receipt.ReceiptNumber),
		Outlet:    entity.FlexString(outletID),
		Items:     items,
		Subtotal:  receipt.Subtotal,
		Tax:       receipt.Tax,
		Discount:  receipt.Discount,
		Total:     receipt.Total,
		CreatedAt: receipt.CreatedAt,
		Raw: &entity.RawSale{
			ReceiptNumber: receipt.ReceiptNumber,
		},
	}
	if receipt.CustomerName != "" || receipt.CustomerPhone != "" {
		out.Raw.CustomerDetail = &entity.CustomerDetail{
			Name:  receipt.CustomerName,
			Phone: receipt.CustomerPhone,
		}
	}
	if receipt.TableName != "" {
		out.Raw.TableDetail = &entity.TableDetail{Number: receipt.TableName}
	}
	return out
}

// receiptItemID resolves a line's display id: the item's own id, else the
// product id suffixed with the line index, else a synthetic item-index id.
func receiptItemID(item entity.SaleResponseItem, index int) string {
	if item.ID != "" {
		return item.ID.String()
	}
	if item.ProductID != "" {
		return fmt.Sprintf("%s-%d", item.ProductID, index)
	}
	return fmt.Sprintf("item-%d", index)
}

// receiptItemName resolves a line's display name across the shapes the
// backend is known to emit.
func receiptItemName(item entity.SaleResponseItem) string {
	if item.ProductName != "" {
		return item.ProductName
	}
	if item.RawName != "" {
		return item.RawName
	}
	if item.Name != "" {
		return item.Name
	}
	return "Item"
}
