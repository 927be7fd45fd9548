package service

import (
	"strings"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/spf13/cast"
)

// BuildSaleInput collects everything a sale-creation request is assembled
// from. Outlet, Shift, Customer and Table each accept either a bare
// identifier or an object carrying an id.
type BuildSaleInput struct {
	Cart           []entity.CartItem
	Outlet         interface{}
	Shift          interface{}
	Cashier        string
	Customer       interface{}
	Table          interface{}
	Subtotal       float64
	Discount       float64
	DiscountType   enum.DiscountType
	DiscountReason string
	PaymentMethod  enum.PaymentMethod
	Notes          string
	Guests         *int
	Priority       enum.Priority
	Additional     map[string]interface{}
}

// SaleBuilder assembles the canonical outbound sale payload. It is a total
// function: missing optional inputs are omitted from the payload, never
// emitted as null, and no input combination is an error.
type SaleBuilder struct {
	taxPolicy TaxPolicy
}

// NewSaleBuilder creates a new sale builder
func NewSaleBuilder(taxPolicy TaxPolicy) *SaleBuilder {
	if taxPolicy == nil {
		taxPolicy = ZeroTaxPolicy{}
	}
	return &SaleBuilder{taxPolicy: taxPolicy}
}

// Build produces the canonical SalePayload for a transaction. Tax goes
// through the same policy seam as the pricing engine, and the total formula
// (subtotal - discount + tax, rounded) matches it exactly — both run on the
// same transaction and must agree to the cent.
func (b *SaleBuilder) Build(input BuildSaleInput) entity.SalePayload {
	items := make([]entity.SaleItem, 0, len(input.Cart))
	for _, item := range input.Cart {
		items = append(items, entity.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     Round2(item.Price),
			Notes:     itemNotes(item),
		})
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = enum.PaymentMethodCash
	}
	priority := input.Priority
	if priority == "" {
		priority = enum.PriorityNormal
	}

	tax := b.taxPolicy.Tax(input.Cart, input.Subtotal)

	payload := entity.SalePayload{
		Outlet:         ExtractID(input.Outlet),
		Shift:          ExtractID(input.Shift),
		Cashier:        input.Cashier,
		Customer:       ExtractID(input.Customer),
		ItemsData:      items,
		Subtotal:       Round2(input.Subtotal),
		Tax:            Round2(tax),
		Discount:       Round2(input.Discount),
		DiscountType:   input.DiscountType.String(),
		DiscountReason: input.DiscountReason,
		Total:          Round2(input.Subtotal - input.Discount + tax),
		PaymentMethod:  paymentMethod,
		Notes:          input.Notes,
		TableID:        ExtractID(input.Table),
		Guests:         input.Guests,
		Priority:       priority,
		Additional:     input.Additional,
	}
	return payload
}

// itemNotes flattens a cart line's annotations: modifiers joined with ", ",
// else free-text notes, else empty.
func itemNotes(item entity.CartItem) string {
	if len(item.Modifiers) > 0 {
		return strings.Join(item.Modifiers, ", ")
	}
	return item.Notes
}

// ExtractID uniformly pulls an identifier out of a bare id, an id-carrying
// map, or one of the session entities. Nil yields an empty string, which the
// payload's omitempty semantics then drop.
func ExtractID(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case *entity.Outlet:
		if val == nil {
			return ""
		}
		return val.ID
	case entity.Outlet:
		return val.ID
	case *entity.Shift:
		if val == nil {
			return ""
		}
		return val.ID
	case entity.Shift:
		return val.ID
	case *entity.Customer:
		if val == nil {
			return ""
		}
		return val.ID.String()
	case entity.Customer:
		return val.ID.String()
	case *entity.Table:
		if val == nil {
			return ""
		}
		return val.ID
	case entity.Table:
		return val.ID
	case map[string]interface{}:
		return cast.ToString(val["id"])
	default:
		return cast.ToString(v)
	}
}
