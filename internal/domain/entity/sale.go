package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SaleItem is one line of the canonical sale-creation request.
type SaleItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Notes     string  `json:"notes"`
}

// SalePayload is the canonical wire request for creating a sale. Required
// keys (outlet, shift, items_data, subtotal, tax, discount, total,
// payment_method) are always present; optional keys are emitted only when the
// corresponding input was supplied, never as null — the backend schema
// distinguishes "field absent" from "field explicitly empty".
type SalePayload struct {
	Outlet         string             `json:"outlet"`
	Shift          string             `json:"shift"`
	Cashier        string             `json:"cashier,omitempty"`
	Customer       string             `json:"customer,omitempty"`
	ItemsData      []SaleItem         `json:"items_data"`
	Subtotal       float64            `json:"subtotal"`
	Tax            float64            `json:"tax"`
	Discount       float64            `json:"discount"`
	DiscountType   string             `json:"discount_type,omitempty"`
	DiscountReason string             `json:"discount_reason,omitempty"`
	Total          float64            `json:"total"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	Notes          string             `json:"notes,omitempty"`
	TableID        string             `json:"table_id,omitempty"`
	Guests         *int               `json:"guests,omitempty"`
	Priority       enum.Priority      `json:"priority,omitempty"`

	// Additional carries variant-specific fields merged into the payload
	// last, so POS flows can extend the request without touching the builder.
	Additional map[string]interface{} `json:"-"`
}

// MarshalJSON merges the Additional bag over the typed fields.
func (p SalePayload) MarshalJSON() ([]byte, error) {
	type Alias SalePayload
	base, err := json.Marshal(Alias(p))
	if err != nil {
		return nil, err
	}
	if len(p.Additional) == 0 {
		return base, nil
	}

	var merged map[string]interface{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.Additional {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// PendingSale is a locally queued sale payload awaiting delivery to the
// backend. Sales taken while offline land here and are replayed later.
type PendingSale struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID   string         `gorm:"size:64;index" json:"outlet_id"`
	OperatorID string         `gorm:"size:64" json:"operator_id,omitempty"`
	Payload    []byte         `gorm:"not null" json:"-"`
	Attempts   int            `gorm:"default:0" json:"attempts"`
	LastError  string         `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before queuing a new pending sale
func (s *PendingSale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PendingSale model
func (PendingSale) TableName() string {
	return "pending_sales"
}
