package request

import (
	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
)

// EnterPOSRequest asks to open a POS variant screen
type EnterPOSRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// PriceRequest asks for live totals of a working cart
type PriceRequest struct {
	Cart     []entity.CartItem `json:"cart" binding:"required"`
	Discount *entity.Discount  `json:"discount"`
}

// CheckoutRequest submits a transaction
type CheckoutRequest struct {
	Cart          []entity.CartItem      `json:"cart" binding:"required,min=1"`
	Discount      *entity.Discount       `json:"discount"`
	Customer      interface{}            `json:"customer"`
	Table         interface{}            `json:"table"`
	PaymentMethod enum.PaymentMethod     `json:"paymentMethod"`
	Notes         string                 `json:"notes"`
	Guests        *int                   `json:"guests"`
	Priority      enum.Priority          `json:"priority"`
	Additional    map[string]interface{} `json:"additional"`
}
