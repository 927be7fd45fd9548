package request

import "github.com/pospoint/terminal-api/internal/domain/entity"

// PrintReceiptRequest sends a receipt to the attached printer
type PrintReceiptRequest struct {
	Receipt entity.Receipt `json:"receipt" binding:"required"`
}

// EmailReceiptRequest emails a receipt to a customer
type EmailReceiptRequest struct {
	Email   string         `json:"email" binding:"required,email"`
	Receipt entity.Receipt `json:"receipt" binding:"required"`
}

// NormalizeReceiptRequest converts a backend sale response into the canonical
// receipt shape
type NormalizeReceiptRequest struct {
	Sale entity.SaleResponse `json:"sale" binding:"required"`
}
