package request

import "github.com/pospoint/terminal-api/internal/domain/entity"

// CustomerInputRequest records a search box keystroke
type CustomerInputRequest struct {
	Term string `json:"term"`
}

// CustomerSelectRequest records the chosen customer
type CustomerSelectRequest struct {
	Customer entity.Customer `json:"customer" binding:"required"`
}
