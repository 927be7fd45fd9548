package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a backend customer record as surfaced to the POS search flow.
type Customer struct {
	ID    FlexString `json:"id"`
	Name  string     `json:"name"`
	Phone string     `json:"phone,omitempty"`
	Email string     `json:"email,omitempty"`
}

// CachedCustomer is a locally cached copy of a backend customer, kept so the
// selector can still offer recent matches while the backend is unreachable.
type CachedCustomer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID string         `gorm:"size:64;uniqueIndex;not null" json:"customer_id"`
	Name       string         `gorm:"size:255;not null;index" json:"name"`
	Phone      string         `gorm:"size:50" json:"phone,omitempty"`
	Email      string         `gorm:"size:255" json:"email,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before caching a new customer
func (c *CachedCustomer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CachedCustomer model
func (CachedCustomer) TableName() string {
	return "cached_customers"
}

// Customer converts the cached row back to the wire shape.
func (c *CachedCustomer) Customer() Customer {
	return Customer{
		ID:    FlexString(c.CustomerID),
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}
