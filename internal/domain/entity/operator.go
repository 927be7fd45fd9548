package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Operator is a cached terminal operator. The password hash is stored so the
// terminal can verify a login while the backend is unreachable.
type Operator struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username     string         `gorm:"size:255;uniqueIndex;not null" json:"username"`
	DisplayName  string         `gorm:"size:255" json:"display_name,omitempty"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         enum.Role      `gorm:"size:32;default:'cashier'" json:"role"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new operator
func (o *Operator) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Operator model
func (Operator) TableName() string {
	return "operators"
}
