package entity

import "time"

// Well-known client state keys.
const (
	StateKeyActiveRole = "pos.active_role"
)

// ClientState is a single persisted key/value pair of terminal-local state,
// e.g. the active role. Writes commit synchronously before the in-memory
// value is considered current.
type ClientState struct {
	Key       string    `gorm:"size:128;primary_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ClientState model
func (ClientState) TableName() string {
	return "client_state"
}
