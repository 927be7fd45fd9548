package entity

import (
	"time"

	"github.com/pospoint/terminal-api/internal/domain/enum"
)

// Business is the tenant-owned business selected for the active session.
// Exactly one business is selected at a time.
type Business struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	PosType  enum.PosType      `json:"posType"`
	Type     string            `json:"type,omitempty"`
	Settings *BusinessSettings `json:"settings,omitempty"`
}

// Outlet is a single physical location belonging to a Business. It inherits
// the business settings when its own are absent.
type Outlet struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	BusinessType string            `json:"businessType,omitempty"`
	Settings     *BusinessSettings `json:"settings,omitempty"`
}

// BusinessSettings is the resolved per-outlet configuration. It is derived,
// never authored directly: PosMode always comes from the type resolver.
type BusinessSettings struct {
	PosMode         enum.PosMode     `json:"posMode"`
	BusinessType    string           `json:"businessType,omitempty"`
	ReceiptTemplate string           `json:"receiptTemplate"`
	TaxEnabled      bool             `json:"taxEnabled"`
	TaxRate         float64          `json:"taxRate"`
	PrinterSettings *PrinterSettings `json:"printerSettings,omitempty"`
	Timezone        string           `json:"timezone,omitempty"`
	TaxID           string           `json:"taxId,omitempty"`
	Language        string           `json:"language,omitempty"`
}

// PrinterSettings configures the receipt printer attached to an outlet.
type PrinterSettings struct {
	Type       string `json:"type"` // usb, network, or none
	DevicePath string `json:"devicePath,omitempty"`
	Address    string `json:"address,omitempty"`
	Width      int    `json:"width,omitempty"`
}

// Shift is an open cash-register session. Its presence is a precondition for
// recording sales; open/close lifecycle is owned by the backend.
type Shift struct {
	ID       string     `json:"id"`
	OutletID string     `json:"outletId,omitempty"`
	OpenedBy string     `json:"openedBy,omitempty"`
	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`
}

// Table identifies a dine-in table for restaurant/bar variants.
type Table struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// SessionContext carries the selections a terminal session has made. It is
// constructed at session start and passed explicitly to the guards; there is
// no ambient session state.
type SessionContext struct {
	Business *Business `json:"business,omitempty"`
	Outlet   *Outlet   `json:"outlet,omitempty"`
	// TenantOutlet is the tenant-level fallback used when no business-scoped
	// outlet has been resolved.
	TenantOutlet *Outlet `json:"tenantOutlet,omitempty"`
	Shift        *Shift  `json:"shift,omitempty"`
}
