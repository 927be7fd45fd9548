package request

import "github.com/pospoint/terminal-api/internal/domain/entity"

// SelectBusinessRequest selects the active business for the session
type SelectBusinessRequest struct {
	Business entity.Business `json:"business" binding:"required"`
}

// SelectOutletRequest selects the active outlet for the session
type SelectOutletRequest struct {
	Outlet entity.Outlet `json:"outlet" binding:"required"`
	// Tenant marks the outlet as the tenant-level fallback rather than a
	// business-scoped selection.
	Tenant bool `json:"tenant"`
}

// SetShiftRequest records the open shift (a null shift closes it)
type SetShiftRequest struct {
	Shift *entity.Shift `json:"shift"`
}
