package service

import (
	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
)

// POS and dashboard route paths.
const (
	POSRouteRetail        = "/pos/retail"
	POSRouteRestaurant    = "/pos/restaurant"
	POSRouteBar           = "/pos/bar"
	POSRouteSingleProduct = "/pos/single-product"
)

// OutletResolver normalizes heterogeneous business/outlet type strings into
// a canonical POS mode and the routes that follow from it. All methods are
// pure functions of their inputs.
type OutletResolver struct{}

// NewOutletResolver creates a new outlet resolver
func NewOutletResolver() *OutletResolver {
	return &OutletResolver{}
}

// typeString picks the raw type with outlet-level taking precedence over
// business-level, then settings-level.
func (r *OutletResolver) typeString(outlet *entity.Outlet, business *entity.Business) string {
	if outlet != nil && outlet.BusinessType != "" {
		return outlet.BusinessType
	}
	if business != nil {
		if business.Type != "" {
			return business.Type
		}
		if business.Settings != nil && business.Settings.BusinessType != "" {
			return business.Settings.BusinessType
		}
	}
	return ""
}

// ResolveMode returns the canonical POS mode for the outlet/business pair.
// The result is always one of the three known modes.
func (r *OutletResolver) ResolveMode(outlet *entity.Outlet, business *entity.Business) enum.PosMode {
	return enum.ResolvePosMode(r.typeString(outlet, business))
}

// ResolveSettings produces the full BusinessSettings for an outlet. Explicit
// base settings win for every field except PosMode, which is always derived
// from the type string, never taken verbatim from input.
func (r *OutletResolver) ResolveSettings(outlet *entity.Outlet, business *entity.Business) entity.BusinessSettings {
	settings := entity.BusinessSettings{
		ReceiptTemplate: "standard",
		Language:        "en",
	}

	var base *entity.BusinessSettings
	if business != nil && business.Settings != nil {
		base = business.Settings
	}
	if outlet != nil && outlet.Settings != nil {
		base = outlet.Settings
	}
	if base != nil {
		settings = *base
	}

	settings.PosMode = r.ResolveMode(outlet, business)
	return settings
}

// ResolveRouteSegment maps the resolved mode to its URL segment
// (retail, restaurant or bar).
func (r *OutletResolver) ResolveRouteSegment(outlet *entity.Outlet, business *entity.Business) string {
	return r.ResolveMode(outlet, business).RouteSegment()
}

// ResolvePOSRoute returns the POS screen route for the session. Businesses
// running the single-product flow always land on its dedicated route,
// regardless of outlet type.
func (r *OutletResolver) ResolvePOSRoute(outlet *entity.Outlet, business *entity.Business) string {
	if business != nil && business.PosType == enum.PosTypeSingleProduct {
		return POSRouteSingleProduct
	}
	return "/pos/" + r.ResolveRouteSegment(outlet, business)
}

// ResolveDashboardRoute returns the dashboard route for the resolved mode.
func (r *OutletResolver) ResolveDashboardRoute(outlet *entity.Outlet, business *entity.Business) string {
	return "/dashboard/" + r.ResolveRouteSegment(outlet, business)
}
