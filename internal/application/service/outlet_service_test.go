package service

import (
	"testing"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestResolveMode_TypeStringPrecedence(t *testing.T) {
	r := NewOutletResolver()

	tests := []struct {
		name     string
		outlet   *entity.Outlet
		business *entity.Business
		want     enum.PosMode
	}{
		{
			name:     "outlet type wins over business type",
			outlet:   &entity.Outlet{BusinessType: "restaurant"},
			business: &entity.Business{Type: "bar"},
			want:     enum.PosModeRestaurant,
		},
		{
			name:     "business type wins over settings type",
			outlet:   &entity.Outlet{},
			business: &entity.Business{Type: "bar", Settings: &entity.BusinessSettings{BusinessType: "restaurant"}},
			want:     enum.PosModeBar,
		},
		{
			name:     "settings type as last resort",
			outlet:   &entity.Outlet{},
			business: &entity.Business{Settings: &entity.BusinessSettings{BusinessType: "restaurant"}},
			want:     enum.PosModeRestaurant,
		},
		{
			name: "nothing set falls back to retail mode",
			want: enum.PosModeWholesaleAndRetail,
		},
		{
			name:     "unknown type falls back to retail mode",
			business: &entity.Business{Type: "food truck"},
			want:     enum.PosModeWholesaleAndRetail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveMode(tt.outlet, tt.business))
		})
	}
}

func TestResolvePosMode_Aliases(t *testing.T) {
	tests := []struct {
		raw  string
		want enum.PosMode
	}{
		{"retail", enum.PosModeWholesaleAndRetail},
		{"standard", enum.PosModeWholesaleAndRetail},
		{"wholesale and retail", enum.PosModeWholesaleAndRetail},
		{"wholesale_and_retail", enum.PosModeWholesaleAndRetail},
		{"Restaurant", enum.PosModeRestaurant},
		{"  BAR  ", enum.PosModeBar},
		{"", enum.PosModeWholesaleAndRetail},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, enum.ResolvePosMode(tt.raw))
		})
	}
}

func TestResolveSettings_Defaults(t *testing.T) {
	r := NewOutletResolver()

	settings := r.ResolveSettings(nil, nil)

	assert.Equal(t, "standard", settings.ReceiptTemplate)
	assert.Equal(t, "en", settings.Language)
	assert.Equal(t, enum.PosModeWholesaleAndRetail, settings.PosMode)
}

func TestResolveSettings_PosModeAlwaysDerived(t *testing.T) {
	r := NewOutletResolver()
	business := &entity.Business{
		Type: "restaurant",
		Settings: &entity.BusinessSettings{
			// Authored PosMode must be ignored; the type string decides.
			PosMode:         enum.PosModeBar,
			ReceiptTemplate: "compact",
			TaxEnabled:      true,
			TaxRate:         16,
		},
	}

	settings := r.ResolveSettings(nil, business)

	assert.Equal(t, enum.PosModeRestaurant, settings.PosMode)
	assert.Equal(t, "compact", settings.ReceiptTemplate)
	assert.True(t, settings.TaxEnabled)
	assert.Equal(t, 16.0, settings.TaxRate)
}

func TestResolveSettings_OutletSettingsWinOverBusiness(t *testing.T) {
	r := NewOutletResolver()
	business := &entity.Business{Settings: &entity.BusinessSettings{ReceiptTemplate: "compact"}}
	outlet := &entity.Outlet{Settings: &entity.BusinessSettings{ReceiptTemplate: "detailed"}}

	settings := r.ResolveSettings(outlet, business)

	assert.Equal(t, "detailed", settings.ReceiptTemplate)
}

func TestResolvePOSRoute(t *testing.T) {
	r := NewOutletResolver()

	tests := []struct {
		name     string
		outlet   *entity.Outlet
		business *entity.Business
		want     string
	}{
		{"retail default", nil, nil, POSRouteRetail},
		{"restaurant", &entity.Outlet{BusinessType: "restaurant"}, nil, POSRouteRestaurant},
		{"bar", &entity.Outlet{BusinessType: "bar"}, nil, POSRouteBar},
		{
			name:     "single product overrides outlet type",
			outlet:   &entity.Outlet{BusinessType: "restaurant"},
			business: &entity.Business{PosType: enum.PosTypeSingleProduct},
			want:     POSRouteSingleProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolvePOSRoute(tt.outlet, tt.business))
		})
	}
}

func TestResolveDashboardRoute(t *testing.T) {
	r := NewOutletResolver()

	assert.Equal(t, "/dashboard/retail", r.ResolveDashboardRoute(nil, nil))
	assert.Equal(t, "/dashboard/bar", r.ResolveDashboardRoute(&entity.Outlet{BusinessType: "bar"}, nil))
}
