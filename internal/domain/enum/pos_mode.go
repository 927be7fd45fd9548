package enum

import "strings"

// PosMode is the canonical business-type classification driving which POS
// variant and routes apply. Every raw type string resolves to exactly one mode.
type PosMode string

const (
	PosModeWholesaleAndRetail PosMode = "wholesale_and_retail"
	PosModeRestaurant         PosMode = "restaurant"
	PosModeBar                PosMode = "bar"
)

func (m PosMode) String() string {
	return string(m)
}

// RouteSegment returns the URL segment used by POS and dashboard routes.
func (m PosMode) RouteSegment() string {
	switch m {
	case PosModeRestaurant:
		return "restaurant"
	case PosModeBar:
		return "bar"
	default:
		return "retail"
	}
}

// PosType distinguishes the standard multi-product POS from the dedicated
// single-product flow some tenants run.
type PosType string

const (
	PosTypeStandard      PosType = "standard"
	PosTypeSingleProduct PosType = "single_product"
)

func (t PosType) String() string {
	return string(t)
}

// ResolvePosMode normalizes a free-text business type into a PosMode.
// Matching is case- and whitespace-insensitive; unrecognized or empty input
// falls back to wholesale_and_retail.
func ResolvePosMode(raw string) PosMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "retail", "standard", "wholesale and retail", "wholesale_and_retail":
		return PosModeWholesaleAndRetail
	case "restaurant":
		return PosModeRestaurant
	case "bar":
		return PosModeBar
	default:
		return PosModeWholesaleAndRetail
	}
}
