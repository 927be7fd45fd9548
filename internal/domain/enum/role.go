package enum

// Role is one of the fixed operator roles on a terminal. Exactly one role is
// active per client session.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
	RoleStaff   Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier, RoleStaff:
		return true
	}
	return false
}

// Permission keys form a closed set. Unknown keys never match any role.
const (
	PermissionDashboard     = "dashboard"
	PermissionSales         = "sales"
	PermissionInventory     = "inventory"
	PermissionOutlets       = "outlets"
	PermissionReports       = "reports"
	PermissionCRM           = "crm"
	PermissionSettings      = "settings"
	PermissionStaff         = "staff"
	PermissionProducts      = "products"
	PermissionPOS           = "pos"
	PermissionNotifications = "notifications"
	PermissionActivityLog   = "activity-log"
)
