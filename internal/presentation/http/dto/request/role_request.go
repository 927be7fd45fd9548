package request

// SetRoleRequest switches the terminal's active role
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
