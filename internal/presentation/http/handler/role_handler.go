package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/request"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/response"
)

// RoleHandler exposes the terminal's active role and its permission set.
type RoleHandler struct {
	roles *service.RoleService
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// GetRole returns the active role and its permissions.
func (h *RoleHandler) GetRole(c *gin.Context) {
	response.OK(c, "Active role retrieved", gin.H{
		"role":        h.roles.CurrentRole(),
		"permissions": h.roles.Permissions(),
	})
}

// SetRole switches the active role. The change persists across restarts.
func (h *RoleHandler) SetRole(c *gin.Context) {
	var req request.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.roles.SetRole(c.Request.Context(), enum.Role(req.Role)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active role changed", gin.H{
		"role":        h.roles.CurrentRole(),
		"permissions": h.roles.Permissions(),
	})
}

// CheckPermission reports whether the active role holds a permission key.
func (h *RoleHandler) CheckPermission(c *gin.Context) {
	key := c.Param("key")
	response.OK(c, "Permission checked", gin.H{
		"permission": key,
		"granted":    h.roles.HasPermission(key),
	})
}
