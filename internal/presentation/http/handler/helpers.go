package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/pkg/apperror"
)

// Selection screen routes the UI is redirected to on guard failures.
const (
	RouteSelectBusiness = "/select-business"
	RouteSelectOutlet   = "/select-outlet"
	RouteOpenShift      = "/open-shift"
)

// GetOperatorID extracts the operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("operator_id")
	if !exists {
		return nil
	}
	operatorID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &operatorID
}

// GetOperatorUsername extracts the operator username from the Gin context
func GetOperatorUsername(c *gin.Context) string {
	username, exists := c.Get("operator_username")
	if !exists {
		return ""
	}
	return username.(string)
}

// GetOperatorRole extracts the operator role from the Gin context
func GetOperatorRole(c *gin.Context) enum.Role {
	role, exists := c.Get("operator_role")
	if !exists {
		return ""
	}
	r, ok := role.(enum.Role)
	if !ok {
		return ""
	}
	return r
}

// guardRedirect maps a session guard failure to the selection screen that
// fixes it.
func guardRedirect(err error) string {
	appErr := apperror.GetAppError(err)
	switch appErr.Kind {
	case apperror.KindNoBusiness:
		return RouteSelectBusiness
	case apperror.KindNoOutlet:
		return RouteSelectOutlet
	case apperror.KindNoShift:
		return RouteOpenShift
	}
	return ""
}
