package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/infrastructure/backend"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/request"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/response"
)

// SessionHandler manages the terminal's session selections: business, outlet
// and shift.
type SessionHandler struct {
	sessions *service.SessionService
	resolver *service.OutletResolver
	backend  *backend.Client
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService, resolver *service.OutletResolver, client *backend.Client) *SessionHandler {
	return &SessionHandler{sessions: sessions, resolver: resolver, backend: client}
}

// GetContext returns the current session selections plus the resolved
// settings and routes for them.
func (h *SessionHandler) GetContext(c *gin.Context) {
	sess := h.sessions.Context()

	data := gin.H{"session": sess}
	if username := GetOperatorUsername(c); username != "" {
		data["operator"] = gin.H{
			"username": username,
			"role":     GetOperatorRole(c),
		}
	}
	if sess.Business != nil {
		outlet := sess.Outlet
		if outlet == nil {
			outlet = sess.TenantOutlet
		}
		data["settings"] = h.resolver.ResolveSettings(outlet, sess.Business)
		data["posRoute"] = h.resolver.ResolvePOSRoute(outlet, sess.Business)
		data["dashboardRoute"] = h.resolver.ResolveDashboardRoute(outlet, sess.Business)
	}
	response.OK(c, "Session context retrieved", data)
}

// ListBusinesses returns the businesses the operator can open.
func (h *SessionHandler) ListBusinesses(c *gin.Context) {
	businesses, err := h.backend.ListBusinesses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Businesses retrieved", businesses)
}

// ListOutlets returns the outlets of the selected business.
func (h *SessionHandler) ListOutlets(c *gin.Context) {
	business, err := service.RequireBusiness(h.sessions.Context())
	if err != nil {
		response.GuardError(c, err, guardRedirect(err))
		return
	}

	outlets, err := h.backend.ListOutlets(c.Request.Context(), business.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Outlets retrieved", outlets)
}

// SelectBusiness records the selected business. Outlet and shift are cleared;
// they belonged to the previous business.
func (h *SessionHandler) SelectBusiness(c *gin.Context) {
	var req request.SelectBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.sessions.SelectBusiness(&req.Business)
	response.OK(c, "Business selected", h.sessions.Context())
}

// SelectOutlet records the selected outlet, or the tenant fallback outlet.
func (h *SessionHandler) SelectOutlet(c *gin.Context) {
	var req request.SelectOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Tenant {
		h.sessions.SetTenantOutlet(&req.Outlet)
	} else {
		h.sessions.SelectOutlet(&req.Outlet)
	}
	response.OK(c, "Outlet selected", h.sessions.Context())
}

// SetShift records the open shift, or closes it when the body carries null.
func (h *SessionHandler) SetShift(c *gin.Context) {
	var req request.SetShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.sessions.SetShift(req.Shift)
	response.OK(c, "Shift updated", h.sessions.Context())
}

// RefreshShift asks the backend for the outlet's currently open shift and
// records it in the session.
func (h *SessionHandler) RefreshShift(c *gin.Context) {
	outlet, err := service.RequireOutlet(h.sessions.Context())
	if err != nil {
		response.GuardError(c, err, guardRedirect(err))
		return
	}

	shift, err := h.backend.CurrentShift(c.Request.Context(), outlet.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.sessions.SetShift(shift)
	response.OK(c, "Shift refreshed", h.sessions.Context())
}
