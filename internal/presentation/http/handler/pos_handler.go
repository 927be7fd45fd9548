package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/request"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/response"
	"github.com/pospoint/terminal-api/pkg/apperror"
)

// POSHandler drives the POS flows: entering a variant screen, pricing the
// working cart and checking out.
type POSHandler struct {
	sessions *service.SessionService
	checkout *service.CheckoutService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(sessions *service.SessionService, checkout *service.CheckoutService) *POSHandler {
	return &POSHandler{sessions: sessions, checkout: checkout}
}

// Enter gates entry into a POS variant. A guard failure redirects to the
// matching selection screen; a mode mismatch redirects to the variant the
// outlet actually runs.
func (h *POSHandler) Enter(c *gin.Context) {
	var req request.EnterPOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	requested := enum.ResolvePosMode(req.Mode)
	route, redirect, err := h.sessions.EnterPOS(requested)
	if err != nil {
		response.GuardError(c, err, guardRedirect(err))
		return
	}

	if redirect {
		response.SuccessWithRedirect(c, 200, "Redirecting to the outlet's POS variant", gin.H{"route": route}, route)
		return
	}
	response.OK(c, "POS entry allowed", gin.H{"route": route})
}

// Price returns live totals for the working cart. No session guards run here;
// the UI shows totals while selections are still incomplete.
func (h *POSHandler) Price(c *gin.Context) {
	var req request.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	totals := h.checkout.PriceCart(req.Cart, req.Discount)
	response.OK(c, "Cart priced", totals)
}

// Checkout submits a transaction. When the backend is unreachable the sale is
// queued locally and a provisional receipt comes back with queued=true.
func (h *POSHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := service.CheckoutInput{
		Cart:          req.Cart,
		Discount:      req.Discount,
		Cashier:       GetOperatorUsername(c),
		Customer:      req.Customer,
		Table:         req.Table,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Guests:        req.Guests,
		Priority:      req.Priority,
		Additional:    req.Additional,
	}
	if operatorID := GetOperatorID(c); operatorID != nil {
		input.OperatorID = operatorID.String()
	}

	result, err := h.checkout.Checkout(c.Request.Context(), input)
	if err != nil {
		if apperror.IsGuardError(err) {
			response.GuardError(c, err, guardRedirect(err))
			return
		}
		response.Error(c, err)
		return
	}

	if result.Queued {
		response.Created(c, "Sale queued for delivery", result)
		return
	}
	response.Created(c, "Sale recorded", result)
}

// PendingCount reports how many sales await replay.
func (h *POSHandler) PendingCount(c *gin.Context) {
	count, err := h.checkout.PendingCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pending sales counted", gin.H{"pending": count})
}

// FlushPending replays queued sales against the backend.
func (h *POSHandler) FlushPending(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	delivered, failed, err := h.checkout.FlushPending(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pending sales flushed", gin.H{
		"delivered": delivered,
		"failed":    failed,
	})
}
