package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/request"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/response"
)

// CustomerHandler exposes the debounced customer search-and-select flow.
type CustomerHandler struct {
	searcher *service.CustomerSearcher
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(searcher *service.CustomerSearcher) *CustomerHandler {
	return &CustomerHandler{searcher: searcher}
}

// Input records a search box keystroke. The backend search fires after the
// debounce window; results arrive via GetResults.
func (h *CustomerHandler) Input(c *gin.Context) {
	var req request.CustomerInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.searcher.Input(req.Term)
	response.OK(c, "Keystroke recorded", gin.H{"term": req.Term})
}

// GetResults returns the current result set and the term it belongs to.
func (h *CustomerHandler) GetResults(c *gin.Context) {
	term, results := h.searcher.Results()
	response.OK(c, "Search results retrieved", gin.H{
		"term":    term,
		"results": results,
	})
}

// Search runs an immediate search, bypassing the debounce window.
func (h *CustomerHandler) Search(c *gin.Context) {
	var req request.CustomerInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	results := h.searcher.SearchNow(c.Request.Context(), req.Term)
	response.OK(c, "Search completed", gin.H{
		"term":    req.Term,
		"results": results,
	})
}

// SearchOffline serves recent matches from the local cache.
func (h *CustomerHandler) SearchOffline(c *gin.Context) {
	term := c.Query("term")
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	results := h.searcher.SearchOffline(c.Request.Context(), term, limit)
	response.OK(c, "Offline search completed", gin.H{
		"term":    term,
		"results": results,
	})
}

// Select records the chosen customer.
func (h *CustomerHandler) Select(c *gin.Context) {
	var req request.CustomerSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.searcher.Select(req.Customer)
	response.OK(c, "Customer selected", req.Customer)
}

// GetSelected returns the chosen customer, if any.
func (h *CustomerHandler) GetSelected(c *gin.Context) {
	response.OK(c, "Selected customer retrieved", gin.H{
		"customer": h.searcher.Selected(),
	})
}

// Clear resets term, results and selection.
func (h *CustomerHandler) Clear(c *gin.Context) {
	h.searcher.Clear()
	response.NoContent(c)
}
