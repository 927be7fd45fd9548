package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/request"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/response"
	"github.com/pospoint/terminal-api/pkg/email"
)

// ReceiptHandler normalizes, prints and emails receipts.
type ReceiptHandler struct {
	receipts *service.ReceiptService
	printing *service.PrintingService
	sessions *service.SessionService
	resolver *service.OutletResolver
	mailer   *email.EmailService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(
	receipts *service.ReceiptService,
	printing *service.PrintingService,
	sessions *service.SessionService,
	resolver *service.OutletResolver,
	mailer *email.EmailService,
) *ReceiptHandler {
	return &ReceiptHandler{
		receipts: receipts,
		printing: printing,
		sessions: sessions,
		resolver: resolver,
		mailer:   mailer,
	}
}

// Normalize converts a backend sale response into the canonical receipt.
func (h *ReceiptHandler) Normalize(c *gin.Context) {
	var req request.NormalizeReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt := h.receipts.BuildReceipt(&req.Sale)
	response.OK(c, "Receipt normalized", receipt)
}

// Print sends a receipt to the attached printer.
func (h *ReceiptHandler) Print(c *gin.Context) {
	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := h.sessions.Context()
	outlet := sess.Outlet
	if outlet == nil {
		outlet = sess.TenantOutlet
	}
	settings := h.resolver.ResolveSettings(outlet, sess.Business)

	printable, err := h.printing.PrintReceipt(req.Receipt, outlet, &settings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", printable)
}

// TestPrint sends a fixed test receipt to the printer.
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printing.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test receipt printed", receipt)
}

// PrinterStatus reports printer configuration and connectivity.
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printing.GetStatus())
}

// Email sends a receipt to the customer by email.
func (h *ReceiptHandler) Email(c *gin.Context) {
	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if !h.mailer.Enabled() {
		response.BadRequest(c, "Email is not configured on this terminal")
		return
	}

	sess := h.sessions.Context()
	storeName := ""
	if sess.Outlet != nil {
		storeName = sess.Outlet.Name
	} else if sess.Business != nil {
		storeName = sess.Business.Name
	}

	if err := h.mailer.SendReceiptEmail(req.Email, req.Receipt, storeName); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt emailed", gin.H{"email": req.Email})
}
