package service

import (
	"fmt"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/pkg/printer"
	"go.uber.org/zap"
)

// PrintingService renders canonical receipts to ESC/POS and drives the
// attached thermal printer.
type PrintingService struct {
	printer     printer.Printer
	receipts    *ReceiptService
	printerType string
	width       int
	logger      *zap.Logger
}

// NewPrintingService creates a new printing service.
func NewPrintingService(p printer.Printer, receipts *ReceiptService, printerType string, width int, logger *zap.Logger) *PrintingService {
	if width <= 0 {
		width = 32 // 58mm paper
	}
	return &PrintingService{
		printer:     p,
		receipts:    receipts,
		printerType: printerType,
		width:       width,
		logger:      logger,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrintingService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt re-normalizes the receipt into the shape the print path
// expects and sends it to the printer. The receipt itself is returned so the
// caller can still render it when no printer is attached.
func (s *PrintingService) PrintReceipt(receipt entity.Receipt, outlet *entity.Outlet, settings *entity.BusinessSettings) (*entity.SaleResponse, error) {
	outletID := ""
	if outlet != nil {
		outletID = outlet.ID
	}
	printable := s.receipts.NormalizeForPrint(receipt, outletID)

	data := s.FormatReceipt(receipt, outlet, settings)
	if err := s.printer.Print(data); err != nil {
		s.logger.Error("receipt print failed",
			zap.String("receipt", receipt.ReceiptNumber), zap.Error(err))
		return printable, fmt.Errorf("failed to print receipt %s: %w", receipt.ReceiptNumber, err)
	}
	return printable, nil
}

// TestPrint sends a fixed test receipt to the printer.
func (s *PrintingService) TestPrint() (entity.Receipt, error) {
	receipt := entity.Receipt{
		ReceiptNumber: "TEST-001",
		Items: []entity.ReceiptItem{
			{ID: "test-0", Name: "Test Item 1", Price: 10.00, Quantity: 1, Total: 10.00},
			{ID: "test-1", Name: "Test Item 2", Price: 5.00, Quantity: 2, Total: 10.00},
		},
		Subtotal: 20.00,
		Total:    20.00,
	}

	data := s.FormatReceipt(receipt, nil, nil)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a canonical receipt into ESC/POS bytes.
func (s *PrintingService) FormatReceipt(r entity.Receipt, outlet *entity.Outlet, settings *entity.BusinessSettings) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	storeName := "POS"
	if outlet != nil && outlet.Name != "" {
		storeName = outlet.Name
	}
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(storeName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if settings != nil && settings.TaxID != "" {
		doc.TextF("Tax ID: %s", settings.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNumber).
		KeyValue("Date:", r.CreatedAt)

	if r.CustomerName != "" {
		doc.KeyValue("Customer:", r.CustomerName)
	}
	if r.TableName != "" {
		doc.KeyValue("Table:", r.TableName)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.Price)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.Subtotal))
	if r.Tax != 0 {
		doc.KeyValue("Tax:", fmt.Sprintf("%.2f", r.Tax))
	}
	if r.Discount != 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
