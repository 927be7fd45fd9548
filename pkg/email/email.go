package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/pospoint/terminal-api/internal/domain/entity"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether SMTP is configured for this terminal.
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != ""
}

// SendReceiptEmail emails a rendered receipt to the customer.
func (s *EmailService) SendReceiptEmail(toEmail string, receipt entity.Receipt, storeName string) error {
	if !s.Enabled() {
		return fmt.Errorf("email is not configured")
	}

	htmlContent, err := s.renderReceiptEmail(receipt, storeName)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Your receipt %s", receipt.ReceiptNumber)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%s", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderReceiptEmail renders the receipt email template
func (s *EmailService) renderReceiptEmail(receipt entity.Receipt, storeName string) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	if storeName == "" {
		storeName = "POS"
	}
	data := struct {
		StoreName string
		Receipt   entity.Receipt
	}{
		StoreName: storeName,
		Receipt:   receipt,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// receiptTemplate is the HTML template for receipt emails
const receiptTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Receipt {{.Receipt.ReceiptNumber}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.StoreName}}</h1>
                        </td>
                    </tr>

                    <!-- Content -->
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 10px 0; font-size: 24px; font-weight: 600;">Receipt {{.Receipt.ReceiptNumber}}</h2>
                            <p style="color: #718096; font-size: 14px; margin: 0 0 20px 0;">{{.Receipt.CreatedAt}}</p>

                            {{if .Receipt.CustomerName}}
                            <p style="color: #4a5568; font-size: 16px; margin: 0 0 20px 0;">
                                Customer: <strong>{{.Receipt.CustomerName}}</strong>
                            </p>
                            {{end}}

                            <table role="presentation" style="width: 100%; border-collapse: collapse; margin: 0 0 20px 0;">
                                <tr>
                                    <th style="text-align: left; padding: 8px 0; border-bottom: 2px solid #e2e8f0; color: #4a5568; font-size: 14px;">Item</th>
                                    <th style="text-align: right; padding: 8px 0; border-bottom: 2px solid #e2e8f0; color: #4a5568; font-size: 14px;">Qty</th>
                                    <th style="text-align: right; padding: 8px 0; border-bottom: 2px solid #e2e8f0; color: #4a5568; font-size: 14px;">Total</th>
                                </tr>
                                {{range .Receipt.Items}}
                                <tr>
                                    <td style="padding: 8px 0; border-bottom: 1px solid #edf2f7; color: #1a1a2e; font-size: 14px;">{{.Name}}</td>
                                    <td style="text-align: right; padding: 8px 0; border-bottom: 1px solid #edf2f7; color: #1a1a2e; font-size: 14px;">{{.Quantity}}</td>
                                    <td style="text-align: right; padding: 8px 0; border-bottom: 1px solid #edf2f7; color: #1a1a2e; font-size: 14px;">{{printf "%.2f" .Total}}</td>
                                </tr>
                                {{end}}
                            </table>

                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="padding: 4px 0; color: #4a5568; font-size: 14px;">Subtotal</td>
                                    <td style="text-align: right; padding: 4px 0; color: #1a1a2e; font-size: 14px;">{{printf "%.2f" .Receipt.Subtotal}}</td>
                                </tr>
                                {{if .Receipt.Tax}}
                                <tr>
                                    <td style="padding: 4px 0; color: #4a5568; font-size: 14px;">Tax</td>
                                    <td style="text-align: right; padding: 4px 0; color: #1a1a2e; font-size: 14px;">{{printf "%.2f" .Receipt.Tax}}</td>
                                </tr>
                                {{end}}
                                {{if .Receipt.Discount}}
                                <tr>
                                    <td style="padding: 4px 0; color: #4a5568; font-size: 14px;">Discount</td>
                                    <td style="text-align: right; padding: 4px 0; color: #1a1a2e; font-size: 14px;">-{{printf "%.2f" .Receipt.Discount}}</td>
                                </tr>
                                {{end}}
                                <tr>
                                    <td style="padding: 12px 0 0 0; color: #1a1a2e; font-size: 18px; font-weight: 600;">Total</td>
                                    <td style="text-align: right; padding: 12px 0 0 0; color: #1a1a2e; font-size: 18px; font-weight: 600;">{{printf "%.2f" .Receipt.Total}}</td>
                                </tr>
                            </table>
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0;">
                                Thank you for shopping at {{.StoreName}}
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
