package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"text/template"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
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

// OrderConfirmationData carries the fields rendered into the confirmation mail
type OrderConfirmationData struct {
	Name        string
	OrderID     string
	ItemCount   int
	FinalAmount string
}

// SendOrderConfirmation sends an order confirmation email to the customer
func (s *EmailService) SendOrderConfirmation(toEmail string, data OrderConfirmationData) error {
	body, err := s.renderOrderConfirmation(data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Your order is confirmed", body)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

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

func (s *EmailService) renderOrderConfirmation(data OrderConfirmationData) (string, error) {
	tmpl, err := template.New("order_confirmation").Parse(orderConfirmationTemplate)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const orderConfirmationTemplate = `
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Thanks for your order, {{.Name}}!</h2>
    <p>We received your order <strong>{{.OrderID}}</strong> with {{.ItemCount}} item(s).</p>
    <p>Total charged: <strong>{{.FinalAmount}}</strong></p>
    <p>We will let you know as soon as it ships.</p>
    <p style="color: #888; font-size: 12px;">If you did not place this order, please contact support.</p>
  </body>
</html>
`
