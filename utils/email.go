// utils/email.go
package utils

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"github.com/PoonjothiV/grocerywebsites/billing"
	"github.com/PoonjothiV/grocerywebsites/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		panic("POSTMARK_API_TOKEN is not set in environment variables")
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the given recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendReceiptEmail sends the rendered bill to the customer as a PDF
// attachment.
func (es *EmailService) SendReceiptEmail(toEmail string, bill models.Bill, pdf []byte) error {
	subject := "Your Grocery Store Receipt"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for shopping with Grocery Store! Your receipt is attached.<br><br>Subtotal: <strong>%s</strong><br>Tax (2%%): <strong>%s</strong><br>Total: <strong>%s</strong><br>Payment Method: <strong>%s</strong>",
		bill.CustomerName,
		bill.Subtotal.StringFixed(2),
		bill.Tax.StringFixed(2),
		bill.GrandTotal.StringFixed(2),
		bill.PaymentMethod,
	)

	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
		Attachments: []postmark.Attachment{{
			Name:        billing.Filename(bill.CustomerName),
			Content:     base64.StdEncoding.EncodeToString(pdf),
			ContentType: "application/pdf",
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to send receipt email: %w", err)
	}
	return nil
}
