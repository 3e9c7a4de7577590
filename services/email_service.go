package services

import (
	"fmt"
	"storefront_server/structs"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService wraps the resend client. Outbound email is optional: with no
// API key configured, Enabled reports false and callers skip sending.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) Enabled() bool {
	return es.cfg.Email.ApiKey != ""
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmation mails the customer a summary of their order.
func (es *EmailService) SendOrderConfirmation(order *structs.Order) error {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>Thanks for your order, %s!</h1>", order.Name)
	fmt.Fprintf(&b, "<p>Your order <strong>%s</strong> has been received.</p>", order.OrderNumber)
	b.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%d &times; %s &mdash; %s</li>",
			item.Quantity, item.Product.Name, item.Product.Price.StringFixed(2))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Subtotal: %s<br>Tax: %s<br>Shipping: %s<br><strong>Total: %s</strong></p>",
		order.Subtotal.StringFixed(2),
		order.Tax.StringFixed(2),
		order.Shipping.StringFixed(2),
		order.Total.StringFixed(2),
	)

	subject := fmt.Sprintf("Order confirmation %s", order.OrderNumber)

	return es.SendEmail([]string{order.Email}, subject, b.String())
}

// SendContactMessage relays a contact form submission to the shop inbox.
func (es *EmailService) SendContactMessage(req *structs.ContactRequest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>From: %s (%s)</p>", req.Name, req.Email)
	fmt.Fprintf(&b, "<p>%s</p>", req.Message)

	subject := fmt.Sprintf("Contact form: %s", req.Subject)

	return es.SendEmail([]string{es.cfg.Email.ContactTo}, subject, b.String())
}
