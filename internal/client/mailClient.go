package client

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/blastmusic247/blast-gear-full/internal/config"
	"github.com/blastmusic247/blast-gear-full/internal/model"
)

// MailClient sends order notification emails. Callers treat failures as
// non-fatal: checkout never blocks on notification delivery.
type MailClient interface {
	SendAdminOrderNotification(order *model.Order) error
	SendCustomerOrderConfirmation(order *model.Order) error
}

type mailClientImpl struct {
	addr       string
	auth       smtp.Auth
	from       string
	adminEmail string
}

func NewMailClient(smtpCfg *config.SMTP, adminEmail string) MailClient {
	return &mailClientImpl{
		addr:       smtpCfg.Host + ":" + smtpCfg.Port,
		auth:       smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host),
		from:       smtpCfg.From,
		adminEmail: adminEmail,
	}
}

func (c *mailClientImpl) SendAdminOrderNotification(order *model.Order) error {
	subject := fmt.Sprintf("New order %s - $%.2f", order.OrderID, order.Total)

	var body strings.Builder
	fmt.Fprintf(&body, "Order %s placed by %s %s <%s>\r\n\r\n",
		order.OrderID,
		order.Customer.FirstName, order.Customer.LastName,
		order.Customer.Email,
	)
	writeOrderSummary(&body, order)
	fmt.Fprintf(&body, "\r\nShip to: %s, %s, %s %s, %s\r\n",
		order.Customer.Address, order.Customer.City,
		order.Customer.State, order.Customer.ZipCode, order.Customer.Country,
	)

	return c.send(c.adminEmail, subject, body.String())
}

func (c *mailClientImpl) SendCustomerOrderConfirmation(order *model.Order) error {
	subject := fmt.Sprintf("Your BLAST Gear order %s is confirmed", order.OrderID)

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\r\n\r\nThanks for your order! Here is your summary:\r\n\r\n",
		order.Customer.FirstName)
	writeOrderSummary(&body, order)
	fmt.Fprintf(&body, "\r\nTrack your order any time with ID %s.\r\n", order.OrderID)

	return c.send(order.Customer.Email, subject, body.String())
}

func writeOrderSummary(body *strings.Builder, order *model.Order) {
	for _, item := range order.Items {
		fmt.Fprintf(body, "  %s (%s) x%d - $%.2f\r\n",
			item.Name, item.Size, item.Quantity, item.Price)
	}
	fmt.Fprintf(body, "\r\nSubtotal: $%.2f\r\nShipping: $%.2f\r\nTax: $%.2f\r\nTotal: $%.2f\r\n",
		order.Subtotal, order.Shipping, order.Tax, order.Total)
}

func (c *mailClientImpl) send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		c.from, to, subject, body,
	)

	if err := smtp.SendMail(c.addr, c.auth, c.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
