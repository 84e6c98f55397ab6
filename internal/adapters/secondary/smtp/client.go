// Package smtp delivers the email command's requests through an SMTP relay.
package smtp

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Client struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.SugaredLogger
}

func NewClient(dialer *gomail.Dialer, from string, log *zap.SugaredLogger) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		log:    log,
	}
}

// Send delivers one message to every address in the comma-separated
// recipients list.
func (c *Client) Send(recipients string, subject string, body string) error {
	addresses := splitRecipients(recipients)
	if len(addresses) == 0 {
		return fmt.Errorf("no recipients to send to")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", addresses...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(m); err != nil {
		c.log.Warnw("send failed", "recipients", len(addresses), "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	c.log.Infow("email sent", "recipients", len(addresses), "subject", subject)
	return nil
}

func splitRecipients(recipients string) []string {
	var out []string
	for _, addr := range strings.Split(recipients, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
