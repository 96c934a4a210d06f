// Package notify sends e-mail notifications about contact form submissions.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"portfolio-site/internal/model"
)

// Notifier is told about every stored contact message.
type Notifier interface {
	NotifyContact(ctx context.Context, c model.Contact) error
}

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// Enabled reports whether enough is configured to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Noop discards notifications.
type Noop struct{}

func (Noop) NotifyContact(context.Context, model.Contact) error { return nil }

// Mailer delivers notifications over authenticated SMTP with STARTTLS.
type Mailer struct {
	cfg SMTPConfig
}

// New returns a Mailer for cfg, or Noop when SMTP is not configured.
func New(cfg SMTPConfig) Notifier {
	if !cfg.Enabled() {
		return Noop{}
	}
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	return &Mailer{cfg: cfg}
}

// NotifyContact mails the message to the site owner with Reply-To set to the sender.
func (m *Mailer) NotifyContact(ctx context.Context, c model.Contact) error {
	msg, err := contactMessage(m.cfg, c)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func contactMessage(cfg SMTPConfig, c model.Contact) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(cfg.Username); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(cfg.To); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	if err := msg.ReplyTo(c.Email); err != nil {
		return nil, errors.New("contact has an invalid reply address")
	}
	msg.Subject(fmt.Sprintf("New Portfolio Contact: %s", c.Name))
	msg.SetBodyString(mail.TypeTextPlain, contactBody(c))
	return msg, nil
}

func contactBody(c model.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n\n", c.Email)
	b.WriteString(c.Message)
	b.WriteString("\n")
	return b.String()
}
