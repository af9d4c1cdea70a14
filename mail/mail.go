// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/danielhkuo/college-site/cliparse"
	"github.com/danielhkuo/college-site/models"
)

const fromName = "Website Inquiry"

// Notifier delivers submission notifications to the college mailbox
type Notifier interface {
	NotifyEnquiry(ctx context.Context, e models.Enquiry) error
	NotifyApplication(ctx context.Context, a models.Application) error
}

// New returns an SMTPNotifier when mail is configured, otherwise Disabled.
func New(cfg cliparse.Config) (Notifier, error) {
	if !cfg.MailEnabled() {
		slog.Warn("mail notifications disabled: EMAIL_USER, EMAIL_PASS or COLLEGE_EMAIL_RECEIVER missing")
		return Disabled{}, nil
	}
	return NewSMTP(SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
		To:       cfg.MailReceiver,
	})
}

// Disabled drops every notification with a warning
type Disabled struct{}

func (Disabled) NotifyEnquiry(ctx context.Context, e models.Enquiry) error {
	slog.Warn("email notification not sent: mail not configured", "enquiry_id", e.ID)
	return nil
}

func (Disabled) NotifyApplication(ctx context.Context, a models.Application) error {
	slog.Warn("email notification not sent: mail not configured", "application_id", a.ID)
	return nil
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// To is the notifications mailbox
	To string
}

// SMTPNotifier sends HTML notifications through an authenticated SMTP relay.
type SMTPNotifier struct {
	cfg    SMTPConfig
	client *gomail.Client
	send   func(ctx context.Context, m *gomail.Msg) error
}

var _ Notifier = (*SMTPNotifier)(nil)

func NewSMTP(cfg SMTPConfig) (*SMTPNotifier, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	n := &SMTPNotifier{cfg: cfg, client: client}
	n.send = func(ctx context.Context, m *gomail.Msg) error {
		return client.DialAndSendWithContext(ctx, m)
	}
	return n, nil
}

// Verify dials the relay once so misconfiguration shows up at startup.
func (n *SMTPNotifier) Verify(ctx context.Context) error {
	if err := n.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("SMTP verification failed: %w", err)
	}
	return n.client.Close()
}

func (n *SMTPNotifier) NotifyEnquiry(ctx context.Context, e models.Enquiry) error {
	body, err := renderEnquiry(e)
	if err != nil {
		return err
	}
	return n.deliver(ctx, e.Email, "New Website Inquiry: "+e.Subject, body)
}

func (n *SMTPNotifier) NotifyApplication(ctx context.Context, a models.Application) error {
	body, err := renderApplication(a)
	if err != nil {
		return err
	}
	return n.deliver(ctx, a.Email, "New Admission Application: "+a.Course, body)
}

func (n *SMTPNotifier) deliver(ctx context.Context, replyTo, subject, body string) error {
	m, err := n.compose(replyTo, subject, body)
	if err != nil {
		return err
	}
	if err := n.send(ctx, m); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	slog.Info("email notification sent", "to", n.cfg.To, "subject", subject)
	return nil
}

func (n *SMTPNotifier) compose(replyTo, subject, body string) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(fromName, n.cfg.Username); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(n.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid receiver address: %w", err)
	}
	// Replies go to the person who submitted the form
	if err := m.ReplyTo(replyTo); err != nil {
		return nil, fmt.Errorf("invalid reply-to address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextHTML, body)
	return m, nil
}
