// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	gomail "gopkg.in/gomail.v2"

	"ezstudy/config"
	"ezstudy/internal/domain/service"
	"ezstudy/internal/errors"
)

// smtpMailer implements service.VerificationMailer over SMTP via gomail.
type smtpMailer struct {
	dialer      *gomail.Dialer
	from        string
	fromName    string
	frontendURL string
	logger      *slog.Logger
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.VerificationMailer {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	return &smtpMailer{
		dialer:      dialer,
		from:        cfg.SMTP.From,
		fromName:    cfg.SMTP.FromName,
		frontendURL: cfg.FrontendURL,
		logger:      logger,
	}
}

// SendVerificationEmail sends the account verification link to a recipient.
// Delivery errors are returned to the caller; the address has already been
// persisted, so callers may choose to log and continue.
func (m *smtpMailer) SendVerificationEmail(ctx context.Context, to string, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, url.QueryEscape(token))

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verify your email address")
	msg.SetBody("text/html", verificationBody(link))

	// gomail has no context support; honor cancellation before dialing.
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "verification email aborted")
	default:
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "failed to send verification email to %s", to)
	}

	m.logger.Info("Verification email sent", slog.String("to", to))

	return nil
}

func verificationBody(link string) string {
	return fmt.Sprintf(`
		<h2>Welcome to EZ Study!</h2>
		<p>Please confirm your email address by clicking the link below.</p>
		<p><a href="%s">Verify my email</a></p>
		<p>This link expires in 24 hours. If you did not create an account, you can ignore this email.</p>
	`, link)
}
