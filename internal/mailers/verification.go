package mailers

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/xevscan/scan-api/internal/logger"
)

// VerificationMailer sends account verification links over SMTP. With no host
// configured it logs the link instead, which keeps local setups working
// without a mail relay.
type VerificationMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	baseURL  string
}

// New creates a new VerificationMailer.
func New(host string, port int, username, password, from, baseURL string) *VerificationMailer {
	return &VerificationMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// SendVerification delivers the verification link for a freshly registered
// account.
func (m *VerificationMailer) SendVerification(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify/%s", m.baseURL, token)

	if m.host == "" {
		logger.Log.Infow("SMTP not configured, verification link not mailed",
			"email", email,
			"link", link,
		)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + email,
		"Subject: Verify Your Email - EV Scan Platform",
		"",
		"Please click the following link to verify your email:",
		link,
		"",
		"This link will expire in 24 hours.",
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{email}, []byte(msg)); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "error", err)
		return err
	}

	logger.Log.Infow("verification email sent", "email", email)
	return nil
}
