package mailers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendVerification_NoSMTPConfigured(t *testing.T) {
	m := New("", 0, "", "", "noreply@xevscan.local", "http://localhost:8080/")

	// Without an SMTP host the link is only logged; registration must not fail.
	err := m.SendVerification(context.Background(), "alice@example.com", "tok")
	assert.NoError(t, err)
}

func TestNew_TrimsBaseURL(t *testing.T) {
	m := New("smtp.example.com", 587, "user", "pass", "noreply@example.com", "https://scan.example.com/")
	assert.Equal(t, "https://scan.example.com", m.baseURL)
}
