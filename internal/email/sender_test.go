package email

import (
	"errors"
	"strings"
	"testing"

	"github.com/mailtriage/mailtriage/internal/config"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "user@example.com", false},
		{"crlf injection", "user@example.com\r\nBcc: evil@example.com", true},
		{"comma", "a@example.com,b@example.com", true},
		{"not an address", "not-an-email", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestNewSenderRequiresHost(t *testing.T) {
	if _, err := NewSender(config.SMTPConfig{}); err == nil {
		t.Error("expected error for unconfigured smtp")
	}

	sender, err := NewSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "triage@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if sender.Name() != "smtp" {
		t.Errorf("sender name = %q, want smtp", sender.Name())
	}
}

func TestSanitizeSMTPError(t *testing.T) {
	if got := sanitizeSMTPError(errors.New("535 auth failed")); !strings.Contains(got.Error(), "authentication") {
		t.Errorf("got %v", got)
	}
	if got := sanitizeSMTPError(errors.New("x509: certificate expired")); !strings.Contains(got.Error(), "certificate") {
		t.Errorf("got %v", got)
	}
	if got := sanitizeSMTPError(errors.New("connection refused to secret-host:25")); strings.Contains(got.Error(), "secret-host") {
		t.Errorf("error leaked host details: %v", got)
	}
}
