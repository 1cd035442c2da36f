package email

import (
	"strings"
	"testing"
	"time"
)

func TestBookingConfirmation(t *testing.T) {
	start := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(50 * time.Minute)

	msg := BookingConfirmation("juana@example.com", "Juana", start, end, "in_person")

	if len(msg.To) != 1 || msg.To[0] != "juana@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "14/09/2026") {
		t.Errorf("subject %q should carry the session date", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "Presencial") {
		t.Error("text body should name the modality in Spanish")
	}
	if !strings.Contains(msg.HTMLBody, "Juana") {
		t.Error("html body should greet the patient by name")
	}
	if !strings.Contains(msg.TextBody, "10:00") || !strings.Contains(msg.TextBody, "10:50") {
		t.Error("text body should carry the session interval")
	}
}

func TestCancellationNotice(t *testing.T) {
	start := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)

	msg := CancellationNotice("juana@example.com", "", start)

	if len(msg.To) != 1 || msg.To[0] != "juana@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "cancelada") {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "paciente") {
		t.Error("empty name should fall back to a generic greeting")
	}
}

func TestModalityLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"online", "Online"},
		{"in_person", "Presencial"},
		{"other", "other"},
	}

	for _, tt := range tests {
		if got := modalityLabel(tt.in); got != tt.want {
			t.Errorf("modalityLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
