package email

import (
	"context"
	"errors"
	"testing"
)

func TestSend_Disabled(t *testing.T) {
	client, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.Enabled() {
		t.Error("Expected client to be disabled")
	}

	err = client.Send(context.Background(), Message{
		To:       []string{"juana@example.com"},
		Subject:  "hola",
		TextBody: "hola",
	})
	if !errors.As(err, &ErrDisabled{}) {
		t.Errorf("Send on disabled client = %v, want ErrDisabled", err)
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	tests := []struct {
		name        string
		from        string
		msg         Message
		expectError bool
	}{
		{
			name:        "missing from",
			from:        "",
			msg:         Message{To: []string{"a@b.com"}, Subject: "s", TextBody: "b"},
			expectError: true,
		},
		{
			name:        "missing subject",
			from:        "noreply@turnos.app",
			msg:         Message{To: []string{"a@b.com"}, TextBody: "b"},
			expectError: true,
		},
		{
			name:        "missing body",
			from:        "noreply@turnos.app",
			msg:         Message{To: []string{"a@b.com"}, Subject: "s"},
			expectError: true,
		},
		{
			name:        "text only",
			from:        "noreply@turnos.app",
			msg:         Message{To: []string{"a@b.com"}, Subject: "s", TextBody: "b"},
			expectError: false,
		},
		{
			name:        "html only",
			from:        "noreply@turnos.app",
			msg:         Message{To: []string{"a@b.com"}, Subject: "s", HTMLBody: "<p>b</p>"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
