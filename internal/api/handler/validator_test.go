package handler

import (
	"strings"
	"testing"
)

func TestValidator_FieldMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "missing required field",
			in:   registerRequest{Email: "alice@example.com", Password: "secret1"},
			want: "please enter your name",
		},
		{
			name: "malformed email",
			in:   registerRequest{Name: "Alice Smith", Email: "not-an-email", Password: "secret1"},
			want: "please enter a valid email address",
		},
		{
			name: "password too short",
			in:   registerRequest{Name: "Alice Smith", Email: "alice@example.com", Password: "pw"},
			want: "password must be at least 5 chars long",
		},
		{
			name: "password too long",
			in:   registerRequest{Name: "Alice Smith", Email: "alice@example.com", Password: strings.Repeat("x", 30)},
			want: "password must not be more than 25 chars long",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidator_ValidPayload(t *testing.T) {
	v := NewValidator()

	req := registerRequest{Name: "Alice Smith", Email: "alice@example.com", Password: "secret1"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
