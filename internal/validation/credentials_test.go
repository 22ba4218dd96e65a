package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid email",
			email: "alice@example.com",
		},
		{
			name:  "valid email with plus",
			email: "alice+bets@example.com",
		},
		{
			name:  "valid email with subdomain",
			email: "alice@mail.example.co.uk",
		},
		{
			name:    "empty",
			email:   "",
			wantErr: true,
			errMsg:  "email cannot be empty",
		},
		{
			name:    "missing at",
			email:   "alice.example.com",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "missing domain dot",
			email:   "alice@localhost",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "contains space",
			email:   "alice smith@example.com",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "too long",
			email:   strings.Repeat("a", 250) + "@x.com",
			wantErr: true,
			errMsg:  "must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid password - exactly 8 chars",
			password: "pass1234",
		},
		{
			name:     "valid password - long",
			password: "super_secret_password_123",
		},
		{
			name:     "empty",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
		{
			name:     "too short",
			password: "pass123",
			wantErr:  true,
			errMsg:   "must be at least 8 characters",
		},
		{
			name:     "too long",
			password: strings.Repeat("a", 129),
			wantErr:  true,
			errMsg:   "must not exceed 128 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
