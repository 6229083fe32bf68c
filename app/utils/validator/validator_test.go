package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"workbook-auth/app/utils/validator"
)

type loginPayload struct {
	Email      string `json:"email" validate:"required,email,max=254"`
	AccessCode string `json:"access_code" validate:"required,access_code"`
}

func TestValidator_Validate(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name     string
		payload  loginPayload
		wantErr  bool
		errField string
	}{
		{
			name:    "valid payload",
			payload: loginPayload{Email: "member@example.com", AccessCode: "super-secret-code"},
			wantErr: false,
		},
		{
			name:     "missing email",
			payload:  loginPayload{AccessCode: "super-secret-code"},
			wantErr:  true,
			errField: "email",
		},
		{
			name:     "bad email",
			payload:  loginPayload{Email: "not-an-email", AccessCode: "super-secret-code"},
			wantErr:  true,
			errField: "email",
		},
		{
			name:     "email too long",
			payload:  loginPayload{Email: strings.Repeat("a", 250) + "@example.com", AccessCode: "super-secret-code"},
			wantErr:  true,
			errField: "email",
		},
		{
			name:     "access code too short",
			payload:  loginPayload{Email: "member@example.com", AccessCode: "short"},
			wantErr:  true,
			errField: "access_code",
		},
		{
			name:     "access code too long",
			payload:  loginPayload{Email: "member@example.com", AccessCode: strings.Repeat("x", 129)},
			wantErr:  true,
			errField: "access_code",
		},
		{
			name:     "access code with control characters",
			payload:  loginPayload{Email: "member@example.com", AccessCode: "secret\x00code"},
			wantErr:  true,
			errField: "access_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.payload)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			// Error messages use the JSON field name.
			validationErr, ok := err.(*validator.ValidationError)
			if assert.True(t, ok) {
				assert.Contains(t, validationErr.Errors, tt.errField)
			}
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.ValidateVar("member@example.com", "email"))
	assert.Error(t, v.ValidateVar("nope", "email"))
	assert.NoError(t, v.ValidateVar("a-valid-access-code", "access_code"))
	assert.Error(t, v.ValidateVar("short", "access_code"))
}
