package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"workbook-auth/app/domain"
)

func TestAuthError_GenericMessage(t *testing.T) {
	tests := []struct {
		name     string
		category string
		cause    error
	}{
		{name: "unknown member", category: domain.FailureNotMember, cause: nil},
		{name: "wrong access code", category: domain.FailureWrongAccessCode, cause: nil},
		{name: "inactive member", category: domain.FailureInactiveMember, cause: nil},
		{name: "with cause", category: domain.FailureInvalidEmail, cause: errors.New("parse failure")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.NewAuthError(tt.category, tt.cause)

			// Every category must present the same client-facing message.
			assert.Equal(t, "authentication failed", err.Error())
			assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
			assert.Equal(t, tt.category, err.Category)
		})
	}
}

func TestAuthError_CategoryNotLeaked(t *testing.T) {
	err := domain.NewAuthError(domain.FailureWrongAccessCode, nil)
	assert.NotContains(t, err.Error(), domain.FailureWrongAccessCode)
}
