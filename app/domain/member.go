package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MembershipType represents the tier a member purchased. The value is
// source-defined and carried through as-is; it is not re-validated here.
type MembershipType string

const (
	MembershipBasic   MembershipType = "Basic"
	MembershipPro     MembershipType = "Pro"
	MembershipPremium MembershipType = "Premium"
	MembershipVIP     MembershipType = "VIP"
	MembershipFounder MembershipType = "Founder"
)

// Source identifiers for the identity adapters, in cascade priority order.
const (
	SourceSnapshot  = "snapshot"
	SourceRoster    = "roster"
	SourcePayments  = "payments"
	SourceAllowlist = "allowlist"
)

// Member is the resolved identity record returned by the membership
// resolver. It is constructed fresh on each resolution, never cached, and
// treated as immutable once returned.
type Member struct {
	Email           string         `json:"email"`
	DisplayName     string         `json:"display_name"`
	MembershipType  MembershipType `json:"membership_type"`
	IsActive        bool           `json:"is_active"`
	JoinDate        time.Time      `json:"join_date"`
	SourceID        string         `json:"source_id"`
	SourceReference string         `json:"source_reference"`
}

// memberNamespace scopes UUIDv5 derivation of user IDs from emails.
var memberNamespace = uuid.MustParse("8f1b4f52-0c7e-4f6a-9d1e-2b6de41c9a55")

// UserID derives a stable user identifier from the member's normalized
// email. Members resolved from different sources at different times get the
// same ID for the same email.
func (m *Member) UserID() uuid.UUID {
	return uuid.NewSHA1(memberNamespace, []byte(NormalizeEmail(m.Email)))
}

// NormalizeEmail case-folds and trims an email for lookup. Every identity
// source must be queried with the normalized form, never the raw input.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the email shape locally, before any source lookup.
func ValidateEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}

// Monetary thresholds (in cents) mapping a paid amount to a membership
// tier. Used by the payment-processor adapter when a customer record has no
// explicit tier.
const (
	amountVIPCents     = 150000
	amountPremiumCents = 100000
	amountProCents     = 50000
)

// TierFromAmount maps a paid amount in cents to a membership tier.
// Amounts of zero or less do not qualify.
func TierFromAmount(amountCents int64) (MembershipType, bool) {
	switch {
	case amountCents >= amountVIPCents:
		return MembershipVIP, true
	case amountCents >= amountPremiumCents:
		return MembershipPremium, true
	case amountCents >= amountProCents:
		return MembershipPro, true
	case amountCents > 0:
		return MembershipBasic, true
	default:
		return "", false
	}
}
