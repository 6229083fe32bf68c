package port

//go:generate mockgen -source=resolver_port.go -destination=../mocks/mock_resolver_port.go -package=mock_port

import (
	"context"

	"workbook-auth/app/domain"
)

// IdentitySource is the uniform lookup contract over one membership store.
// Implementations must query with the normalized email and perform no logic
// beyond normalization of their own records. A (nil, false, nil) return
// means the email is not known to this source; an error means the source
// could not be consulted at all.
type IdentitySource interface {
	Name() string
	LookupByEmail(ctx context.Context, email string) (*domain.Member, bool, error)
}

// MembershipResolver runs the prioritized cascade across identity sources.
// Not-found is a non-error result; errors are reserved for misconfiguration
// that must be surfaced.
type MembershipResolver interface {
	Resolve(ctx context.Context, email string) (*domain.Member, bool, error)
}

// PaymentCustomer is a customer record from the payment processor.
type PaymentCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PaymentArtifact is one qualifying purchase: an active subscription, a
// succeeded one-time payment, or a paid invoice.
type PaymentArtifact struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Created     int64  `json:"created"`
}

// PaymentClient is the narrow contract the resolver consumes from the
// payment processor. The core composes these calls; it never models the
// processor internally.
type PaymentClient interface {
	ListCustomersByEmail(ctx context.Context, email string) ([]PaymentCustomer, error)
	ListActiveSubscriptions(ctx context.Context, customerID string) ([]PaymentArtifact, error)
	ListSucceededPayments(ctx context.Context, customerID string) ([]PaymentArtifact, error)
	ListPaidInvoices(ctx context.Context, customerID string) ([]PaymentArtifact, error)
}
