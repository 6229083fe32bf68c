package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
)

// Adapter wraps a PaymentClient as an identity source. A member is
// "verified" here when the processor knows a customer for the email and
// that customer has at least one qualifying artifact.
//
// Artifact categories are scanned in a fixed sub-order: active
// subscriptions, then succeeded one-time payments, then paid invoices. The
// first qualifying artifact determines the tier via the monetary mapping,
// not the highest one; this preserves the behavior the business currently
// depends on.
type Adapter struct {
	client  port.PaymentClient
	timeout time.Duration
	logger  *slog.Logger
}

// NewAdapter creates a payment-processor identity source.
func NewAdapter(client port.PaymentClient, timeout time.Duration, logger *slog.Logger) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{
		client:  client,
		timeout: timeout,
		logger:  logger.With("component", "payments_source"),
	}
}

// Name implements port.IdentitySource.
func (a *Adapter) Name() string {
	return domain.SourcePayments
}

// LookupByEmail implements port.IdentitySource. Every processor call is
// bounded by the adapter timeout; a timeout is an adapter error, which the
// resolver treats as not-found for this source.
func (a *Adapter) LookupByEmail(ctx context.Context, email string) (*domain.Member, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	customers, err := a.client.ListCustomersByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("%w: list customers: %v", domain.ErrSourceUnavailable, err)
	}

	for _, customer := range customers {
		member, found, err := a.qualify(ctx, email, customer)
		if err != nil {
			return nil, false, err
		}
		if found {
			return member, true, nil
		}
	}
	return nil, false, nil
}

type artifactCategory struct {
	name string
	list func(ctx context.Context, customerID string) ([]port.PaymentArtifact, error)
}

func (a *Adapter) qualify(ctx context.Context, email string, customer port.PaymentCustomer) (*domain.Member, bool, error) {
	categories := []artifactCategory{
		{"subscription", a.client.ListActiveSubscriptions},
		{"payment", a.client.ListSucceededPayments},
		{"invoice", a.client.ListPaidInvoices},
	}

	for _, category := range categories {
		artifacts, err := category.list(ctx, customer.ID)
		if err != nil {
			return nil, false, fmt.Errorf("%w: list %ss: %v", domain.ErrSourceUnavailable, category.name, err)
		}

		for _, artifact := range artifacts {
			tier, ok := domain.TierFromAmount(artifact.AmountCents)
			if !ok {
				continue
			}

			a.logger.Debug("qualifying artifact found",
				"category", category.name,
				"tier", tier)

			member := &domain.Member{
				Email:           email,
				DisplayName:     customer.Name,
				MembershipType:  tier,
				IsActive:        true,
				JoinDate:        time.Unix(artifact.Created, 0).UTC(),
				SourceID:        domain.SourcePayments,
				SourceReference: artifact.ID,
			}
			return member, true, nil
		}
	}
	return nil, false, nil
}
