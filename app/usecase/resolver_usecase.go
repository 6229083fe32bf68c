package usecase

import (
	"context"
	"log/slog"
	"time"

	"workbook-auth/app/domain"
	"workbook-auth/app/port"
)

// ResolverUsecase runs the prioritized membership cascade. Sources are
// consulted strictly in the configured order, sequentially; the first
// positive match wins and is returned as-is, tagged with its source.
// Records from different sources are never merged, so a tier disagreement
// between sources resolves by priority rather than by freshness.
type ResolverUsecase struct {
	sources []port.IdentitySource
	timeout time.Duration
	logger  *slog.Logger
}

// NewResolverUsecase creates a resolver over the given sources. Order is
// the priority order.
func NewResolverUsecase(sources []port.IdentitySource, timeout time.Duration, logger *slog.Logger) *ResolverUsecase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ResolverUsecase{
		sources: sources,
		timeout: timeout,
		logger:  logger.With("component", "resolver"),
	}
}

// Resolve implements port.MembershipResolver. Not-found is a non-error
// result. A source that errors or times out is logged and skipped, so one
// outage degrades accuracy for that source only and never blocks the
// cascade.
//
// Parallelizing the sources would let a lower-priority source win a race;
// the sequential walk is a correctness requirement, not a missed
// optimization.
func (r *ResolverUsecase) Resolve(ctx context.Context, email string) (*domain.Member, bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, false, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	for _, source := range r.sources {
		member, found, err := source.LookupByEmail(ctx, email)
		if err != nil {
			// Treated as not-found for this source; never as verified.
			r.logger.Warn("identity source unavailable, skipping",
				"source", source.Name(),
				"error", err)
			continue
		}
		if found {
			r.logger.Debug("member resolved",
				"source", source.Name(),
				"membership_type", member.MembershipType)
			return member, true, nil
		}
	}

	return nil, false, nil
}
