package allowlist

import (
	"context"
	"time"

	"workbook-auth/app/domain"
)

// entry is one hardcoded fallback account.
type entry struct {
	name string
	tier domain.MembershipType
}

// accounts is the legacy static allowlist: ops and test accounts that must
// keep working regardless of the state of the external sources. Last in
// the resolution cascade.
var accounts = map[string]entry{
	"test@6fb.com":    {name: "Test Account", tier: domain.MembershipBasic},
	"ops@6fb.com":     {name: "Operations", tier: domain.MembershipVIP},
	"support@6fb.com": {name: "Support", tier: domain.MembershipPremium},
}

// Source serves lookups from the static allowlist.
type Source struct{}

// NewSource creates the legacy allowlist source.
func NewSource() *Source {
	return &Source{}
}

// Name implements port.IdentitySource.
func (s *Source) Name() string {
	return domain.SourceAllowlist
}

// LookupByEmail implements port.IdentitySource. Purely local; never fails.
func (s *Source) LookupByEmail(ctx context.Context, email string) (*domain.Member, bool, error) {
	acct, ok := accounts[email]
	if !ok {
		return nil, false, nil
	}

	member := &domain.Member{
		Email:           email,
		DisplayName:     acct.name,
		MembershipType:  acct.tier,
		IsActive:        true,
		JoinDate:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		SourceID:        domain.SourceAllowlist,
		SourceReference: "static",
	}
	return member, true, nil
}
