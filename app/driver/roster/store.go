package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"workbook-auth/app/domain"
)

// MemberEvent is one membership change delivered by the community-platform
// webhook.
type MemberEvent struct {
	Type   EventType `json:"type"`
	Member Entry     `json:"member"`
}

// EventType enumerates the webhook event kinds the store applies.
type EventType string

const (
	EventMemberAdded   EventType = "member_added"
	EventMemberUpdated EventType = "member_updated"
	EventMemberRemoved EventType = "member_removed"
)

// Entry is one synced roster record.
type Entry struct {
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	MembershipType string    `json:"membership_type"`
	Active         bool      `json:"active"`
	JoinedAt       time.Time `json:"joined_at"`
	Reference      string    `json:"reference"`
}

// Store is the webhook-synced roster: a near-real-time mirror of the
// community platform's membership, kept in memory and updated one event at
// a time. Second in the resolution cascade.
type Store struct {
	logger *slog.Logger

	mu       sync.RWMutex
	members  map[string]Entry
	syncedAt time.Time
}

// NewStore creates an empty roster store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		logger:  logger.With("component", "roster_store"),
		members: make(map[string]Entry),
	}
}

// Name implements port.IdentitySource.
func (s *Store) Name() string {
	return domain.SourceRoster
}

// LookupByEmail implements port.IdentitySource.
func (s *Store) LookupByEmail(ctx context.Context, email string) (*domain.Member, bool, error) {
	s.mu.RLock()
	entry, ok := s.members[email]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	member := &domain.Member{
		Email:           email,
		DisplayName:     entry.Name,
		MembershipType:  domain.MembershipType(entry.MembershipType),
		IsActive:        entry.Active,
		JoinDate:        entry.JoinedAt,
		SourceID:        domain.SourceRoster,
		SourceReference: entry.Reference,
	}
	return member, true, nil
}

// Apply ingests one webhook event. Unknown event types are rejected so a
// platform-side schema change is noticed instead of silently dropped.
func (s *Store) Apply(event MemberEvent) error {
	email := domain.NormalizeEmail(event.Member.Email)
	if email == "" {
		return fmt.Errorf("%w: member email is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case EventMemberAdded, EventMemberUpdated:
		entry := event.Member
		entry.Email = email
		s.members[email] = entry
	case EventMemberRemoved:
		delete(s.members, email)
	default:
		return fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, event.Type)
	}

	s.syncedAt = time.Now()
	s.logger.Debug("roster event applied", "type", event.Type, "members", len(s.members))
	return nil
}

// Size returns the number of synced entries, for health reporting.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// LastSyncedAt returns the time of the most recent applied event.
func (s *Store) LastSyncedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncedAt
}
