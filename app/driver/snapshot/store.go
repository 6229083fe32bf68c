package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"workbook-auth/app/domain"
)

// rosterFile is the on-disk shape of a snapshot export.
type rosterFile struct {
	ExportedAt time.Time     `yaml:"exported_at"`
	Members    []rosterEntry `yaml:"members"`
}

type rosterEntry struct {
	Email          string    `yaml:"email"`
	Name           string    `yaml:"name"`
	MembershipType string    `yaml:"membership_type"`
	Active         bool      `yaml:"active"`
	JoinedAt       time.Time `yaml:"joined_at"`
	Reference      string    `yaml:"reference"`
}

// Store serves lookups from a periodically re-imported roster file. The
// file represents a manually curated export, which is why the snapshot
// source sits first in the resolution cascade.
//
// The file is loaded lazily and re-read when its mtime changes, at most
// once per check interval. Concurrent reload attempts are collapsed with
// singleflight so a large file is parsed once.
type Store struct {
	path          string
	checkInterval time.Duration
	logger        *slog.Logger

	mu         sync.RWMutex
	members    map[string]rosterEntry
	loadedAt   time.Time
	modTime    time.Time
	lastCheck  time.Time
	reloadOnce singleflight.Group
}

// NewStore creates a snapshot store for the given roster file path.
func NewStore(path string, checkInterval time.Duration, logger *slog.Logger) *Store {
	if checkInterval <= 0 {
		checkInterval = time.Minute
	}
	return &Store{
		path:          path,
		checkInterval: checkInterval,
		logger:        logger.With("component", "snapshot_store"),
	}
}

// Name implements port.IdentitySource.
func (s *Store) Name() string {
	return domain.SourceSnapshot
}

// LookupByEmail implements port.IdentitySource. The email must already be
// normalized by the caller; the store normalizes its own records at load
// time so the lookup is a plain map hit.
func (s *Store) LookupByEmail(ctx context.Context, email string) (*domain.Member, bool, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, false, fmt.Errorf("%w: snapshot: %v", domain.ErrSourceUnavailable, err)
	}

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
		SourceID:        domain.SourceSnapshot,
		SourceReference: entry.Reference,
	}
	return member, true, nil
}

// ensureFresh reloads the roster when the file changed. Stat checks are
// throttled to the configured interval so hot lookups stay cheap.
func (s *Store) ensureFresh(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.members != nil
	recentlyChecked := time.Since(s.lastCheck) < s.checkInterval
	s.mu.RUnlock()

	if loaded && recentlyChecked {
		return nil
	}

	_, err, _ := s.reloadOnce.Do("reload", func() (interface{}, error) {
		return nil, s.reload()
	})
	return err
}

func (s *Store) reload() error {
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat roster file: %w", err)
	}

	s.mu.Lock()
	s.lastCheck = time.Now()
	unchanged := s.members != nil && info.ModTime().Equal(s.modTime)
	s.mu.Unlock()
	if unchanged {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse roster file: %w", err)
	}

	members := make(map[string]rosterEntry, len(file.Members))
	for _, entry := range file.Members {
		members[domain.NormalizeEmail(entry.Email)] = entry
	}

	s.mu.Lock()
	s.members = members
	s.loadedAt = time.Now()
	s.modTime = info.ModTime()
	s.mu.Unlock()

	s.logger.Info("snapshot roster loaded",
		"path", s.path,
		"members", len(members),
		"exported_at", file.ExportedAt)
	return nil
}

// Size returns the number of loaded entries, for health reporting.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}
