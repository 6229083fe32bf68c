package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the coarse access tier derived from a membership type.
type Role string

const (
	RoleBasic   Role = "basic"
	RolePremium Role = "premium"
	RoleVIP     Role = "vip"
)

// Permission is a capability string gating a specific action.
type Permission string

const (
	PermissionContentView    Permission = "content:view"
	PermissionProgressTrack  Permission = "progress:track"
	PermissionAudioRecord    Permission = "audio:record"
	PermissionTranscriptView Permission = "transcript:view"
	PermissionSessionVIP     Permission = "session:vip"
	PermissionExportData     Permission = "export:data"
)

// roleTable maps a membership tier to a role. The mapping is a fixed table,
// never inferred from other claims.
var roleTable = map[MembershipType]Role{
	MembershipBasic:   RoleBasic,
	MembershipPro:     RolePremium,
	MembershipPremium: RolePremium,
	MembershipVIP:     RoleVIP,
	MembershipFounder: RoleVIP,
}

// permissionTable maps a role to its fixed permission set. Permissions are
// always a pure function of the role; they are never accepted from a client
// or set ad hoc.
var permissionTable = map[Role][]Permission{
	RoleBasic: {
		PermissionContentView,
		PermissionProgressTrack,
	},
	RolePremium: {
		PermissionContentView,
		PermissionProgressTrack,
		PermissionAudioRecord,
		PermissionTranscriptView,
	},
	RoleVIP: {
		PermissionContentView,
		PermissionProgressTrack,
		PermissionAudioRecord,
		PermissionTranscriptView,
		PermissionSessionVIP,
		PermissionExportData,
	},
}

// RoleFromMembership maps a membership tier to a role. Unknown tiers fall
// back to basic rather than failing the login.
func RoleFromMembership(t MembershipType) Role {
	if role, ok := roleTable[t]; ok {
		return role
	}
	return RoleBasic
}

// PermissionsForRole returns a copy of the fixed permission set for a role.
func PermissionsForRole(role Role) []Permission {
	perms, ok := permissionTable[role]
	if !ok {
		perms = permissionTable[RoleBasic]
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// SessionContext is the decoded identity attached to a request after token
// verification.
type SessionContext struct {
	UserID      uuid.UUID    `json:"user_id"`
	Email       string       `json:"email"`
	DisplayName string       `json:"display_name"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
	IssuedAt    time.Time    `json:"issued_at"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// HasPermission is a pure set-membership check; it performs no I/O.
func (s *SessionContext) HasPermission(p Permission) bool {
	for _, have := range s.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// UserInfo is the redacted payload returned to the client after login.
// It carries no secrets and no raw source reference.
type UserInfo struct {
	UserID      uuid.UUID    `json:"user_id"`
	Email       string       `json:"email"`
	DisplayName string       `json:"display_name"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// TokenPair holds the two credentials minted at login.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}
