package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"workbook-auth/app/domain"
)

// JWTConfig holds token generation and verification configuration.
type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// accessClaims is the access-token payload. The permission set travels in
// the token but is always recomputed from the role at refresh time.
type accessClaims struct {
	Email       string   `json:"email"`
	DisplayName string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// refreshClaims is the refresh-token payload. The type discriminator keeps
// a refresh token from ever authorizing resource access.
type refreshClaims struct {
	Email     string `json:"email"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

const refreshTokenType = "refresh"

// JWT issues and verifies workbook session tokens. Implements
// port.TokenIssuer and port.TokenVerifier.
type JWT struct {
	cfg JWTConfig
}

// NewJWT creates a token codec from configuration.
func NewJWT(cfg JWTConfig) (*JWT, error) {
	if len(cfg.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, fmt.Errorf("JWT issuer and audience are required")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 24 * time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &JWT{cfg: cfg}, nil
}

// IssueAccessToken generates a signed access token for a resolved member.
func (j *JWT) IssueAccessToken(member *domain.Member, role domain.Role, perms []domain.Permission) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.cfg.AccessTTL)

	permStrings := make([]string, len(perms))
	for i, p := range perms {
		permStrings[i] = string(p)
	}

	claims := accessClaims{
		Email:       member.Email,
		DisplayName: member.DisplayName,
		Role:        string(role),
		Permissions: permStrings,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Audience:  jwt.ClaimStrings{j.cfg.Audience},
			Subject:   member.UserID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// IssueRefreshToken generates a signed refresh token. It carries only the
// identity needed to mint a new access token, never permissions.
func (j *JWT) IssueRefreshToken(member *domain.Member) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.cfg.RefreshTTL)

	claims := refreshClaims{
		Email:     member.Email,
		TokenType: refreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Audience:  jwt.ClaimStrings{j.cfg.Audience},
			Subject:   member.UserID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken decodes and checks an access token, returning the
// session context or a typed failure.
func (j *JWT) VerifyAccessToken(tokenStr string) (*domain.SessionContext, error) {
	claims := &accessClaims{}
	if err := j.parse(tokenStr, claims); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject claim", domain.ErrInvalidToken)
	}
	if claims.Email == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: missing required claims", domain.ErrInvalidToken)
	}

	perms := make([]domain.Permission, len(claims.Permissions))
	for i, p := range claims.Permissions {
		perms[i] = domain.Permission(p)
	}

	return &domain.SessionContext{
		UserID:      userID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Role:        domain.Role(claims.Role),
		Permissions: perms,
		IssuedAt:    claims.IssuedAt.Time,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// VerifyRefreshToken decodes and checks a refresh token.
func (j *JWT) VerifyRefreshToken(tokenStr string) (string, string, error) {
	claims := &refreshClaims{}
	if err := j.parse(tokenStr, claims); err != nil {
		return "", "", err
	}
	if claims.TokenType != refreshTokenType {
		return "", "", fmt.Errorf("%w: expected refresh token", domain.ErrWrongTokenType)
	}
	if claims.Email == "" || claims.Subject == "" {
		return "", "", fmt.Errorf("%w: missing required claims", domain.ErrInvalidToken)
	}
	return claims.Subject, claims.Email, nil
}

// parse runs the shared signature, expiry, issuer and audience checks.
func (j *JWT) parse(tokenStr string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (any, error) {
			return []byte(j.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.cfg.Issuer),
		jwt.WithAudience(j.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return fmt.Errorf("%w: %v", domain.ErrExpiredToken, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
		default:
			return fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
		}
	}
	if !parsed.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}
