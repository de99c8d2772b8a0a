package supabase

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyFormat tells how a project key is encoded.
type KeyFormat string

const (
	// KeyFormatJWT is the legacy format: an HS256 token carrying a role claim.
	KeyFormatJWT KeyFormat = "jwt"
	// KeyFormatOpaque covers publishable keys ("sb_publishable_...") and
	// anything else that does not parse as a token.
	KeyFormatOpaque KeyFormat = "opaque"
)

const (
	RoleAnon        = "anon"
	RoleServiceRole = "service_role"
)

// KeyInfo is what can be learned from a key without verifying it.
type KeyInfo struct {
	Format     KeyFormat
	Role       string
	Issuer     string
	ProjectRef string
	ExpiresAt  time.Time
}

// Privileged reports whether the key bypasses row level security.
func (k KeyInfo) Privileged() bool {
	return k.Role == RoleServiceRole
}

// Expired reports whether the key carries an expiry earlier than now.
func (k KeyInfo) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && k.ExpiresAt.Before(now)
}

// InspectKey reads the claims of a legacy JWT key. The signature is not
// verified: the secret belongs to the project, not to the client.
func InspectKey(key string) KeyInfo {
	if strings.Count(key, ".") != 2 {
		return KeyInfo{Format: KeyFormatOpaque}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return KeyInfo{Format: KeyFormatOpaque}
	}

	info := KeyInfo{Format: KeyFormatJWT}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if ref, ok := claims["ref"].(string); ok {
		info.ProjectRef = ref
	}
	if iss, err := claims.GetIssuer(); err == nil {
		info.Issuer = iss
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info
}
