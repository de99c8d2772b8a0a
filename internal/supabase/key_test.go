package supabase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signKey(t *testing.T, claims map[string]any) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	signed, err := token.SignedString([]byte("super-secret-jwt-token-with-at-least-32-characters"))
	require.NoError(t, err)
	return signed
}

func TestInspectKey_AnonJWT(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	key := signKey(t, map[string]any{
		"iss":  "supabase",
		"ref":  "xyzcompany",
		"role": RoleAnon,
		"exp":  exp.Unix(),
	})

	info := InspectKey(key)

	assert.Equal(t, KeyFormatJWT, info.Format)
	assert.Equal(t, RoleAnon, info.Role)
	assert.Equal(t, "supabase", info.Issuer)
	assert.Equal(t, "xyzcompany", info.ProjectRef)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.False(t, info.Privileged())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspectKey_ServiceRole(t *testing.T) {
	info := InspectKey(signKey(t, map[string]any{"role": RoleServiceRole}))

	assert.Equal(t, KeyFormatJWT, info.Format)
	assert.True(t, info.Privileged())
	assert.True(t, info.ExpiresAt.IsZero())
}

func TestInspectKey_Expired(t *testing.T) {
	info := InspectKey(signKey(t, map[string]any{
		"role": RoleAnon,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}))

	assert.True(t, info.Expired(time.Now()))
}

func TestInspectKey_Opaque(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "publishable key", key: "sb_publishable_abc123"},
		{name: "empty", key: ""},
		{name: "three garbage segments", key: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := InspectKey(tt.key)
			assert.Equal(t, KeyInfo{Format: KeyFormatOpaque}, info)
		})
	}
}
