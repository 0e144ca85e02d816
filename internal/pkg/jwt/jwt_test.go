package jwt

import (
	"testing"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")

	workerID := "w1"
	token, expiresAt, err := svc.GenerateToken("u1", "ana", user.RoleWorker, &workerID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")

	assert.False(t, svc.IsTokenRevoked("some-token"))

	svc.RevokeToken("some-token")
	assert.True(t, svc.IsTokenRevoked("some-token"))
	assert.False(t, svc.IsTokenRevoked("other-token"))
}

func TestRevokeToken_SweepsExpiredEntries(t *testing.T) {
	svc := NewJWTService("test-secret", "8h").(*JWTService)

	// An entry past its forget-after deadline belongs to a token that
	// already expired; revocation no longer matters for it.
	svc.revokedTokens["stale-token"] = time.Now().Add(-time.Minute).Unix()
	svc.revokedTokens["live-token"] = time.Now().Add(time.Hour).Unix()

	svc.RevokeToken("fresh-token")

	assert.False(t, svc.IsTokenRevoked("stale-token"))
	assert.True(t, svc.IsTokenRevoked("live-token"))
	assert.True(t, svc.IsTokenRevoked("fresh-token"))

	deadline, ok := svc.revokedTokens["fresh-token"]
	require.True(t, ok)
	assert.Greater(t, deadline, time.Now().Unix(), "revocation must be kept for the token's full lifetime")
}
