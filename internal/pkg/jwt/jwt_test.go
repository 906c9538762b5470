package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, ok := NewJWTService("test-secret-key", "15m", "168h").(*JWTService)
	require.True(t, ok)
	return svc
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, expiresAt, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	employeeID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, _, err := svc.GenerateAccessToken("emp-1", "asha@example.com", employee.RoleEmployee, employee.GenderFemale)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokedRefreshTokenRejected(t *testing.T) {
	svc := newTestJWTService(t)

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	svc.RevokeToken(token)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRevokeTokenSweepsExpiredEntries(t *testing.T) {
	svc := newTestJWTService(t)

	// Entries whose tokens expired long ago are dropped on the next revoke.
	svc.revokedTokens["stale-token"] = time.Now().Add(-time.Hour).Unix()
	svc.revokedTokens["fresh-token"] = time.Now().Add(time.Hour).Unix()

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)
	svc.RevokeToken(token)

	assert.False(t, svc.IsTokenRevoked("stale-token"))
	assert.True(t, svc.IsTokenRevoked("fresh-token"))
	assert.True(t, svc.IsTokenRevoked(token))

	// The denylisted entry carries the token's own expiry, not the revoke time.
	svc.mu.RLock()
	exp := svc.revokedTokens[token]
	svc.mu.RUnlock()
	assert.Greater(t, exp, time.Now().Add(167*time.Hour).Unix())
}
