package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceForTest(now time.Time) *HMACService {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	svc.now = func() time.Time { return now }
	return svc
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newServiceForTest(time.Now())
	actorID := uuid.New()

	tok, err := svc.GenerateAccessToken(actorID, ActorEmployer, "sam@acme.example")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, actorID, claims.ActorID)
	assert.Equal(t, ActorEmployer, claims.ActorType)
	assert.Equal(t, "sam@acme.example", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.False(t, svc.IsRefreshToken(claims))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newServiceForTest(time.Now())
	actorID := uuid.New()

	tok, err := svc.GenerateRefreshToken(actorID, ActorCandidate)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, ActorCandidate, claims.ActorType)
	assert.Empty(t, claims.Email)
	assert.True(t, svc.IsRefreshToken(claims))
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newServiceForTest(time.Now().Add(-time.Hour))

	tok, err := svc.GenerateAccessToken(uuid.New(), ActorEmployer, "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestForeignSecretRejected(t *testing.T) {
	svc := newServiceForTest(time.Now())
	other := NewHMACService("other-access", "other-refresh", 15*time.Minute, 24*time.Hour)

	tok, err := other.GenerateAccessToken(uuid.New(), ActorEmployer, "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := newServiceForTest(time.Now())

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
