package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsRoundTrip(t *testing.T) {
	s, err := NewSessions("secret", 0)
	require.NoError(t, err)

	token, err := s.Issue("user-1")
	require.NoError(t, err)

	userID, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionsWithoutTTLHaveNoExpiry(t *testing.T) {
	s, err := NewSessions("secret", 0)
	require.NoError(t, err)

	token, err := s.Issue("user-1")
	require.NoError(t, err)

	var claims Claims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)

	// Far in the future the token is still accepted.
	s.now = func() time.Time { return time.Now().Add(10 * 365 * 24 * time.Hour) }
	_, err = s.Verify(token)
	assert.NoError(t, err)
}

func TestSessionsExpireWhenTTLSet(t *testing.T) {
	s, err := NewSessions("secret", time.Hour)
	require.NoError(t, err)

	token, err := s.Issue("user-1")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionsRejectBadTokens(t *testing.T) {
	s, err := NewSessions("secret", 0)
	require.NoError(t, err)

	other, err := NewSessions("other-secret", 0)
	require.NoError(t, err)

	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":     "",
		"malformed": "not.a.token",
		"foreign":   foreign,
		"alg none":  none,
		"no user":   noUser,
	} {
		_, err := s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestNewSessionsRequiresSecret(t *testing.T) {
	_, err := NewSessions("", 0)
	assert.Error(t, err)

	_, err = NewSessions("secret", -time.Second)
	assert.Error(t, err)
}
