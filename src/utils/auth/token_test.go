package auth

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	tokens := NewTokenManager("test-secret", "HS256", time.Hour)

	t.Run("issued token carries the subject", func(t *testing.T) {
		token, err := tokens.Issue("alice@example.com")
		require.NoError(t, err)

		subject, err := tokens.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", subject)
	})

	t.Run("expiry follows the configured ttl", func(t *testing.T) {
		token, err := tokens.Issue("alice@example.com")
		require.NoError(t, err)

		parsed, err := jwtauth.VerifyToken(tokens.auth, token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.Expiration(), 5*time.Second)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewTokenManager("test-secret", "HS256", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := expired.Issue("alice@example.com")
		require.NoError(t, err)

		_, err = tokens.Subject(token)
		assert.Error(t, err)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := NewTokenManager("other-secret", "HS256", time.Hour)
		token, err := other.Issue("alice@example.com")
		require.NoError(t, err)

		_, err = tokens.Subject(token)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := tokens.Subject("not.a.token")
		assert.Error(t, err)
	})
}
