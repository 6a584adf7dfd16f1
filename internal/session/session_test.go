package session

import (
	"context"
	"net/http/httptest"
	"testing"

	"threadline-be/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("Authenticated user wins over session header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set(SessionHeader, "sess-123")
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, "user_9")
		req = req.WithContext(ctx)

		owner, err := Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "user_9", owner.Key())
		assert.Equal(t, "sess-123", owner.SessionID)
		assert.False(t, owner.Anonymous())
	})

	t.Run("Session token alone", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set(SessionHeader, "sess-123")

		owner, err := Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "sess-123", owner.Key())
		assert.True(t, owner.Anonymous())
	})

	t.Run("Neither identity fails closed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)

		_, err := Resolve(req)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})
}
