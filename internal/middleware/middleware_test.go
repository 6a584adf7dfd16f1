package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtKey)
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("No header passes through unauthenticated", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := UserIDFromContext(r.Context())
			assert.False(t, ok)
		})

		req := httptest.NewRequest("GET", "/cart", nil)
		AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)
	})

	t.Run("Valid token sets subject", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := UserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "user_2x1", id)
		})

		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "user_2x1"))
		AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)
	})

	t.Run("Garbage token passes through unauthenticated", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := UserIDFromContext(r.Context())
			assert.False(t, ok)
		})

		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Allows within burst", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("X-Session-ID", "sess-limit-ok")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejects beyond strict burst", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/sync-products", nil)
			req.Header.Set("X-Session-ID", "sess-limit-strict")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Tiers have separate buckets", func(t *testing.T) {
		// Exhausting the strict bucket must not affect general traffic.
		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("X-Session-ID", "sess-limit-strict")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("Sync is strict", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/sync-products", nil)
		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "strict", tier)
	})

	t.Run("Default is general", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)
		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "general", tier)
	})
}
