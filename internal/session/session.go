package session

import (
	"errors"
	"net/http"

	"threadline-be/internal/middleware"
)

// SessionHeader carries the client-generated anonymous session token.
const SessionHeader = "X-Session-ID"

var ErrNoIdentity = errors.New("no user or session identity supplied")

// Owner is the identity a cart is scoped to. At most one side is the
// effective key: an authenticated user id always wins over the session token.
type Owner struct {
	UserID    string
	SessionID string
}

// Key returns the owner key used to scope cart lookups.
func (o Owner) Key() string {
	if o.UserID != "" {
		return o.UserID
	}
	return o.SessionID
}

func (o Owner) Anonymous() bool {
	return o.UserID == ""
}

// Resolve derives the cart owner from the authenticated subject (set by the
// auth middleware) or the session header. Requests carrying neither fail
// closed: sharing one fallback cart between unrelated anonymous callers is
// worse than rejecting the request.
func Resolve(r *http.Request) (Owner, error) {
	owner := Owner{
		SessionID: r.Header.Get(SessionHeader),
	}

	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		owner.UserID = userID
	}

	if owner.UserID == "" && owner.SessionID == "" {
		return Owner{}, ErrNoIdentity
	}

	return owner, nil
}
