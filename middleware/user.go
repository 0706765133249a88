// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"

	"github.com/pollbase/pollbase/models"
	"github.com/pollbase/pollbase/session"
)

// SessionCookie is the name of the session cookie
const SessionCookie = "pollbase_session"

type contextKey int

const userKey contextKey = 0

// WithUser resolves the session cookie once per request and, when the
// token maps to a live session, stores the user in the request context.
// Requests without a valid session still pass through; handlers that
// need authentication use RequireUser.
func WithUser(sessions session.Gateway, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			if user, err := sessions.UserForToken(cookie.Value); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}
		}
		next(w, r)
	}
}

// RequireUser rejects requests that did not resolve to an authenticated
// user with a 401.
func RequireUser(sessions session.Gateway, next http.HandlerFunc) http.HandlerFunc {
	return WithUser(sessions, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r); !ok {
			ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
			return
		}
		next(w, r)
	})
}

// UserFrom returns the authenticated user stored on the request context.
func UserFrom(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userKey).(models.User)
	return user, ok
}
