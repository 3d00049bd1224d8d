// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// password hashing, and other common operations.
package utils

import (
	"context"

	"github.com/reut-b/profile-site/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key used to store the authenticated session user
// in the context. Set by the session middleware after a successful cookie
// lookup; read by protected handlers via GetSessionUserFromContext.
var SessionUserCtxKey = contextKey("sessionUser")

// SessionIDCtxKey is the key used to store the raw session identifier in the
// context, so that handlers such as logout can destroy the session without
// re-reading the cookie.
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionUserFromContext retrieves the sanitized session user from the
// context.
//
// Returns the user view and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetSessionUserFromContext(ctx context.Context) (models.UserView, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(models.UserView)
	return user, ok
}

// GetSessionIDFromContext retrieves the session identifier from the context.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
