package auth

import (
	"context"

	"github.com/wise/expenses-tracker/internal/user"
)

type contextKey int

const principalContextKey contextKey = iota

// Principal is the resolved identity for the current request. It is installed
// once by the authentication filter and never replaced afterwards.
type Principal struct {
	User      *user.User
	Authority string
}

func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*Principal)
	return principal, ok && principal != nil
}

// UserIDFromContext is a convenience for handlers that only need the owner id.
func UserIDFromContext(ctx context.Context) (string, bool) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", false
	}
	return principal.User.ID, true
}
