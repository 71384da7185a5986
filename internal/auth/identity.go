package auth

import (
	"context"
	"errors"
)

var ErrNoIdentity = errors.New("no user identity in context")

type userIDKey struct{}

// IdentityProvider resolves the user a request acts for.
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

// ContextIdentity reads the user id the auth middleware stored in the request context.
type ContextIdentity struct{}

var _ IdentityProvider = ContextIdentity{}

func (ContextIdentity) CurrentUserID(ctx context.Context) (string, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", ErrNoIdentity
	}
	return userID, nil
}
