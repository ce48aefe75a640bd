package services

import (
	"context"

	"github.com/google/uuid"
)

type ownerCtxKey string

const ownerKey ownerCtxKey = "owner"

// Owner is the authenticated identity resolved by the external auth
// provider's token. Email is the contact address carried in the token claims.
type Owner struct {
	ID    uuid.UUID
	Email string
}

func WithOwnerContext(ctx context.Context, owner Owner) context.Context {
	return context.WithValue(ctx, ownerKey, owner)
}

func OwnerFromContext(ctx context.Context) (Owner, bool) {
	owner, ok := ctx.Value(ownerKey).(Owner)
	return owner, ok
}
