package api

import (
	"context"

	"github.com/folioforge/portfolio-backend/errs"
	"github.com/folioforge/portfolio-backend/models"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity adds the authenticated identity to the context
func ctxWithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// ctxGetIdentity retrieves the authenticated identity from the context
func ctxGetIdentity(ctx context.Context) (models.Identity, error) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	if !ok {
		return models.Identity{}, errs.Unauthorized
	}
	return identity, nil
}
