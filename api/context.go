package api

import (
	"context"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/services"
)

type keyType string

const (
	principalKey keyType = "principal"
)

// ctxWithPrincipal adds the authenticated principal to the context
func ctxWithPrincipal(ctx context.Context, principal services.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// ctxGetPrincipal retrieves the authenticated principal from the context
func ctxGetPrincipal(ctx context.Context) (services.Principal, error) {
	ctxValue := ctx.Value(principalKey)
	if ctxValue == nil {
		return services.Principal{}, errs.NewUnauthorizedError("no authenticated principal")
	}
	principal, ok := ctxValue.(services.Principal)
	if !ok {
		return services.Principal{}, errs.NewUnauthorizedError("no authenticated principal")
	}
	return principal, nil
}
