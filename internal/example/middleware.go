// Package example implements example middleware in an outside package.
package example

import (
	"context"

	"github.com/advdv/bmock"
	"go.uber.org/zap"
)

// ctxKey type scopes middleware values.
type ctxKey string

// Middleware provides an example for middleware that hands responders a logger scoped to
// the request.
func Middleware(logs *zap.Logger) bmock.Middleware {
	return func(n bmock.Responder) bmock.Responder {
		return bmock.ResponderFunc(func(ctx context.Context, r *bmock.Request) (*bmock.Response, error) {
			logs := logs.With(zap.String("method", r.Method), zap.String("path", r.Path()))
			ctx = context.WithValue(ctx, ctxKey("zap"), logs)

			return n.Respond(ctx, r)
		})
	}
}

// Log returns the logger set by [Middleware], or a no-op logger outside of it.
func Log(ctx context.Context) *zap.Logger {
	if v, ok := ctx.Value(ctxKey("zap")).(*zap.Logger); ok {
		return v
	}

	return zap.NewNop()
}
