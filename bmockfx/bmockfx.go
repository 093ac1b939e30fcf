// Package bmockfx provides a [bmock.Server] to fx applications under test, so the HTTP
// dependencies of an fx graph can be pointed at a mock.
//
// The graph must provide the testing.TB of the running test:
//
//	var srv *bmock.Server
//	app := fxtest.New(t,
//	    fx.Provide(func() testing.TB { return t }),
//	    bmockfx.Module(),
//	    fx.Populate(&srv),
//	)
//	app.RequireStart()
//	defer app.RequireStop()
package bmockfx

import (
	"context"
	"testing"

	"github.com/advdv/bmock"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the dependencies for creating a mock server. The logger and tracer provider
// are picked up when the graph provides them.
type Params struct {
	fx.In

	TB             testing.TB
	Lifecycle      fx.Lifecycle
	Logger         *zap.Logger          `optional:"true"`
	TracerProvider trace.TracerProvider `optional:"true"`
	Middleware     []bmock.Middleware   `group:"bmock.middleware"`
}

// Module provides a running *bmock.Server that is closed, and verified, when the app stops.
func Module(opts ...bmock.Option) fx.Option {
	return fx.Module("bmock",
		fx.Provide(func(p Params) *bmock.Server {
			return New(p, opts...)
		}),
	)
}

// AsMiddleware annotates a constructor so its middleware is applied to every expectation
// registered on the provided server.
func AsMiddleware(f any) any {
	return fx.Annotate(f, fx.ResultTags(`group:"bmock.middleware"`))
}

// New starts the server and ties its shutdown to the fx lifecycle.
func New(p Params, opts ...bmock.Option) *bmock.Server {
	all := make([]bmock.Option, 0, len(opts)+3)
	if p.Logger != nil {
		all = append(all, bmock.WithLogger(bmock.NewZapLogger(p.Logger)))
	}

	if p.TracerProvider != nil {
		all = append(all, bmock.WithTracerProvider(p.TracerProvider))
	}

	all = append(all, bmock.WithMiddleware(p.Middleware...))
	all = append(all, opts...)

	srv := bmock.Run(p.TB, all...)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			srv.Close()
			return nil
		},
	})

	return srv
}
