package bmock

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Server is a mock HTTP endpoint running in the background for the duration of a test.
type Server struct {
	tb          testing.TB
	cfg         Config
	logs        Logger
	tracing     trace.TracerProvider
	ownTracing  *sdktrace.TracerProvider
	middlewares []Middleware
	state       registry

	addr     net.Addr
	srv      *http.Server
	done     chan struct{}
	stopOnce sync.Once
}

// Option configures a Server.
type Option func(*Server)

// WithConfig replaces the configuration that would otherwise be read from the environment.
func WithConfig(cfg Config) Option {
	return func(s *Server) { s.cfg = cfg }
}

// WithLogger replaces the default logger that writes to the test output.
func WithLogger(l Logger) Option {
	return func(s *Server) { s.logs = l }
}

// WithTracerProvider traces every request the server receives and instruments the client
// returned by [Server.Client].
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tracing = tp }
}

// WithMiddleware wraps the responder of every expectation registered after this point.
func WithMiddleware(m ...Middleware) Option {
	return func(s *Server) { s.middlewares = append(s.middlewares, m...) }
}

// Run starts a server on a free local port. It keeps running in the background until
// [Server.Close] is called, which happens automatically when the test finishes. Closing
// verifies that every expectation was met.
func Run(tb testing.TB, opts ...Option) *Server {
	tb.Helper()

	s := &Server{tb: tb, cfg: DefaultConfig(), done: make(chan struct{})}
	if cfg, err := ParseConfig(); err == nil {
		s.cfg = cfg
	} else {
		tb.Logf("bmock: using default configuration: %s", err)
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logs == nil {
		s.logs = newDefaultLogger(tb, s.cfg)
	}

	if s.tracing == nil && s.cfg.TraceExporter != "" {
		tp, err := newTracerProvider(tb, s.cfg.TraceExporter)
		if err != nil {
			tb.Fatalf("bmock: %s", err)
		} else {
			s.tracing, s.ownTracing = tp, tp
		}
	}

	if err := s.start(); err != nil {
		tb.Fatalf("bmock: %s", err)
	}

	tb.Cleanup(s.Close)
	return s
}

func (s *Server) start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %q", s.cfg.Addr)
	}

	var handler http.Handler = s
	if s.tracing != nil {
		handler = withTracing(s, s.tracing)
	}

	s.addr = ln.Addr()
	s.srv = &http.Server{Handler: handler}

	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logs.LogServeError(err)
		}
	}()

	return nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// URL returns a fully formed url to the server. If the server listens on port 1234 then
// URL("/foo?q=1") returns "http://127.0.0.1:1234/foo?q=1".
func (s *Server) URL(pathAndQuery string) string {
	u := url.URL{Scheme: "http", Host: s.addr.String()}
	return u.String() + pathAndQuery
}

// Expect registers an expectation. Expectations registered later take precedence over
// earlier ones that match the same request. The server keeps its own copy, so e can be
// registered again to get an independent hit count. It panics when e was not built with
// [Matching] and [ExpectationBuilder.RespondWith].
func (s *Server) Expect(e *Expectation) {
	switch {
	case e == nil || e.matcher == nil:
		panic(errNilMatcher)
	case e.responder == nil:
		panic(errNilResponder)
	}

	exp := *e
	exp.hits = 0
	exp.responder = Wrap(e.responder, s.middlewares...)

	s.logs.LogExpectationAdded(exp.matcher.String(), exp.times)
	s.state.push(exp)
}

// ServeHTTP buffers the request and answers it through [Server.Dispatch]. A request that
// cannot be read is answered with an error and counts as unexpected.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := ReadRequest(r, s.cfg.MaxBodyBytes)
	if err != nil {
		s.logs.LogReadRequestError(err)
		s.state.recordUnexpected()

		codeErr, ok := asError(err)
		if !ok {
			codeErr = NewError(CodeBadRequest, err)
		}

		_ = codeErr.response().writeTo(w)
		return
	}

	if err := s.Dispatch(r.Context(), req).writeTo(w); err != nil {
		s.logs.LogServeError(errors.Wrap(err, "failed to write response"))
	}
}

// Dispatch answers a single request. It never fails: requests that match no expectation, or
// that match one whose cardinality is used up, get a 500 describing the problem. Only the
// selection happens under the lock, the responder runs after it is released.
func (s *Server) Dispatch(ctx context.Context, req *Request) *Response {
	sel := s.state.selectFor(req)

	span := trace.SpanFromContext(ctx)
	switch {
	case sel.matched && !sel.exceeded:
		s.logs.LogRequestMatched(req, sel.matcher, sel.hits)
		span.SetAttributes(
			attribute.String("bmock.matcher", sel.matcher),
			attribute.Int("bmock.hits", sel.hits))

		return respond(ctx, sel.responder, req, s.logs)
	case sel.exceeded:
		s.logs.LogCardinalityExceeded(req, sel.matcher, sel.hits, sel.times)
		span.SetAttributes(
			attribute.String("bmock.matcher", sel.matcher),
			attribute.Int("bmock.hits", sel.hits),
			attribute.Bool("bmock.exceeded", true))
	default:
		s.logs.LogRequestUnmatched(req)
		span.SetAttributes(attribute.Bool("bmock.unmatched", true))
	}

	return sel.response
}

// Verify returns an error describing every expectation whose hit count does not satisfy its
// cardinality, and the number of requests that matched nothing.
func (s *Server) Verify() error {
	return s.state.verify()
}

// Reset removes all expectations and forgets about unexpected requests.
func (s *Server) Reset() {
	s.state.reset()
}

// VerifyAndReset fails the test if [Server.Verify] reports a problem, otherwise it resets
// the server so it can be reused. When the test has already failed the state is reset
// without verification, so the original failure is not buried.
func (s *Server) VerifyAndReset() {
	s.tb.Helper()

	if s.tb.Failed() {
		s.Reset()
		return
	}

	if err := s.Verify(); err != nil {
		s.tb.Fatalf("bmock: %s", err)
		return
	}

	s.Reset()
}

// Close stops the listener, waits for it to finish and then verifies the expectations. It
// is safe to call more than once.
func (s *Server) Close() {
	s.tb.Helper()

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(ctx); err != nil {
			s.logs.LogServeError(errors.Wrap(err, "failed to shut down gracefully"))
			_ = s.srv.Close()
		}

		<-s.done

		if s.ownTracing != nil {
			if err := s.ownTracing.Shutdown(ctx); err != nil {
				s.logs.LogServeError(errors.Wrap(err, "failed to shut down tracing"))
			}
		}
	})

	s.VerifyAndReset()
}
