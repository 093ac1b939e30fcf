package bmock

import (
	"net/http"

	"github.com/carlmjohnson/requests"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client returns an *http.Client for talking to the server. When the server traces requests
// the client propagates the trace context.
func (s *Server) Client() *http.Client {
	if s.tracing == nil {
		return &http.Client{}
	}

	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(s.tracing),
			otelhttp.WithPropagators(newPropagator())),
	}
}

// Request returns a request builder aimed at the server. Like any [requests.Builder] it
// only accepts 2xx responses unless told otherwise with CheckStatus.
//
//	var body string
//	err := srv.Request("/foo").ToString(&body).Fetch(ctx)
func (s *Server) Request(pathAndQuery string) *requests.Builder {
	return requests.URL(s.URL(pathAndQuery)).Client(s.Client())
}
