package bmock

// Middleware wraps the responder of every expectation registered on a server, for
// cross-cutting concerns such as common headers or latency.
type Middleware func(Responder) Responder

// Wrap takes the inner responder r and wraps it with middleware. The middleware provided
// first is called first and is the "outer" most wrapping, the middleware provided last will be
// the "inner most" wrapping (closest to the responder).
func Wrap(r Responder, m ...Middleware) Responder {
	wrapped := r
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}
