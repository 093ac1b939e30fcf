package bmock

import (
	"context"
	"net/http"
	"strconv"
)

// Response is what an expectation answers with. A zero StatusCode means 200.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Respond implements [Responder] so a static Response can be used directly. Every call
// gets its own copy of the header.
func (r *Response) Respond(context.Context, *Request) (*Response, error) {
	return &Response{StatusCode: r.StatusCode, Header: r.Header.Clone(), Body: r.Body}, nil
}

func textResponse(code int, body string) *Response {
	return &Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": {"text/plain; charset=utf-8"}},
		Body:       []byte(body),
	}
}

// writeTo writes the response onto a standard library response writer.
func (r *Response) writeTo(w http.ResponseWriter) error {
	for k, vs := range r.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(r.Body)))

	code := r.StatusCode
	if code == 0 {
		code = http.StatusOK
	}

	w.WriteHeader(code)
	_, err := w.Write(r.Body)
	return err
}

// Responder produces the response for a matched request. It runs outside of the lock that
// guards the expectations, so it may block (for example to simulate a slow upstream) without
// holding up other requests. Returning an [*Error] answers with its status code, any other
// error is logged and answered with a 500.
type Responder interface {
	Respond(ctx context.Context, r *Request) (*Response, error)
}

// ResponderFunc allow casting a function to implement [Responder].
type ResponderFunc func(context.Context, *Request) (*Response, error)

// Respond implements the [Responder] interface.
func (f ResponderFunc) Respond(ctx context.Context, r *Request) (*Response, error) {
	return f(ctx, r)
}

// respond runs the responder and turns whatever comes back into a response. A responder
// returning neither a response nor an error answers with an empty 200.
func respond(ctx context.Context, rs Responder, req *Request, logs Logger) *Response {
	resp, err := rs.Respond(ctx, req)
	if err != nil {
		if codeErr, ok := asError(err); ok {
			return codeErr.response()
		}

		logs.LogResponderError(req, err)
		return textResponse(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}

	if resp == nil {
		return &Response{StatusCode: http.StatusOK}
	}

	return resp
}
