// Package responders provides canned [bmock.Responder] implementations.
package responders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/advdv/bmock"
	"github.com/cockroachdb/errors"
)

// StaticResponder answers every request with the same status, headers and body.
type StaticResponder struct {
	resp bmock.Response
}

// Status starts a static response with the given status code.
func Status(code int) *StaticResponder {
	return &StaticResponder{resp: bmock.Response{StatusCode: code, Header: http.Header{}}}
}

// Header adds a response header.
func (s *StaticResponder) Header(k, v string) *StaticResponder {
	s.resp.Header.Add(k, v)
	return s
}

// Body sets the response body.
func (s *StaticResponder) Body(b []byte) *StaticResponder {
	s.resp.Body = b
	return s
}

// BodyString sets the response body from a string.
func (s *StaticResponder) BodyString(b string) *StaticResponder {
	return s.Body([]byte(b))
}

// Respond implements [bmock.Responder].
func (s *StaticResponder) Respond(ctx context.Context, r *bmock.Request) (*bmock.Response, error) {
	return s.resp.Respond(ctx, r)
}

// JSON answers with a 200 and v encoded as JSON. It panics if v cannot be encoded.
func JSON(v any) *StaticResponder {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("responders: failed to encode JSON: %s", err))
	}

	return Status(http.StatusOK).Header("Content-Type", "application/json").Body(b)
}

// URLEncoded answers with a 200 and the form encoded values.
func URLEncoded(vals url.Values) *StaticResponder {
	return Status(http.StatusOK).
		Header("Content-Type", "application/x-www-form-urlencoded").
		BodyString(vals.Encode())
}

// Delay waits for d before handing the request to inner. When the request context ends first
// the responder gives up with the context's error.
func Delay(d time.Duration, inner bmock.Responder) bmock.Responder {
	return bmock.ResponderFunc(func(ctx context.Context, r *bmock.Request) (*bmock.Response, error) {
		t := time.NewTimer(d)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "delayed response abandoned")
		case <-t.C:
			return inner.Respond(ctx, r)
		}
	})
}

// Cycle hands successive requests to each responder in turn, starting over after the last.
// It panics when no responder is given.
func Cycle(rs ...bmock.Responder) bmock.Responder {
	return sequence(rs, func(next, n int) int { return (next + 1) % n })
}

// Sequence hands successive requests to each responder in turn and keeps using the last one
// once the others are exhausted. It panics when no responder is given.
func Sequence(rs ...bmock.Responder) bmock.Responder {
	return sequence(rs, func(next, n int) int { return min(next+1, n-1) })
}

func sequence(rs []bmock.Responder, advance func(next, n int) int) bmock.Responder {
	if len(rs) == 0 {
		panic("responders: at least one responder is required")
	}

	var (
		mu   sync.Mutex
		next int
	)

	return bmock.ResponderFunc(func(ctx context.Context, r *bmock.Request) (*bmock.Response, error) {
		mu.Lock()
		cur := rs[next]
		next = advance(next, len(rs))
		mu.Unlock()

		return cur.Respond(ctx, r)
	})
}
