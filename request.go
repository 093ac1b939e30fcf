package bmock

import (
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/advdv/bmock/mappers"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Request is an inbound HTTP request with its body read fully into memory. It is what
// expectations are matched against.
type Request struct {
	Method string
	URL    *url.URL
	// Header holds the headers with lower-cased keys. A header sent more than once appears
	// once per value.
	Header []mappers.KV
	Body   []byte
}

// NewRequest builds a Request directly, keeping the given header order. It is meant for
// testing matchers without a listener and panics if target does not parse.
func NewRequest(method, target string, body []byte, header ...mappers.KV) *Request {
	u, err := url.ParseRequestURI(target)
	if err != nil {
		panic("bmock: invalid request target: " + err.Error())
	}

	if body == nil {
		body = []byte{}
	}

	return &Request{
		Method: method,
		URL:    u,
		Header: lo.Map(header, func(kv mappers.KV, _ int) mappers.KV {
			return mappers.KV{Key: strings.ToLower(kv.Key), Value: kv.Value}
		}),
		Body: body,
	}
}

// ReadRequest buffers the body of r and converts it into a Request. A limit below zero
// disables the body size check. The standard library hands headers over as a map, so names
// are ordered lexicographically (with "host" first) while values of the same name keep the
// order they were received in.
func ReadRequest(r *http.Request, limit int64) (*Request, error) {
	body, err := readBody(r.Body, limit)
	if err != nil {
		return nil, err
	}

	header := make([]mappers.KV, 0, len(r.Header)+1)
	if r.Host != "" {
		header = append(header, mappers.NewKV("host", r.Host))
	}

	names := lo.Keys(r.Header)
	slices.Sort(names)

	for _, name := range names {
		header = append(header, lo.Map(r.Header[name], func(v string, _ int) mappers.KV {
			return mappers.NewKV(strings.ToLower(name), v)
		})...)
	}

	return &Request{
		Method: r.Method,
		URL:    r.URL,
		Header: header,
		Body:   body,
	}, nil
}

func readBody(rc io.ReadCloser, limit int64) ([]byte, error) {
	if rc == nil || rc == http.NoBody {
		return []byte{}, nil
	}
	defer rc.Close()

	rd := io.Reader(rc)
	if limit >= 0 {
		rd = io.LimitReader(rc, limit+1)
	}

	body, err := io.ReadAll(rd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}

	if limit >= 0 && int64(len(body)) > limit {
		return nil, NewError(CodeRequestEntityTooLarge, errors.Newf("request body exceeds %d bytes", limit))
	}

	return body, nil
}

// Path returns the URL path as it was sent, without decoding percent-escapes, so
// "/a%2Fb" and "/a/b" stay distinct.
func (r *Request) Path() string {
	return r.URL.EscapedPath()
}

// Query returns the raw query without the leading "?". It is empty when the request has no
// query component.
func (r *Request) Query() string {
	return r.URL.RawQuery
}

func (r *Request) String() string {
	return r.Method + " " + r.URL.RequestURI()
}
