// Package request provides mappers that extract a single field from a [bmock.Request] and
// pass it to an inner mapper.
//
//	request.MethodPath("GET", "/foo")
//	request.Path(mappers.Glob("/users/*"))
//	request.Query(mappers.URLDecoded(mappers.Contains(mappers.KVEq("page", "2"))))
//	request.Headers(mappers.Contains(mappers.Key(mappers.Eq("x-request-id"))))
//	request.Body(mappers.JSONField("name", mappers.Eq("alice")))
package request

import (
	"fmt"

	"github.com/advdv/bmock"
	"github.com/advdv/bmock/mappers"
)

// Method extracts the request method.
func Method[O any](inner mappers.Mapper[string, O]) MethodMapper[O] {
	return MethodMapper[O]{inner}
}

// MethodMapper is returned by [Method].
type MethodMapper[O any] struct{ inner mappers.Mapper[string, O] }

func (m MethodMapper[O]) Map(in *bmock.Request) O { return m.inner.Map(in.Method) }
func (m MethodMapper[O]) String() string          { return fmt.Sprintf("Method(%s)", mappers.Name(m.inner)) }

// Path extracts the request path without decoding percent-escapes.
func Path[O any](inner mappers.Mapper[string, O]) PathMapper[O] {
	return PathMapper[O]{inner}
}

// PathMapper is returned by [Path].
type PathMapper[O any] struct{ inner mappers.Mapper[string, O] }

func (m PathMapper[O]) Map(in *bmock.Request) O { return m.inner.Map(in.Path()) }
func (m PathMapper[O]) String() string          { return fmt.Sprintf("Path(%s)", mappers.Name(m.inner)) }

// Query extracts the raw query string. A request without a query yields "".
func Query[O any](inner mappers.Mapper[string, O]) QueryMapper[O] {
	return QueryMapper[O]{inner}
}

// QueryMapper is returned by [Query].
type QueryMapper[O any] struct{ inner mappers.Mapper[string, O] }

func (m QueryMapper[O]) Map(in *bmock.Request) O { return m.inner.Map(in.Query()) }
func (m QueryMapper[O]) String() string          { return fmt.Sprintf("Query(%s)", mappers.Name(m.inner)) }

// Headers extracts the header sequence. Keys are lower-case and a header that was sent
// more than once shows up once per value, in the order the values were received. Requests
// read from the listener come through net/http as a map, so the order across different
// names is not the wire order: "host" comes first and the other names are sorted (see
// [bmock.ReadRequest]). Requests built with [bmock.NewRequest] keep the order given.
func Headers[O any](inner mappers.Mapper[[]mappers.KV, O]) HeadersMapper[O] {
	return HeadersMapper[O]{inner}
}

// HeadersMapper is returned by [Headers].
type HeadersMapper[O any] struct {
	inner mappers.Mapper[[]mappers.KV, O]
}

func (m HeadersMapper[O]) Map(in *bmock.Request) O { return m.inner.Map(in.Header) }
func (m HeadersMapper[O]) String() string {
	return fmt.Sprintf("Headers(%s)", mappers.Name(m.inner))
}

// Body extracts the buffered request body.
func Body[O any](inner mappers.Mapper[[]byte, O]) BodyMapper[O] {
	return BodyMapper[O]{inner}
}

// BodyMapper is returned by [Body].
type BodyMapper[O any] struct{ inner mappers.Mapper[[]byte, O] }

func (m BodyMapper[O]) Map(in *bmock.Request) O { return m.inner.Map(in.Body) }
func (m BodyMapper[O]) String() string          { return fmt.Sprintf("Body(%s)", mappers.Name(m.inner)) }

// MethodPath matches on an exact method and path. It is the common case of
// MethodPathMatching with two equality matchers.
func MethodPath(method, path string) MethodPathMatcher {
	return MethodPathMatching(mappers.Eq(method), mappers.Eq(path))
}

// MethodPathMatching matches when both the method and the path satisfy their matcher.
// The method is checked first and the path is not looked at when it fails.
func MethodPathMatching(method, path mappers.Matcher[string]) MethodPathMatcher {
	return MethodPathMatcher{method, path}
}

// MethodPathMatcher is returned by [MethodPath] and [MethodPathMatching].
type MethodPathMatcher struct {
	method mappers.Matcher[string]
	path   mappers.Matcher[string]
}

func (m MethodPathMatcher) Map(in *bmock.Request) bool {
	return m.method.Map(in.Method) && m.path.Map(in.Path())
}

func (m MethodPathMatcher) String() string {
	return fmt.Sprintf("MethodPath{method: %s, path: %s}", mappers.Name(m.method), mappers.Name(m.path))
}
