package request_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/advdv/bmock"
	"github.com/advdv/bmock/mappers"
	"github.com/advdv/bmock/mappers/request"
	"github.com/stretchr/testify/require"
)

func TestMethodPath(t *testing.T) {
	m := request.MethodPath(http.MethodGet, "/foo")

	for _, tt := range []struct {
		method, target string
		exp            bool
	}{
		{http.MethodGet, "/foo", true},
		{http.MethodGet, "/foo?bar=1", true},
		{http.MethodPost, "/foo", false},
		{http.MethodGet, "/foo/", false},
		{"get", "/foo", false},
	} {
		require.Equal(t, tt.exp, m.Map(bmock.NewRequest(tt.method, tt.target, nil)), "%s %s", tt.method, tt.target)
	}

	require.Equal(t, `MethodPath{method: Eq("GET"), path: Eq("/foo")}`, m.String())
}

func TestMethodPathMatching(t *testing.T) {
	m := request.MethodPathMatching(
		mappers.AnyOf(mappers.Eq(http.MethodPut), mappers.Eq(http.MethodPatch)),
		mappers.Glob("/users/*"))

	require.True(t, m.Map(bmock.NewRequest(http.MethodPatch, "/users/1", nil)))
	require.False(t, m.Map(bmock.NewRequest(http.MethodDelete, "/users/1", nil)))
	require.Equal(t, `MethodPath{method: AnyOf(Eq("PUT"), Eq("PATCH")), path: Glob("/users/*")}`, m.String())
}

func TestMethod(t *testing.T) {
	m := request.Method(mappers.Eq(http.MethodDelete))
	require.True(t, m.Map(bmock.NewRequest(http.MethodDelete, "/", nil)))
	require.False(t, m.Map(bmock.NewRequest(http.MethodGet, "/", nil)))
	require.Equal(t, `Method(Eq("DELETE"))`, m.String())
}

func TestPathAndQuery(t *testing.T) {
	req := bmock.NewRequest(http.MethodGet, "/search?q=go+lang&page=2", nil)

	require.True(t, request.Path(mappers.Eq("/search")).Map(req))
	require.True(t, request.Query(mappers.Eq("q=go+lang&page=2")).Map(req))
	require.True(t, request.Query(mappers.URLDecoded(
		mappers.Contains(mappers.KVEq("q", "go lang")))).Map(req))

	noQuery := bmock.NewRequest(http.MethodGet, "/search", nil)
	require.True(t, request.Query(mappers.Eq("")).Map(noQuery))
	require.True(t, request.Query(mappers.URLDecoded(mappers.Eq([]mappers.KV{}))).Map(noQuery))

	require.Equal(t, `Path(Eq("/search"))`, request.Path(mappers.Eq("/search")).String())
	require.Equal(t, `Query(URLDecoded(Contains(KV(Eq("q"), Eq("go lang")))))`,
		request.Query(mappers.URLDecoded(mappers.Contains(mappers.KVEq("q", "go lang")))).String())
}

func TestPathKeepsEscapes(t *testing.T) {
	req := bmock.NewRequest(http.MethodGet, "/a%2Fb", nil)
	require.True(t, request.Path(mappers.Eq("/a%2Fb")).Map(req))
	require.False(t, request.Path(mappers.Eq("/a/b")).Map(req))

	req = bmock.NewRequest(http.MethodGet, "/files/a%20b", nil)
	require.True(t, request.Path(mappers.Eq("/files/a%20b")).Map(req))

	read, err := bmock.ReadRequest(httptest.NewRequest(http.MethodGet, "/a%2Fb?x=1", nil), -1)
	require.NoError(t, err)
	require.True(t, request.Path(mappers.Eq("/a%2Fb")).Map(read))
	require.True(t, request.MethodPath(http.MethodGet, "/a%2Fb").Map(read))
}

func TestHeaders(t *testing.T) {
	hr := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	hr.Header.Add("X-Multi", "one")
	hr.Header.Add("X-Multi", "two")
	hr.Header.Set("Accept", "*/*")

	req, err := bmock.ReadRequest(hr, -1)
	require.NoError(t, err)

	require.True(t, request.Headers(mappers.Eq([]mappers.KV{
		mappers.NewKV("host", "example.com"),
		mappers.NewKV("accept", "*/*"),
		mappers.NewKV("x-multi", "one"),
		mappers.NewKV("x-multi", "two"),
	})).Map(req))

	require.True(t, request.Headers(mappers.Contains(mappers.KVEq("x-multi", "one"))).Map(req))
	require.True(t, request.Headers(mappers.Contains(mappers.KVEq("x-multi", "two"))).Map(req))
	require.False(t, request.Headers(mappers.Contains(mappers.Key(mappers.Eq("X-Multi")))).Map(req))
	require.True(t, request.Headers(mappers.Len[mappers.KV](mappers.Eq(4))).Map(req))
	require.Equal(t, `Headers(Contains(Key(Eq("x-request-id"))))`,
		request.Headers(mappers.Contains(mappers.Key(mappers.Eq("x-request-id")))).String())
}

func TestBody(t *testing.T) {
	hr := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user":{"name":"alice"}}`))
	req, err := bmock.ReadRequest(hr, -1)
	require.NoError(t, err)

	require.True(t, request.Body(mappers.JSONField("user.name", mappers.Eq("alice"))).Map(req))
	require.True(t, request.Body(mappers.Text(mappers.Substring("alice"))).Map(req))
	require.False(t, request.Body(mappers.Eq([]byte("{}"))).Map(req))

	empty := bmock.NewRequest(http.MethodGet, "/", nil)
	require.True(t, request.Body(mappers.Eq([]byte{})).Map(empty))
	require.Equal(t, `Body(Eq("{}"))`, request.Body(mappers.Eq([]byte("{}"))).String())
}

func TestNonBooleanExtraction(t *testing.T) {
	upper := request.Method(mappers.Func("Upper", strings.ToUpper))
	require.Equal(t, "PATCH", upper.Map(bmock.NewRequest("patch", "/", nil)))
	require.Equal(t, "Method(Upper)", upper.String())
}
