package mappers_test

import (
	"strings"
	"testing"

	"github.com/advdv/bmock/mappers"
	"github.com/stretchr/testify/require"
)

func TestLeafMatchers(t *testing.T) {
	for _, tt := range []struct {
		name   string
		m      mappers.Matcher[string]
		in     string
		expMap bool
		expStr string
	}{
		{"any", mappers.Any[string](), "whatever", true, "Any"},
		{"eq", mappers.Eq("foo"), "foo", true, `Eq("foo")`},
		{"eq mismatch", mappers.Eq("foo"), "bar", false, `Eq("foo")`},
		{"lt", mappers.Lt("b"), "a", true, `Lt("b")`},
		{"le", mappers.Le("b"), "b", true, `Le("b")`},
		{"gt", mappers.Gt("b"), "b", false, `Gt("b")`},
		{"ge", mappers.Ge("b"), "c", true, `Ge("b")`},
		{"substring", mappers.Substring("oo"), "food", true, `Substring("oo")`},
		{"matches", mappers.Matches(`^/users/\d+$`), "/users/12", true, `Matches("^/users/\\d+$")`},
		{"matches mismatch", mappers.Matches(`^/users/\d+$`), "/users/me", false, `Matches("^/users/\\d+$")`},
		{"glob", mappers.Glob("/users/*/orders/**"), "/users/1/orders/2/items", true, `Glob("/users/*/orders/**")`},
		{"glob mismatch", mappers.Glob("/users/*"), "/users/1/orders", false, `Glob("/users/*")`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expMap, tt.m.Map(tt.in))
			require.Equal(t, tt.expStr, tt.m.String())
		})
	}
}

func TestEqBytes(t *testing.T) {
	m := mappers.Eq([]byte("abc"))
	require.True(t, m.Map([]byte("abc")))
	require.False(t, m.Map([]byte("abd")))
	require.Equal(t, `Eq("abc")`, m.String())

	require.True(t, mappers.Eq(42).Map(42))
	require.Equal(t, "Eq(42)", mappers.Eq(42).String())
}

func TestInvalidPatternsPanic(t *testing.T) {
	require.Panics(t, func() { mappers.Matches("(") })
	require.Panics(t, func() { mappers.Glob("[") })
	require.Panics(t, func() { mappers.JSONPath("$.items[1", mappers.Any[[]any]()) })
}

func TestCombinators(t *testing.T) {
	hasFoo, hasBar := mappers.Substring("foo"), mappers.Substring("bar")

	not := mappers.Not(hasFoo)
	require.False(t, not.Map("foo"))
	require.True(t, not.Map("baz"))
	require.Equal(t, `Not(Substring("foo"))`, not.String())

	all := mappers.AllOf(hasFoo, hasBar)
	require.True(t, all.Map("foobar"))
	require.False(t, all.Map("foo"))
	require.Equal(t, `AllOf(Substring("foo"), Substring("bar"))`, all.String())

	anyOf := mappers.AnyOf(hasFoo, hasBar)
	require.True(t, anyOf.Map("bar"))
	require.False(t, anyOf.Map("baz"))
	require.Equal(t, `AnyOf(Substring("foo"), Substring("bar"))`, anyOf.String())

	require.True(t, mappers.AllOf[string]().Map("x"))
	require.False(t, mappers.AnyOf[string]().Map("x"))
}

func TestTransforms(t *testing.T) {
	lower := mappers.Lowercase(mappers.Eq("content-type"))
	require.True(t, lower.Map("Content-Type"))
	require.Equal(t, `Lowercase(Eq("content-type"))`, lower.String())

	text := mappers.Text(mappers.Substring("lo w"))
	require.True(t, text.Map([]byte("hello world")))
	require.Equal(t, `Text(Substring("lo w"))`, text.String())

	length := mappers.Len[mappers.KV](mappers.Ge(2))
	require.True(t, length.Map([]mappers.KV{mappers.NewKV("a", "1"), mappers.NewKV("b", "2")}))
	require.False(t, length.Map(nil))
	require.Equal(t, "Len(Ge(2))", length.String())

	contains := mappers.Contains(mappers.Gt(3))
	require.True(t, contains.Map([]int{1, 5}))
	require.False(t, contains.Map([]int{1, 2}))
	require.False(t, contains.Map(nil))
	require.Equal(t, "Contains(Gt(3))", contains.String())
}

func TestFunc(t *testing.T) {
	upper := mappers.Func("Upper", strings.ToUpper)
	require.Equal(t, "ABC", upper.Map("abc"))
	require.Equal(t, "Upper", upper.String())
	require.Equal(t, "<nil>", mappers.Name(nil))
}

func TestKV(t *testing.T) {
	kv := mappers.NewKV("content-type", "text/plain")
	require.Equal(t, "content-type: text/plain", kv.String())

	for _, tt := range []struct {
		m      mappers.Matcher[mappers.KV]
		expMap bool
		expStr string
	}{
		{mappers.Key(mappers.Eq("content-type")), true, `Key(Eq("content-type"))`},
		{mappers.Value(mappers.Text(mappers.Substring("plain"))), true, `Value(Text(Substring("plain")))`},
		{mappers.KVEq("content-type", "text/plain"), true, `KV(Eq("content-type"), Eq("text/plain"))`},
		{mappers.KVEq("content-type", "text/html"), false, `KV(Eq("content-type"), Eq("text/html"))`},
		{mappers.KeyValue(mappers.Substring("type"), mappers.Any[[]byte]()), true, `KV(Substring("type"), Any)`},
	} {
		require.Equal(t, tt.expMap, tt.m.Map(kv), tt.expStr)
		require.Equal(t, tt.expStr, tt.m.String())
	}
}

func TestURLDecoded(t *testing.T) {
	dec := mappers.URLDecoded(mappers.Eq([]mappers.KV{
		mappers.NewKV("a", "1"),
		mappers.NewKV("b c", "x&y"),
		mappers.NewKV("a", "2"),
		mappers.NewKV("flag", ""),
		mappers.NewKV("bad", "%zz"),
	}))

	require.True(t, dec.Map("a=1&b+c=x%26y&a=2&flag&bad=%zz"))
	require.False(t, dec.Map("a=2&b+c=x%26y&a=1&flag&bad=%zz"))

	require.True(t, mappers.URLDecoded(mappers.Eq([]mappers.KV{})).Map(""))
	require.True(t, mappers.URLDecoded(mappers.Len[mappers.KV](mappers.Eq(0))).Map("&&"))
}

func TestJSONDecoded(t *testing.T) {
	m := mappers.JSONDecoded(mappers.Eq[any](map[string]any{
		"name": "alice",
		"age":  int64(30),
		"tags": []any{"a", "b"},
		"pi":   3.5,
		"nil":  nil,
	}))

	require.True(t, m.Map([]byte(`{"tags":["a","b"],"age":30,"name":"alice","pi":3.5,"nil":null}`)))
	require.False(t, m.Map([]byte(`{"name":"bob"}`)))
	require.False(t, m.Map([]byte(`{"name":`)))
	require.False(t, mappers.JSONDecoded(mappers.Any[any]()).Map([]byte("not json")))
}

func TestJSONPath(t *testing.T) {
	m := mappers.JSONPath("$.items[*].id", mappers.Eq([]any{int64(1), int64(2)}))
	require.True(t, m.Map([]byte(`{"items":[{"id":1},{"id":2}]}`)))
	require.False(t, m.Map([]byte(`{"items":[{"id":1}]}`)))
	require.False(t, m.Map([]byte(`[`)))
	require.True(t, strings.HasPrefix(m.String(), `JSONPath("$.items[*].id", Eq(`))

	empty := mappers.JSONPath("$.missing", mappers.Len[any](mappers.Eq(0)))
	require.True(t, empty.Map([]byte(`{}`)))
}

func TestJSONField(t *testing.T) {
	m := mappers.JSONField("user.name", mappers.Eq("alice"))
	require.True(t, m.Map([]byte(`{"user":{"name":"alice"}}`)))
	require.False(t, m.Map([]byte(`{"user":{"name":"bob"}}`)))
	require.False(t, m.Map([]byte(`{"user":{}}`)))
	require.False(t, m.Map([]byte(`{"user":`)))
	require.Equal(t, `JSONField("user.name", Eq("alice"))`, m.String())

	require.True(t, mappers.JSONField("n", mappers.Eq("12")).Map([]byte(`{"n":12}`)))
}
