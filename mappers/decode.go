package mappers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/gjson"
)

// URLDecoded decodes "application/x-www-form-urlencoded" text, as found in a query string
// or a form body, into pairs and hands them to inner. Order and duplicates are preserved.
// Segments that fail to unescape are passed on verbatim.
func URLDecoded[O any](inner Mapper[[]KV, O]) Mapper[string, O] {
	return urlDecoded[O]{inner}
}

type urlDecoded[O any] struct{ inner Mapper[[]KV, O] }

func (m urlDecoded[O]) Map(in string) O {
	return m.inner.Map(decodeForm(in))
}

func (m urlDecoded[O]) String() string { return fmt.Sprintf("URLDecoded(%s)", Name(m.inner)) }

func decodeForm(in string) []KV {
	pairs := []KV{}
	for _, part := range strings.Split(in, "&") {
		if part == "" {
			continue
		}

		k, v, _ := strings.Cut(part, "=")
		pairs = append(pairs, KV{Key: unescape(k), Value: []byte(unescape(v))})
	}

	return pairs
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return u
}

// JSONDecoded decodes a JSON document and hands the generic value (maps, slices, strings,
// numbers, booleans or nil) to inner. Input that is not valid JSON never matches.
func JSONDecoded(inner Matcher[any]) Matcher[[]byte] {
	return jsonDecoded{inner}
}

type jsonDecoded struct{ inner Matcher[any] }

func (m jsonDecoded) Map(in []byte) bool {
	v, err := oj.Parse(in)
	if err != nil {
		return false
	}

	return m.inner.Map(v)
}

func (m jsonDecoded) String() string { return fmt.Sprintf("JSONDecoded(%s)", Name(m.inner)) }

// JSONPath evaluates a JSONPath expression (e.g. "$.items[*].id") against a JSON document
// and hands every selected value to inner. Invalid JSON never matches. It panics if the
// expression does not parse.
func JSONPath(expr string, inner Matcher[[]any]) Matcher[[]byte] {
	x, err := jp.ParseString(expr)
	if err != nil {
		panic(fmt.Sprintf("mappers: invalid JSONPath %q: %s", expr, err))
	}

	return jsonPath{expr, x, inner}
}

type jsonPath struct {
	src   string
	expr  jp.Expr
	inner Matcher[[]any]
}

func (m jsonPath) Map(in []byte) bool {
	v, err := oj.Parse(in)
	if err != nil {
		return false
	}

	return m.inner.Map(m.expr.Get(v))
}

func (m jsonPath) String() string {
	return fmt.Sprintf("JSONPath(%q, %s)", m.src, Name(m.inner))
}

// JSONField selects a single value with gjson path syntax (e.g. "user.name" or
// "items.#.id") and hands its string form to inner. A path that does not exist never
// matches.
func JSONField(path string, inner Matcher[string]) Matcher[[]byte] {
	return jsonField{path, inner}
}

type jsonField struct {
	path  string
	inner Matcher[string]
}

func (m jsonField) Map(in []byte) bool {
	if !gjson.ValidBytes(in) {
		return false
	}

	res := gjson.GetBytes(in, m.path)
	if !res.Exists() {
		return false
	}

	return m.inner.Map(res.String())
}

func (m jsonField) String() string {
	return fmt.Sprintf("JSONField(%q, %s)", m.path, Name(m.inner))
}
