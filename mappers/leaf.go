package mappers

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
)

// Any matches every input.
func Any[T any]() Matcher[T] {
	return anyMatcher[T]{}
}

type anyMatcher[T any] struct{}

func (anyMatcher[T]) Map(T) bool     { return true }
func (anyMatcher[T]) String() string { return "Any" }

// Eq matches inputs that are equal to want. Byte slices are compared by content and other
// values by deep equality, so slices of [KV] can be compared as a whole.
func Eq[T any](want T) Matcher[T] {
	return eqMatcher[T]{want}
}

type eqMatcher[T any] struct{ want T }

func (m eqMatcher[T]) Map(in T) bool { return assert.ObjectsAreEqual(m.want, in) }

func (m eqMatcher[T]) String() string {
	switch v := any(m.want).(type) {
	case []byte:
		return fmt.Sprintf("Eq(%q)", v)
	default:
		return fmt.Sprintf("Eq(%#v)", v)
	}
}

// Lt matches inputs strictly less than bound.
func Lt[T cmp.Ordered](bound T) Matcher[T] {
	return ordMatcher[T]{"Lt", bound, func(c int) bool { return c < 0 }}
}

// Le matches inputs less than or equal to bound.
func Le[T cmp.Ordered](bound T) Matcher[T] {
	return ordMatcher[T]{"Le", bound, func(c int) bool { return c <= 0 }}
}

// Gt matches inputs strictly greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher[T] {
	return ordMatcher[T]{"Gt", bound, func(c int) bool { return c > 0 }}
}

// Ge matches inputs greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Matcher[T] {
	return ordMatcher[T]{"Ge", bound, func(c int) bool { return c >= 0 }}
}

type ordMatcher[T cmp.Ordered] struct {
	name  string
	bound T
	ok    func(int) bool
}

func (m ordMatcher[T]) Map(in T) bool  { return m.ok(cmp.Compare(in, m.bound)) }
func (m ordMatcher[T]) String() string { return fmt.Sprintf("%s(%#v)", m.name, m.bound) }

// Substring matches strings that contain sub.
func Substring(sub string) Matcher[string] {
	return substringMatcher(sub)
}

type substringMatcher string

func (m substringMatcher) Map(in string) bool { return strings.Contains(in, string(m)) }
func (m substringMatcher) String() string     { return fmt.Sprintf("Substring(%q)", string(m)) }

// Matches matches strings against a regular expression. It panics if expr does not compile.
func Matches(expr string) Matcher[string] {
	return regexpMatcher{regexp.MustCompile(expr)}
}

type regexpMatcher struct{ re *regexp.Regexp }

func (m regexpMatcher) Map(in string) bool { return m.re.MatchString(in) }
func (m regexpMatcher) String() string     { return fmt.Sprintf("Matches(%q)", m.re.String()) }

// Glob matches slash separated strings (typically paths) against a doublestar pattern such
// as "/users/*/orders/**". It panics if the pattern is malformed.
func Glob(pattern string) Matcher[string] {
	if !doublestar.ValidatePattern(pattern) {
		panic(fmt.Sprintf("mappers: invalid glob pattern: %q", pattern))
	}

	return globMatcher(pattern)
}

type globMatcher string

func (m globMatcher) Map(in string) bool {
	ok, err := doublestar.Match(string(m), in)
	return err == nil && ok
}

func (m globMatcher) String() string { return fmt.Sprintf("Glob(%q)", string(m)) }
