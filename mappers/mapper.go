package mappers

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Mapper turns an input of type T into an output of type O. Implementations may hold
// state (a compiled expression for example) but Map must return the same output for the
// same input, no matter how often or in which order it is called.
type Mapper[T, O any] interface {
	Map(in T) O
	// String renders the composed structure for diagnostics.
	String() string
}

// Matcher is a Mapper that produces a boolean.
type Matcher[T any] interface {
	Mapper[T, bool]
}

// Func adapts a plain function into a named Mapper.
func Func[T, O any](name string, fn func(T) O) Mapper[T, O] {
	return funcMapper[T, O]{name, fn}
}

type funcMapper[T, O any] struct {
	name string
	fn   func(T) O
}

func (m funcMapper[T, O]) Map(in T) O     { return m.fn(in) }
func (m funcMapper[T, O]) String() string { return m.name }

// Name renders a mapper for use inside the String output of a wrapping mapper.
func Name(m fmt.Stringer) string {
	if m == nil {
		return "<nil>"
	}

	return m.String()
}

func names[T any](ms []Matcher[T]) string {
	return strings.Join(lo.Map(ms, func(m Matcher[T], _ int) string {
		return Name(m)
	}), ", ")
}
