package mappers

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Lowercase lower-cases a string before handing it to inner.
func Lowercase[O any](inner Mapper[string, O]) Mapper[string, O] {
	return lowercase[O]{inner}
}

type lowercase[O any] struct{ inner Mapper[string, O] }

func (m lowercase[O]) Map(in string) O { return m.inner.Map(strings.ToLower(in)) }
func (m lowercase[O]) String() string  { return fmt.Sprintf("Lowercase(%s)", Name(m.inner)) }

// Text views a byte slice as a string, so string matchers can be used on bodies and
// header values.
func Text[O any](inner Mapper[string, O]) Mapper[[]byte, O] {
	return text[O]{inner}
}

type text[O any] struct{ inner Mapper[string, O] }

func (m text[O]) Map(in []byte) O { return m.inner.Map(string(in)) }
func (m text[O]) String() string  { return fmt.Sprintf("Text(%s)", Name(m.inner)) }

// Len hands the number of elements of a slice to inner.
func Len[E, O any](inner Mapper[int, O]) Mapper[[]E, O] {
	return length[E, O]{inner}
}

type length[E, O any] struct{ inner Mapper[int, O] }

func (m length[E, O]) Map(in []E) O   { return m.inner.Map(len(in)) }
func (m length[E, O]) String() string { return fmt.Sprintf("Len(%s)", Name(m.inner)) }

// Contains matches slices holding at least one element that satisfies elem.
func Contains[E any](elem Matcher[E]) Matcher[[]E] {
	return contains[E]{elem}
}

type contains[E any] struct{ elem Matcher[E] }

func (m contains[E]) Map(in []E) bool {
	return lo.ContainsBy(in, m.elem.Map)
}

func (m contains[E]) String() string { return fmt.Sprintf("Contains(%s)", Name(m.elem)) }
