package mappers

import (
	"fmt"

	"github.com/samber/lo"
)

// Not inverts the result of the inner matcher.
func Not[T any](inner Matcher[T]) Matcher[T] {
	return notMatcher[T]{inner}
}

type notMatcher[T any] struct{ inner Matcher[T] }

func (m notMatcher[T]) Map(in T) bool  { return !m.inner.Map(in) }
func (m notMatcher[T]) String() string { return fmt.Sprintf("Not(%s)", Name(m.inner)) }

// AllOf matches when every matcher matches. Evaluation stops at the first miss.
func AllOf[T any](ms ...Matcher[T]) Matcher[T] {
	return allOf[T](ms)
}

type allOf[T any] []Matcher[T]

func (m allOf[T]) Map(in T) bool {
	return lo.EveryBy([]Matcher[T](m), func(inner Matcher[T]) bool { return inner.Map(in) })
}

func (m allOf[T]) String() string { return fmt.Sprintf("AllOf(%s)", names([]Matcher[T](m))) }

// AnyOf matches when at least one matcher matches. Evaluation stops at the first hit.
func AnyOf[T any](ms ...Matcher[T]) Matcher[T] {
	return anyOf[T](ms)
}

type anyOf[T any] []Matcher[T]

func (m anyOf[T]) Map(in T) bool {
	return lo.SomeBy([]Matcher[T](m), func(inner Matcher[T]) bool { return inner.Map(in) })
}

func (m anyOf[T]) String() string { return fmt.Sprintf("AnyOf(%s)", names([]Matcher[T](m))) }
