package mappers

import (
	"fmt"
)

// KV is a single key/value pair such as a request header or a decoded query parameter.
// Sequences of KV keep the order in which the pairs were received.
type KV struct {
	Key   string
	Value []byte
}

// NewKV is a convenience constructor for a pair with a textual value.
func NewKV(k, v string) KV {
	return KV{Key: k, Value: []byte(v)}
}

func (kv KV) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// Key matches pairs whose key satisfies inner, regardless of the value.
func Key(inner Matcher[string]) Matcher[KV] {
	return kvMatcher{key: inner}
}

// Value matches pairs whose value satisfies inner, regardless of the key.
func Value(inner Matcher[[]byte]) Matcher[KV] {
	return kvMatcher{value: inner}
}

// KeyValue matches pairs where both the key and the value satisfy their matcher.
func KeyValue(k Matcher[string], v Matcher[[]byte]) Matcher[KV] {
	return kvMatcher{key: k, value: v}
}

// KVEq matches a pair with exactly the given key and value.
func KVEq(k, v string) Matcher[KV] {
	return KeyValue(Eq(k), Eq([]byte(v)))
}

type kvMatcher struct {
	key   Matcher[string]
	value Matcher[[]byte]
}

func (m kvMatcher) Map(in KV) bool {
	if m.key != nil && !m.key.Map(in.Key) {
		return false
	}

	return m.value == nil || m.value.Map(in.Value)
}

func (m kvMatcher) String() string {
	switch {
	case m.value == nil:
		return fmt.Sprintf("Key(%s)", Name(m.key))
	case m.key == nil:
		return fmt.Sprintf("Value(%s)", Name(m.value))
	default:
		return fmt.Sprintf("KV(%s, %s)", Name(m.key), Name(m.value))
	}
}
