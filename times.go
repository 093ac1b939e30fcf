package bmock

import "fmt"

type timesKind int

const (
	timesExactly timesKind = iota
	timesAny
	timesAtLeast
	timesAtMost
	timesBetween
)

// Times describes how many requests an expectation should receive. The zero value is
// Exactly(0).
type Times struct {
	kind   timesKind
	lo, hi int
}

// AnyTimes allows any number of requests, including none.
func AnyTimes() Times { return Times{kind: timesAny} }

// AtLeast requires n or more requests.
func AtLeast(n int) Times { return Times{kind: timesAtLeast, lo: n} }

// AtMost allows up to n requests.
func AtMost(n int) Times { return Times{kind: timesAtMost, hi: n} }

// Between requires a number of requests in the inclusive range [lo, hi].
func Between(lo, hi int) Times { return Times{kind: timesBetween, lo: lo, hi: hi} }

// Exactly requires exactly n requests.
func Exactly(n int) Times { return Times{kind: timesExactly, lo: n, hi: n} }

// notExceeded reports whether a hit count, taken after incrementing, may still be
// answered with the configured response.
func (t Times) notExceeded(hits int) bool {
	switch t.kind {
	case timesAny, timesAtLeast:
		return true
	default:
		return hits <= t.hi
	}
}

// satisfied reports whether the final hit count honours the contract.
func (t Times) satisfied(hits int) bool {
	switch t.kind {
	case timesAny:
		return true
	case timesAtLeast:
		return hits >= t.lo
	case timesAtMost:
		return hits <= t.hi
	case timesBetween:
		return t.lo <= hits && hits <= t.hi
	default:
		return hits == t.lo
	}
}

func (t Times) String() string {
	switch t.kind {
	case timesAny:
		return "Any"
	case timesAtLeast:
		return fmt.Sprintf("AtLeast(%d)", t.lo)
	case timesAtMost:
		return fmt.Sprintf("AtMost(%d)", t.hi)
	case timesBetween:
		return fmt.Sprintf("Between(%d, %d)", t.lo, t.hi)
	default:
		return fmt.Sprintf("Exactly(%d)", t.lo)
	}
}
