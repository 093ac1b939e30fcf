package bmock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimes(t *testing.T) {
	for _, tt := range []struct {
		times       Times
		str         string
		notExceeded []bool // indexed by hit count, 0..4
		satisfied   []bool
	}{
		{
			times:       AnyTimes(),
			str:         "Any",
			notExceeded: []bool{true, true, true, true, true},
			satisfied:   []bool{true, true, true, true, true},
		},
		{
			times:       AtLeast(2),
			str:         "AtLeast(2)",
			notExceeded: []bool{true, true, true, true, true},
			satisfied:   []bool{false, false, true, true, true},
		},
		{
			times:       AtMost(2),
			str:         "AtMost(2)",
			notExceeded: []bool{true, true, true, false, false},
			satisfied:   []bool{true, true, true, false, false},
		},
		{
			times:       Between(1, 3),
			str:         "Between(1, 3)",
			notExceeded: []bool{true, true, true, true, false},
			satisfied:   []bool{false, true, true, true, false},
		},
		{
			times:       Exactly(2),
			str:         "Exactly(2)",
			notExceeded: []bool{true, true, true, false, false},
			satisfied:   []bool{false, false, true, false, false},
		},
		{
			times:       Times{},
			str:         "Exactly(0)",
			notExceeded: []bool{true, false, false, false, false},
			satisfied:   []bool{true, false, false, false, false},
		},
	} {
		t.Run(tt.str, func(t *testing.T) {
			require.Equal(t, tt.str, tt.times.String())

			for hits := range 5 {
				require.Equal(t, tt.notExceeded[hits], tt.times.notExceeded(hits), "not exceeded at %d", hits)
				require.Equal(t, tt.satisfied[hits], tt.times.satisfied(hits), "satisfied at %d", hits)
			}
		})
	}
}
