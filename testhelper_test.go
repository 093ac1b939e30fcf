package bmock_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/advdv/bmock"
)

// fakeTB records fatal failures instead of stopping the test, so failing verifications can
// be asserted on.
type fakeTB struct {
	testing.TB

	mu     sync.Mutex
	fatals []string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Fatalf(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func (f *fakeTB) Failed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fatals) > 0
}

func (f *fakeTB) Fatals() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fatals...)
}

// run starts a server for t that logs through a counting logger.
func run(t *testing.T, opts ...bmock.Option) (*bmock.Server, *bmock.TestLogger) {
	t.Helper()
	logs := bmock.NewTestLogger(t)
	return bmock.Run(t, append([]bmock.Option{bmock.WithLogger(logs)}, opts...)...), logs
}
