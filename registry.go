package bmock

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// errPoisoned is raised on every access after a panic left the registry half updated.
var errPoisoned = errors.New("bmock: registry poisoned by a panic in an earlier critical section")

// registry is the state shared between the listener and the test: the registered
// expectations, oldest first, and the number of requests nothing matched.
type registry struct {
	mu         sync.Mutex
	poisoned   bool
	expected   []Expectation
	unexpected int
}

// do runs fn with exclusive access to the registry. If fn panics the registry is marked
// poisoned and every later call panics as well.
func (g *registry) do(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		panic(errPoisoned)
	}

	completed := false
	defer func() {
		if !completed {
			g.poisoned = true
		}
	}()

	fn()
	completed = true
}

func (g *registry) push(e Expectation) {
	g.do(func() { g.expected = append(g.expected, e) })
}

func (g *registry) recordUnexpected() {
	g.do(func() { g.unexpected++ })
}

// selection is the outcome of matching one request against the registry.
type selection struct {
	matched   bool
	exceeded  bool
	responder Responder // set when matched and not exceeded
	response  *Response // synthesized response otherwise
	matcher   string
	times     Times
	hits      int
}

// selectFor finds the expectation for req and counts the hit. Expectations are evaluated
// newest first, so a later registration overrides an earlier one. The first match wins
// even when its cardinality is already exhausted.
func (g *registry) selectFor(req *Request) (sel selection) {
	g.do(func() {
		for i := len(g.expected) - 1; i >= 0; i-- {
			e := &g.expected[i]
			if !e.matcher.Map(req) {
				continue
			}

			e.hits++
			sel.matched = true
			sel.matcher, sel.times, sel.hits = e.matcher.String(), e.times, e.hits

			if e.times.notExceeded(e.hits) {
				sel.responder = e.responder
				return
			}

			sel.exceeded = true
			sel.response = textResponse(http.StatusInternalServerError, cardinalityMessage(sel.matcher, sel.hits, sel.times))
			return
		}

		g.unexpected++
		sel.response = textResponse(http.StatusInternalServerError, "No matcher found")
	})

	return sel
}

// verify checks every expectation against its final hit count and reports requests that
// matched nothing.
func (g *registry) verify() (err error) {
	g.do(func() {
		invalid := lo.Filter(g.expected, func(e Expectation, _ int) bool {
			return !e.times.satisfied(e.hits)
		})

		for _, e := range invalid {
			err = multierr.Append(err, errors.New(cardinalityMessage(e.matcher.String(), e.hits, e.times)))
		}

		if g.unexpected != 0 {
			err = multierr.Append(err, errors.Newf("%d unexpected requests received", g.unexpected))
		}
	})

	return err
}

func (g *registry) reset() {
	g.do(func() {
		g.expected = nil
		g.unexpected = 0
	})
}

func cardinalityMessage(matcher string, hits int, times Times) string {
	return fmt.Sprintf("Unexpected number of requests for matcher '%s'; received %d; expected %s",
		matcher, hits, times)
}
