package bmock

import (
	"github.com/advdv/bmock/mappers"
	"github.com/cockroachdb/errors"
)

var (
	errNilMatcher   = errors.New("bmock: expectation has no matcher, build it with Matching")
	errNilResponder = errors.New("bmock: expectation has no responder, complete it with RespondWith")
)

// Expectation pairs a request matcher with a responder and the number of requests it should
// receive. Build one with [Matching] and register it with [Server.Expect].
type Expectation struct {
	matcher   mappers.Matcher[*Request]
	times     Times
	responder Responder
	hits      int
}

// Matching starts an expectation for requests that satisfy m.
//
//	bmock.Matching(request.MethodPath("GET", "/foo")).
//	    Times(bmock.AtLeast(1)).
//	    RespondWith(responders.Status(200).BodyString("ok"))
func Matching(m mappers.Matcher[*Request]) *ExpectationBuilder {
	return &ExpectationBuilder{matcher: m, times: Exactly(1)}
}

// ExpectationBuilder collects the parts of an [Expectation].
type ExpectationBuilder struct {
	matcher mappers.Matcher[*Request]
	times   Times
}

// Times sets how many requests the expectation should receive. The default is Exactly(1).
func (b *ExpectationBuilder) Times(t Times) *ExpectationBuilder {
	b.times = t
	return b
}

// RespondWith completes the expectation with the responder for matched requests. It panics
// when r is nil.
func (b *ExpectationBuilder) RespondWith(r Responder) *Expectation {
	if r == nil {
		panic(errNilResponder)
	}

	return &Expectation{
		matcher:   b.matcher,
		times:     b.times,
		responder: r,
	}
}

func (e *Expectation) String() string {
	return mappers.Name(e.matcher) + ", " + e.times.String()
}
