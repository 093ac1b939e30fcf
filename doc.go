// Package bmock provides a programmable HTTP mock endpoint for tests.
//
// # Overview
//
// A test starts a [Server], registers expectations describing the requests the code under
// test is supposed to make, and points that code at [Server.URL]. When the test ends the
// server verifies that every expectation received the number of requests it asked for and
// that no request went unanswered:
//
//	func TestClient(t *testing.T) {
//	    srv := bmock.Run(t)
//	    srv.Expect(bmock.Matching(request.MethodPath("GET", "/foo")).
//	        RespondWith(responders.Status(200).BodyString("ok")))
//
//	    client := NewClient(srv.URL("/"))
//	    client.Foo(ctx)
//	}
//
// # Expectations
//
// An expectation is built in three steps:
//
//   - [Matching] takes the matcher deciding which requests the expectation applies to
//   - [ExpectationBuilder.Times] sets the number of requests it should receive, Exactly(1)
//     when omitted
//   - [ExpectationBuilder.RespondWith] sets the [Responder] producing the response
//
// Matchers are composed from the mappers in [github.com/advdv/bmock/mappers] and the
// request extractors in [github.com/advdv/bmock/mappers/request]:
//
//	bmock.Matching(mappers.AllOf(
//	    request.MethodPath("POST", "/users"),
//	    request.Headers(mappers.Contains(mappers.KVEq("content-type", "application/json"))),
//	    request.Body(mappers.JSONField("name", mappers.Eq("alice"))),
//	))
//
// # Dispatch
//
// Every request is matched against the registered expectations, newest first. A test can
// therefore register a broad default early and override it later with something more
// specific. The first expectation that matches gets the request:
//
//   - if its cardinality still allows it, its responder answers
//   - otherwise the request is answered with a 500 that names the matcher, the number of
//     requests received and the cardinality; no other expectation is considered
//
// A request that matches nothing is answered with a 500 "No matcher found" and counted as
// unexpected. Matching and counting happen under a single lock; the responder runs after the
// lock is released so a slow responder does not hold up other requests.
//
// # Cardinality
//
// [Times] values describe the allowed number of requests:
//
//	| Times          | a request is answered while | verification passes when |
//	|----------------|-----------------------------|--------------------------|
//	| AnyTimes()     | always                      | always                   |
//	| AtLeast(n)     | always                      | hits >= n                |
//	| AtMost(n)      | hits <= n                   | hits <= n                |
//	| Between(lo,hi) | hits <= hi                  | lo <= hits <= hi         |
//	| Exactly(n)     | hits <= n                   | hits == n                |
//
// An AnyTimes expectation that never matched passes verification.
//
// # Verification
//
// [Server.VerifyAndReset] fails the test with one message listing every violated
// expectation and the number of unexpected requests, or resets the server when all is well.
// [Server.Close] stops the listener and then verifies; [Run] registers it with
// testing.TB.Cleanup so it runs even when the test forgets. Failures are never reported on
// top of a test that has already failed.
//
// # Configuration
//
// [Run] reads its [Config] from the environment (BMOCK_ADDR, BMOCK_LOG_LEVEL,
// BMOCK_MAX_BODY_BYTES, BMOCK_SHUTDOWN_TIMEOUT) and accepts [Option] values to override
// the configuration, the [Logger], tracing and responder [Middleware].
package bmock
