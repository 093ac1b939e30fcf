package bmock

import (
	"log"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogExpectationAdded(matcher string, times Times)
	LogRequestMatched(req *Request, matcher string, hits int)
	LogRequestUnmatched(req *Request)
	LogCardinalityExceeded(req *Request, matcher string, hits int, times Times)
	LogResponderError(req *Request, err error)
	LogReadRequestError(err error)
	LogServeError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogExpectationAdded(matcher string, times Times) {
	l.Logger.Printf("bmock: expectation added: %s, %s", matcher, times)
}

func (l stdLogger) LogRequestMatched(req *Request, matcher string, hits int) {
	l.Logger.Printf("bmock: %s matched %s (hit %d)", req, matcher, hits)
}

func (l stdLogger) LogRequestUnmatched(req *Request) {
	l.Logger.Printf("bmock: no matcher found for request: %s", req)
}

func (l stdLogger) LogCardinalityExceeded(req *Request, matcher string, hits int, times Times) {
	l.Logger.Printf("bmock: %s exceeded %s on %s: received %d", req, times, matcher, hits)
}

func (l stdLogger) LogResponderError(req *Request, err error) {
	l.Logger.Printf("bmock: responder for %s failed: %s", req, err)
}

func (l stdLogger) LogReadRequestError(err error) {
	l.Logger.Printf("bmock: failed to read request: %s", err)
}

func (l stdLogger) LogServeError(err error) {
	l.Logger.Printf("bmock: server error: %s", err)
}

// NewStdLogger logs through a standard library logger, or the default one when l is nil.
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}

	return stdLogger{l}
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogExpectationAdded(matcher string, times Times) {
	l.Logger.Debug("expectation added", zap.String("matcher", matcher), zap.Stringer("times", times))
}

func (l zapLogger) LogRequestMatched(req *Request, matcher string, hits int) {
	l.Logger.Debug("request matched",
		zap.Stringer("request", req), zap.String("matcher", matcher), zap.Int("hits", hits))
}

func (l zapLogger) LogRequestUnmatched(req *Request) {
	l.Logger.Info("no matcher found for request", zap.Stringer("request", req))
}

func (l zapLogger) LogCardinalityExceeded(req *Request, matcher string, hits int, times Times) {
	l.Logger.Info("unexpected number of requests",
		zap.Stringer("request", req), zap.String("matcher", matcher),
		zap.Int("hits", hits), zap.Stringer("times", times))
}

func (l zapLogger) LogResponderError(req *Request, err error) {
	l.Logger.Error("responder failed", zap.Stringer("request", req), zap.Error(err))
}

func (l zapLogger) LogReadRequestError(err error) {
	l.Logger.Error("failed to read request", zap.Error(err))
}

func (l zapLogger) LogServeError(err error) {
	l.Logger.Error("server error", zap.Error(err))
}

// NewZapLogger logs through a zap logger.
func NewZapLogger(l *zap.Logger) Logger {
	return zapLogger{l.Named("bmock")}
}

// newDefaultLogger writes to the test log at the configured level.
func newDefaultLogger(tb testing.TB, cfg Config) Logger {
	return NewZapLogger(zaptest.NewLogger(tb, zaptest.Level(cfg.LogLevel)))
}

// TestLogger logs to the test output and counts every event.
type TestLogger struct {
	tb testing.TB

	NumLogExpectationAdded    int64
	NumLogRequestMatched      int64
	NumLogRequestUnmatched    int64
	NumLogCardinalityExceeded int64
	NumLogResponderError      int64
	NumLogReadRequestError    int64
	NumLogServeError          int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogExpectationAdded(matcher string, times Times) {
	atomic.AddInt64(&l.NumLogExpectationAdded, 1)
	l.tb.Logf("bmock: expectation added: %s, %s", matcher, times)
}

func (l *TestLogger) LogRequestMatched(req *Request, matcher string, hits int) {
	atomic.AddInt64(&l.NumLogRequestMatched, 1)
	l.tb.Logf("bmock: %s matched %s (hit %d)", req, matcher, hits)
}

func (l *TestLogger) LogRequestUnmatched(req *Request) {
	atomic.AddInt64(&l.NumLogRequestUnmatched, 1)
	l.tb.Logf("bmock: no matcher found for request: %s", req)
}

func (l *TestLogger) LogCardinalityExceeded(req *Request, matcher string, hits int, times Times) {
	atomic.AddInt64(&l.NumLogCardinalityExceeded, 1)
	l.tb.Logf("bmock: %s exceeded %s on %s: received %d", req, times, matcher, hits)
}

func (l *TestLogger) LogResponderError(req *Request, err error) {
	atomic.AddInt64(&l.NumLogResponderError, 1)
	l.tb.Logf("bmock: responder for %s failed: %s", req, err)
}

func (l *TestLogger) LogReadRequestError(err error) {
	atomic.AddInt64(&l.NumLogReadRequestError, 1)
	l.tb.Logf("bmock: failed to read request: %s", err)
}

func (l *TestLogger) LogServeError(err error) {
	atomic.AddInt64(&l.NumLogServeError, 1)
	l.tb.Logf("bmock: server error: %s", err)
}

var _ Logger = &TestLogger{}
