package bmock

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// newTracerProvider creates the provider for the exporter named in [Config.TraceExporter].
// Supported exporters: "stdout", which pretty prints finished spans to the test log.
func newTracerProvider(tb testing.TB, exporterType string) (*sdktrace.TracerProvider, error) {
	var exporter sdktrace.SpanExporter

	switch exporterType {
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(testWriter{tb}), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, errors.Wrap(err, "failed to create stdout exporter")
		}

		exporter = exp
	default:
		return nil, errors.Newf("unsupported trace exporter: %q (supported: stdout)", exporterType)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(resource.NewSchemaless(semconv.ServiceName("bmock"))),
	), nil
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

// withTracing wraps the handler with otelhttp so every request gets a server span.
func withTracing(next http.Handler, tp trace.TracerProvider) http.Handler {
	return otelhttp.NewHandler(next, "bmock",
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithPropagators(newPropagator()),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// testWriter sends exporter output to the test log.
type testWriter struct{ tb testing.TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Log(string(p))
	return len(p), nil
}
