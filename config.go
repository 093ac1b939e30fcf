package bmock

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings of a mock server. The zero value is not usable, obtain one from
// [ParseConfig] or [DefaultConfig].
type Config struct {
	// Addr is the address the listener binds to. The default picks a free local port.
	Addr string `env:"BMOCK_ADDR" envDefault:"127.0.0.1:0"`
	// LogLevel of the default logger that writes to the test output.
	LogLevel zapcore.Level `env:"BMOCK_LOG_LEVEL" envDefault:"info"`
	// MaxBodyBytes limits how much of a request body is buffered, -1 disables the limit.
	MaxBodyBytes int64 `env:"BMOCK_MAX_BODY_BYTES" envDefault:"10485760"`
	// ShutdownTimeout bounds how long Close waits for in-flight requests.
	ShutdownTimeout time.Duration `env:"BMOCK_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// TraceExporter enables tracing when no tracer provider is passed with
	// [WithTracerProvider]. Only "stdout" is supported, it writes spans to the test log.
	TraceExporter string `env:"BMOCK_TRACE_EXPORTER"`
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse environment")
	}

	return cfg, nil
}

// DefaultConfig returns the configuration used when the environment sets nothing.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:0",
		LogLevel:        zapcore.InfoLevel,
		MaxBodyBytes:    10 << 20,
		ShutdownTimeout: 5 * time.Second,
	}
}
