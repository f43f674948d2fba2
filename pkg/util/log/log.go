package log

import (
	"io"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
)

// Logger is the process-wide go-kit logger. Libraries take a logger in their
// constructors; only binaries should read this.
var Logger = kitlog.NewNopLogger()

// InitLogger builds a logfmt or json logger writing to w, filtered at
// logLevel, and installs it as Logger.
func InitLogger(w io.Writer, logFormat string, logLevel dslog.Level) kitlog.Logger {
	logger := dslog.NewGoKitWithWriter(logFormat, kitlog.NewSyncWriter(w))

	// use UTC timestamps and skip 5 stack frames.
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.Caller(5))

	// Must put the level filter last for efficiency.
	logger = level.NewFilter(logger, logLevel.Option)

	Logger = logger
	return logger
}
