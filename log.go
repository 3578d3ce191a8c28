package media

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// logLevel controls the log level for the package logger.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// SetLogger replaces the package logger. Passing nil restores the default
// stderr text logger. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. Backends log through it so that a
// single SetLogger call redirects everything.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logOnce deduplicates warnings for degraded features.
var logOnce sync.Map

// warnOnce logs msg at warn level the first time key is seen.
func warnOnce(key, msg string, args ...any) {
	if _, loaded := logOnce.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	Logger().Warn(msg, args...)
}
