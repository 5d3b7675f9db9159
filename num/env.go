package num

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Environment variables that tune the library at runtime.
const (
	// EnvNumWorkers overrides the default worker pool size.
	EnvNumWorkers = "MATPOOL_NUM_WORKERS"

	// EnvLogLevel selects the log level used by the matpool command.
	EnvLogLevel = "MATPOOL_LOG_LEVEL"
)

// NumWorkersEnv returns the worker count from MATPOOL_NUM_WORKERS.
// It returns 0 when the variable is unset or not a positive integer.
func NumWorkersEnv() int {
	val := os.Getenv(EnvNumWorkers)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// DefaultWorkers returns the worker count used when a caller does not pick
// one: MATPOOL_NUM_WORKERS if set, otherwise GOMAXPROCS.
func DefaultWorkers() int {
	if n := NumWorkersEnv(); n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// LogLevelEnv parses MATPOOL_LOG_LEVEL, falling back to def when the
// variable is unset or unrecognised.
func LogLevelEnv(def slog.Level) slog.Level {
	val := os.Getenv(EnvLogLevel)
	if val == "" {
		return def
	}
	lvl, err := ParseLogLevel(val)
	if err != nil {
		return def
	}
	return lvl
}

// ParseLogLevel accepts debug, info, warn/warning and error in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}
