// Package logging builds the hclog loggers shared by the launcher components.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// LevelEnv selects the log level; "json:<level>" also switches to JSON output.
	LevelEnv = "LAUNCHCORE_LOG_LEVEL"
	// JSONEnv forces JSON output when set to "1".
	JSONEnv = "LAUNCHCORE_JSON_LOG"

	defaultLevel = "warn"
)

// NewLogger creates a new hclog logger with standard settings. A level of the
// form "json:debug" selects JSON output at that level.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat, actualLevel := parseLevel(level)
	if os.Getenv(JSONEnv) == "1" {
		jsonFormat = true
	}

	if !jsonFormat {
		output = NewPrefixWriter(linePrefix(), output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = defaultLevel
	}
	return level
}

func parseLevel(level string) (bool, string) {
	if !strings.HasPrefix(level, "json") {
		return false, level
	}
	parts := strings.SplitN(level, ":", 2)
	if len(parts) > 1 && parts[1] != "" {
		return true, parts[1]
	}
	return true, "info"
}

// linePrefix is ASCII on Windows consoles, emoji elsewhere.
func linePrefix() string {
	if runtime.GOOS == "windows" {
		return "[LC] "
	}
	return "⛏️ "
}
