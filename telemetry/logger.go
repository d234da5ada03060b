package telemetry

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger at the given level
// ("debug", "info", "warn", "error"; unrecognised values fall back to
// info) and returns it for callers that want an explicit handle.
func InitLogger(level string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(level))
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Logger = l
	return l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
