package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry initialises Sentry reporting when dsn is non-empty; an empty
// dsn is a valid "reporting disabled" configuration, not an error. Callers
// should defer Flush after a successful Init.
func InitSentry(dsn string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
	})
}

// ReportFatal reports a fatal load/format error (the input-format and I/O
// kinds from the error model) to Sentry if configured,
// and blocks briefly to give the event a chance to flush before the
// process exits non-zero.
func ReportFatal(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
