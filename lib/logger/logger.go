package logger

import (
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/seqtrain/loader/config"
)

// NewLogger returns a logger backed by a tinted stderr handler. If a Sentry DSN is set
// in the settings, errors are additionally fanned out to Sentry and the returned bool
// is true; the caller is then responsible for flushing Sentry on shutdown.
func NewLogger(settings *config.Settings) (*slog.Logger, bool) {
	handler := tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})

	if settings != nil && settings.Reporting != nil && settings.Reporting.Sentry != nil && settings.Reporting.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: settings.Reporting.Sentry.DSN}); err != nil {
			slog.New(handler).Warn("Failed to enable Sentry output", slog.Any("err", err))
		} else {
			return slog.New(slogmulti.Fanout(
				handler,
				slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
			)), true
		}
	}

	return slog.New(handler), false
}

func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
