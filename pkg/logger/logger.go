package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/limbo/ascent/pkg/cleanup"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Init installs the default slog logger. Development logs text at debug
// level, production logs JSON at info level. With a Sentry DSN, error
// records are also shipped to Sentry.
func Init(isDev bool, sentryDSN string) *slog.Logger {
	handlers := []slog.Handler{stdoutHandler(isDev)}
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
			cleanup.Register(&cleanup.Job{
				Name: "flushing sentry",
				F: func() error {
					sentry.Flush(2 * time.Second)
					return nil
				},
			})
		}
	}
	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func stdoutHandler(isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
}
