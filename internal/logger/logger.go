// Package logger builds the CLI's structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint-formatted logger writing to w. Verbose enables debug
// records. Timestamps are UTC with millisecond precision and empty string
// attributes are dropped. Colour is disabled when NO_COLOR is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: os.Getenv("NO_COLOR") != "",
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(formatRFC3339Millis(a.Value.Time()))
			}

			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}

			return a
		},
	}))
}

func formatRFC3339Millis(t time.Time) string {
	t = t.UTC()

	return fmt.Sprintf("%s.%03dZ", t.Format("2006-01-02T15:04:05"), t.Nanosecond()/int(time.Millisecond))
}
