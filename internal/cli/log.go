package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger builds a logger writing to w at the given level, with a
// request ID prefix so concurrent or scripted invocations can be told
// apart in aggregated logs.
func newLogger(w io.Writer, level charmlog.Level, requestID uuid.UUID) *charmlog.Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          requestID.String()[:8],
	})
	return l
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the active logger, or the package default if
// none was attached (e.g. a command invoked outside Execute, from a test).
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}
