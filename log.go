package livestock

import (
	"context"
	"log/slog"
	"strconv"
)

// errorsAttr groups error messages under the key "errors", keyed by index.
func errorsAttr(errs ValidationErrors) slog.Attr {
	as := make([]slog.Attr, len(errs))
	for i, e := range errs {
		as[i] = slog.String(strconv.Itoa(i), e.Message)
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// logRevalidated records the outcome of a recomputation at debug level.
func logRevalidated(l *slog.Logger, errs ValidationErrors) {
	if l == nil || !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.Bool("valid", len(errs) == 0),
		slog.Int("error_count", len(errs)),
	}
	if len(errs) > 0 {
		attrs = append(attrs, errorsAttr(errs))
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "value revalidated", attrs...)
}
