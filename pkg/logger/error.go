package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/stacktrace"
)

// errorAttrReplacer renders error values as their message. JSON handlers would otherwise print "{}".
func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if attr.Key != ErrorKey || attr.Value.Kind() != slog.KindAny {
		return attr
	}
	if err, ok := attr.Value.Any().(error); ok && err != nil {
		return slog.String(attr.Key, err.Error())
	}
	return attr
}

// middlewareErrorStackTrace adds the verbose message and the stack trace of the logged error to the record.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var logged error
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey || attr.Value.Kind() != slog.KindAny {
					return true
				}
				if err, ok := attr.Value.Any().(error); ok && err != nil {
					logged = err
					return false
				}
				return true
			})
			if logged == nil {
				return next(ctx, rec)
			}

			rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", logged)))
			if st, ok := deepestStackTrace(logged); ok {
				rec.AddAttrs(slog.Any(ErrorStackTraceKey, st.TraceFramesStrings()))
			}
			return next(ctx, rec)
		}
	}
}

// deepestStackTrace returns the stack trace closest to the origin of the error.
func deepestStackTrace(err error) (stacktrace.StackTrace, bool) {
	var (
		found stacktrace.StackTrace
		ok    bool
	)
	for ; err != nil; err = errors.UnwrapOnce(err) {
		if provider, isProvider := err.(errbase.StackTraceProvider); isProvider {
			found, ok = stacktrace.StackTrace(provider.StackTrace()), true
		}
	}
	return found, ok
}
