// Package sl holds small helpers for log/slog attributes.
package sl

import "log/slog"

// Err wraps err into an "error" attribute:
//
//	log.Error("failed to load course", sl.Err(err))
//
// A nil error is rendered as "<nil>" so a misplaced call never panics inside a
// logging statement.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
