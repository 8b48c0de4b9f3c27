// Package sl provides a one-line slog.Attr helper for logging errors,
// mirroring the idiom used throughout this repo's embedding layer.
package sl

import "log/slog"

// Err wraps err as a slog attribute under the conventional "error" key.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
