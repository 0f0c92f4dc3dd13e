//go:build !debug_trace
// +build !debug_trace

// logger_notrace.go: trace logging is a no-op unless built with the debug_trace tag.

package logger

import (
	"context"
)

// Tracef is just a shorthand for Logf(ctx, logger.LevelTrace, ...)
func Tracef(ctx context.Context, format string, args ...any) {}
