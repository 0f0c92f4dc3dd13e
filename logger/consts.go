package logger

import (
	"github.com/facebookincubator/go-belt/tool/logger"
)

// Level is a logging level; it implements pflag.Value, so it could be
// used directly as a command-line flag.
type Level = logger.Level

const (
	LevelFatal   = logger.LevelFatal
	LevelError   = logger.LevelError
	LevelWarning = logger.LevelWarning
	LevelInfo    = logger.LevelInfo
	LevelDebug   = logger.LevelDebug
	LevelTrace   = logger.LevelTrace
)
