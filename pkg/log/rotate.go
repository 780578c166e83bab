package log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRotatingFile returns a writer appending to path and rotating it once it
// reaches maxSizeMB megabytes. maxBackups and maxAgeDays of zero keep every
// rotated file.
func NewRotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   false,
	}
}
