// Package logging is a small leveled front for the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

// Level orders log output from least to most verbose.
type Level int32

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

var names = [...]string{"ERROR", "WARN", "INFO", "DEBUG"}

func (l Level) String() string {
	if l < LevelError || int(l) >= len(names) {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return names[l]
}

var level atomic.Int32

// SetLevel sets the most verbose level that is still written.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// Enabled reports whether messages at l are written.
func Enabled(l Level) bool {
	return Level(level.Load()) >= l
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.SetOutput(w)
}

func logf(l Level, format string, args ...interface{}) {
	if !Enabled(l) {
		return
	}
	log.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...interface{}) { logf(LevelDebug, format, args...) }
func Infof(format string, args ...interface{})  { logf(LevelInfo, format, args...) }
func Warnf(format string, args ...interface{})  { logf(LevelWarning, format, args...) }
func Errorf(format string, args ...interface{}) { logf(LevelError, format, args...) }
