// Package log provides a global logger with configurable logging level. Messages are written to
// stderr through logrus so that status lines stay human readable on a console.

package log

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelNone    Level = iota // Disables logging.
	LevelError                // Logs anomalies that are not expected to occur during normal use.
	LevelWarning              // Logs anomalies that are expected to occur occasionally, such as dropped links.
	LevelInfo                 // Logs session status and every received code.
	LevelDebug                // Logs scan results, GATT discovery and raw notifications.
)

var (
	globalLogLevel = LevelInfo
	logMutex       sync.Mutex
	logger         = newLogger(os.Stderr)
)

var logrusLevels = map[Level]logrus.Level{
	LevelError:   logrus.ErrorLevel,
	LevelWarning: logrus.WarnLevel,
	LevelInfo:    logrus.InfoLevel,
	LevelDebug:   logrus.DebugLevel,
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	return l
}

func SetLevel(level Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalLogLevel = level
}

// SetOutput redirects log output, for example to a buffer in tests.
func SetOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger.SetOutput(w)
}

func logLevel() Level {
	logMutex.Lock()
	defer logMutex.Unlock()
	return globalLogLevel
}

func log(level Level, format string, a ...interface{}) {
	if level == LevelNone || level > logLevel() {
		return
	}
	logger.Logf(logrusLevels[level], format, a...)
}

func Debug(format string, a ...interface{}) {
	log(LevelDebug, format, a...)
}
func Info(format string, a ...interface{}) {
	log(LevelInfo, format, a...)
}
func Warning(format string, a ...interface{}) {
	log(LevelWarning, format, a...)
}
func Error(format string, a ...interface{}) {
	log(LevelError, format, a...)
}

// Fatal logs regardless of level and exits the process with status 1.
func Fatal(format string, a ...interface{}) {
	logger.Fatalf(format, a...)
}
