package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields represents structured log fields
type Fields map[string]interface{}

var log = newLogger(os.Stderr, "info")

func newLogger(out io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Setup replaces the package logger. Unknown levels fall back to info.
func Setup(out io.Writer, level string) {
	log = newLogger(out, level)
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Debug logs a debug message with structured fields
func Debug(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Error logs an error message with structured fields
func Error(msg string, err error, fields Fields) {
	log.WithFields(logrus.Fields(fields)).WithError(err).Error(msg)
}

// IsDebug lets callers skip building expensive debug fields.
func IsDebug() bool {
	return log.IsLevelEnabled(logrus.DebugLevel)
}
