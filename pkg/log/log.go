// Package log adds a thin wrapper around logrus so that call sites can
// attach structured fields without importing logrus directly, and so
// that disabled debug logging costs nothing.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	l     = logrus.New()
	debug = false
)

// SetDebug controls debug logging.
func SetDebug(to bool) {
	debug = to
	l.Level = logrus.DebugLevel
}

// SetFormatter sets the formatter.
func SetFormatter(to logrus.Formatter) {
	l.Formatter = to
}

// SetOutput sets the output.
func SetOutput(to io.Writer) {
	l.Out = to
}

// Fields is a map of logging fields.
type Fields map[string]interface{}

// Formatter aliases so that main packages can pick an output format
// without importing logrus directly.
type (
	TextFormatter = logrus.TextFormatter
	JSONFormatter = logrus.JSONFormatter
)

// Err builds the Fields describing an error, including its dynamic
// type.
func Err(e error) Fields {
	return Fields{
		"error": e.Error(),
		"type":  fmt.Sprintf("%T", e),
	}
}

// merge flattens several field maps into one logrus.Fields value.
// Later maps win on key collisions.
func merge(fields []Fields) logrus.Fields {
	merged := make(logrus.Fields, len(fields))
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// Debug logs at the debug level if debug logging is enabled.
func Debug(v interface{}, fields ...Fields) {
	if !debug {
		return
	}
	if len(fields) != 0 {
		l.WithFields(merge(fields)).Debug(v)
	} else {
		l.Debug(v)
	}
}

// Info logs at the info level.
func Info(v interface{}, fields ...Fields) {
	if len(fields) != 0 {
		l.WithFields(merge(fields)).Info(v)
	} else {
		l.Info(v)
	}
}

// Warn logs at the warning level.
func Warn(v interface{}, fields ...Fields) {
	if len(fields) != 0 {
		l.WithFields(merge(fields)).Warn(v)
	} else {
		l.Warn(v)
	}
}

// Error logs at the error level.
func Error(v interface{}, fields ...Fields) {
	if len(fields) != 0 {
		l.WithFields(merge(fields)).Error(v)
	} else {
		l.Error(v)
	}
}

// Fatal logs at the fatal level and exits with a status code != 0.
func Fatal(v interface{}, fields ...Fields) {
	if len(fields) != 0 {
		l.WithFields(merge(fields)).Fatal(v)
	} else {
		l.Fatal(v)
	}
}
