// Package wmlog provides the single process-wide logger used across the
// window manager. It mirrors the logging conventions of cortile's store
// package: one leveled logrus.Logger, structured fields instead of string
// interpolation, text output to stderr.
package wmlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is safe for concurrent use, though the
// window manager itself is single-threaded except for the SIGCHLD reaper.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetDebug toggles verbose diagnostic logging.
func SetDebug(on bool) {
	if on {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
