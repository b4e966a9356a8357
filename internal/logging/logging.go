package logging

import (
	"github.com/sirupsen/logrus"
)

// Subsys is the log field naming the package a message came from.
const Subsys = "subsys"

// DefaultLogger is the shared logger. Packages derive their own entry with
// DefaultLogger.WithField(Subsys, "<name>"). Warn level by default so library
// use is quiet; the CLI raises it with SetDebug.
var DefaultLogger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetDebug toggles debug-level output on the shared logger.
func SetDebug(debug bool) {
	if debug {
		DefaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		DefaultLogger.SetLevel(logrus.WarnLevel)
	}
}
