package configs

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application logger shared by every package.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogLevel switches the level; unknown names keep the current one.
func SetLogLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		Log.WithField("level", level).Warn("unknown log level, keeping current")
		return
	}
	Log.SetLevel(lvl)
}
