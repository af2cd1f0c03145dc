package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/example/table-reservations/internal/infrastructure/config"
)

// New builds the process logger. Diagnostics go to w so that command output
// on stdout stays clean.
func New(cfg config.Config, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
