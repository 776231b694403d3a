package commands

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a stderr logger: warnings by default, debug when verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
