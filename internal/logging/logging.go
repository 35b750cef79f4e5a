// Package logging builds the process logger from config.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rustyeddy/orderdesk/config"
)

// New returns a logrus logger per the logging config. With a file set,
// output goes to stderr and a size-rotated log file.
func New(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if cfg.File != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 50
		}
		rot := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: cfg.MaxBackups,
		}
		log.SetOutput(io.MultiWriter(os.Stderr, rot))
	}

	return log
}
