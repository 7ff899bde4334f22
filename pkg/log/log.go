package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/christophe-duc/lazydialog/pkg/config"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a new logger. Debug builds write JSON lines to
// development.log in the config dir; otherwise only errors are kept, on
// stderr, since stdout carries the answers of the dialogs.
func NewLogger(config *config.AppConfig) *logrus.Entry {
	var log *logrus.Logger
	if config.Debug || os.Getenv("DEBUG") == "TRUE" {
		log = newDevelopmentLogger(config)
		// highly recommended: tail -f development.log | humanlog
		// https://github.com/aybabtme/humanlog
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		log = newProductionLogger()
	}

	return log.WithFields(logrus.Fields{
		"debug":     config.Debug,
		"version":   config.Version,
		"commit":    config.Commit,
		"buildDate": config.BuildDate,
	})
}

func getLogLevel() logrus.Level {
	strLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel())
	file, err := os.OpenFile(filepath.Join(config.ConfigDir, "development.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to log to file")
		os.Exit(1)
	}
	log.SetOutput(file)
	return log
}

func newProductionLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	if os.Getenv("LOG_LEVEL") != "" {
		log.Out = os.Stderr
	}
	log.SetLevel(logrus.ErrorLevel)
	return log
}
