package core

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	if singleton == nil {
		once.Do(
			func() {
				l := log.NewWithOptions(os.Stderr, log.Options{
					ReportCaller:    true,
					ReportTimestamp: true,
					TimeFormat:      time.RFC3339,
					Prefix:          "Geometry 📐 ",
				})
				l.SetLevel(log.InfoLevel)
				singleton = &logger{l}
			})
	}
	return singleton
}

func parseLevel(level string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// ValidateLogLevel reports whether level is one of debug, info, warn, error
// and fatal, without touching the logger.
func ValidateLogLevel(level string) error {
	_, err := parseLevel(level)
	return err
}

// SetLogLevel changes the level of the engine logger. Accepted values are
// debug, info, warn, error and fatal.
func SetLogLevel(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	getLogger().SetLevel(lvl)
	return nil
}

func LogLevel() string {
	return getLogger().GetLevel().String()
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
