package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogger builds the game's logger. The terminal is taken by the board, so
// entries only go to the rotating log file; with an empty LogFile they are
// dropped.
func (a App) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if Development() {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)

	if a.LogFile == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   a.LogFile,
		MaxSize:    a.LogMaxSize,
		MaxBackups: a.LogMaxBackups,
		MaxAge:     a.LogMaxAge,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", a.LogFile, err)
	}
	log.AddHook(hook)

	return log, nil
}
