package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

const envPrefix = "MINES_"

type App struct {
	LogFile       string `schema:"MINES_LOG_FILE"`
	LogLevel      string `schema:"MINES_LOG_LEVEL"`
	LogMaxSize    int    `schema:"MINES_LOG_MAX_SIZE"` // megabytes
	LogMaxBackups int    `schema:"MINES_LOG_MAX_BACKUPS"`
	LogMaxAge     int    `schema:"MINES_LOG_MAX_AGE"` // days
}

func Default() App {
	return App{
		LogFile:       filepath.Join(os.TempDir(), "minesweeper.log"),
		LogLevel:      logrus.InfoLevel.String(),
		LogMaxSize:    5,
		LogMaxBackups: 3,
		LogMaxAge:     7,
	}
}

// Load reads the MINES_* variables of the process environment on top of
// [Default].
func Load() (App, error) {
	return decode(os.Environ())
}

func decode(environ []string) (App, error) {
	src := make(map[string][]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, envPrefix) {
			src[key] = append(src[key], value)
		}
	}

	app := Default()
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&app, src); err != nil {
		return App{}, fmt.Errorf("unable to decode environment: %w", err)
	}

	if _, err := logrus.ParseLevel(app.LogLevel); err != nil {
		return App{}, fmt.Errorf("invalid MINES_LOG_LEVEL: %w", err)
	}
	if app.LogMaxSize <= 0 {
		return App{}, fmt.Errorf("MINES_LOG_MAX_SIZE must be positive, got %d", app.LogMaxSize)
	}

	return app, nil
}

func (a App) Fields() logrus.Fields {
	return map[string]any{
		"log_file":        a.LogFile,
		"log_level":       a.LogLevel,
		"log_max_size":    a.LogMaxSize,
		"log_max_backups": a.LogMaxBackups,
		"log_max_age":     a.LogMaxAge,
		"development":     Development(),
	}
}
