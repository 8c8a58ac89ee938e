// Package logger configura el logging estructurado de la aplicación sobre
// zerolog: consola legible en desarrollo, JSON en cualquier otro entorno.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development usa consola legible; el resto, JSON
	Level string // debug, info, warn, error (otro valor cae en info)
}

// Logger envoltorio fino sobre zerolog, para inyectarlo donde haga falta
// registrar sin depender del logger global.
type Logger struct {
	base zerolog.Logger
}

// New construye el logger de la aplicación y lo fija también como logger
// global de zerolog, para las librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	base := zerolog.New(os.Stdout)
	if cfg.Env == "development" {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	base = base.Level(levelFrom(cfg.Level)).With().Timestamp().Logger()

	log.Logger = base

	return &Logger{base: base}
}

func levelFrom(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.base.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.base.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.base.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.base.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.base.Fatal() }
