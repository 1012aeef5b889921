// Package logger expone el logging estructurado de la aplicación sobre
// zerolog: consola legible en desarrollo, JSON en producción.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development usa consola; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error
}

// Logger envuelve zerolog para poder inyectarlo en usecases y handlers.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno y además redirige el logger
// global de zerolog, para que las librerías que loguean por él salgan con
// el mismo formato.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel acepta los niveles estándar; un valor desconocido cae a info.
func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Niveles delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With inicia un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno cuando se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
