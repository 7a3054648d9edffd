// Package logger arma el logger estructurado que se inyecta en los use cases.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config formato y verbosidad de salida.
type Config struct {
	Env   string // "development" imprime consola legible; cualquier otro valor, JSON
	Level string // trace | debug | info | warn | error; desconocido cae en info
}

// Logger envuelve zerolog; se pasa por inyección en lugar de usar el global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger de la aplicación y alinea el global de zerolog para
// las librerías que escriben a través de él.
func New(cfg Config) *Logger {
	zl := zerolog.New(output(cfg.Env)).
		Level(level(cfg.Level)).
		With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func output(env string) io.Writer {
	if env == "development" {
		return zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return os.Stdout
}

func level(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos, por ejemplo el módulo que loguea.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
