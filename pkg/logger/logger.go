// Package logger arma el logger zerolog raíz de la aplicación a partir de
// la configuración: salida de consola legible fuera de producción, JSON en
// producción.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options parámetros del logger. Env y Level vienen de pkg/config
// (APP_ENV y LOG_LEVEL); Writer se inyecta solo en tests.
type Options struct {
	Env    string // production activa la salida JSON
	Level  string // debug, info, warn, error; cualquier otro valor cae en info
	Writer io.Writer
}

// Logger logger raíz de la aplicación. Expone solo los niveles que el
// código usa; para subloggers con campos fijos está With.
type Logger struct {
	root zerolog.Logger
}

// New construye el logger y lo instala como logger global de zerolog,
// para que las librerías que loguean por su cuenta salgan por el mismo destino.
func New(opts Options) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	if opts.Env != "production" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	root := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = root
	return &Logger{root: root}
}

func (l *Logger) Debug() *zerolog.Event { return l.root.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.root.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.root.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.root.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.root.Fatal() }

// With abre un sublogger con campos fijos (por ejemplo el nombre del módulo).
func (l *Logger) With() zerolog.Context { return l.root.With() }
