package commands

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Logger adapts zerolog to dynect.Logger.
type Logger struct {
	log zerolog.Logger
}

var _ dynect.Logger = (*Logger)(nil)

// NewLogger writes to out. Debug messages are dropped unless verbose is set.
func NewLogger(out io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		log: zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: noColor()}).
			Level(level).
			With().
			Timestamp().
			Logger(),
	}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}

// Logr returns a logr.Logger writing through the same zerolog logger.
// logr V(1) and above map to debug.
func (l *Logger) Logr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			args = prefix + ": " + args
		}

		l.log.Info().Msg(args)
	}, funcr.Options{Verbosity: l.verbosity()})
}

func (l *Logger) verbosity() int {
	if l.log.GetLevel() <= zerolog.DebugLevel {
		return 1
	}

	return 0
}
