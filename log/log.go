package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var base *log.Logger

func init() {
	base = log.New()
	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	base.SetOutput(os.Stderr)
	base.SetLevel(log.WarnLevel)
}

// NewLogger returns a logger tagged with the module name. All loggers share
// one base, so SetLevel and AddTracer apply to every module.
func NewLogger(module string) *Logger {
	return &Logger{base.WithFields(log.Fields{
		"name": module,
	})}
}

func Base() *log.Logger {
	return base
}

func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	base.SetLevel(lvl)
	return nil
}

func SetOutput(out io.Writer) {
	base.SetOutput(out)
}

func (l *Logger) TraceEnabled() bool {
	return l.Logger.IsLevelEnabled(log.TraceLevel)
}

func (l *Logger) DebugEnabled() bool {
	return l.Logger.IsLevelEnabled(log.DebugLevel)
}
