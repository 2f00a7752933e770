// Package logger provides the prefixed, coloured component loggers used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-level/config"
	"github.com/beka-birhanu/vinom-level/interfaces/general"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ general.Logger = &Logger{}

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger for one component. color is one of the config.Color* constants.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.out.Print(fmt.Sprintf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, config.ColorReset, levelColor, level, config.LogColorReset, msg))
}

// NewRotatingWriter returns a writer that rotates the log file at path once it reaches sizeMB.
func NewRotatingWriter(path string, sizeMB, backups, ageDays int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    sizeMB,
		MaxBackups: backups,
		MaxAge:     ageDays,
		Compress:   false,
	}
}
