package logger

import (
	"log"
)

// Levels in increasing order of severity. SILENCE suppresses everything and
// is meant for tests.
const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

// Logger is the leveled printf-style logger carried on the request context.
type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
}

// NewLogger returns a logger that drops every record below the given level.
func NewLogger(level int) *defaultLogger {
	return &defaultLogger{level: level}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.logf(DEBUG, "DEBUG", msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.logf(INFO, "INFO", msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.logf(WARNING, "WARN", msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.logf(ERROR, "ERROR", msg, a...)
}

func (l *defaultLogger) logf(level int, tag, msg string, a ...any) {
	if l.level <= level {
		log.Printf("["+tag+"] "+msg+"\n", a...)
	}
}
