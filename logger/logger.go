package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

type LogLevel int

const (
	LevelDebug LogLevel = 0
	LevelInfo  LogLevel = 1
	LevelWarn  LogLevel = 2
	LevelError LogLevel = 3
	LevelNone  LogLevel = 99
)

var levels = map[string]LogLevel{
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERROR": LevelError,
	"NONE":  LevelNone,
}

func Levelify(levelString string) (LogLevel, error) {
	level, ok := levels[strings.ToUpper(levelString)]
	if !ok {
		return LevelNone, fmt.Errorf("Unknown LogLevel string '%s', expected one of [DEBUG, INFO, WARN, ERROR, NONE]", levelString)
	}
	return level, nil
}

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	DebugWithDetails(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
	Error(tag, msg string, args ...interface{})
	ErrorWithDetails(tag, msg string, args ...interface{})
	HandlePanic(tag string)
	ToggleForcedDebug()
	Flush() error
	FlushTimeout(time.Duration) error
}

type logger struct {
	level       LogLevel
	logger      *log.Logger
	forcedDebug bool
	mu          sync.Mutex
}

func NewLogger(level LogLevel) Logger {
	return NewWriterLogger(level, os.Stderr)
}

func NewWriterLogger(level LogLevel, writer io.Writer) Logger {
	return &logger{
		level:  level,
		logger: log.New(writer, "", log.LstdFlags),
	}
}

func (l *logger) Debug(tag, msg string, args ...interface{}) {
	if l.enabled(LevelDebug) {
		l.printf("DEBUG", tag, msg, args...)
	}
}

// DebugWithDetails places args after a separator so long payloads stay readable.
func (l *logger) DebugWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Debug(tag, msg, args...)
}

func (l *logger) Info(tag, msg string, args ...interface{}) {
	if l.enabled(LevelInfo) {
		l.printf("INFO", tag, msg, args...)
	}
}

func (l *logger) Warn(tag, msg string, args ...interface{}) {
	if l.enabled(LevelWarn) {
		l.printf("WARN", tag, msg, args...)
	}
}

func (l *logger) Error(tag, msg string, args ...interface{}) {
	if l.enabled(LevelError) {
		l.printf("ERROR", tag, msg, args...)
	}
}

func (l *logger) ErrorWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Error(tag, msg, args...)
}

func (l *logger) HandlePanic(tag string) {
	if l.reportPanic(tag, recover()) {
		os.Exit(2)
	}
}

func (l *logger) ToggleForcedDebug() {
	l.mu.Lock()
	l.forcedDebug = !l.forcedDebug
	l.mu.Unlock()
}

func (l *logger) Flush() error { return nil }

func (l *logger) FlushTimeout(time.Duration) error { return nil }

func (l *logger) reportPanic(tag string, e interface{}) (didPanic bool) {
	if e != nil {
		var msg string
		switch obj := e.(type) {
		case string:
			msg = obj
		case fmt.Stringer:
			msg = obj.String()
		case error:
			msg = obj.Error()
		default:
			msg = fmt.Sprintf("%#v", obj)
		}
		l.ErrorWithDetails(tag, "Panic: %s", msg, debug.Stack())
		return true
	}
	return false
}

func (l *logger) enabled(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.forcedDebug || level >= l.level
}

func (l *logger) printf(prefix, tag, msg string, args ...interface{}) {
	l.logger.Printf(fmt.Sprintf("[%s] %s - %s", tag, prefix, msg), args...)
}
