package logging

// Leveled diagnostics for the report run. Every line carries the level and
// the originating operation so skipped files can be traced back.

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelVerbose
	LevelDebug
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "error":
		return LevelError
	case "verbose":
		return LevelVerbose
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Logger writes leveled messages to stdout/stderr and an optional file sink.
type Logger struct {
	mu      sync.Mutex
	level   Level
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
}

// New creates a logger. logFile may be empty.
func New(level Level, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stdout: log.New(os.Stdout, "", 0),
		stderr: log.New(os.Stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close flushes and closes the file sink if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message to stderr.
func (l *Logger) Error(op, format string, v ...any) {
	if l.level >= LevelError {
		l.write(fmt.Sprintf("ERROR [%s] "+format, prepend(op, v)...), true)
	}
}

// Info logs an info message.
func (l *Logger) Info(op, format string, v ...any) {
	if l.level >= LevelInfo {
		l.write(fmt.Sprintf("INFO [%s] "+format, prepend(op, v)...), false)
	}
}

// Verbose logs a verbose message.
func (l *Logger) Verbose(op, format string, v ...any) {
	if l.level >= LevelVerbose {
		l.write(fmt.Sprintf("VERBOSE [%s] "+format, prepend(op, v)...), false)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(op, format string, v ...any) {
	if l.level >= LevelDebug {
		l.write(fmt.Sprintf("DEBUG [%s] "+format, prepend(op, v)...), false)
	}
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}
	if isError {
		l.stderr.Println(msg)
	} else {
		l.stdout.Println(msg)
	}
}

func prepend(op string, v []any) []any {
	return append([]any{op}, v...)
}
