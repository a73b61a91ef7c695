package logging

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type Logger struct {
	mu                sync.Mutex
	enableInfo        bool
	enableTracing     bool
	mutraceSubsystems sync.Mutex
	traceSubsystems   map[string]bool
	stdoutLogger      *log.Logger
	stderrLogger      *log.Logger
	infoLogger        *log.Logger
	warnLogger        *log.Logger
	traceLogger       *log.Logger
}

func NewLogger(stdout io.Writer, stderr io.Writer) *Logger {
	return &Logger{
		enableInfo:      false,
		enableTracing:   false,
		stdoutLogger:    log.NewWithOptions(stdout, log.Options{}),
		stderrLogger:    log.NewWithOptions(stderr, log.Options{}),
		infoLogger:      log.NewWithOptions(stdout, log.Options{Prefix: "info"}),
		warnLogger:      log.NewWithOptions(stderr, log.Options{Prefix: "warn"}),
		traceLogger:     log.NewWithOptions(stdout, log.Options{Prefix: "trace"}),
		traceSubsystems: make(map[string]bool),
	}
}

func (l *Logger) Stdout(format string, args ...interface{}) {
	l.stdoutLogger.Printf(format, args...)
}

func (l *Logger) Stderr(format string, args ...interface{}) {
	l.stderrLogger.Printf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	enabled := l.enableInfo
	l.mu.Unlock()
	if enabled {
		l.infoLogger.Printf(format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.stderrLogger.Printf(format, args...)
}

func (l *Logger) Trace(subsystem string, format string, args ...interface{}) {
	if !l.tracing(subsystem) {
		return
	}
	l.traceLogger.Printf(subsystem+": "+format, args...)
}

func (l *Logger) tracing(subsystem string) bool {
	l.mu.Lock()
	enabled := l.enableTracing
	l.mu.Unlock()
	if !enabled {
		return false
	}

	l.mutraceSubsystems.Lock()
	defer l.mutraceSubsystems.Unlock()
	if _, exists := l.traceSubsystems[subsystem]; exists {
		return true
	}
	_, exists := l.traceSubsystems["all"]
	return exists
}

func (l *Logger) EnableInfo() {
	l.mu.Lock()
	l.enableInfo = true
	l.mu.Unlock()
}

func (l *Logger) EnableTrace(traces string) {
	l.mu.Lock()
	l.enableTracing = true
	l.mu.Unlock()

	l.mutraceSubsystems.Lock()
	defer l.mutraceSubsystems.Unlock()
	l.traceSubsystems = make(map[string]bool)
	for _, subsystem := range strings.Split(traces, ",") {
		subsystem = strings.TrimSpace(subsystem)
		if subsystem != "" {
			l.traceSubsystems[subsystem] = true
		}
	}
}

// Discard returns a logger that swallows everything, for tests.
func Discard() *Logger {
	return NewLogger(io.Discard, io.Discard)
}
