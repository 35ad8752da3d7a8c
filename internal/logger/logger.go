// Package logger provides structured JSON logging and run metrics for the
// euromillones report generator.
//
// Every entry is a single JSON line with a timestamp, level, message and
// optional structured fields. The CLI points the default logger at stderr so
// that text and JSON reports on stdout stay machine readable.
//
// Example usage:
//
//	logger.Info("draws extracted", logger.Fields{
//	    "count": len(draws),
//	})
//
//	logger.Warn("skipping malformed draw", logger.Fields{"index": i}, err)
//
//	logger.IncrCounter("draws.extracted")
//	logger.RecordTiming("fetch", time.Since(start))
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel converts a flag value such as "debug" or "WARN" into a Level.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("invalid log level: %q (must be debug, info, warn or error)", s)
	}
	return level, nil
}

// Logger provides structured logging
type Logger struct {
	minLevel Level
	output   io.Writer
	now      func() time.Time
}

// Fields represents structured log fields
type Fields map[string]interface{}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger that writes entries at or above level to output.
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
		now:      time.Now,
	}
}

// SetDefault replaces the logger used by the package-level functions.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: l.now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return levelRank[level] >= levelRank[l.minLevel]
}

// Debug logs detailed diagnostic information.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs general progress of a run.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a recoverable problem, optionally with the error that caused it.
func (l *Logger) Warn(message string, fields Fields, err error) {
	l.log(LevelWarn, message, fields, err)
}

// Error logs a failure that ends the current run.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Debug logs a debug message with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning with the default logger
func Warn(message string, fields Fields, err error) {
	defaultLogger.Warn(message, fields, err)
}

// Error logs an error message with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Metrics tracks counters and timings for a single run.
type Metrics struct {
	counters map[string]int64
	timings  map[string][]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1.
func (m *Metrics) IncrCounter(name string) {
	m.AddCounter(name, 1)
}

// AddCounter increments a counter by delta.
func (m *Metrics) AddCounter(name string, delta int64) {
	m.counters[name] += delta
}

// Counter returns the current value of a counter.
func (m *Metrics) Counter(name string) int64 {
	return m.counters[name]
}

// RecordTiming records a duration measurement.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.timings[name] = append(m.timings[name], duration)
}

// Fields returns the metrics flattened into log fields: counters under their
// own name and timings as "<name>.total" and "<name>.count".
func (m *Metrics) Fields() Fields {
	fields := make(Fields, len(m.counters)+2*len(m.timings))
	for name, v := range m.counters {
		fields[name] = v
	}
	for name, durations := range m.timings {
		var total time.Duration
		for _, d := range durations {
			total += d
		}
		fields[name+".total"] = total.String()
		fields[name+".count"] = len(durations)
	}
	return fields
}

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, duration time.Duration) {
	defaultMetrics.RecordTiming(name, duration)
}

// DefaultMetrics returns the process-wide metrics tracker.
func DefaultMetrics() *Metrics {
	return defaultMetrics
}
