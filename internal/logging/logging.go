// Package logging provides a small leveled logger with colored level tags
// and an optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	infoTag  = color.New(color.FgBlue, color.Bold)
	warnTag  = color.New(color.FgYellow, color.Bold)
	errorTag = color.New(color.FgRed, color.Bold)
	debugTag = color.New(color.FgCyan)
)

// Logger writes leveled lines to stderr and, if configured, a file.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
	now     func() time.Time
}

// Options configures a Logger.
type Options struct {
	// Out receives info, warn and debug lines. Defaults to stderr.
	Out io.Writer
	// Err receives error lines. Defaults to stderr.
	Err io.Writer
	// File, if set, is opened for append and receives every line uncolored.
	File    string
	Verbose bool
}

// New creates a Logger. Call Close when done if File was set.
func New(opts Options) (*Logger, error) {
	l := &Logger{
		out:     opts.Out,
		errOut:  opts.Err,
		verbose: opts.Verbose,
		now:     time.Now,
	}
	if l.out == nil {
		l.out = os.Stderr
	}
	if l.errOut == nil {
		l.errOut = os.Stderr
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// Discard returns a Logger that writes nowhere.
func Discard() *Logger {
	return &Logger{out: io.Discard, errOut: io.Discard, now: time.Now}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) line(w io.Writer, level string, tag *color.Color, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(w, "%s %s %s\n", ts, tag.Sprint("["+level+"]"), text)
	if l.file != nil {
		_, _ = fmt.Fprintf(l.file, "%s [%s] %s\n", ts, level, text)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, "INFO", infoTag, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, "WARN", warnTag, fmt.Sprintf(format, args...))
}

// Error logs to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.errOut, "ERROR", errorTag, fmt.Sprintf(format, args...))
}

// Debug logs only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(l.out, "DEBUG", debugTag, fmt.Sprintf(format, args...))
}
