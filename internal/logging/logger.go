// Package logging provides leveled, optionally colored logging with an
// optional append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/exifdate/internal/config"
	"github.com/backmassage/exifdate/internal/term"
)

// Logger writes leveled lines to an output stream (stderr by default, so
// stdout stays reserved for per-file results) and mirrors them without
// colors to the log file when one is configured.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	verbose  bool
	file     *os.File
	filePath string
	runID    string
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return NewLoggerTo(cfg, os.Stderr)
}

// NewLoggerTo is [NewLogger] with an explicit output stream.
func NewLoggerTo(cfg *config.Config, out io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode, out)
	l := &Logger{out: out, verbose: cfg.Verbose}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// SetRunID tags every log-file line with id so interleaved runs can be told apart.
func (l *Logger) SetRunID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runID = id
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
	l.fileLine(ts, level, text)
}

// fileLine appends a plain line to the log file. Caller holds l.mu.
func (l *Logger) fileLine(ts, level, text string) {
	if l.file == nil {
		return
	}
	prefix := ts + " [" + level + "] "
	if l.runID != "" {
		prefix += "run=" + l.runID + " "
	}
	_, _ = io.WriteString(l.file, prefix+text+"\n")
}

// Record writes text to the log file only. Used for per-file result lines
// that are already printed elsewhere without a timestamp.
func (l *Logger) Record(level, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileLine(ts, level, text)
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
