// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/pinto/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// detailer is an error carrying structured fields, as zerr.With attaches them.
type detailer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput updates the logger's output destination, keeping the JSON mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(err))
}

// formatChain renders the zerr message chain as "Error: ..." followed by its causes,
// then the metadata attached anywhere along the chain.
func formatChain(err error) string {
	var (
		messages []string
		details  = map[string]any{}
	)
	for current := err; current != nil; current = errors.Unwrap(current) {
		if d, ok := current.(detailer); ok {
			for k, v := range d.Metadata() {
				// The outermost value wins.
				if _, seen := details[k]; !seen {
					details[k] = v
				}
			}
		}
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		// zerr.With on a plain error adds an empty wrapper.
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
	}
	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}

	var lines []string
	lines = appendIndented(lines, "Error: ", "       ", messages[0])
	if len(messages) > 1 {
		lines = append(lines, "", "  Caused by:")
		for _, msg := range messages[1:] {
			lines = appendIndented(lines, "    → ", "      ", msg)
		}
	}

	if len(details) > 0 {
		lines = append(lines, "", "  Details:")
		for _, k := range slices.Sorted(maps.Keys(details)) {
			value := strings.TrimRight(fmt.Sprint(details[k]), "\n")
			lines = appendIndented(lines, "    "+k+": ", "      ", value)
		}
	}
	return strings.Join(lines, "\n")
}

// appendIndented adds text with first in front of its first line and rest in
// front of the others.
func appendIndented(lines []string, first, rest, text string) []string {
	parts := strings.Split(text, "\n")
	lines = append(lines, first+parts[0])
	for _, p := range parts[1:] {
		lines = append(lines, rest+p)
	}
	return lines
}

var _ ports.Logger = (*Logger)(nil)
