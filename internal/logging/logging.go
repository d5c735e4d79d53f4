// Package logging writes the demo's debug log: a plain-text file of
// timestamp-free slog records framed by start and end banners.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	startBanner = "---------- Tessellation Debug Logs Start ----------"
	endBanner   = "---------- Tessellation Debug Logs End ----------"
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// New returns a logger writing text records to w without the time attribute.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// File is an open debug log. Each record goes straight to the OS file, so
// nothing is lost if the process dies after a write.
type File struct {
	*slog.Logger

	mu     sync.Mutex
	w      io.WriteCloser
	closed bool
}

// Open truncates path and writes the start banner.
func Open(path string, level slog.Leveler) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return newFile(f, level)
}

func newFile(w io.WriteCloser, level slog.Leveler) (*File, error) {
	if _, err := io.WriteString(w, startBanner+"\n"); err != nil {
		w.Close()
		return nil, fmt.Errorf("write log banner: %w", err)
	}
	return &File{Logger: New(w, level), w: w}, nil
}

// Close writes the end banner and closes the file. Calling it again is a no-op.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	_, werr := io.WriteString(f.w, endBanner+"\n")
	if err := f.w.Close(); err != nil {
		return err
	}
	return werr
}
