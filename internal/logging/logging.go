// Package logging builds the application's structured logger.
// Records go to a size-rotated file so that interactive screens stay clean.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger.
type Options struct {
	File      string // Empty discards all records
	Level     slog.Level
	MaxSizeMB int
	MaxFiles  int
}

// New returns a JSON logger writing to a rotating file, and the closer for
// that file. With an empty File the logger discards everything.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.File == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nopCloser{}, nil
	}

	writer, err := NewRotatingWriter(opts)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: opts.Level})
	return slog.New(handler), writer, nil
}

// NewRotatingWriter returns a lumberjack writer for opts.File, creating its directory.
func NewRotatingWriter(opts Options) (*lumberjack.Logger, error) {
	if opts.File == "" {
		return nil, fmt.Errorf("log file path must not be empty")
	}

	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = 5
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxFiles,
		Compress:   false,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
