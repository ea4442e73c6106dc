package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger opens a JSON slog logger on path. An empty path yields a
// discard logger so call sites never nil-check.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	logger.Info("logger initialized")
	return logger, func() { f.Close() }, nil
}
