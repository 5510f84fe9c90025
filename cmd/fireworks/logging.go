package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "fireworks.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging installs the default slog logger
// Without debug all records are discarded so nothing reaches the TUI
func setupLogging(debug bool) (*os.File, *slog.Logger) {
	if !debug {
		log := slog.New(slog.DiscardHandler)
		slog.SetDefault(log)
		return nil, log
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logs directory: %v\n", err)
		return setupLogging(false)
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return setupLogging(false)
	}

	log := newFileLogger(f)
	slog.SetDefault(log)
	return f, log
}

func newFileLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// rotateLog renames an oversized log with a timestamp suffix
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	rotated := filepath.Join(logDir, fmt.Sprintf("fireworks_%s.log", time.Now().Format("20060102_150405")))
	if err := os.Rename(path, rotated); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
	}
}
