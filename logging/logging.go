// Package logging routes structured logs to a rotating file.
// The terminal belongs to the screen, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// FileName is the active log file inside the log directory
	FileName = "venn-deduction.log"
	// MaxSize triggers rotation of the existing file on startup
	MaxSize = 10 * 1024 * 1024
)

// Setup configures the global zerolog logger and the standard library logger.
// With debug off both are discarded and the returned file is nil.
// The caller closes the returned file on shutdown.
func Setup(debug bool, dir, level string) (*os.File, error) {
	if !debug {
		log.Logger = zerolog.Nop()
		stdlog.SetOutput(io.Discard)
		return nil, nil
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = zerolog.New(file).Level(lvl).With().Timestamp().Logger()
	stdlog.SetOutput(file)
	stdlog.SetFlags(stdlog.LstdFlags | stdlog.Lmicroseconds)
	return file, nil
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
