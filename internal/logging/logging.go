// Package logging opens the file-backed zap logger. The TUI owns the
// terminal, so nothing may log to stdout or stderr while it runs.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const logFile = "kardex.log"

// Open builds a JSON logger writing under dir. When the directory or file
// cannot be used the nop logger is returned; logging is never a reason to
// fail startup.
func Open(dir string) *zap.Logger {
	if dir == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, logFile)}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
