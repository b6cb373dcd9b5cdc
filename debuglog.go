package tweak

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// debugLogger writes panel diagnostics to a session-specific file under
// ~/.tweak/logs. A TUI owns the terminal, so there is nowhere sensible to
// print; the nil logger is a no-op and every method is nil-safe.
type debugLogger struct {
	logger *log.Logger
	file   *os.File
	path   string
}

// newDebugLogger opens ~/.tweak/logs/<session>-tweak.log for appending.
func newDebugLogger() (*debugLogger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("tweak: resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".tweak", "logs")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("tweak: create log directory: %w", err)
	}
	path := filepath.Join(dir, uuid.NewString()+"-tweak.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("tweak: open log file: %w", err)
	}
	return &debugLogger{
		logger: log.New(file, "", log.LstdFlags|log.Lmicroseconds),
		file:   file,
		path:   path,
	}, nil
}

func (l *debugLogger) printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Printf(format, args...)
}

func (l *debugLogger) close() {
	if l == nil || l.file == nil {
		return
	}
	l.file.Close()
}
