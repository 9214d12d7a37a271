package tui

import (
	"log"
	"os"
	"path/filepath"
)

// initLogger opens the configured log file, falling back to
// ~/.config/mailpilot/mailpilot.log. Logging stays off if neither can
// be opened.
func (a *App) initLogger() {
	if a.logger != nil && a.logFile != nil {
		return
	}

	path := a.Config.LogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir := filepath.Join(home, ".config", "mailpilot")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return
		}
		path = filepath.Join(dir, "mailpilot.log")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G304 - user-configured log path
	if err != nil {
		return
	}
	a.logFile = f
	a.logger = log.New(f, "[mailpilot] ", log.LstdFlags|log.Lmicroseconds)
}

// closeLogger closes the log file if opened.
func (a *App) closeLogger() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
