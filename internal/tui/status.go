package tui

import (
	"fmt"

	"github.com/derailed/tview"
)

const statusBaseline = "MailPilot | Press ? for shortcuts | Press q to quit"

// refreshStatus renders the status bar. An empty toast falls back to
// the baseline hint line.
func (a *App) refreshStatus(toast string) {
	status, ok := a.views["status"].(*tview.TextView)
	if !ok {
		return
	}
	if toast == "" {
		status.SetText(statusBaseline)
		return
	}
	status.SetText(fmt.Sprintf("MailPilot | %s", tview.Escape(toast)))
}
