package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"
)

const helpPage = "help"

// showHelpModal opens the shortcuts legend.
func (a *App) showHelpModal() {
	a.mu.Lock()
	if a.showHelp {
		a.mu.Unlock()
		return
	}
	a.showHelp = true
	a.mu.Unlock()

	keys := a.Keys
	var b strings.Builder
	b.WriteString("Shortcuts\n\n")
	fmt.Fprintf(&b, " %s / %s  Move in thread list\n", keys.NextThread, keys.PrevThread)
	fmt.Fprintf(&b, " %s      Summarize thread\n", keys.Summarize)
	fmt.Fprintf(&b, " %s      Draft reply\n", keys.DraftReply)
	fmt.Fprintf(&b, " %s      Sync now\n", keys.Sync)
	fmt.Fprintf(&b, " %s      Next tab\n", keys.NextTab)
	fmt.Fprintf(&b, " %s      Open this modal\n", keys.Help)
	b.WriteString(" Esc    Close\n")

	text := tview.NewTextView().SetText(b.String())
	text.SetBorder(true).SetTitle(" Help ")

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(text, 12, 0, true).
			AddItem(nil, 0, 1, false), 44, 0, true).
		AddItem(nil, 0, 1, false)

	a.Pages.AddPage(helpPage, modal, true, true)
}

// hideHelp closes the shortcuts legend.
func (a *App) hideHelp() {
	a.mu.Lock()
	a.showHelp = false
	a.mu.Unlock()
	a.Pages.RemovePage(helpPage)
}

func (a *App) helpVisible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.showHelp
}
