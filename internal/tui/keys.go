package tui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/mailpilot/mailpilot-tui/internal/models"
	"github.com/mailpilot/mailpilot-tui/internal/services"
)

// handleKeyEvent is the global keyboard router. It reads selection and
// filtered-view state through the stores on every keypress, so it
// never acts on a stale snapshot.
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		if a.helpVisible() {
			a.hideHelp()
			return nil
		}
		if a.toasts.Current() != "" {
			a.toasts.Dismiss()
			a.redraw(func() { a.refreshStatus("") })
			return nil
		}
		return event
	}

	// While typing in the form or the draft editor, printable keys
	// belong to the focused widget.
	if a.typingFocused() {
		return event
	}

	if event.Key() == tcell.KeyTab {
		a.cycleFocus()
		return nil
	}

	if event.Rune() == 0 {
		return event
	}
	key := string(event.Rune())

	switch key {
	case a.Keys.NextThread:
		a.selection.StepThread(services.StepNext)
		return nil
	case a.Keys.PrevThread:
		a.selection.StepThread(services.StepPrevious)
		return nil
	case a.Keys.Summarize:
		if thread, ok := a.selection.SelectedThread(); ok {
			go a.ai.Summarize(a.ctx, thread.ID)
		}
		return nil
	case a.Keys.DraftReply:
		if thread, ok := a.selection.SelectedThread(); ok {
			go a.ai.DraftReply(a.ctx, thread.ID, a.Config.AI.DraftLanguage)
		}
		return nil
	case a.Keys.Sync:
		if account, ok := a.accounts.Selected(); ok {
			go a.syncer.SyncNow(a.ctx, account.ID, a.Config.Sync.Limit)
		}
		return nil
	case a.Keys.NextTab:
		a.cycleTab()
		return nil
	case a.Keys.Help:
		a.showHelpModal()
		return nil
	case a.Keys.Quit:
		a.Stop()
		return nil
	}

	return event
}

// typingFocused reports whether the focused primitive consumes
// printable keys.
func (a *App) typingFocused() bool {
	switch a.GetFocus().(type) {
	case *tview.InputField, *tview.Checkbox, *tview.Button, *DraftView:
		return true
	}
	return false
}

// cycleFocus moves focus between the sidebar, the list and the draft
// editor.
func (a *App) cycleFocus() {
	order := []string{"accounts", "threads", "draft", "accountForm"}
	focused := a.GetFocus()
	for i, name := range order {
		if a.views[name] == focused {
			a.SetFocus(a.views[order[(i+1)%len(order)]])
			return
		}
	}
	a.SetFocus(a.views[order[0]])
}

// cycleTab advances the active tab in display order.
func (a *App) cycleTab() {
	tabs := models.Tabs()
	active := a.ActiveTab()
	for i, tab := range tabs {
		if tab == active {
			a.SetActiveTab(tabs[(i+1)%len(tabs)])
			return
		}
	}
	a.SetActiveTab(tabs[0])
}
