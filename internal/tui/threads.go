package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"
	"github.com/mailpilot/mailpilot-tui/internal/models"
	"github.com/mattn/go-runewidth"
)

const listTextWidth = 48

// wireListHandlers attaches selection callbacks to the center list.
func (a *App) wireListHandlers() {
	list, ok := a.views["threads"].(*tview.List)
	if !ok {
		return
	}

	// Enter confirms the highlighted row; j/k navigation goes through
	// the selection controller instead and reads live state.
	list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if a.ActiveTab() == models.TabNewsletters {
			subs := a.subscriptions.Subscriptions()
			if index >= 0 && index < len(subs) {
				a.selection.SelectSubscription(subs[index])
			}
			return
		}
		view := a.threads.Filtered(a.ActiveTab())
		if index >= 0 && index < len(view) {
			a.selection.SelectThread(view[index])
		}
	})
}

// refreshTabBar renders the tab strip with the active tab highlighted.
func (a *App) refreshTabBar() {
	bar, ok := a.views["tabs"].(*tview.TextView)
	if !ok {
		return
	}

	active := a.ActiveTab()
	parts := make([]string, 0, len(models.Tabs()))
	for _, tab := range models.Tabs() {
		if tab == active {
			parts = append(parts, fmt.Sprintf("[black:aqua] %s [-:-]", tab.Title()))
		} else {
			parts = append(parts, fmt.Sprintf(" %s ", tab.Title()))
		}
	}
	bar.SetText(strings.Join(parts, "|"))
}

// refreshThreadList re-renders the center list. On the newsletters tab
// it shows the subscription buckets; on every other tab the filtered
// thread view.
func (a *App) refreshThreadList() {
	list, ok := a.views["threads"].(*tview.List)
	if !ok {
		return
	}

	list.Clear()
	if a.ActiveTab() == models.TabNewsletters {
		list.SetTitle(" Newsletters ")
		selected, hasSelected := a.selection.SelectedSubscription()
		current := -1
		for i, sub := range a.subscriptions.Subscriptions() {
			marker := "  "
			if hasSelected && sub.ID == selected.ID {
				marker = "> "
				current = i
			}
			list.AddItem(marker+truncate(sub.Sender), "Newsletter", 0, nil)
		}
		if current >= 0 {
			list.SetCurrentItem(current)
		}
		return
	}

	list.SetTitle(" Threads ")
	selected, hasSelected := a.selection.SelectedThread()
	current := -1
	for i, thread := range a.threads.Filtered(a.ActiveTab()) {
		subject := thread.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		marker := "  "
		if hasSelected && thread.ID == selected.ID {
			marker = "> "
			current = i
		}
		main := fmt.Sprintf("%s%s [%d]", marker, truncate(subject), thread.PriorityScore)
		list.AddItem(main, thread.PriorityReason, 0, nil)
	}
	if current >= 0 {
		list.SetCurrentItem(current)
	}
}

// truncate trims text to the list column width, accounting for wide
// runes.
func truncate(text string) string {
	return runewidth.Truncate(text, listTextWidth, "…")
}
