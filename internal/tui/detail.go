package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"
	"github.com/mailpilot/mailpilot-tui/internal/models"
)

// refreshDetail re-renders the detail pane and the draft editor from
// the detail store.
func (a *App) refreshDetail() {
	view, ok := a.views["detail"].(*tview.TextView)
	if !ok {
		return
	}

	thread, hasThread := a.selection.SelectedThread()
	if !hasThread {
		view.SetText("Select a thread.")
		a.draftView.SetStoredText("")
		return
	}

	var b strings.Builder
	subject := thread.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	fmt.Fprintf(&b, "[::b]%s[-:-:-]\n", tview.Escape(subject))
	fmt.Fprintf(&b, "Category: %s  Priority: %d\n", thread.Category, thread.PriorityScore)
	if thread.PriorityReason != "" {
		fmt.Fprintf(&b, "%s\n", tview.Escape(thread.PriorityReason))
	}

	insight := a.detail.Insight()
	if len(insight.Labels) > 0 {
		fmt.Fprintf(&b, "\nLabels: %s\n", tview.Escape(strings.Join(insight.Labels, ", ")))
	}
	if insight.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", tview.Escape(insight.Summary))
	}
	if len(insight.Actions) > 0 {
		b.WriteString("\nAction items:\n")
		for _, action := range insight.Actions {
			fmt.Fprintf(&b, " • %s\n", tview.Escape(action))
		}
	}

	messages := a.detail.Messages()
	if len(messages) > 0 {
		b.WriteString("\nMessages:\n")
		for _, msg := range messages {
			fmt.Fprintf(&b, "[::d]%s[-:-:-]\n", tview.Escape(msg.FromAddr))
			if msg.Snippet != "" {
				fmt.Fprintf(&b, "  %s\n", tview.Escape(msg.Snippet))
			}
		}
	}

	view.SetText(b.String())
	a.draftView.SetStoredText(a.detail.Draft())
}

// refreshUnsubscribePanel re-renders the unsubscribe options. The
// panel only carries content on the newsletters tab.
func (a *App) refreshUnsubscribePanel() {
	view, ok := a.views["unsubscribe"].(*tview.TextView)
	if !ok {
		return
	}

	if a.ActiveTab() != models.TabNewsletters {
		view.SetText("")
		return
	}

	sub, hasSub := a.selection.SelectedSubscription()
	if !hasSub {
		view.SetText("Select a newsletter subscription.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", tview.Escape(sub.Sender))

	opts, loaded := a.subscriptions.UnsubscribeOptions()
	if !loaded {
		b.WriteString("\nLoading unsubscribe options...")
		view.SetText(b.String())
		return
	}

	if len(opts.Mailto) == 0 && len(opts.URLs) == 0 {
		b.WriteString("\nNo unsubscribe links found.")
		view.SetText(b.String())
		return
	}

	if len(opts.Mailto) > 0 {
		b.WriteString("\nMailto:\n")
		for _, target := range opts.Mailto {
			fmt.Fprintf(&b, " %s\n", tview.Escape(target))
		}
	}
	if len(opts.URLs) > 0 {
		b.WriteString("\nURL:\n")
		for _, target := range opts.URLs {
			fmt.Fprintf(&b, " %s\n", tview.Escape(target))
		}
	}
	view.SetText(b.String())
}
