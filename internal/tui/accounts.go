package tui

import (
	"fmt"

	"github.com/derailed/tview"
	"github.com/mailpilot/mailpilot-tui/internal/services"
)

// buildAccountForm creates the add-account form. Save submits the
// account; Test connection only probes IMAP and never touches the
// account list.
func (a *App) buildAccountForm() *tview.Form {
	form := tview.NewForm()
	form.AddInputField("Email", "", 0, nil, nil)
	form.AddPasswordField("App password", "", 0, '*', nil)
	form.AddInputField("IMAP host", "", 0, nil, nil)
	form.AddInputField("IMAP port", "993", 0, nil, nil)
	form.AddCheckbox("IMAP TLS", true, nil)
	form.AddInputField("SMTP host", "", 0, nil, nil)
	form.AddInputField("SMTP port", "587", 0, nil, nil)
	form.AddCheckbox("SMTP TLS", true, nil)

	form.AddButton("Test connection", func() {
		f := a.collectAccountForm(form)
		go a.accounts.TestConnection(a.ctx, f)
	})
	form.AddButton("Save account", func() {
		f := a.collectAccountForm(form)
		go func() {
			if err := a.accounts.Create(a.ctx, f); err != nil {
				return
			}
			a.QueueUpdateDraw(func() { a.resetAccountForm(form) })
		}()
	})

	return form
}

// collectAccountForm reads the raw form values. Port validation
// happens in the account store, not here.
func (a *App) collectAccountForm(form *tview.Form) services.AccountForm {
	text := func(label string) string {
		if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
			return field.GetText()
		}
		return ""
	}
	checked := func(label string) bool {
		if box, ok := form.GetFormItemByLabel(label).(*tview.Checkbox); ok {
			return box.IsChecked()
		}
		return false
	}

	return services.AccountForm{
		Email:    text("Email"),
		Password: text("App password"),
		IMAPHost: text("IMAP host"),
		IMAPPort: text("IMAP port"),
		IMAPTLS:  checked("IMAP TLS"),
		SMTPHost: text("SMTP host"),
		SMTPPort: text("SMTP port"),
		SMTPTLS:  checked("SMTP TLS"),
	}
}

func (a *App) resetAccountForm(form *tview.Form) {
	set := func(label, value string) {
		if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
			field.SetText(value)
		}
	}
	set("Email", "")
	set("App password", "")
	set("IMAP host", "")
	set("IMAP port", "993")
	set("SMTP host", "")
	set("SMTP port", "587")
}

// refreshAccountList re-renders the accounts sidebar from the store.
func (a *App) refreshAccountList() {
	list, ok := a.views["accounts"].(*tview.List)
	if !ok {
		return
	}

	selected, hasSelected := a.accounts.Selected()
	list.Clear()
	for _, account := range a.accounts.Accounts() {
		account := account
		label := account.Email
		if hasSelected && account.ID == selected.ID {
			label = fmt.Sprintf("> %s", account.Email)
		}
		list.AddItem(label, account.IMAPHost, 0, func() {
			a.accounts.Select(account)
		})
	}
}
