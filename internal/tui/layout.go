package tui

import (
	"github.com/derailed/tview"
)

// buildLayout assembles the dashboard: accounts sidebar, thread list
// with the tab bar, and the detail column with the draft editor.
func (a *App) buildLayout() tview.Primitive {
	accountsList := tview.NewList().ShowSecondaryText(true)
	accountsList.SetBorder(true).SetTitle(" Accounts ")
	a.views["accounts"] = accountsList

	accountForm := a.buildAccountForm()
	accountForm.SetBorder(true).SetTitle(" Add account ")
	a.views["accountForm"] = accountForm

	sidebar := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(accountsList, 0, 1, true).
		AddItem(accountForm, 0, 2, false)

	tabBar := tview.NewTextView().SetDynamicColors(true)
	a.views["tabs"] = tabBar

	threadList := tview.NewList().ShowSecondaryText(true)
	threadList.SetBorder(true).SetTitle(" Threads ")
	a.views["threads"] = threadList

	center := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tabBar, 1, 0, false).
		AddItem(threadList, 0, 1, false)

	detailView := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	detailView.SetBorder(true).SetTitle(" Thread Details ")
	a.views["detail"] = detailView

	unsubscribeView := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	unsubscribeView.SetBorder(true).SetTitle(" Unsubscribe ")
	a.views["unsubscribe"] = unsubscribeView

	a.draftView = NewDraftView(a)
	a.draftView.SetBorder(true)
	a.draftView.SetTitle(" Reply Draft (never auto-sent) ")
	a.views["draft"] = a.draftView

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(detailView, 0, 3, false).
		AddItem(unsubscribeView, 0, 1, false).
		AddItem(a.draftView, 0, 2, false)

	status := tview.NewTextView().SetDynamicColors(true)
	a.views["status"] = status

	main := tview.NewFlex().
		AddItem(sidebar, 0, 1, true).
		AddItem(center, 0, 2, false).
		AddItem(right, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(status, 1, 0, false)

	a.refreshTabBar()
	a.refreshStatus("")
	a.wireListHandlers()

	return root
}
