package tui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// DraftView is a minimal multiline editor over a TextView. Edits flow
// into the detail store; a draft generated by the AI gateway replaces
// the buffer wholesale when the store changes.
type DraftView struct {
	*tview.TextView
	app  *App
	text string
}

// NewDraftView creates the reply draft editor.
func NewDraftView(app *App) *DraftView {
	d := &DraftView{
		TextView: tview.NewTextView().SetWrap(true).SetScrollable(true),
		app:      app,
	}
	return d
}

// SetStoredText replaces the buffer from the detail store without
// echoing the change back into it.
func (d *DraftView) SetStoredText(text string) {
	d.text = text
	d.SetText(text)
}

// InputHandler implements basic typing: printable runes, backspace and
// newline. Every edit is recorded as a user edit on the draft.
func (d *DraftView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return d.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyRune:
			d.text += string(event.Rune())
		case tcell.KeyEnter:
			d.text += "\n"
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(d.text) > 0 {
				runes := []rune(d.text)
				d.text = string(runes[:len(runes)-1])
			}
		default:
			if handler := d.TextView.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
			return
		}
		d.SetText(d.text)
		d.app.detail.SetDraft(d.text)
	})
}
