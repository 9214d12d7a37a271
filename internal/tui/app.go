package tui

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/derailed/tview"
	"github.com/mailpilot/mailpilot-tui/internal/api"
	"github.com/mailpilot/mailpilot-tui/internal/config"
	"github.com/mailpilot/mailpilot-tui/internal/models"
	"github.com/mailpilot/mailpilot-tui/internal/services"
)

// App encapsulates the terminal UI and the orchestration stores.
type App struct {
	*tview.Application
	Pages  *tview.Pages
	Config *config.Config
	Client *api.Client
	Keys   config.KeyBindings

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	views map[string]tview.Primitive

	// Presentation state
	activeTab models.Tab
	showHelp  bool

	// Orchestration stores
	toasts        *services.ToastServiceImpl
	accounts      *services.AccountServiceImpl
	threads       *services.ThreadServiceImpl
	subscriptions *services.SubscriptionServiceImpl
	selection     *services.SelectionServiceImpl
	detail        *services.DetailServiceImpl
	ai            *services.AIServiceImpl
	syncer        *services.SyncServiceImpl

	// Draft editor
	draftView *DraftView

	// Debug logging
	logger  *log.Logger
	logFile *os.File
}

// NewApp creates the TUI application and wires the store graph.
func NewApp(client *api.Client, cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		Application: tview.NewApplication(),
		Config:      cfg,
		Client:      client,
		Keys:        cfg.Keys,
		ctx:         ctx,
		cancel:      cancel,
		views:       make(map[string]tview.Primitive),
		activeTab:   models.TabFocus,
	}
	a.initLogger()

	a.toasts = services.NewToastService(a.logger)
	a.accounts = services.NewAccountService(client, a.toasts, a.logger)
	a.threads = services.NewThreadService(client, a.toasts, a.logger)

	// Navigation reads the filtered view through this accessor on every
	// step, so it always sees the live tab and thread list.
	a.selection = services.NewSelectionService(func() []models.Thread {
		return a.threads.Filtered(a.ActiveTab())
	})
	a.detail = services.NewDetailService(client, a.toasts, a.logger, func() (int64, bool) {
		t, ok := a.selection.SelectedThread()
		return t.ID, ok
	})
	a.subscriptions = services.NewSubscriptionService(client, a.toasts, a.logger, func() (int64, bool) {
		sub, ok := a.selection.SelectedSubscription()
		return sub.ID, ok
	})
	a.ai = services.NewAIService(client, a.detail, a.toasts, a.logger)
	a.syncer = services.NewSyncService(client, a.threads, a.toasts, a.logger)

	a.wireStores()
	return a
}

// wireStores connects the stores through their listeners: account
// selection fans out to the thread and subscription loads, selection
// changes drive the detail loads, and every store change schedules a
// redraw that re-reads live state.
func (a *App) wireStores() {
	a.accounts.Subscribe(func(account models.Account) {
		go func() { _ = a.threads.LoadForAccount(a.ctx, account.ID) }()
		go func() { _ = a.subscriptions.LoadForAccount(a.ctx, account.ID) }()
		a.redraw(a.refreshAccountList)
	})

	a.selection.SubscribeThread(func(thread models.Thread) {
		a.detail.Reset()
		a.detail.LoadForThread(a.ctx, thread.ID)
		a.redraw(a.refreshThreadList)
	})

	a.selection.SubscribeSubscription(func(sub models.Subscription) {
		a.subscriptions.ResetOptions()
		go a.subscriptions.LoadUnsubscribeOptions(a.ctx, sub.ID)
		a.redraw(a.refreshThreadList)
	})

	a.threads.Subscribe(func() {
		a.redraw(a.refreshThreadList)
	})

	a.subscriptions.Subscribe(func() {
		a.redraw(func() {
			a.refreshThreadList()
			a.refreshUnsubscribePanel()
		})
	})

	a.detail.Subscribe(func() {
		a.redraw(a.refreshDetail)
	})

	a.toasts.Subscribe(func(msg string) {
		a.redraw(func() { a.refreshStatus(msg) })
	})
}

// redraw schedules fn on the UI goroutine. Listeners fire both from
// the event loop and from load goroutines, so the queueing itself is
// pushed to a goroutine to avoid deadlocking tview's update queue.
func (a *App) redraw(fn func()) {
	go a.QueueUpdateDraw(fn)
}

// ActiveTab returns the visible tab.
func (a *App) ActiveTab() models.Tab {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.activeTab
}

// SetActiveTab switches the visible tab. The selection pointers are
// deliberately left alone; a selection that no longer appears in the
// new filtered view stays put until the user navigates again.
func (a *App) SetActiveTab(tab models.Tab) {
	a.mu.Lock()
	a.activeTab = tab
	a.mu.Unlock()
	a.refreshTabBar()
	a.refreshThreadList()
	a.refreshUnsubscribePanel()
}

// Run builds the layout and starts the UI event loop.
func (a *App) Run() error {
	layout := a.buildLayout()
	a.Pages = tview.NewPages().AddPage("main", layout, true, true)
	a.SetInputCapture(a.handleKeyEvent)
	a.SetRoot(a.Pages, true)

	// Initial account load; everything else follows from selection.
	go func() {
		_ = a.accounts.Load(a.ctx)
		a.redraw(a.refreshAccountList)
	}()

	defer a.shutdown()
	return a.Application.Run()
}

func (a *App) shutdown() {
	a.cancel()
	a.toasts.Stop()
	a.closeLogger()
}
