package models

// Account is a configured mailbox as returned by the backend.
// Accounts are immutable on the client; edits happen server-side.
type Account struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IMAPHost string `json:"imap_host"`
	IMAPPort int    `json:"imap_port"`
	IMAPTLS  bool   `json:"imap_tls"`
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
	SMTPTLS  bool   `json:"smtp_tls"`
}

// Thread is a grouped conversation with its server-computed triage data.
// Priority score and category are derived upstream; the client only
// reads and filters by them.
type Thread struct {
	ID             int64  `json:"id"`
	Subject        string `json:"subject"`
	LastMessageAt  string `json:"last_message_at"`
	Category       string `json:"category"`
	PriorityScore  int    `json:"priority_score"`
	PriorityReason string `json:"priority_reason"`
	IsNewsletter   bool   `json:"is_newsletter"`
}

// Message is a single mail inside a thread. Ordering is server-provided
// and preserved as-is.
type Message struct {
	ID              int64  `json:"id"`
	IMAPUID         int64  `json:"imap_uid"`
	FromAddr        string `json:"from_addr"`
	Subject         string `json:"subject"`
	Date            string `json:"date"`
	Snippet         string `json:"snippet"`
	ListUnsubscribe string `json:"list_unsubscribe"`
}

// Subscription is one newsletter sender bucket, not an individual
// message.
type Subscription struct {
	ID              int64  `json:"id"`
	Sender          string `json:"sender"`
	ListUnsubscribe string `json:"list_unsubscribe"`
}

// UnsubscribeOptions holds the parsed List-Unsubscribe targets for a
// subscription.
type UnsubscribeOptions struct {
	Mailto []string `json:"mailto"`
	URLs   []string `json:"urls"`
}

// Insight is the AI-derived bundle attached to a thread. It is
// overwritten wholesale when the thread detail reloads.
type Insight struct {
	Summary string   `json:"summary"`
	Actions []string `json:"actions"`
	Labels  []string `json:"labels"`
}

// Tab identifies one of the dashboard list views.
type Tab string

const (
	TabFocus       Tab = "focus"
	TabNewsletters Tab = "newsletters"
	TabNeedsReply  Tab = "needs-reply"
	TabAll         Tab = "all"
)

// Tabs lists all tabs in display order.
func Tabs() []Tab {
	return []Tab{TabFocus, TabNewsletters, TabNeedsReply, TabAll}
}

// Title returns the tab label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabFocus:
		return "Focus Inbox"
	case TabNewsletters:
		return "Newsletters"
	case TabNeedsReply:
		return "Needs Reply"
	case TabAll:
		return "All"
	default:
		return string(t)
	}
}
