package journal

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	NoticeValidation NoticeKind = "validation"
	NoticeError      NoticeKind = "error"
	NoticeStorage    NoticeKind = "storage"
)

// User-facing notice texts.
const (
	MsgEmptyDescription = "Please enter a mood description"
	MsgInsightFailed    = "Failed to get AI insight. Please try again."
	MsgLoadFailed       = "Failed to load mood history"
	MsgSaveFailed       = "Failed to save mood entry"
)

// Notice is a message surfaced to the user.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// Notifier delivers notices to the user.
type Notifier interface {
	Notify(n Notice)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
