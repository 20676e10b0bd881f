package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashureev/mood-sense/internal/domain"
)

var (
	// ErrEmptyDescription is returned by Submit when the description is blank.
	ErrEmptyDescription = errors.New("mood description is required")
	// ErrSubmitInProgress is returned by Submit while another submission is pending.
	ErrSubmitInProgress = errors.New("submission already in progress")
)

// View is a snapshot of the application state for rendering.
type View struct {
	Scale       int
	Description string
	Submitting  bool
	Insight     string
	History     domain.MoodHistory
	ShowHistory bool
}

// App holds the journaling client state and its operations.
type App struct {
	repo     Repository
	client   InsightClient
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	newID    func() (string, error)

	// submitMu is held for the duration of one submission.
	submitMu sync.Mutex

	mu          sync.RWMutex
	scale       int
	description string
	submitting  bool
	insight     string
	history     domain.MoodHistory
	showHistory bool
}

// Option configures an App.
type Option func(*App)

// WithNotifier sets the notice sink.
func WithNotifier(n Notifier) Option {
	return func(a *App) { a.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithClock sets the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIDGenerator sets the entry ID source.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(a *App) { a.newID = newID }
}

// NewApp creates an App with an empty history and the default scale.
func NewApp(repo Repository, client InsightClient, opts ...Option) *App {
	a := &App{
		repo:     repo,
		client:   client,
		notifier: discardNotifier{},
		log:      slog.Default(),
		now:      time.Now,
		newID:    newEntryID,
		scale:    domain.DefaultScale,
		history:  domain.MoodHistory{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func newEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// LoadHistory reads the persisted history. A failure is reported to the user
// and leaves the history empty; it is not returned.
func (a *App) LoadHistory(ctx context.Context) {
	history, err := a.repo.Load(ctx)
	if err != nil {
		a.log.Error("Failed to load mood history", "error", err)
		a.notifier.Notify(Notice{Kind: NoticeStorage, Title: "Error", Message: MsgLoadFailed})
		history = domain.MoodHistory{}
	}

	a.mu.Lock()
	a.history = history
	a.mu.Unlock()
	a.log.Debug("Mood history loaded", "entries", len(history))
}

// SetScale sets the scale, clamped to the valid range.
func (a *App) SetScale(scale int) {
	a.mu.Lock()
	a.scale = domain.ClampScale(scale)
	a.mu.Unlock()
}

// SetDescription replaces the typed description.
func (a *App) SetDescription(description string) {
	a.mu.Lock()
	a.description = description
	a.mu.Unlock()
}

// ToggleHistory flips history visibility and returns the new value.
func (a *App) ToggleHistory() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showHistory = !a.showHistory
	return a.showHistory
}

// Submitting reports whether a submission is pending.
func (a *App) Submitting() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.submitting
}

// View returns a snapshot of the current state.
func (a *App) View() View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return View{
		Scale:       a.scale,
		Description: a.description,
		Submitting:  a.submitting,
		Insight:     a.insight,
		History:     a.history,
		ShowHistory: a.showHistory,
	}
}

// Submit sends the current scale and description to the relay and records the
// resulting entry. Only one submission runs at a time.
func (a *App) Submit(ctx context.Context) error {
	if !a.submitMu.TryLock() {
		return ErrSubmitInProgress
	}
	run, err := a.prepare()
	if err != nil {
		return err
	}
	return run(ctx)
}

// BeginSubmit claims the submission guard, stores description, and returns the
// function that performs the request. The returned function must be called
// exactly once; it releases the guard when done. While a submission is pending
// BeginSubmit returns ErrSubmitInProgress and leaves the description untouched.
func (a *App) BeginSubmit(description string) (func(context.Context) error, error) {
	if !a.submitMu.TryLock() {
		return nil, ErrSubmitInProgress
	}
	a.mu.Lock()
	a.description = description
	a.mu.Unlock()
	return a.prepare()
}

// prepare runs with submitMu held. It validates the description and marks the
// app as submitting; on error the guard is released before returning.
func (a *App) prepare() (func(context.Context) error, error) {
	a.mu.Lock()
	scale, description := a.scale, a.description
	if strings.TrimSpace(description) == "" {
		a.mu.Unlock()
		a.submitMu.Unlock()
		a.notifier.Notify(Notice{Kind: NoticeValidation, Title: "Error", Message: MsgEmptyDescription})
		return nil, ErrEmptyDescription
	}
	a.submitting = true
	a.mu.Unlock()

	return func(ctx context.Context) error {
		defer a.submitMu.Unlock()
		defer func() {
			a.mu.Lock()
			a.submitting = false
			a.mu.Unlock()
		}()
		return a.submit(ctx, scale, description)
	}, nil
}

func (a *App) submit(ctx context.Context, scale int, description string) error {
	start := a.now()
	text, err := a.client.FetchInsight(ctx, scale, description)
	if err != nil {
		a.log.Error("Failed to get insight", "error", err, "scale", scale)
		a.notifier.Notify(Notice{Kind: NoticeError, Title: "Error", Message: MsgInsightFailed})
		return fmt.Errorf("fetch insight: %w", err)
	}

	id, err := a.newID()
	if err != nil {
		a.notifier.Notify(Notice{Kind: NoticeError, Title: "Error", Message: MsgInsightFailed})
		return fmt.Errorf("generate entry id: %w", err)
	}
	entry := domain.NewMoodEntry(id, scale, description, text, a.now())

	a.mu.Lock()
	a.history = a.history.Prepend(entry)
	history := a.history
	a.insight = text
	a.description = ""
	a.mu.Unlock()

	if err := a.repo.Save(ctx, history); err != nil {
		a.log.Error("Failed to save mood entry", "error", err, "entry_id", entry.ID)
		a.notifier.Notify(Notice{Kind: NoticeStorage, Title: "Error", Message: MsgSaveFailed})
	}

	a.log.Info("Mood entry recorded",
		"entry_id", entry.ID,
		"scale", scale,
		"entries", len(history),
		"duration", a.now().Sub(start),
	)
	return nil
}
