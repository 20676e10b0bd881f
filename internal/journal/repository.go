// Package journal implements the mood journaling client: history persistence,
// the relay client, and the application state machine driven by the terminal UI.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ashureev/mood-sense/internal/domain"
	"github.com/ashureev/mood-sense/internal/store"
)

// HistoryKey is the storage key holding the serialized history.
const HistoryKey = "moodHistory"

// Repository loads and saves the full mood history.
type Repository interface {
	// Load returns the stored history, or an empty history when none exists.
	Load(ctx context.Context) (domain.MoodHistory, error)

	// Save replaces the stored history.
	Save(ctx context.Context, history domain.MoodHistory) error
}

// KVRepository stores the history as a JSON array under HistoryKey.
type KVRepository struct {
	kv store.KV
}

// NewKVRepository creates a repository backed by kv.
func NewKVRepository(kv store.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

// Load implements Repository. Stored entries that fail validation are skipped.
func (r *KVRepository) Load(ctx context.Context) (domain.MoodHistory, error) {
	raw, found, err := r.kv.Get(ctx, HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !found {
		return domain.MoodHistory{}, nil
	}

	var history domain.MoodHistory
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	valid := make(domain.MoodHistory, 0, len(history))
	for i, e := range history {
		if err := e.Validate(); err != nil {
			slog.Warn("Skipping invalid stored mood entry", "index", i, "entry_id", e.ID, "error", err)
			continue
		}
		valid = append(valid, e)
	}
	return valid, nil
}

// Save implements Repository.
func (r *KVRepository) Save(ctx context.Context, history domain.MoodHistory) error {
	if history == nil {
		history = domain.MoodHistory{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := r.kv.Set(ctx, HistoryKey, string(data)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// MemoryRepository keeps the history in memory. LoadErr and SaveErr, when set,
// are returned by the corresponding calls.
type MemoryRepository struct {
	mu      sync.Mutex
	history domain.MoodHistory
	saves   int

	LoadErr error
	SaveErr error
}

// NewMemoryRepository creates a repository seeded with history.
func NewMemoryRepository(history domain.MoodHistory) *MemoryRepository {
	return &MemoryRepository{history: history}
}

// Load implements Repository.
func (r *MemoryRepository) Load(_ context.Context) (domain.MoodHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	out := make(domain.MoodHistory, len(r.history))
	copy(out, r.history)
	return out, nil
}

// Save implements Repository.
func (r *MemoryRepository) Save(_ context.Context, history domain.MoodHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.history = make(domain.MoodHistory, len(history))
	copy(r.history, history)
	return nil
}

// Saves returns how many times Save was called.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

var (
	_ Repository = (*KVRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)
