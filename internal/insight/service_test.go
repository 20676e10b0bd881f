package insight

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashureev/mood-sense/internal/llm"
)

// fakeGenerator records calls and replays a canned result.
type fakeGenerator struct {
	mu     sync.Mutex
	calls  int
	system string
	user   string
	params llm.Params
	text   string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, systemPrompt, userPrompt string, p llm.Params) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = systemPrompt
	f.user = userPrompt
	f.params = p
	return f.text, f.err
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func moodRequest(scale, description string) Request {
	return Request{Scale: json.RawMessage(scale), Description: json.RawMessage(description)}
}

func TestServiceInsightSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "You're doing fine."}
	svc := NewService(gen, llm.Params{Model: "mixtral-8x7b-32768"})

	got, err := svc.Insight(context.Background(), moodRequest(`4`, `"feeling okay today"`))
	require.NoError(t, err)

	assert.Equal(t, "You're doing fine.", got)
	assert.Equal(t, 1, gen.callCount())
	assert.Equal(t, SystemPrompt, gen.system)
	assert.Contains(t, gen.user, "feeling okay today")
	assert.Equal(t, llm.Params{Model: "mixtral-8x7b-32768", Temperature: 0.7, MaxTokens: 1024}, gen.params)
}

func TestServiceInsightFallback(t *testing.T) {
	for _, blank := range []string{"", "   \n"} {
		gen := &fakeGenerator{text: blank}
		svc := NewService(gen, llm.Params{})

		got, err := svc.Insight(context.Background(), moodRequest(`2`, `"tired"`))
		require.NoError(t, err)
		assert.Equal(t, FallbackInsight, got)
	}
}

func TestServiceInsightError(t *testing.T) {
	upstream := errors.New("groq: unexpected status 503: overloaded")
	gen := &fakeGenerator{err: upstream}
	svc := NewService(gen, llm.Params{})

	_, err := svc.Insight(context.Background(), moodRequest(`1`, `"bad day"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, upstream))
	assert.Equal(t, 1, gen.callCount())
}

func TestNewServiceKeepsExplicitParams(t *testing.T) {
	svc := NewService(&fakeGenerator{}, llm.Params{Temperature: 0.2, MaxTokens: 64})
	assert.Equal(t, llm.Params{Temperature: 0.2, MaxTokens: 64}, svc.Params())
}

func TestServiceInsightPassesContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")

	var seen any
	gen := llm.GeneratorFunc(func(ctx context.Context, _, _ string, _ llm.Params) (string, error) {
		seen = ctx.Value(ctxKey{})
		return "fine", nil
	})

	got, err := NewService(gen, llm.Params{}).Insight(ctx, moodRequest(`5`, `"great"`))
	require.NoError(t, err)
	assert.Equal(t, "fine", got)
	assert.Equal(t, "req-1", seen)
}
