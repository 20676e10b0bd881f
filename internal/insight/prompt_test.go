package insight

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer", `4`, "4"},
		{"float", `3.50`, "3.5"},
		{"string", `"feeling okay today"`, "feeling okay today"},
		{"string scale", `"four"`, "four"},
		{"missing", ``, "not provided"},
		{"null", `null`, "not provided"},
		{"bool", `true`, "true"},
		{"object", `{ "a" : 1 }`, `{"a":1}`},
		{"array", `[1, 2]`, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatField(json.RawMessage(tt.raw)))
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	p := BuildUserPrompt(Request{
		Scale:       json.RawMessage(`4`),
		Description: json.RawMessage(`"feeling okay today"`),
	})

	assert.Contains(t, p, "Mood Scale (1-5): 4\n")
	assert.Contains(t, p, "Description: feeling okay today\n")
	assert.Contains(t, p, "1. Acknowledges their feelings")
	assert.Contains(t, p, "2. Offers perspective")
	assert.Contains(t, p, "3. Suggests one or two practical steps")
	assert.True(t, strings.HasSuffix(p, "Keep the response concise but warm and supportive."))
}

func TestBuildUserPromptMissingFields(t *testing.T) {
	p := BuildUserPrompt(Request{})

	assert.Contains(t, p, "Mood Scale (1-5): not provided")
	assert.Contains(t, p, "Description: not provided")
}
