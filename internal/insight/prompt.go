package insight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SystemPrompt frames the completion model's persona.
const SystemPrompt = "You are an empathetic AI therapist skilled in providing emotional support and practical advice."

// FallbackInsight is returned when the model produces no usable text.
const FallbackInsight = "I apologize, but I couldn't generate an insight at this moment. Please try again."

const missingField = "not provided"

const userPromptTemplate = `As an empathetic AI therapist, analyze the following mood entry:
Mood Scale (1-5): %s
Description: %s

Please provide a thoughtful, supportive response that:
1. Acknowledges their feelings
2. Offers perspective on potential factors influencing their mood
3. Suggests one or two practical steps they could take to maintain or improve their emotional well-being

Keep the response concise but warm and supportive.`

// BuildUserPrompt interpolates the request fields into the user message.
func BuildUserPrompt(req Request) string {
	return fmt.Sprintf(userPromptTemplate, FormatField(req.Scale), FormatField(req.Description))
}

// FormatField renders a raw JSON value for the prompt: strings verbatim,
// numbers without trailing zeros, absent or null as "not provided",
// anything else as compact JSON.
func FormatField(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return missingField
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
