// Package insight turns mood entries into generated supportive messages.
package insight

import "encoding/json"

// Request is the body of POST /api/mood-insight.
// Fields are kept as raw JSON so malformed values pass through into the prompt.
type Request struct {
	Scale       json.RawMessage `json:"scale"`
	Description json.RawMessage `json:"description"`
}

// Response is the success body of POST /api/mood-insight.
type Response struct {
	Insight string `json:"insight"`
}

// StatusResponse is the body of the root liveness endpoint.
type StatusResponse struct {
	Message string `json:"message"`
}
