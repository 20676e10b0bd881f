package insight

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ashureev/mood-sense/internal/api"
)

// maxRequestBodySize is the maximum allowed request body size (1MB).
const maxRequestBodySize = 1 << 20

// RunningMessage is returned by the root endpoint.
const RunningMessage = "Mood Sense API is running Fine!"

// Handler serves the insight relay endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new insight handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, log: logger}
}

// RegisterRoutes registers the relay routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleRoot)
	r.Post("/api/mood-insight", h.HandleMoodInsight)
}

// HandleRoot handles GET / for liveness checks.
func (h *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	api.JSON(w, http.StatusOK, StatusResponse{Message: RunningMessage})
}

// HandleMoodInsight handles POST /api/mood-insight requests.
func (h *Handler) HandleMoodInsight(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reqID := chiMiddleware.GetReqID(r.Context())
	h.log.Info("Mood insight request",
		"request_id", reqID,
		"scale", FormatField(req.Scale),
		"description_length", len(FormatField(req.Description)),
	)

	start := time.Now()
	text, err := h.svc.Insight(r.Context(), req)
	if err != nil {
		h.log.Error("Error generating insight",
			"request_id", reqID,
			"error", err,
			"duration", time.Since(start),
		)
		api.Error(w, http.StatusInternalServerError, "Failed to generate insight")
		return
	}

	h.log.Info("Mood insight generated",
		"request_id", reqID,
		"insight_length", len(text),
		"fallback", text == FallbackInsight,
		"duration", time.Since(start),
	)
	api.JSON(w, http.StatusOK, Response{Insight: text})
}
