package assistant

import (
	"net/http"

	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/assistant"
	"go.uber.org/zap"
)

// Handler serves POST /api/assistant. The generative call runs server
// side so the API key never reaches the browser.
type Handler struct {
	Gen *assistant.Client
	Log *zap.Logger
}

// NewHandler constructs an assistant Handler.
func NewHandler(gen *assistant.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Gen: gen,
		Log: logger,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate handles POST /api/assistant.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	if req.Prompt == "" {
		httpjson.Error(w, http.StatusBadRequest, "prompt is required")
		return
	}

	// No handler timeout here beyond the server's: generation is the one
	// legitimately slow call in the app.
	text := h.Gen.Generate(r.Context(), req.Prompt)
	httpjson.Write(w, http.StatusOK, generateResponse{Text: text})
}
