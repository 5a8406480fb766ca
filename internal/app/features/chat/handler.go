package chat

import (
	"context"
	"net/http"

	chatstore "github.com/davidmarban/crewdeck/internal/app/store/chat"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/chat resource.
type Handler struct {
	Store *chatstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a chat Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: chatstore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/chat. Messages come back oldest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	messages, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list chat failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list messages")
		return
	}
	httpjson.Write(w, http.StatusOK, messages)
}

// Create handles POST /api/chat.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m models.ChatMessage
	if err := httpjson.Read(w, r, &m); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	m.Content = sanitize.Text(m.Content)
	if m.Content == "" || m.UserID == "" {
		httpjson.Error(w, http.StatusBadRequest, "content and userId are required")
		return
	}
	if m.Context != nil {
		m.Context.Title = sanitize.Text(m.Context.Title)
		m.Context.Detail = sanitize.Text(m.Context.Detail)
		if err := m.Context.Validate(); err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, m)
	if err != nil {
		h.Log.Error("create message failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create message")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}
