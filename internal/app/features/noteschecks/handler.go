package noteschecks

import (
	"context"
	"errors"
	"net/http"

	notestore "github.com/davidmarban/crewdeck/internal/app/store/noteschecks"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/notes-checks resource.
type Handler struct {
	Store *notestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a notes Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: notestore.New(db),
		Log:   logger,
	}
}

func scrub(n *models.NoteCheck) {
	n.Title = sanitize.Text(n.Title)
	n.Content = sanitize.Text(n.Content)
	for i := range n.Items {
		n.Items[i].Text = sanitize.Text(n.Items[i].Text)
	}
}

// List handles GET /api/notes-checks.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	notes, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list notes failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list notes")
		return
	}
	httpjson.Write(w, http.StatusOK, notes)
}

// Create handles POST /api/notes-checks.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var n models.NoteCheck
	if err := httpjson.Read(w, r, &n); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	scrub(&n)
	if err := n.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, n)
	if err != nil {
		h.Log.Error("create note failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create note")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// Update handles PUT /api/notes-checks/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var n models.NoteCheck
	if err := httpjson.Read(w, r, &n); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	n.ID = chi.URLParam(r, "id")
	scrub(&n)
	if err := n.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.Update(ctx, n)
	if errors.Is(err, notestore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		h.Log.Error("update note failed", zap.Error(err), zap.String("note_id", n.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not update note")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/notes-checks/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Delete(ctx, id)
	if errors.Is(err, notestore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		h.Log.Error("delete note failed", zap.Error(err), zap.String("note_id", id))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete note")
		return
	}
	httpjson.Deleted(w)
}
