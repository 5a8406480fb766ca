package agendaitems

import (
	"context"
	"errors"
	"net/http"

	agendastore "github.com/davidmarban/crewdeck/internal/app/store/agenda"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/agenda-items resource.
type Handler struct {
	Store *agendastore.Store
	Log   *zap.Logger
}

// NewHandler constructs an agenda Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: agendastore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/agenda-items.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list agenda items failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list agenda items")
		return
	}
	httpjson.Write(w, http.StatusOK, items)
}

// Create handles POST /api/agenda-items.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.AgendaItem
	if err := httpjson.Read(w, r, &a); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	a.Title = sanitize.Text(a.Title)
	a.Description = sanitize.Text(a.Description)
	if err := a.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, a)
	if err != nil {
		h.Log.Error("create agenda item failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create agenda item")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// Update handles PUT /api/agenda-items/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var a models.AgendaItem
	if err := httpjson.Read(w, r, &a); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	a.ID = chi.URLParam(r, "id")
	a.Title = sanitize.Text(a.Title)
	a.Description = sanitize.Text(a.Description)
	if err := a.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.Update(ctx, a)
	if errors.Is(err, agendastore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "agenda item not found")
		return
	}
	if err != nil {
		h.Log.Error("update agenda item failed", zap.Error(err), zap.String("item_id", a.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not update agenda item")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/agenda-items/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Delete(ctx, id)
	if errors.Is(err, agendastore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "agenda item not found")
		return
	}
	if err != nil {
		h.Log.Error("delete agenda item failed", zap.Error(err), zap.String("item_id", id))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete agenda item")
		return
	}
	httpjson.Deleted(w)
}
