package team

import (
	"context"
	"errors"
	"net/http"

	teamstore "github.com/davidmarban/crewdeck/internal/app/store/team"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/team resource.
//
// Passwords travel in the clear inside this API by contract: the roster
// doubles as the credential directory and admins manage both from the
// Team page. List responses are redacted; create/update echo back what
// was stored so the editing client keeps a full copy.
type Handler struct {
	Store *teamstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a team Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: teamstore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/team.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list team failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list team")
		return
	}
	for i := range members {
		members[i] = members[i].Redacted()
	}
	httpjson.Write(w, http.StatusOK, members)
}

// Create handles POST /api/team.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m models.TeamMember
	if err := httpjson.Read(w, r, &m); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	m.Name = sanitize.Text(m.Name)
	m.Role = sanitize.Text(m.Role)
	if m.Name == "" || m.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "name and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, m)
	if err != nil {
		h.Log.Error("create member failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create member")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// Update handles PUT /api/team/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var m models.TeamMember
	if err := httpjson.Read(w, r, &m); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	m.ID = chi.URLParam(r, "id")
	m.Name = sanitize.Text(m.Name)
	m.Role = sanitize.Text(m.Role)
	if m.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.Update(ctx, m)
	if errors.Is(err, teamstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "member not found")
		return
	}
	if err != nil {
		h.Log.Error("update member failed", zap.Error(err), zap.String("member_id", m.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not update member")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/team/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Delete(ctx, id)
	if errors.Is(err, teamstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "member not found")
		return
	}
	if err != nil {
		h.Log.Error("delete member failed", zap.Error(err), zap.String("member_id", id))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete member")
		return
	}
	httpjson.Deleted(w)
}
