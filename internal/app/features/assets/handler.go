package assets

import (
	"context"
	"errors"
	"net/http"

	assetstore "github.com/davidmarban/crewdeck/internal/app/store/assets"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/assets resource.
type Handler struct {
	Store *assetstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an assets Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: assetstore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/assets.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assets, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list assets failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list assets")
		return
	}
	httpjson.Write(w, http.StatusOK, assets)
}

// Create handles POST /api/assets.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := httpjson.Read(w, r, &a); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	a.Name = sanitize.Text(a.Name)
	a.Tags = sanitize.Slice(a.Tags)
	if a.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, a)
	if err != nil {
		h.Log.Error("create asset failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create asset")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// Update handles PUT /api/assets/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := httpjson.Read(w, r, &a); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	a.ID = chi.URLParam(r, "id")
	a.Name = sanitize.Text(a.Name)
	a.Tags = sanitize.Slice(a.Tags)
	if a.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.Update(ctx, a)
	if errors.Is(err, assetstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "asset not found")
		return
	}
	if err != nil {
		h.Log.Error("update asset failed", zap.Error(err), zap.String("asset_id", a.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not update asset")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/assets/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Delete(ctx, id)
	if errors.Is(err, assetstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "asset not found")
		return
	}
	if err != nil {
		h.Log.Error("delete asset failed", zap.Error(err), zap.String("asset_id", id))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete asset")
		return
	}
	httpjson.Deleted(w)
}
