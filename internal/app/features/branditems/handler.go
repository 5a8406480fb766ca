package branditems

import (
	"context"
	"net/http"

	brandstore "github.com/davidmarban/crewdeck/internal/app/store/branditems"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/brand-items resource.
type Handler struct {
	Store *brandstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a brand items Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: brandstore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/brand-items.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list brand items failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list brand items")
		return
	}
	httpjson.Write(w, http.StatusOK, items)
}

// Create handles POST /api/brand-items.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.BrandItem
	if err := httpjson.Read(w, r, &item); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	item.Content = sanitize.Text(item.Content)
	item.Tags = sanitize.Slice(item.Tags)
	if err := item.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, item)
	if err != nil {
		h.Log.Error("create brand item failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create brand item")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}
