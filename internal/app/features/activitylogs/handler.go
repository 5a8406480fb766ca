package activitylogs

import (
	"context"
	"net/http"

	activitystore "github.com/davidmarban/crewdeck/internal/app/store/activity"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/activity-logs resource. The feed is append-only;
// nothing edits or removes history.
type Handler struct {
	Store *activitystore.Store
	Log   *zap.Logger
}

// NewHandler constructs an activity log Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: activitystore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/activity-logs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	logs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list activity logs failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list activity logs")
		return
	}
	httpjson.Write(w, http.StatusOK, logs)
}

// Create handles POST /api/activity-logs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var l models.ActivityLog
	if err := httpjson.Read(w, r, &l); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	l.Action = sanitize.Text(l.Action)
	if l.Action == "" || l.UserID == "" {
		httpjson.Error(w, http.StatusBadRequest, "action and userId are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, l)
	if err != nil {
		h.Log.Error("create activity log failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create activity log")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}
