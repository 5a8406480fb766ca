package projects

import (
	"context"
	"errors"
	"net/http"

	projectstore "github.com/davidmarban/crewdeck/internal/app/store/projects"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/projects resource, including the embedded
// stage endpoint used by the progress checklist.
type Handler struct {
	Store *projectstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a projects Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: projectstore.New(db),
		Log:   logger,
	}
}

func scrub(p *models.Project) {
	p.Title = sanitize.Text(p.Title)
	p.Description = sanitize.Text(p.Description)
	p.Notes = sanitize.Slice(p.Notes)
	for i := range p.Stages {
		p.Stages[i].Title = sanitize.Text(p.Stages[i].Title)
	}
}

// List handles GET /api/projects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list projects failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list projects")
		return
	}
	httpjson.Write(w, http.StatusOK, projects)
}

// Create handles POST /api/projects.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := httpjson.Read(w, r, &p); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	scrub(&p)
	if p.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, p)
	if err != nil {
		h.Log.Error("create project failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create project")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// Update handles PUT /api/projects/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := httpjson.Read(w, r, &p); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	p.ID = chi.URLParam(r, "id")
	scrub(&p)
	if p.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.Update(ctx, p)
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		h.Log.Error("update project failed", zap.Error(err), zap.String("project_id", p.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not update project")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// UpdateStage handles PUT /api/projects/{projectId}/stages/{stageId}.
func (h *Handler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	var stage models.ProjectStage
	if err := httpjson.Read(w, r, &stage); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	projectID := chi.URLParam(r, "projectId")
	stage.ID = chi.URLParam(r, "stageId")
	stage.Title = sanitize.Text(stage.Title)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.UpdateStage(ctx, projectID, stage)
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "stage not found")
		return
	}
	if err != nil {
		h.Log.Error("update stage failed", zap.Error(err),
			zap.String("project_id", projectID),
			zap.String("stage_id", stage.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not update stage")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/projects/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Delete(ctx, id)
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		h.Log.Error("delete project failed", zap.Error(err), zap.String("project_id", id))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete project")
		return
	}
	httpjson.Deleted(w)
}
