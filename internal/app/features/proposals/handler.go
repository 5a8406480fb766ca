package proposals

import (
	"context"
	"errors"
	"net/http"

	proposalstore "github.com/davidmarban/crewdeck/internal/app/store/proposals"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/sanitize"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/proposals resource, including the response
// sub-resource with its per-user upsert.
type Handler struct {
	Store *proposalstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a proposals Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: proposalstore.New(db),
		Log:   logger,
	}
}

// List handles GET /api/proposals.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	proposals, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list proposals failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list proposals")
		return
	}
	httpjson.Write(w, http.StatusOK, proposals)
}

// Create handles POST /api/proposals.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Proposal
	if err := httpjson.Read(w, r, &p); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	p.Title = sanitize.Text(p.Title)
	p.Description = sanitize.Text(p.Description)
	p.Category = sanitize.Text(p.Category)
	if err := p.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, p)
	if err != nil {
		h.Log.Error("create proposal failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create proposal")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// Delete handles DELETE /api/proposals/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Delete(ctx, id)
	if errors.Is(err, proposalstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "proposal not found")
		return
	}
	if err != nil {
		h.Log.Error("delete proposal failed", zap.Error(err), zap.String("proposal_id", id))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete proposal")
		return
	}
	httpjson.Deleted(w)
}

// Respond handles POST /api/proposals/{proposalId}/responses.
// A second answer from the same member replaces the first.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	var resp models.ProposalResponse
	if err := httpjson.Read(w, r, &resp); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	proposalID := chi.URLParam(r, "proposalId")
	if resp.UserID == "" || !models.ValidResponse(resp.Response) {
		httpjson.Error(w, http.StatusBadRequest, "userId and a valid response are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	saved, err := h.Store.Respond(ctx, proposalID, resp)
	if errors.Is(err, proposalstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "proposal not found")
		return
	}
	if err != nil {
		h.Log.Error("respond to proposal failed", zap.Error(err),
			zap.String("proposal_id", proposalID),
			zap.String("user_id", resp.UserID))
		httpjson.Error(w, http.StatusInternalServerError, "could not record response")
		return
	}
	httpjson.Write(w, http.StatusOK, saved)
}

// DeleteResponse handles DELETE /api/proposals/{proposalId}/responses/{responseId}.
func (h *Handler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	proposalID := chi.URLParam(r, "proposalId")
	responseID := chi.URLParam(r, "responseId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.DeleteResponse(ctx, proposalID, responseID)
	if errors.Is(err, proposalstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "response not found")
		return
	}
	if err != nil {
		h.Log.Error("delete response failed", zap.Error(err),
			zap.String("proposal_id", proposalID),
			zap.String("response_id", responseID))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete response")
		return
	}
	httpjson.Deleted(w)
}
