// internal/app/features/proposals/routes.go
package proposals

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the proposals resource.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
	r.Post("/{proposalId}/responses", h.Respond)
	r.Delete("/{proposalId}/responses/{responseId}", h.DeleteResponse)
	return r
}
