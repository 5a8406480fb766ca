// internal/app/features/team/routes.go
package team

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the team roster resource.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
