// internal/app/features/agendaitems/routes.go
package agendaitems

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the agenda resource.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
