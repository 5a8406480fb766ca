// internal/app/features/branditems/routes.go
package branditems

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the brand kit resource.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	return r
}
