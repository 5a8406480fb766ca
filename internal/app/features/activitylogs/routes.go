// internal/app/features/activitylogs/routes.go
package activitylogs

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the activity feed resource.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	return r
}
