// internal/app/features/assistant/routes.go
package assistant

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the assistant endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Generate)
	return r
}
