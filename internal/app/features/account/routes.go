// internal/app/features/account/routes.go
package account

import (
	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the signed-in user's account.
// Mounted under /api/account.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.ServeGet)
	r.Put("/name", h.ServeUpdateName)
	return r
}
