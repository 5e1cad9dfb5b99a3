// internal/app/features/groups/routes.go
package groups

import (
	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for group membership operations.
// Mounted under /api/groups; everything requires a session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/mine", h.ServeMine)
	r.Get("/active", h.ServeActive)
	r.Get("/members", h.ServeGroupedMembers)
	r.Post("/join", h.ServeJoinByCode)

	r.Route("/{groupID}", func(gr chi.Router) {
		gr.Post("/join", h.ServeJoin)
		gr.Post("/leave", h.ServeLeave)
		gr.Post("/activate", h.ServeActivate)
		gr.Get("/members", h.ServeMembers)
	})

	return r
}
