// internal/app/features/gifts/routes.go
package gifts

import (
	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the caller's own wishlist operations.
// Mounted under /api/gifts; everything requires a session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/", h.ServeCreate)
	r.Get("/mine", h.ServeMine)
	r.Put("/{giftID}/status", h.ServeUpdateStatus)
	r.Delete("/{giftID}", h.ServeDelete)

	return r
}

// MemberRoutes returns a subrouter for viewing other members' wishlists.
// Mounted under /api/members.
func MemberRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/{memberID}/gifts", h.ServeMemberGifts)

	return r
}
