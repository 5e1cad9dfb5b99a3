// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles POST /api/auth/logout.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		// The deletion cookie is still sent; log and report success.
		h.Log.Warn("logout: save session", zap.Error(err))
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "signed out"})
}
