// internal/app/features/groups/activate.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeActivate handles POST /api/groups/{groupID}/activate.
// Makes this group the caller's working group; every other membership of
// the caller is deactivated first.
func (h *Handler) ServeActivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupID"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := h.Memberships.Get(ctx, userID, groupID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusForbidden, "not a member of this group")
			return
		}
		h.Log.Error("activate group: load membership", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not set active group")
		return
	}

	if err := h.Memberships.Activate(ctx, userID, m.ID); err != nil {
		h.Log.Error("activate group: flip active flag",
			zap.Error(err), zap.String("membership_id", m.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not set active group")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "activated"})
}
