// internal/app/features/groups/leave.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/policy/grouppolicy"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeLeave handles POST /api/groups/{groupID}/leave.
//
// A user always belongs to at least one group once they have joined any,
// so leaving the last group is rejected. When the departed membership was
// the active one, the earliest remaining membership takes over.
func (h *Handler) ServeLeave(w http.ResponseWriter, r *http.Request) {
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
		h.Log.Error("leave group: load membership", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not leave group")
		return
	}

	allowed, err := grouppolicy.CanLeave(ctx, h.DB, groupID, userID)
	if err != nil {
		h.Log.Error("leave group: policy check", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not leave group")
		return
	}
	if !allowed {
		httpjson.Error(w, http.StatusConflict, "cannot leave your only group")
		return
	}

	if err := h.Memberships.Delete(ctx, m.ID); err != nil {
		h.Log.Error("leave group: delete membership", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not leave group")
		return
	}

	if m.IsActive {
		if err := h.Memberships.PromoteEarliest(ctx, userID); err != nil {
			h.Log.Error("leave group: promote earliest membership",
				zap.Error(err), zap.String("user_id", userID.Hex()))
			httpjson.Error(w, http.StatusInternalServerError, "could not leave group")
			return
		}
	}

	h.Log.Info("user left group",
		zap.String("group_id", groupID.Hex()),
		zap.String("user_id", userID.Hex()))

	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "left"})
}
