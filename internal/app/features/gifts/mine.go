// internal/app/features/gifts/mine.go
package gifts

import (
	"context"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeMine handles GET /api/gifts/mine.
//
// Returns the caller's items across every group, newest first, annotated
// with the group name. The response never includes claim status: owners
// are not allowed to learn what has been claimed or bought for them.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	items, err := h.Gifts.ListByOwner(ctx, userID)
	if err != nil {
		h.Log.Error("my gifts: list", zap.Error(err), zap.String("user_id", userID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
		return
	}

	groupIDs := make([]primitive.ObjectID, 0, len(items))
	seen := make(map[primitive.ObjectID]bool, len(items))
	for _, it := range items {
		if !seen[it.GroupID] {
			seen[it.GroupID] = true
			groupIDs = append(groupIDs, it.GroupID)
		}
	}

	groupsByID, err := h.Groups.GetMany(ctx, groupIDs)
	if err != nil {
		h.Log.Error("my gifts: load groups", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
		return
	}

	out := make([]ownGift, 0, len(items))
	for _, it := range items {
		out = append(out, toOwnGift(it, groupsByID[it.GroupID].Name))
	}

	httpjson.Respond(w, http.StatusOK, out)
}
