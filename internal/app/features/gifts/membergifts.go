// internal/app/features/gifts/membergifts.go
package gifts

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/policy/grouppolicy"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/normalize"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeMemberGifts handles GET /api/members/{memberID}/gifts.
//
// Shows another member's wishlist with claim statuses. The group is named
// by the group_id query parameter, or defaults to the caller's active
// group. Either way the caller must belong to the group, and asking for
// your own items through this view yields an empty list rather than
// leaking your own statuses.
func (h *Handler) ServeMemberGifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "memberID"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "member not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var groupID primitive.ObjectID
	if raw := normalize.QueryParam(r.URL.Query().Get("group_id")); raw != "" {
		groupID, err = primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusNotFound, "group not found")
			return
		}
	} else {
		m, err := h.Memberships.ActiveOrEarliest(ctx, userID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				httpjson.Error(w, http.StatusConflict, "must have an active group to view member gifts")
				return
			}
			h.Log.Error("member gifts: resolve active group", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
			return
		}
		groupID = m.GroupID
	}

	caller, err := grouppolicy.IsMember(ctx, h.DB, groupID, userID)
	if err != nil {
		h.Log.Error("member gifts: policy check", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
		return
	}
	if !caller {
		httpjson.Error(w, http.StatusForbidden, "not a member of this group")
		return
	}

	// The owner's own statuses stay hidden even through this endpoint.
	if memberID == userID {
		httpjson.Respond(w, http.StatusOK, []memberGift{})
		return
	}

	target, err := grouppolicy.IsMember(ctx, h.DB, groupID, memberID)
	if err != nil {
		h.Log.Error("member gifts: target policy check", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
		return
	}
	if !target {
		httpjson.Error(w, http.StatusForbidden, "member is not in this group")
		return
	}

	items, err := h.Gifts.ListByOwnerAndGroup(ctx, memberID, groupID)
	if err != nil {
		h.Log.Error("member gifts: list", zap.Error(err),
			zap.String("member_id", memberID.Hex()),
			zap.String("group_id", groupID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
		return
	}

	out, err := h.toMemberGifts(ctx, items)
	if err != nil {
		h.Log.Error("member gifts: resolve changer names", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list gift items")
		return
	}

	httpjson.Respond(w, http.StatusOK, out)
}

// toMemberGifts builds the co-member view, resolving status_changed_by
// ids to display names in one batch.
func (h *Handler) toMemberGifts(ctx context.Context, items []models.GiftItem) ([]memberGift, error) {
	changerIDs := make([]primitive.ObjectID, 0, len(items))
	seen := make(map[primitive.ObjectID]bool, len(items))
	for _, it := range items {
		if it.StatusChangedBy != nil && !seen[*it.StatusChangedBy] {
			seen[*it.StatusChangedBy] = true
			changerIDs = append(changerIDs, *it.StatusChangedBy)
		}
	}

	usersByID, err := h.Users.GetMany(ctx, changerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]memberGift, 0, len(items))
	for _, it := range items {
		name := ""
		if it.StatusChangedBy != nil {
			name = usersByID[*it.StatusChangedBy].DisplayName()
		}
		out = append(out, toMemberGift(it, name))
	}
	return out, nil
}
