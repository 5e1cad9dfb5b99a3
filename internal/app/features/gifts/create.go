// internal/app/features/gifts/create.go
package gifts

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/policy/grouppolicy"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/sanitize"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type createGiftRequest struct {
	Title   string `json:"title"`
	Link    string `json:"link,omitempty"`
	GroupID string `json:"group_id,omitempty"`
}

// ServeCreate handles POST /api/gifts.
//
// The item lands in the group named by group_id when supplied (the caller
// must belong to it) or in the caller's active group otherwise. New items
// always start unclaimed.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	var req createGiftRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	title := sanitize.Text(req.Title)
	if title == "" {
		httpjson.Error(w, http.StatusBadRequest, "gift title is required")
		return
	}
	link := sanitize.Link(req.Link)
	if req.Link != "" && link == "" {
		httpjson.Error(w, http.StatusBadRequest, "gift link must be an http(s) URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groupID, err := h.resolveTargetGroup(ctx, userID, req.GroupID)
	if err != nil {
		switch {
		case errors.Is(err, errBadGroupID):
			httpjson.Error(w, http.StatusNotFound, "group not found")
		case errors.Is(err, errNotGroupMember):
			httpjson.Error(w, http.StatusForbidden, "not a member of this group")
		case errors.Is(err, errNoActiveGroup):
			httpjson.Error(w, http.StatusConflict, "must have an active group to add gift items")
		default:
			h.Log.Error("add gift: resolve group", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "could not add gift item")
		}
		return
	}

	g, err := h.Gifts.Create(ctx, models.GiftItem{
		Title:   title,
		Link:    link,
		OwnerID: userID,
		GroupID: groupID,
	})
	if err != nil {
		h.Log.Error("add gift: insert", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not add gift item")
		return
	}

	h.Log.Info("gift item added",
		zap.String("gift_id", g.ID.Hex()),
		zap.String("group_id", groupID.Hex()),
		zap.String("owner_id", userID.Hex()))

	httpjson.Respond(w, http.StatusCreated, toOwnGift(g, ""))
}

var (
	errBadGroupID     = errors.New("invalid group id")
	errNotGroupMember = errors.New("not a group member")
	errNoActiveGroup  = errors.New("no active group")
)

// resolveTargetGroup picks the group a new item belongs to: the explicit
// one when the request names it, the caller's active group otherwise.
func (h *Handler) resolveTargetGroup(ctx context.Context, userID primitive.ObjectID, explicit string) (primitive.ObjectID, error) {
	if explicit != "" {
		groupID, err := primitive.ObjectIDFromHex(explicit)
		if err != nil {
			return primitive.NilObjectID, errBadGroupID
		}
		member, err := grouppolicy.IsMember(ctx, h.DB, groupID, userID)
		if err != nil {
			return primitive.NilObjectID, err
		}
		if !member {
			return primitive.NilObjectID, errNotGroupMember
		}
		return groupID, nil
	}

	m, err := h.Memberships.ActiveOrEarliest(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, errNoActiveGroup
		}
		return primitive.NilObjectID, err
	}
	return m.GroupID, nil
}
