// internal/app/features/groups/join.go
package groups

import (
	"context"
	"errors"
	"net/http"

	membershipstore "github.com/giftmonk/giftmonk/internal/app/store/memberships"
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

// ServeJoin handles POST /api/groups/{groupID}/join.
//
// Joining an already-joined group is a 409; the unique (user, group) index
// makes that hold even when two requests race. The new membership becomes
// active only when it is the caller's first.
func (h *Handler) ServeJoin(w http.ResponseWriter, r *http.Request) {
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

	g, err := h.Groups.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "group not found")
			return
		}
		h.Log.Error("join group: load group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not join group")
		return
	}

	h.join(ctx, w, g, userID)
}

type joinByCodeRequest struct {
	InviteCode string `json:"invite_code"`
}

// ServeJoinByCode handles POST /api/groups/join.
// Same as ServeJoin but the group is located by its invite code.
func (h *Handler) ServeJoinByCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	var req joinByCodeRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	code := normalize.QueryParam(req.InviteCode)
	if code == "" {
		httpjson.Error(w, http.StatusBadRequest, "invite code is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "group not found")
			return
		}
		h.Log.Error("join by code: load group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not join group")
		return
	}

	h.join(ctx, w, g, userID)
}

func (h *Handler) join(ctx context.Context, w http.ResponseWriter, g models.Group, userID primitive.ObjectID) {
	existing, err := h.Memberships.CountByUser(ctx, userID)
	if err != nil {
		h.Log.Error("join group: count memberships", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not join group")
		return
	}

	m, err := h.Memberships.Add(ctx, g.ID, userID, existing == 0)
	if err != nil {
		if errors.Is(err, membershipstore.ErrDuplicateMembership) {
			httpjson.Error(w, http.StatusConflict, "already a member of this group")
			return
		}
		h.Log.Error("join group: insert membership",
			zap.Error(err), zap.String("group_id", g.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not join group")
		return
	}

	h.Log.Info("user joined group",
		zap.String("group_id", g.ID.Hex()),
		zap.String("user_id", userID.Hex()))

	httpjson.Respond(w, http.StatusCreated, memberGroup{
		MembershipID: m.ID.Hex(),
		IsActive:     m.IsActive,
		Group:        g,
	})
}
