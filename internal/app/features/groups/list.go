// internal/app/features/groups/list.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/store/queries/groupmembers"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeList handles GET /api/groups.
// Any signed-in user can browse all groups to find one to join.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	gs, err := h.Groups.List(ctx)
	if err != nil {
		h.Log.Error("list groups", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list groups")
		return
	}

	httpjson.Respond(w, http.StatusOK, gs)
}

// ServeMine handles GET /api/groups/mine.
// Returns the caller's groups, earliest joined first, each with the
// membership id and active flag.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := groupmembers.ListUserGroups(ctx, h.DB, userID)
	if err != nil {
		h.Log.Error("list my groups", zap.Error(err), zap.String("user_id", userID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not list groups")
		return
	}

	out := make([]memberGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberGroup{
			MembershipID: row.MembershipID.Hex(),
			IsActive:     row.IsActive,
			Group:        row.Group,
		})
	}

	httpjson.Respond(w, http.StatusOK, out)
}

// ServeActive handles GET /api/groups/active.
//
// Resolves the caller's working group: the membership flagged active, or
// the earliest membership when no flag is set. Responds with null when the
// caller belongs to no groups at all.
func (h *Handler) ServeActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Memberships.ActiveOrEarliest(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Respond(w, http.StatusOK, nil)
			return
		}
		h.Log.Error("active group: resolve membership", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not resolve active group")
		return
	}

	g, err := h.Groups.GetByID(ctx, m.GroupID)
	if err != nil {
		h.Log.Error("active group: load group",
			zap.Error(err), zap.String("group_id", m.GroupID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not resolve active group")
		return
	}

	httpjson.Respond(w, http.StatusOK, memberGroup{
		MembershipID: m.ID.Hex(),
		IsActive:     m.IsActive,
		Group:        g,
	})
}
