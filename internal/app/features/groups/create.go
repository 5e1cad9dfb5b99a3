// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/normalize"
	"github.com/giftmonk/giftmonk/internal/app/system/sanitize"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.uber.org/zap"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

// ServeCreate handles POST /api/groups.
//
// Creates the group and a membership for the caller in one request. The new
// membership is active only when the caller had no memberships before, so
// a user's first group becomes their working group without a second call.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	var req createGroupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	name := sanitize.Text(normalize.Name(req.Name))
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "group name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Memberships.CountByUser(ctx, userID)
	if err != nil {
		h.Log.Error("create group: count memberships", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create group")
		return
	}

	g, err := h.Groups.Create(ctx, models.Group{
		Name:      name,
		CreatedBy: userID,
	})
	if err != nil {
		h.Log.Error("create group: insert group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create group")
		return
	}

	m, err := h.Memberships.Add(ctx, g.ID, userID, existing == 0)
	if err != nil {
		h.Log.Error("create group: insert membership",
			zap.Error(err), zap.String("group_id", g.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not create group")
		return
	}

	h.Log.Info("group created",
		zap.String("group_id", g.ID.Hex()),
		zap.String("user_id", userID.Hex()))

	httpjson.Respond(w, http.StatusCreated, memberGroup{
		MembershipID: m.ID.Hex(),
		IsActive:     m.IsActive,
		Group:        g,
	})
}
