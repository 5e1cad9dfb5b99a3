// internal/app/features/groups/members.go
package groups

import (
	"context"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/policy/grouppolicy"
	"github.com/giftmonk/giftmonk/internal/app/store/queries/groupmembers"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// groupMember is the member shape exposed to other members of a group.
type groupMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ServeMembers handles GET /api/groups/{groupID}/members.
// Only members of the group may see who else is in it.
func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := grouppolicy.IsMember(ctx, h.DB, groupID, userID)
	if err != nil {
		h.Log.Error("group members: policy check", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list members")
		return
	}
	if !member {
		httpjson.Error(w, http.StatusForbidden, "not a member of this group")
		return
	}

	rows, err := groupmembers.ListGroupMembers(ctx, h.DB, groupID)
	if err != nil {
		h.Log.Error("group members: list", zap.Error(err),
			zap.String("group_id", groupID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not list members")
		return
	}

	out := make([]groupMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupMember{
			ID:    row.User.ID.Hex(),
			Name:  row.User.DisplayName(),
			Email: row.User.Email,
		})
	}

	httpjson.Respond(w, http.StatusOK, out)
}

// groupWithMembers is one entry of the grouped-members view.
type groupWithMembers struct {
	memberGroup
	Members []groupMember `json:"members"`
}

// ServeGroupedMembers handles GET /api/groups/members.
//
// For each group the caller belongs to, returns the group plus the other
// members in it. This backs the "who am I shopping for" view, so the
// caller themself is left out of each member list.
func (h *Handler) ServeGroupedMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	myGroups, err := groupmembers.ListUserGroups(ctx, h.DB, userID)
	if err != nil {
		h.Log.Error("grouped members: list groups", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list members")
		return
	}

	out := make([]groupWithMembers, 0, len(myGroups))
	for _, ug := range myGroups {
		rows, err := groupmembers.ListGroupMembers(ctx, h.DB, ug.Group.ID)
		if err != nil {
			h.Log.Error("grouped members: list members", zap.Error(err),
				zap.String("group_id", ug.Group.ID.Hex()))
			httpjson.Error(w, http.StatusInternalServerError, "could not list members")
			return
		}

		members := make([]groupMember, 0, len(rows))
		for _, row := range rows {
			if row.User.ID == userID {
				continue
			}
			members = append(members, groupMember{
				ID:    row.User.ID.Hex(),
				Name:  row.User.DisplayName(),
				Email: row.User.Email,
			})
		}

		out = append(out, groupWithMembers{
			memberGroup: memberGroup{
				MembershipID: ug.MembershipID.Hex(),
				IsActive:     ug.IsActive,
				Group:        ug.Group,
			},
			Members: members,
		})
	}

	httpjson.Respond(w, http.StatusOK, out)
}
