// internal/app/features/gifts/status.go
package gifts

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/policy/giftpolicy"
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

type updateStatusRequest struct {
	Status string `json:"status"`
}

// ServeUpdateStatus handles PUT /api/gifts/{giftID}/status.
//
// Owners can never touch their own item's status; any co-member of the
// item's group can set any of the three states. Last write wins when two
// members race.
func (h *Handler) ServeUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	giftID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "giftID"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "gift item not found")
		return
	}

	var req updateStatusRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	status := normalize.Status(req.Status)
	if !models.IsValidStatus(status) {
		httpjson.Error(w, http.StatusBadRequest, "status must be up_for_grabs, claimed, or purchased")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Gifts.GetByID(ctx, giftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "gift item not found")
			return
		}
		h.Log.Error("update status: load item", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update status")
		return
	}

	if item.OwnerID == userID {
		httpjson.Error(w, http.StatusForbidden, "cannot update status of your own items")
		return
	}

	allowed, err := giftpolicy.CanUpdateStatus(ctx, h.DB, &item, userID)
	if err != nil {
		h.Log.Error("update status: policy check", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update status")
		return
	}
	if !allowed {
		httpjson.Error(w, http.StatusForbidden, "not a member of this item's group")
		return
	}

	if err := h.Gifts.UpdateStatus(ctx, giftID, userID, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "gift item not found")
			return
		}
		h.Log.Error("update status: write", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update status")
		return
	}

	h.Log.Info("gift status updated",
		zap.String("gift_id", giftID.Hex()),
		zap.String("status", status),
		zap.String("changed_by", userID.Hex()))

	httpjson.Respond(w, http.StatusOK, map[string]string{"status": status})
}
