// internal/app/features/gifts/delete.go
package gifts

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftmonk/giftmonk/internal/app/policy/giftpolicy"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeDelete handles DELETE /api/gifts/{giftID}.
// Only the item's owner may remove it; co-members cannot, no matter the
// claim status.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Gifts.GetByID(ctx, giftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "gift item not found")
			return
		}
		h.Log.Error("delete gift: load item", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete gift item")
		return
	}

	if !giftpolicy.CanDelete(&item, userID) {
		httpjson.Error(w, http.StatusForbidden, "only the owner can delete a gift item")
		return
	}

	if _, err := h.Gifts.Delete(ctx, giftID); err != nil {
		h.Log.Error("delete gift: delete", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete gift item")
		return
	}

	h.Log.Info("gift item deleted",
		zap.String("gift_id", giftID.Hex()),
		zap.String("owner_id", userID.Hex()))

	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
