// internal/app/features/account/handler.go
package account

import (
	"context"
	"errors"
	"net/http"
	"time"

	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"github.com/giftmonk/giftmonk/internal/app/system/httpjson"
	"github.com/giftmonk/giftmonk/internal/app/system/normalize"
	"github.com/giftmonk/giftmonk/internal/app/system/sanitize"
	"github.com/giftmonk/giftmonk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the signed-in user's own account.
type Handler struct {
	Log   *zap.Logger
	Users *userstore.Store
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:   logger,
		Users: users,
	}
}

type accountResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AuthMethod string    `json:"auth_method"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ServeGet handles GET /api/account.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "account not found")
			return
		}
		h.Log.Error("account: load user", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load account")
		return
	}

	httpjson.Respond(w, http.StatusOK, accountResponse{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		AuthMethod: u.AuthMethod,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	})
}

type updateNameRequest struct {
	Name string `json:"name"`
}

// ServeUpdateName handles PUT /api/account/name.
// The new name shows up for other group members on their next request;
// sessions rebuild the user from the database each time.
func (h *Handler) ServeUpdateName(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "must be logged in")
		return
	}

	var req updateNameRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	name := sanitize.Text(normalize.Name(req.Name))
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.UpdateName(ctx, userID, name); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "account not found")
			return
		}
		h.Log.Error("account: update name", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update name")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"name": name})
}
