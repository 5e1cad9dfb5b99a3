// internal/app/features/login/handler.go
package login

import (
	"time"

	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves email/password registration and sign-in.
type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Users      *userstore.Store
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Users:      users,
	}
}

// userResponse is the account shape returned after register and sign-in.
// The password hash never leaves the server.
type userResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AuthMethod string    `json:"auth_method"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		AuthMethod: u.AuthMethod,
		CreatedAt:  u.CreatedAt,
	}
}
