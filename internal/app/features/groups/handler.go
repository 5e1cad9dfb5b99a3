// internal/app/features/groups/handler.go
package groups

import (
	groupstore "github.com/giftmonk/giftmonk/internal/app/store/groups"
	membershipstore "github.com/giftmonk/giftmonk/internal/app/store/memberships"
	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves group creation, membership, and member listing.
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	Groups      *groupstore.Store
	Memberships *membershipstore.Store
	Users       *userstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		Groups:      groupstore.New(db),
		Memberships: membershipstore.New(db),
		Users:       userstore.New(db),
	}
}

// memberGroup is a group seen through the caller's membership.
type memberGroup struct {
	MembershipID string       `json:"membership_id"`
	IsActive     bool         `json:"is_active"`
	Group        models.Group `json:"group"`
}
