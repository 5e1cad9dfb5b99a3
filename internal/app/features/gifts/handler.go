// internal/app/features/gifts/handler.go
package gifts

import (
	"time"

	giftstore "github.com/giftmonk/giftmonk/internal/app/store/gifts"
	groupstore "github.com/giftmonk/giftmonk/internal/app/store/groups"
	membershipstore "github.com/giftmonk/giftmonk/internal/app/store/memberships"
	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves wishlist entries: the owner's own list and the lists
// other group members see (which include claim statuses the owner never
// gets back).
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	Gifts       *giftstore.Store
	Groups      *groupstore.Store
	Memberships *membershipstore.Store
	Users       *userstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		Gifts:       giftstore.New(db),
		Groups:      groupstore.New(db),
		Memberships: membershipstore.New(db),
		Users:       userstore.New(db),
	}
}

// ownGift is the owner's view of their own item. It carries no status
// fields at all, so claims and purchases stay a surprise.
type ownGift struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link,omitempty"`
	GroupID   string    `json:"group_id"`
	GroupName string    `json:"group_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// memberGift is what co-members see: the item plus its effective claim
// status and who set it.
type memberGift struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Link                string    `json:"link,omitempty"`
	GroupID             string    `json:"group_id"`
	Status              string    `json:"status"`
	StatusChangedByName string    `json:"status_changed_by_name,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func toOwnGift(g models.GiftItem, groupName string) ownGift {
	return ownGift{
		ID:        g.ID.Hex(),
		Title:     g.Title,
		Link:      g.Link,
		GroupID:   g.GroupID.Hex(),
		GroupName: groupName,
		CreatedAt: g.CreatedAt,
	}
}

func toMemberGift(g models.GiftItem, changedByName string) memberGift {
	return memberGift{
		ID:                  g.ID.Hex(),
		Title:               g.Title,
		Link:                g.Link,
		GroupID:             g.GroupID.Hex(),
		Status:              g.EffectiveStatus(),
		StatusChangedByName: changedByName,
		CreatedAt:           g.CreatedAt,
	}
}
