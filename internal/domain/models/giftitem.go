// internal/domain/models/giftitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gift item status values. The three states are fully connected: any
// authorized non-owner may set any of them directly.
const (
	StatusUpForGrabs = "up_for_grabs"
	StatusClaimed    = "claimed"
	StatusPurchased  = "purchased"
)

// IsValidStatus reports whether s is one of the three gift statuses.
func IsValidStatus(s string) bool {
	return s == StatusUpForGrabs || s == StatusClaimed || s == StatusPurchased
}

// GiftItem is a wishlist entry owned by one user inside one group.
//
// Status is only ever visible to non-owner group members; the owner's own
// read path strips it (see the gifts feature). Owner identity is immutable
// after creation.
type GiftItem struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string             `bson:"title" json:"title"`
	Link  string             `bson:"link,omitempty" json:"link,omitempty"`

	Status string `bson:"status,omitempty" json:"status,omitempty"`
	// Purchased is the legacy boolean that predates the status field.
	// It is never written by this code; it only informs EffectiveStatus
	// for documents created before the migration.
	Purchased       *bool               `bson:"purchased,omitempty" json:"-"`
	StatusChangedBy *primitive.ObjectID `bson:"status_changed_by,omitempty" json:"status_changed_by,omitempty"`

	OwnerID primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	GroupID primitive.ObjectID `bson:"group_id" json:"group_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EffectiveStatus resolves the tri-state status, converting legacy documents
// that only carry the purchased boolean.
func (g GiftItem) EffectiveStatus() string {
	if g.Status != "" {
		return g.Status
	}
	if g.Purchased != nil && *g.Purchased {
		return StatusPurchased
	}
	return StatusUpForGrabs
}
