// internal/domain/models/membership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership is the authoritative join between users and groups.
// Exactly one document per (user_id, group_id), enforced by a unique index.
//
// Invariants maintained by the stores and features:
//   - a user who belongs to a group can never leave their last one
//   - at most one membership per user has is_active set
//   - "first membership" always means lowest created_at (then _id), never
//     storage iteration order
type Membership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID  primitive.ObjectID `bson:"group_id" json:"group_id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	IsActive bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
