// internal/app/policy/giftpolicy.go
package giftpolicy

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/giftmonk/giftmonk/internal/domain/models"
)

// CanUpdateStatus reports whether the user may change the claim status of
// an item: the owner never can (statuses are hidden from them), and anyone
// else must share the item's group with the owner.
// Returns an error if the database check fails, allowing callers to
// distinguish "not allowed" (false, nil) from "database error" (false, err).
func CanUpdateStatus(ctx context.Context, db *mongo.Database, item *models.GiftItem, userID primitive.ObjectID) (bool, error) {
	if item.OwnerID == userID {
		return false, nil
	}
	c := db.Collection("group_memberships")
	n, err := c.CountDocuments(ctx, bson.M{
		"group_id": item.GroupID,
		"user_id":  userID,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CanDelete reports whether the user may remove the item. Only the owner can.
func CanDelete(item *models.GiftItem, userID primitive.ObjectID) bool {
	return item.OwnerID == userID
}
