// internal/app/policy/grouppolicy.go
package grouppolicy

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsMember returns true if the given user belongs to the given group
// according to the authoritative group_memberships collection.
func IsMember(ctx context.Context, db *mongo.Database, groupID, userID primitive.ObjectID) (bool, error) {
	c := db.Collection("group_memberships")
	n, err := c.CountDocuments(ctx, bson.M{
		"group_id": groupID,
		"user_id":  userID,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CanLeave reports whether the user may leave the group:
// they must be a member, and it must not be their only membership.
// Returns an error if the database check fails, allowing callers to
// distinguish "not allowed" (false, nil) from "database error" (false, err).
func CanLeave(ctx context.Context, db *mongo.Database, groupID, userID primitive.ObjectID) (bool, error) {
	member, err := IsMember(ctx, db, groupID, userID)
	if err != nil {
		return false, err
	}
	if !member {
		return false, nil
	}
	c := db.Collection("group_memberships")
	n, err := c.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, err
	}
	return n > 1, nil
}
