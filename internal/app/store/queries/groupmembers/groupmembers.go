package groupmembers

import (
	"context"

	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GroupMember pairs a membership row with the joined user document.
type GroupMember struct {
	MembershipID primitive.ObjectID `bson:"_id" json:"membership_id"`
	User         models.User        `bson:"user" json:"user"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}

// ListGroupMembers returns every member of a group with the user document
// joined in. Order is earliest membership first, _id as tie-break.
func ListGroupMembers(ctx context.Context, db *mongo.Database, groupID primitive.ObjectID) ([]GroupMember, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"group_id": groupID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"user":      "$user",
			"is_active": 1,
		}}},
	}

	cur, err := db.Collection("group_memberships").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []GroupMember
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserGroup pairs a membership row with the joined group document.
type UserGroup struct {
	MembershipID primitive.ObjectID `bson:"_id" json:"membership_id"`
	Group        models.Group       `bson:"group" json:"group"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}

// ListUserGroups returns every group a user belongs to with the group
// document joined in, earliest membership first.
func ListUserGroups(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) ([]UserGroup, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "groups",
			"localField":   "group_id",
			"foreignField": "_id",
			"as":           "group",
		}}},
		bson.D{{Key: "$unwind", Value: "$group"}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"group":     "$group",
			"is_active": 1,
		}}},
	}

	cur, err := db.Collection("group_memberships").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []UserGroup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
