// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"errors"
	"time"

	"github.com/giftmonk/giftmonk/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateMembership = errors.New("already a member of this group")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("group_memberships")}
}

// earliestFirst is the deterministic "first membership" order used
// everywhere a fallback membership is needed: lowest created_at, then _id.
var earliestFirst = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

// Add creates a membership for (userID, groupID). The unique index on the
// pair turns a duplicate join into ErrDuplicateMembership, including under
// concurrent requests.
func (s *Store) Add(ctx context.Context, groupID, userID primitive.ObjectID, isActive bool) (models.Membership, error) {
	m := models.Membership{
		ID:        primitive.NewObjectID(),
		GroupID:   groupID,
		UserID:    userID,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Membership{}, ErrDuplicateMembership
		}
		return models.Membership{}, err
	}
	return m, nil
}

// Get returns the membership for (userID, groupID), or mongo.ErrNoDocuments.
func (s *Store) Get(ctx context.Context, userID, groupID primitive.ObjectID) (models.Membership, error) {
	var m models.Membership
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "group_id": groupID}).Decode(&m)
	if err != nil {
		return models.Membership{}, err
	}
	return m, nil
}

// Exists reports whether a membership exists for (userID, groupID).
func (s *Store) Exists(ctx context.Context, userID, groupID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "group_id": groupID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CountByUser returns how many groups the user belongs to.
func (s *Store) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"user_id": userID})
}

// ListByUser returns the user's memberships in earliest-first order.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error) {
	opts := options.Find().SetSort(earliestFirst)
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var memberships []models.Membership
	if err := cur.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListByGroup returns all memberships of a group in earliest-first order.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Membership, error) {
	opts := options.Find().SetSort(earliestFirst)
	cur, err := s.c.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var memberships []models.Membership
	if err := cur.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// ActiveOrEarliest resolves the user's current group context: the membership
// flagged active, falling back to the earliest one when no flag is set.
// Returns mongo.ErrNoDocuments when the user has no memberships at all.
func (s *Store) ActiveOrEarliest(ctx context.Context, userID primitive.ObjectID) (models.Membership, error) {
	var m models.Membership
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "is_active": true}).Decode(&m)
	if err == nil {
		return m, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.Membership{}, err
	}

	opts := options.FindOne().SetSort(earliestFirst)
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&m); err != nil {
		return models.Membership{}, err
	}
	return m, nil
}

// Delete removes a membership document by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Activate flags the given membership active and clears the flag on every
// other membership the user holds, so at most one is_active per user
// survives any sequence of calls.
func (s *Store) Activate(ctx context.Context, userID, membershipID primitive.ObjectID) error {
	_, err := s.c.UpdateMany(ctx,
		bson.M{"user_id": userID, "_id": bson.M{"$ne": membershipID}},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return err
	}
	res, err := s.c.UpdateByID(ctx, membershipID, bson.M{"$set": bson.M{"is_active": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PromoteEarliest flags the user's earliest remaining membership active.
// Used after the active membership is deleted by leaveGroup. A user with no
// memberships left is not an error; there is simply nothing to promote.
func (s *Store) PromoteEarliest(ctx context.Context, userID primitive.ObjectID) error {
	var m models.Membership
	opts := options.FindOne().SetSort(earliestFirst)
	err := s.c.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return err
	}
	return s.Activate(ctx, userID, m.ID)
}
