// internal/app/store/gifts/giftstore.go
package giftstore

import (
	"context"
	"time"

	"github.com/giftmonk/giftmonk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gift_items")}
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.GiftItem, error) {
	var g models.GiftItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.GiftItem{}, err
	}
	return g, nil
}

// Create inserts a gift item. Status always starts at up_for_grabs; the
// caller has already resolved owner and group.
func (s *Store) Create(ctx context.Context, g models.GiftItem) (models.GiftItem, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.Status = models.StatusUpForGrabs
	g.StatusChangedBy = nil
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.GiftItem{}, err
	}
	return g, nil
}

// ListByOwner returns all of a user's items across every group.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.GiftItem, error) {
	opts := options.Find().SetSort(newestFirst)
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.GiftItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByOwnerAndGroup returns a user's items scoped to one group.
func (s *Store) ListByOwnerAndGroup(ctx context.Context, ownerID, groupID primitive.ObjectID) ([]models.GiftItem, error) {
	opts := options.Find().SetSort(newestFirst)
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID, "group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.GiftItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus patches status and records who changed it. The legacy
// purchased boolean is cleared so the document is fully migrated after its
// first status write.
func (s *Store) UpdateStatus(ctx context.Context, id, changedBy primitive.ObjectID, status string) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":            status,
			"status_changed_by": changedBy,
			"updated_at":        time.Now().UTC(),
		},
		"$unset": bson.M{"purchased": ""},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a gift item. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
