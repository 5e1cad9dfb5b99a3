package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a password-auth user with the given name and email.
// Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Email:      email,
		EmailCI:    text.Fold(email),
		AuthMethod: "password",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("fixture: insert user: %v", err)
	}
	return u
}

// CreateGroup creates a group owned by the given user. No membership is
// created; use CreateMembership for that.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, createdBy primitive.ObjectID) models.Group {
	f.t.Helper()

	g := models.Group{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		CreatedBy:  createdBy,
		InviteCode: uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("fixture: insert group: %v", err)
	}
	return g
}

// CreateMembership links a user to a group. Created timestamps are strictly
// increasing so "earliest membership" ordering is deterministic in tests.
func (f *Fixtures) CreateMembership(ctx context.Context, groupID, userID primitive.ObjectID, isActive bool) models.Membership {
	f.t.Helper()

	m := models.Membership{
		ID:        primitive.NewObjectID(),
		GroupID:   groupID,
		UserID:    userID,
		IsActive:  isActive,
		CreatedAt: nextTimestamp(),
	}
	if _, err := f.db.Collection("group_memberships").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("fixture: insert membership: %v", err)
	}
	return m
}

// CreateGiftItem creates a gift item for the given owner in the given group.
func (f *Fixtures) CreateGiftItem(ctx context.Context, ownerID, groupID primitive.ObjectID, title, status string) models.GiftItem {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.GiftItem{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Status:    status,
		OwnerID:   ownerID,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("gift_items").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("fixture: insert gift item: %v", err)
	}
	return g
}

var lastTimestamp time.Time

func nextTimestamp() time.Time {
	now := time.Now().UTC()
	if !now.After(lastTimestamp) {
		now = lastTimestamp.Add(time.Millisecond)
	}
	lastTimestamp = now
	return now
}
