package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"github.com/giftmonk/giftmonk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_AndGetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		Name:       "Alice Smith",
		Email:      "Alice@Example.com",
		AuthMethod: "password",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.ID.IsZero() {
		t.Fatal("expected generated ID")
	}

	// Lookup is case-insensitive.
	got, err := store.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("GetByEmail: got %s, want %s", got.ID.Hex(), u.ID.Hex())
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Name: "A", Email: "dup@example.com", AuthMethod: "password"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same address with different casing still collides.
	_, err := store.Create(ctx, models.User{Name: "B", Email: "DUP@example.com", AuthMethod: "password"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	u := f.CreateUser(ctx, "Old Name", "rename@example.com")

	if err := store.UpdateName(ctx, u.ID, "New Name"); err != nil {
		t.Fatalf("UpdateName failed: %v", err)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("name: got %q, want %q", got.Name, "New Name")
	}
}

func TestUpdateName_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	u := f.CreateUser(ctx, "Gone", "gone@example.com")
	if _, err := db.Collection("users").DeleteOne(ctx, bson.M{"_id": u.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	err := store.UpdateName(ctx, u.ID, "Whatever")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestGetMany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	a := f.CreateUser(ctx, "A", "a@example.com")
	b := f.CreateUser(ctx, "B", "b@example.com")

	got, err := store.GetMany(ctx, []primitive.ObjectID{a.ID, b.ID})
	if err != nil {
		t.Fatalf("GetMany failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	if got[a.ID].Name != "A" || got[b.ID].Name != "B" {
		t.Error("GetMany returned wrong documents")
	}
}

func TestGetMany_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetMany(ctx, nil)
	if err != nil {
		t.Fatalf("GetMany failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map, got %d entries", len(got))
	}
}
