package groupstore_test

import (
	"errors"
	"testing"

	groupstore "github.com/giftmonk/giftmonk/internal/app/store/groups"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"github.com/giftmonk/giftmonk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_GeneratesInviteCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g, err := store.Create(ctx, models.Group{
		Name:      "The Smiths",
		CreatedBy: primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID.IsZero() {
		t.Fatal("expected generated ID")
	}
	if g.InviteCode == "" {
		t.Fatal("expected generated invite code")
	}

	got, err := store.GetByInviteCode(ctx, g.InviteCode)
	if err != nil {
		t.Fatalf("GetByInviteCode failed: %v", err)
	}
	if got.ID != g.ID {
		t.Errorf("GetByInviteCode: got %s, want %s", got.ID.Hex(), g.ID.Hex())
	}
}

func TestGetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestList_OrderedByCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		if _, err := store.Create(ctx, models.Group{Name: n, CreatedBy: owner}); err != nil {
			t.Fatalf("Create %q failed: %v", n, err)
		}
	}

	gs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(gs) != len(names) {
		t.Fatalf("expected %d groups, got %d", len(names), len(gs))
	}
	for i, n := range names {
		if gs[i].Name != n {
			t.Errorf("position %d: got %q, want %q", i, gs[i].Name, n)
		}
	}
}
