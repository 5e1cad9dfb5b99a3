package membershipstore_test

import (
	"errors"
	"testing"

	membershipstore "github.com/giftmonk/giftmonk/internal/app/store/memberships"
	"github.com/giftmonk/giftmonk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAdd_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	if _, err := store.Add(ctx, groupID, userID, true); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	_, err := store.Add(ctx, groupID, userID, false)
	if !errors.Is(err, membershipstore.ErrDuplicateMembership) {
		t.Errorf("expected ErrDuplicateMembership, got %v", err)
	}
}

func TestActiveOrEarliest_PrefersActiveFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	userID := primitive.NewObjectID()

	f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)
	active := f.CreateMembership(ctx, primitive.NewObjectID(), userID, true)
	f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)

	m, err := store.ActiveOrEarliest(ctx, userID)
	if err != nil {
		t.Fatalf("ActiveOrEarliest failed: %v", err)
	}
	if m.ID != active.ID {
		t.Errorf("got membership %s, want the active one %s", m.ID.Hex(), active.ID.Hex())
	}
}

func TestActiveOrEarliest_FallsBackToEarliest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	userID := primitive.NewObjectID()

	first := f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)
	f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)

	m, err := store.ActiveOrEarliest(ctx, userID)
	if err != nil {
		t.Fatalf("ActiveOrEarliest failed: %v", err)
	}
	if m.ID != first.ID {
		t.Errorf("got membership %s, want the earliest %s", m.ID.Hex(), first.ID.Hex())
	}
}

func TestActiveOrEarliest_NoMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.ActiveOrEarliest(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestActivate_SingleActiveInvariant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	userID := primitive.NewObjectID()

	f.CreateMembership(ctx, primitive.NewObjectID(), userID, true)
	b := f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)

	if err := store.Activate(ctx, userID, b.ID); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	ms, err := store.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	activeCount := 0
	for _, m := range ms {
		if m.IsActive {
			activeCount++
			if m.ID != b.ID {
				t.Errorf("wrong membership active: %s", m.ID.Hex())
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("expected exactly 1 active membership, got %d", activeCount)
	}
}

func TestPromoteEarliest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	userID := primitive.NewObjectID()

	first := f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)
	f.CreateMembership(ctx, primitive.NewObjectID(), userID, false)

	if err := store.PromoteEarliest(ctx, userID); err != nil {
		t.Fatalf("PromoteEarliest failed: %v", err)
	}

	m, err := store.ActiveOrEarliest(ctx, userID)
	if err != nil {
		t.Fatalf("ActiveOrEarliest failed: %v", err)
	}
	if m.ID != first.ID || !m.IsActive {
		t.Errorf("expected earliest membership %s promoted, got %s (active=%v)",
			first.ID.Hex(), m.ID.Hex(), m.IsActive)
	}
}

func TestPromoteEarliest_NoMembershipsIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.PromoteEarliest(ctx, primitive.NewObjectID()); err != nil {
		t.Errorf("expected no-op, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	m, err := store.Add(ctx, groupID, userID, true)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := store.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	ok, err := store.Exists(ctx, userID, groupID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("membership still exists after Delete")
	}
}
