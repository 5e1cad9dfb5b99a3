package giftpolicy_test

import (
	"testing"

	"github.com/giftmonk/giftmonk/internal/app/policy/giftpolicy"
	"github.com/giftmonk/giftmonk/internal/domain/models"
	"github.com/giftmonk/giftmonk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanUpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	owner := primitive.NewObjectID()
	coMember := primitive.NewObjectID()
	outsider := primitive.NewObjectID()
	groupID := primitive.NewObjectID()

	f.CreateMembership(ctx, groupID, owner, true)
	f.CreateMembership(ctx, groupID, coMember, true)

	item := &models.GiftItem{OwnerID: owner, GroupID: groupID}

	// The owner may never touch their own item's status.
	ok, err := giftpolicy.CanUpdateStatus(ctx, db, item, owner)
	if err != nil {
		t.Fatalf("CanUpdateStatus failed: %v", err)
	}
	if ok {
		t.Error("expected owner to be denied")
	}

	ok, err = giftpolicy.CanUpdateStatus(ctx, db, item, coMember)
	if err != nil {
		t.Fatalf("CanUpdateStatus failed: %v", err)
	}
	if !ok {
		t.Error("expected co-member to be allowed")
	}

	ok, err = giftpolicy.CanUpdateStatus(ctx, db, item, outsider)
	if err != nil {
		t.Fatalf("CanUpdateStatus failed: %v", err)
	}
	if ok {
		t.Error("expected outsider to be denied")
	}
}

func TestCanDelete(t *testing.T) {
	owner := primitive.NewObjectID()
	item := &models.GiftItem{OwnerID: owner}

	if !giftpolicy.CanDelete(item, owner) {
		t.Error("expected owner to be allowed")
	}
	if giftpolicy.CanDelete(item, primitive.NewObjectID()) {
		t.Error("expected non-owner to be denied")
	}
}
