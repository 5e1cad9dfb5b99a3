package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/giftmonk/giftmonk/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	name, id, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false without a session user")
	}
	if name != "" || id != primitive.NilObjectID {
		t.Errorf("expected zero values, got name=%q id=%s", name, id.Hex())
	}
}

func TestUserCtx_ValidUser(t *testing.T) {
	uid := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   uid.Hex(),
		Name: "Test User",
	})

	name, id, ok := authz.UserCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if name != "Test User" {
		t.Errorf("name: got %q", name)
	}
	if id != uid {
		t.Errorf("id: got %s, want %s", id.Hex(), uid.Hex())
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   "not-a-valid-objectid",
		Name: "Broken",
	})

	if _, _, ok := authz.UserCtx(req); ok {
		t.Error("expected ok=false for malformed user ID (fail closed)")
	}
}

func TestUserID(t *testing.T) {
	uid := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: uid.Hex()})

	id, ok := authz.UserID(req)
	if !ok || id != uid {
		t.Errorf("UserID: got (%s, %v), want (%s, true)", id.Hex(), ok, uid.Hex())
	}
}
