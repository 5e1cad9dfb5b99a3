package login_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giftmonk/giftmonk/internal/app/features/login"
	userstore "github.com/giftmonk/giftmonk/internal/app/store/users"
	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"github.com/giftmonk/giftmonk/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*login.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	return login.NewHandler(userstore.New(db), sessionMgr, zap.NewNop()), db
}

func postJSON(target, body string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return httptest.NewRecorder(), req
}

func TestServeRegister_CreatesAccountAndSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, req := postJSON("/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2hunter2"}`)
	h.ServeRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.ID == "" || resp.Name != "Alice" || resp.Email != "alice@example.com" {
		t.Errorf("unexpected response: %+v", resp)
	}

	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie")
	}
}

func TestServeRegister_DuplicateEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, req := postJSON("/api/auth/register",
		`{"name":"Alice","email":"dup@example.com","password":"hunter2hunter2"}`)
	h.ServeRegister(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: got %d; body %s", rec.Code, rec.Body.String())
	}

	rec, req = postJSON("/api/auth/register",
		`{"name":"Imposter","email":"DUP@example.com","password":"hunter2hunter2"}`)
	h.ServeRegister(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestServeRegister_RejectsShortPassword(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, req := postJSON("/api/auth/register",
		`{"name":"Al","email":"al@example.com","password":"short"}`)
	h.ServeRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeSignIn(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, req := postJSON("/api/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"correct-horse"}`)
	h.ServeRegister(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d; body %s", rec.Code, rec.Body.String())
	}

	rec, req = postJSON("/api/auth/login",
		`{"email":"bob@example.com","password":"correct-horse"}`)
	h.ServeSignIn(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("good password: got %d; body %s", rec.Code, rec.Body.String())
	}

	rec, req = postJSON("/api/auth/login",
		`{"email":"bob@example.com","password":"wrong"}`)
	h.ServeSignIn(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec, req = postJSON("/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)
	h.ServeSignIn(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
