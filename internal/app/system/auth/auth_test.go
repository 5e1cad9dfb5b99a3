package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giftmonk/giftmonk/internal/app/system/auth"
	"go.uber.org/zap"
)

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKeyDev(t *testing.T) {
	// In dev mode an empty key falls back to a generated one.
	if _, err := auth.NewSessionManager("", "test-session", "", false, zap.NewNop()); err != nil {
		t.Fatalf("expected dev fallback, got error: %v", err)
	}
}

func TestNewSessionManager_EmptyKeyProd(t *testing.T) {
	if _, err := auth.NewSessionManager("", "test-session", "", true, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key in production")
	}
}

func TestCurrentUser_NotSignedIn(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := auth.CurrentUser(req); ok {
		t.Error("expected no user on a bare request")
	}
}

func TestWithTestUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "abc", Name: "Alice"})

	u, ok := auth.CurrentUser(req)
	if !ok {
		t.Fatal("expected user in context")
	}
	if u.ID != "abc" || u.Name != "Alice" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestRequireSignedIn_Unauthorized(t *testing.T) {
	sm := newManager(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/gifts/mine", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q, want application/json", ct)
	}
}

func TestRequireSignedIn_PassesThrough(t *testing.T) {
	sm := newManager(t)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("GET", "/api/gifts/mine", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "abc"})

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be reached")
	}
}

func TestSignInSignOut_RoundTrip(t *testing.T) {
	sm := newManager(t)

	// Sign in and capture the cookie.
	signinRec := httptest.NewRecorder()
	if err := sm.SignIn(signinRec, httptest.NewRequest("POST", "/api/auth/login", nil), "user-1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := signinRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie after SignIn")
	}

	// Replay the cookie through LoadSessionUser; no fetcher installed, so
	// the context user carries just the ID.
	var got *auth.SessionUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})

	req := httptest.NewRequest("GET", "/api/account", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	sm.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.ID != "user-1" {
		t.Fatalf("expected session user user-1, got %+v", got)
	}

	// Sign out, replay again, expect no user.
	signoutRec := httptest.NewRecorder()
	outReq := httptest.NewRequest("POST", "/api/auth/logout", nil)
	for _, c := range cookies {
		outReq.AddCookie(c)
	}
	if err := sm.SignOut(signoutRec, outReq); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	got = nil
	req2 := httptest.NewRequest("GET", "/api/account", nil)
	for _, c := range signoutRec.Result().Cookies() {
		req2.AddCookie(c)
	}
	sm.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), req2)

	if got != nil {
		t.Errorf("expected no session user after SignOut, got %+v", got)
	}
}
