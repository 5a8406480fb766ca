package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func initTestStore(t *testing.T) {
	t.Helper()
	prev := Store
	t.Cleanup(func() { Store = prev })
	if err := InitSessionStore("0123456789abcdef0123456789abcdef", "crewdeck-test", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore: %v", err)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	initTestStore(t)

	// Sign in and capture the cookie.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	err := SignIn(w, r, SessionUser{ID: "u1", Name: "Ana", IsAdmin: true})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("SignIn set no cookie")
	}

	// Replay the cookie through the middleware.
	var got *SessionUser
	handler := LoadSessionUser(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))
	r2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), r2)

	if got == nil {
		t.Fatalf("middleware did not load the session user")
	}
	if got.ID != "u1" || got.Name != "Ana" || !got.IsAdmin {
		t.Fatalf("loaded user = %+v", got)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	initTestStore(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	if err := SignIn(w, r, SessionUser{ID: "u1", Name: "Ana"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}
	if err := SignOut(w2, r2); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	var found bool
	handler := LoadSessionUser(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, found = CurrentUser(r)
	}))
	r3 := httptest.NewRequest("GET", "/", nil)
	for _, c := range w2.Result().Cookies() {
		r3.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), r3)

	if found {
		t.Fatalf("user still present after sign-out")
	}
}

func TestRequireSignedIn(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	RequireSignedIn(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous request: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	r := WithTestUser(httptest.NewRequest("GET", "/", nil), &SessionUser{ID: "u1"})
	RequireSignedIn(next).ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("signed-in request: status = %d, want 204", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r := WithTestUser(httptest.NewRequest("GET", "/", nil), &SessionUser{ID: "u1"})
	RequireAdmin(next).ServeHTTP(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status = %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	r = WithTestUser(httptest.NewRequest("GET", "/", nil), &SessionUser{ID: "u1", IsAdmin: true})
	RequireAdmin(next).ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("admin: status = %d, want 204", w.Code)
	}
}

func TestLoadSessionUserWithoutStoreIsNoop(t *testing.T) {
	prev := Store
	Store = nil
	t.Cleanup(func() { Store = prev })

	called := false
	handler := LoadSessionUser(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := CurrentUser(r); ok {
			t.Errorf("no store, but a user was loaded")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if !called {
		t.Fatalf("next handler not reached")
	}
}
