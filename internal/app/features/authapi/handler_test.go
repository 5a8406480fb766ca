package authapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidmarban/crewdeck/internal/app/store/audit"
	"github.com/davidmarban/crewdeck/internal/app/system/auditlog"
	"github.com/davidmarban/crewdeck/internal/app/system/auth"
	"github.com/davidmarban/crewdeck/internal/app/system/ratelimit"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/davidmarban/crewdeck/internal/testutil"
	"go.uber.org/zap"
)

func TestLoginRequiresCredentials(t *testing.T) {
	h := &Handler{Log: zap.NewNop()}

	r := testutil.JSONRequest(t, http.MethodPost, "/login", map[string]string{"name": "Ana"})
	w := httptest.NewRecorder()
	h.Login(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	r = testutil.JSONRequest(t, http.MethodPost, "/login", map[string]string{"password": "pw"})
	w = httptest.NewRecorder()
	h.Login(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestLoginRateLimited(t *testing.T) {
	limits := ratelimit.NewLoginLimiter()
	h := &Handler{Limits: limits, Log: zap.NewNop()}

	// Exhaust the per-name budget before the handler ever reaches the
	// roster lookup.
	for i := 0; i < 5; i++ {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.RemoteAddr = "10.0.0.1:1"
		if ok, _ := limits.Check(r, "Ana"); !ok {
			t.Fatalf("attempt %d blocked early", i+1)
		}
	}

	r := testutil.JSONRequest(t, http.MethodPost, "/login", map[string]string{"name": "Ana", "password": "pw"})
	r.RemoteAddr = "10.0.0.2:1"
	w := httptest.NewRecorder()
	h.Login(w, r)
	testutil.AssertStatus(t, w, http.StatusTooManyRequests)
}

func TestMeRequiresSession(t *testing.T) {
	h := &Handler{Log: zap.NewNop()}

	w := httptest.NewRecorder()
	h.Me(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestLoginFlowAgainstDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	if err := auth.InitSessionStore("0123456789abcdef0123456789abcdef", "crewdeck-test", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore: %v", err)
	}

	h := NewHandler(db, auditlog.New(audit.New(db), zap.NewNop(), auditlog.Config{Auth: "db"}), zap.NewNop())

	fx := testutil.NewFixtures(t, db)
	member := fx.CreateMember(ctx, "Ana", "Design")

	// Wrong password: 401 and a failure event in the audit trail.
	r := testutil.JSONRequest(t, http.MethodPost, "/login", map[string]string{"name": "Ana", "password": "wrong"})
	w := httptest.NewRecorder()
	h.Login(w, r)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Right password: member comes back redacted.
	r = testutil.JSONRequest(t, http.MethodPost, "/login", map[string]string{"name": "Ana", "password": member.Password})
	w = httptest.NewRecorder()
	h.Login(w, r)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.TeamMember
	testutil.DecodeJSON(t, w, &got)
	if got.ID != member.ID {
		t.Fatalf("logged in as %q, want %q", got.ID, member.ID)
	}
	if got.Password != "" {
		t.Fatalf("login response must not echo the password")
	}

	events, err := audit.New(db).RecentByUser(ctx, member.ID, 10)
	if err != nil {
		t.Fatalf("RecentByUser: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("no audit event recorded for the successful login")
	}
}
