package authapi

import (
	"context"
	"errors"
	"net/http"

	teamstore "github.com/davidmarban/crewdeck/internal/app/store/team"
	"github.com/davidmarban/crewdeck/internal/app/system/auditlog"
	"github.com/davidmarban/crewdeck/internal/app/system/auth"
	"github.com/davidmarban/crewdeck/internal/app/system/httpjson"
	"github.com/davidmarban/crewdeck/internal/app/system/ratelimit"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/auth endpoints.
//
// The credential contract is an exact (name, password) match against the
// team roster: zero or one member matches. On a match the member becomes
// the session user; everything else is a 401.
type Handler struct {
	Team   *teamstore.Store
	Audit  *auditlog.Logger
	Limits *ratelimit.LoginLimiter
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Team:   teamstore.New(db),
		Audit:  audit,
		Limits: ratelimit.NewLoginLimiter(),
		Log:    logger,
	}
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Read(w, r, &req); err != nil {
		httpjson.BadRequest(w, h.Log, err)
		return
	}
	if req.Name == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "name and password are required")
		return
	}
	if h.Limits != nil {
		if ok, reason := h.Limits.Check(r, req.Name); !ok {
			httpjson.Error(w, http.StatusTooManyRequests, reason)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := h.Team.Authenticate(ctx, req.Name, req.Password)
	if errors.Is(err, teamstore.ErrNoMatch) {
		h.Audit.LoginFailure(ctx, r, req.Name, "invalid credentials")
		httpjson.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not sign in")
		return
	}

	sessionUser := auth.SessionUser{
		ID:      member.ID,
		Name:    member.Name,
		Avatar:  member.Avatar,
		IsAdmin: member.IsAdmin,
	}
	if err := auth.SignIn(w, r, sessionUser); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not sign in")
		return
	}

	if h.Limits != nil {
		h.Limits.ResetName(member.Name)
	}
	h.Audit.LoginSuccess(ctx, r, member.ID, member.Name)
	httpjson.Write(w, http.StatusOK, member.Redacted())
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Audit.Logout(r.Context(), r, u.ID)
	}
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("session clear failed", zap.Error(err))
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := h.Team.Get(ctx, u.ID)
	if errors.Is(err, teamstore.ErrNotFound) {
		// The member was deleted after signing in; end the session.
		_ = auth.SignOut(w, r)
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err != nil {
		h.Log.Error("me lookup failed", zap.Error(err), zap.String("user_id", u.ID))
		httpjson.Error(w, http.StatusInternalServerError, "could not load user")
		return
	}
	httpjson.Write(w, http.StatusOK, member.Redacted())
}
