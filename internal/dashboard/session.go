// internal/dashboard/session.go
package dashboard

import (
	"context"
	"fmt"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"go.uber.org/zap"
)

// Static view keys. Project detail views use the "project-" prefix plus the
// project id; see Resolve.
const (
	ViewDashboard = "dashboard"
	ViewProgress  = "progress"
	ViewTeam      = "team"
	ViewChat      = "chat"
	ViewNotes     = "notes"
	ViewAgenda    = "agenda"
	ViewCalendar  = "calendar"
	ViewProposals = "proposals"
	ViewArchive   = "archive"

	projectViewPrefix = "project-"
)

// ProjectViewKey returns the view key for a project detail view.
func ProjectViewKey(projectID string) string {
	return projectViewPrefix + projectID
}

// Session is the application-state aggregate: in-memory copies of the nine
// collections, the signed-in member, the active view key, and the promoted
// quick-access list (CustomSections). All mutation entry points live in
// actions.go and follow the same shape: remote call first, then local
// replacement through the collection reducers, so a failed call leaves
// state untouched.
//
// Session is written for a single-user event loop and is not safe for
// concurrent use.
type Session struct {
	client *Client
	log    *zap.Logger
	prefs  *Prefs

	CurrentUser *models.TeamMember
	ActiveTab   string
	Theme       string

	Assets      []models.Asset
	BrandItems  []models.BrandItem
	Team        []models.TeamMember
	Logs        []models.ActivityLog
	Projects    []models.Project
	Messages    []models.ChatMessage
	Proposals   []models.Proposal
	NotesChecks []models.NoteCheck
	AgendaItems []models.AgendaItem

	// CustomSections holds the promoted projects, rebuilt from the
	// persisted Promoted flag on every Load. It is a derived parallel list,
	// never the source of truth for project content.
	CustomSections []models.Project
}

// NewSession constructs a Session over the given store client. prefs may be
// nil, in which case theme and last-view restoration are skipped.
func NewSession(client *Client, prefs *Prefs, logger *zap.Logger) *Session {
	s := &Session{
		client:    client,
		log:       logger,
		prefs:     prefs,
		ActiveTab: ViewDashboard,
		Theme:     "light",
	}
	if prefs != nil {
		if theme, ok := prefs.Get(prefTheme); ok {
			s.Theme = theme
		}
		if tab, ok := prefs.Get(prefLastView); ok {
			s.ActiveTab = tab
		}
	}
	return s
}

// Load bulk-fetches all nine collections and rebuilds CustomSections from
// the Promoted flag. A failed fetch logs at Error and leaves that
// collection empty; the rest still load. Bulk load emits no activity logs.
func (s *Session) Load(ctx context.Context) {
	load(ctx, s.log, "assets", s.client.ListAssets, &s.Assets)
	load(ctx, s.log, "brand items", s.client.ListBrandItems, &s.BrandItems)
	load(ctx, s.log, "team", s.client.ListTeam, &s.Team)
	load(ctx, s.log, "activity logs", s.client.ListLogs, &s.Logs)
	load(ctx, s.log, "projects", s.client.ListProjects, &s.Projects)
	load(ctx, s.log, "chat", s.client.ListChat, &s.Messages)
	load(ctx, s.log, "proposals", s.client.ListProposals, &s.Proposals)
	load(ctx, s.log, "notes", s.client.ListNotesChecks, &s.NotesChecks)
	load(ctx, s.log, "agenda items", s.client.ListAgendaItems, &s.AgendaItems)

	s.rebuildCustomSections()

	// Restored view keys can point at projects that no longer exist;
	// Resolve falls through to the dashboard so a stale key is harmless.
}

func load[T any](ctx context.Context, logger *zap.Logger, name string, fetch func(context.Context) ([]T, error), dst *[]T) {
	items, err := fetch(ctx)
	if err != nil {
		logger.Error("initial load failed", zap.String("collection", name), zap.Error(err))
		return
	}
	*dst = items
}

// rebuildCustomSections derives the promoted list from the Promoted flag,
// preserving Projects order.
func (s *Session) rebuildCustomSections() {
	s.CustomSections = s.CustomSections[:0]
	for _, p := range s.Projects {
		if p.Promoted {
			s.CustomSections = append(s.CustomSections, p)
		}
	}
}

// Login checks credentials with the collaborator and installs the matching
// member as the current user.
func (s *Session) Login(ctx context.Context, name, password string) error {
	if name == "" || password == "" {
		return fmt.Errorf("name and password are required")
	}
	member, err := s.client.Login(ctx, name, password)
	if err != nil {
		return err
	}
	s.CurrentUser = &member
	return nil
}

// Logout clears the current user. Collections are kept; the next Load
// refreshes them.
func (s *Session) Logout() {
	s.CurrentUser = nil
}

// SetActiveTab records the active view key and saves it as the last view.
func (s *Session) SetActiveTab(key string) {
	s.ActiveTab = key
	if s.prefs != nil {
		s.prefs.Set(prefLastView, key)
	}
}

// SetTheme records the theme mode ("light" or "dark") and saves it.
func (s *Session) SetTheme(theme string) {
	s.Theme = theme
	if s.prefs != nil {
		s.prefs.Set(prefTheme, theme)
	}
}
