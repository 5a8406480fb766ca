package dashboard

import (
	"testing"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"go.uber.org/zap"
)

func newBareSession() *Session {
	return NewSession(NewClient("http://unused", nil), nil, zap.NewNop())
}

func TestResolveProjectView(t *testing.T) {
	s := newBareSession()
	s.Projects = []models.Project{{ID: "p1", Title: "Plain"}}
	s.CustomSections = []models.Project{{ID: "p2", Title: "Pinned"}}

	v := s.Resolve(ProjectViewKey("p2"))
	if v.Project == nil || v.Project.Title != "Pinned" {
		t.Fatalf("promoted project should resolve from CustomSections: %+v", v)
	}

	v = s.Resolve(ProjectViewKey("p1"))
	if v.Project == nil || v.Project.Title != "Plain" {
		t.Fatalf("project should resolve from Projects: %+v", v)
	}

	// A stale key never errors; it falls through to the dashboard.
	v = s.Resolve(ProjectViewKey("gone"))
	if v.Key != ViewDashboard || v.Project != nil {
		t.Fatalf("stale project key should fall through to dashboard: %+v", v)
	}

	v = s.Resolve(ViewChat)
	if v.Key != ViewChat || v.Project != nil {
		t.Fatalf("static key should resolve to itself: %+v", v)
	}
}

func TestResolvePrefersCustomSectionCopy(t *testing.T) {
	s := newBareSession()
	s.Projects = []models.Project{{ID: "p1", Title: "Stale"}}
	s.CustomSections = []models.Project{{ID: "p1", Title: "Fresh"}}

	v := s.Resolve(ProjectViewKey("p1"))
	if v.Project.Title != "Fresh" {
		t.Fatalf("CustomSections must win for a promoted id, got %q", v.Project.Title)
	}
}

func TestArchivedPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	s := newBareSession()
	s.Projects = []models.Project{
		{ID: "a"},
		{ID: "b", IsArchived: true},
		{ID: "c"},
		{ID: "d", IsArchived: true},
	}

	active := s.ActiveProjects()
	archived := s.ArchivedProjects()

	if len(active)+len(archived) != len(s.Projects) {
		t.Fatalf("partition not exhaustive: %d + %d != %d", len(active), len(archived), len(s.Projects))
	}
	for _, p := range active {
		if containsID(archived, p.ID) {
			t.Fatalf("project %s in both partitions", p.ID)
		}
		if p.IsArchived {
			t.Fatalf("archived project %s in active view", p.ID)
		}
	}
	for _, p := range archived {
		if !p.IsArchived {
			t.Fatalf("active project %s in archived view", p.ID)
		}
	}
}

func TestStatsFor(t *testing.T) {
	s := newBareSession()
	s.Team = []models.TeamMember{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Bruno"},
	}
	s.Logs = []models.ActivityLog{
		{ID: "l1", UserID: "u1"},
		{ID: "l2", UserID: "u2"},
		{ID: "l3", UserID: "u1"},
	}
	s.Projects = []models.Project{
		{ID: "p1", Stages: []models.ProjectStage{
			{ID: "s1", CompletedBy: "u1"},
			{ID: "s2", CompletedBy: "u1"},
		}},
		{ID: "p2", Stages: []models.ProjectStage{
			{ID: "s3", CompletedBy: "u1"},
			{ID: "s4", CompletedBy: "u2"},
		}},
		{ID: "p3", Stages: []models.ProjectStage{{ID: "s5"}}},
	}
	// Chat is held oldest-first.
	s.Messages = []models.ChatMessage{
		{ID: "m1", UserID: "u1", Content: "uno"},
		{ID: "m2", UserID: "u2", Content: "ajeno"},
		{ID: "m3", UserID: "u1", Content: "dos"},
		{ID: "m4", UserID: "u1", Content: "tres"},
		{ID: "m5", UserID: "u1", Content: "cuatro"},
	}

	stats := s.StatsFor("u1")
	if stats.LogCount != 2 {
		t.Errorf("LogCount = %d, want 2", stats.LogCount)
	}
	if stats.ProjectsInvolved != 2 {
		t.Errorf("ProjectsInvolved = %d, want 2 distinct projects", stats.ProjectsInvolved)
	}
	if stats.TasksCompleted != 3 {
		t.Errorf("TasksCompleted = %d, want 3", stats.TasksCompleted)
	}
	if len(stats.RecentMessages) != 3 {
		t.Fatalf("RecentMessages = %d entries, want 3", len(stats.RecentMessages))
	}
	// Most recent first.
	for i, want := range []string{"cuatro", "tres", "dos"} {
		if stats.RecentMessages[i].Content != want {
			t.Errorf("RecentMessages[%d] = %q, want %q", i, stats.RecentMessages[i].Content, want)
		}
	}
}

func TestMemberName(t *testing.T) {
	s := newBareSession()
	s.Team = []models.TeamMember{{ID: "u1", Name: "Ana"}}
	if got := s.MemberName("u1"); got != "Ana" {
		t.Fatalf("MemberName(u1) = %q", got)
	}
	if got := s.MemberName("gone"); got != "" {
		t.Fatalf("MemberName for a deleted member should be empty, got %q", got)
	}
}

func TestAgendaByDateGroupsAndSorts(t *testing.T) {
	s := newBareSession()
	s.AgendaItems = []models.AgendaItem{
		{ID: "a1", UserID: "u1", Date: "2025-03-10", Time: "14:00", Title: "tarde"},
		{ID: "a2", UserID: "u1", Date: "2025-03-12", Time: "08:00", Title: "otro día"},
		{ID: "a3", UserID: "u1", Date: "2025-03-10", Time: "09:00", Title: "mañana"},
		{ID: "a4", UserID: "u2", Date: "2025-03-10", Time: "07:00", Title: "ajeno"},
	}

	days := s.AgendaByDate("u1")
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Date != "2025-03-10" || days[1].Date != "2025-03-12" {
		t.Fatalf("dates not ascending: %s, %s", days[0].Date, days[1].Date)
	}
	first := days[0].Items
	if len(first) != 2 || first[0].Time != "09:00" || first[1].Time != "14:00" {
		t.Fatalf("items within a day not sorted by time: %+v", first)
	}
	for _, it := range first {
		if it.UserID != "u1" {
			t.Fatalf("another member's item leaked into the view: %+v", it)
		}
	}
}

func TestMonthGridStartsOnMonday(t *testing.T) {
	s := newBareSession()
	s.AgendaItems = []models.AgendaItem{
		{ID: "a1", UserID: "u1", Date: "2026-09-01", Time: "10:00"},
		{ID: "a2", UserID: "u2", Date: "2026-09-01", Time: "12:00"},
	}

	// September 2026 begins on a Tuesday: one leading nil cell.
	grid := s.MonthGrid(2026, time.September)
	if grid[0] != nil {
		t.Fatalf("expected a leading nil cell before Tuesday the 1st")
	}
	if grid[1] == nil || grid[1].Day != 1 {
		t.Fatalf("cell 1 should be day 1, got %+v", grid[1])
	}
	if len(grid) != 1+30 {
		t.Fatalf("grid has %d cells, want 31", len(grid))
	}
	// Day cells carry every member's items for that date.
	if len(grid[1].Items) != 2 {
		t.Fatalf("day 1 should hold both members' items, got %d", len(grid[1].Items))
	}

	// June 2026 begins on a Monday: no leading nils.
	grid = s.MonthGrid(2026, time.June)
	if grid[0] == nil || grid[0].Day != 1 {
		t.Fatalf("Monday-start month should have no leading nils, got %+v", grid[0])
	}

	// March 2026 begins on a Sunday: six leading nils.
	grid = s.MonthGrid(2026, time.March)
	for i := 0; i < 6; i++ {
		if grid[i] != nil {
			t.Fatalf("cell %d should be nil for a Sunday-start month", i)
		}
	}
	if grid[6] == nil || grid[6].Day != 1 {
		t.Fatalf("day 1 should land on the Sunday column, got %+v", grid[6])
	}
}
