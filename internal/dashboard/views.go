// internal/dashboard/views.go
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
)

// Derived views are recomputed from the current collections on every call
// and are never stored back; they cannot go stale across mutations.

// View is a resolved view key: a static tab, or a project detail view with
// the project attached.
type View struct {
	Key     string
	Project *models.Project
}

// Resolve maps a view key to its view. Keys of the form "project-{id}"
// resolve against CustomSections first, then Projects; an id that matches
// neither falls through to the dashboard rather than erroring, which makes
// stale keys (deleted projects, restored sessions) harmless.
func (s *Session) Resolve(key string) View {
	if id, ok := strings.CutPrefix(key, projectViewPrefix); ok {
		if p := findByID(s.CustomSections, id); p != nil {
			return View{Key: key, Project: p}
		}
		if p := findByID(s.Projects, id); p != nil {
			return View{Key: key, Project: p}
		}
		return View{Key: ViewDashboard}
	}
	return View{Key: key}
}

// ActiveProjects returns projects not archived, in collection order.
func (s *Session) ActiveProjects() []models.Project {
	out := make([]models.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if !p.IsArchived {
			out = append(out, p)
		}
	}
	return out
}

// ArchivedProjects returns archived projects, in collection order.
// Together with ActiveProjects this partitions Projects: every project is
// in exactly one of the two, determined solely by IsArchived.
func (s *Session) ArchivedProjects() []models.Project {
	out := make([]models.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if p.IsArchived {
			out = append(out, p)
		}
	}
	return out
}

// MemberName resolves a member id to its current display name, or "" when
// the member no longer exists. Attribution fields store ids, so renames
// show up everywhere immediately.
func (s *Session) MemberName(id string) string {
	if m := findByID(s.Team, id); m != nil {
		return m.Name
	}
	return ""
}

// MemberStats is the per-member aggregate computed from logs, projects and
// chat.
type MemberStats struct {
	LogCount         int
	ProjectsInvolved int
	TasksCompleted   int
	RecentMessages   []models.ChatMessage
}

// StatsFor aggregates a member's activity: log entries attributed to them,
// distinct projects where they completed at least one stage, total stages
// completed, and their 3 most recent chat messages (most recent first).
func (s *Session) StatsFor(memberID string) MemberStats {
	var stats MemberStats

	for _, l := range s.Logs {
		if l.UserID == memberID {
			stats.LogCount++
		}
	}

	for _, p := range s.Projects {
		involved := false
		for _, st := range p.Stages {
			if st.CompletedBy == memberID {
				stats.TasksCompleted++
				involved = true
			}
		}
		if involved {
			stats.ProjectsInvolved++
		}
	}

	// Messages are held oldest-first; walk backwards for the newest 3.
	for i := len(s.Messages) - 1; i >= 0 && len(stats.RecentMessages) < 3; i-- {
		if s.Messages[i].UserID == memberID {
			stats.RecentMessages = append(stats.RecentMessages, s.Messages[i])
		}
	}

	return stats
}

// AgendaDay is one date's worth of a member's agenda, items sorted by time.
type AgendaDay struct {
	Date  string
	Items []models.AgendaItem
}

// AgendaByDate groups one member's agenda items by date. Dates come back
// ascending and each day's items ascending by time; both orderings are
// plain string comparisons, valid for YYYY-MM-DD and zero-padded HH:MM.
func (s *Session) AgendaByDate(userID string) []AgendaDay {
	byDate := make(map[string][]models.AgendaItem)
	for _, a := range s.AgendaItems {
		if a.UserID == userID {
			byDate[a.Date] = append(byDate[a.Date], a)
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]AgendaDay, 0, len(dates))
	for _, d := range dates {
		items := byDate[d]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Time < items[j].Time
		})
		out = append(out, AgendaDay{Date: d, Items: items})
	}
	return out
}

// CalendarDay is one real cell in the month grid. Nil cells pad the first
// week so day 1 lands on its weekday column.
type CalendarDay struct {
	Day   int
	Date  string
	Items []models.AgendaItem
}

// MonthGrid lays out a month as a Monday-first 7-column grid: leading nil
// cells for the days before the 1st, then one cell per day carrying every
// member's agenda items for that date.
func (s *Session) MonthGrid(year int, month time.Month) []*CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) - 1
	if lead < 0 {
		lead = 6
	}
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := make([]*CalendarDay, 0, lead+daysInMonth)
	for i := 0; i < lead; i++ {
		grid = append(grid, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		cell := &CalendarDay{Day: day, Date: date}
		for _, a := range s.AgendaItems {
			if a.Date == date {
				cell.Items = append(cell.Items, a)
			}
		}
		grid = append(grid, cell)
	}
	return grid
}
