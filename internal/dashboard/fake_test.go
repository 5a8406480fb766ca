package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// fakeCollab is an in-memory stand-in for the persistence collaborator. It
// assigns server-side ids, echoes persisted entities, and implements the
// proposal response upsert, which is enough surface for the session tests.
type fakeCollab struct {
	mu     sync.Mutex
	nextID int

	logs      []models.ActivityLog
	projects  map[string]models.Project
	responses map[string][]models.ProposalResponse // by proposal id
}

func newFakeCollab() *fakeCollab {
	return &fakeCollab{
		projects:  make(map[string]models.Project),
		responses: make(map[string][]models.ProposalResponse),
	}
}

func (f *fakeCollab) newID() string {
	f.nextID++
	return fmt.Sprintf("srv-%d", f.nextID)
}

// logCount returns how many activity log writes the collaborator has seen.
func (f *fakeCollab) logCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.logs)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeCollab) router() http.Handler {
	r := chi.NewRouter()

	emptyList := func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []struct{}{})
	}
	for _, path := range []string{"/assets", "/brand-items", "/team", "/activity-logs", "/chat", "/proposals", "/notes-checks", "/agenda-items"} {
		r.Get(path, emptyList)
	}
	r.Get("/projects", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := make([]models.Project, 0, len(f.projects))
		for _, p := range f.projects {
			out = append(out, p)
		}
		writeJSON(w, out)
	})

	r.Post("/activity-logs", func(w http.ResponseWriter, req *http.Request) {
		var l models.ActivityLog
		_ = json.NewDecoder(req.Body).Decode(&l)
		f.mu.Lock()
		l.ID = f.newID()
		f.logs = append(f.logs, l)
		f.mu.Unlock()
		writeJSON(w, l)
	})

	r.Post("/projects", func(w http.ResponseWriter, req *http.Request) {
		var p models.Project
		_ = json.NewDecoder(req.Body).Decode(&p)
		f.mu.Lock()
		p.ID = f.newID()
		for i := range p.Stages {
			p.Stages[i].ID = f.newID()
		}
		f.projects[p.ID] = p
		f.mu.Unlock()
		writeJSON(w, p)
	})
	r.Put("/projects/{id}", func(w http.ResponseWriter, req *http.Request) {
		var p models.Project
		_ = json.NewDecoder(req.Body).Decode(&p)
		p.ID = chi.URLParam(req, "id")
		f.mu.Lock()
		f.projects[p.ID] = p
		f.mu.Unlock()
		writeJSON(w, p)
	})
	r.Delete("/projects/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		delete(f.projects, chi.URLParam(req, "id"))
		f.mu.Unlock()
		writeJSON(w, map[string]bool{"success": true})
	})
	r.Put("/projects/{projectId}/stages/{stageId}", func(w http.ResponseWriter, req *http.Request) {
		var st models.ProjectStage
		_ = json.NewDecoder(req.Body).Decode(&st)
		st.ID = chi.URLParam(req, "stageId")
		f.mu.Lock()
		if p, ok := f.projects[chi.URLParam(req, "projectId")]; ok {
			for i := range p.Stages {
				if p.Stages[i].ID == st.ID {
					p.Stages[i] = st
				}
			}
			f.projects[p.ID] = p
		}
		f.mu.Unlock()
		writeJSON(w, st)
	})

	r.Post("/proposals", func(w http.ResponseWriter, req *http.Request) {
		var p models.Proposal
		_ = json.NewDecoder(req.Body).Decode(&p)
		f.mu.Lock()
		p.ID = f.newID()
		f.mu.Unlock()
		if p.Responses == nil {
			p.Responses = []models.ProposalResponse{}
		}
		writeJSON(w, p)
	})
	r.Delete("/proposals/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]bool{"success": true})
	})
	r.Post("/proposals/{proposalId}/responses", func(w http.ResponseWriter, req *http.Request) {
		var resp models.ProposalResponse
		_ = json.NewDecoder(req.Body).Decode(&resp)
		pid := chi.URLParam(req, "proposalId")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, existing := range f.responses[pid] {
			if existing.UserID == resp.UserID {
				resp.ID = existing.ID
				f.responses[pid][i] = resp
				writeJSON(w, resp)
				return
			}
		}
		resp.ID = f.newID()
		f.responses[pid] = append(f.responses[pid], resp)
		writeJSON(w, resp)
	})
	r.Delete("/proposals/{proposalId}/responses/{responseId}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]bool{"success": true})
	})

	// Remaining create/update/delete endpoints: assign an id and echo.
	echoCreate := func(w http.ResponseWriter, req *http.Request) {
		var e map[string]any
		_ = json.NewDecoder(req.Body).Decode(&e)
		f.mu.Lock()
		e["id"] = f.newID()
		f.mu.Unlock()
		writeJSON(w, e)
	}
	echoUpdate := func(w http.ResponseWriter, req *http.Request) {
		var e map[string]any
		_ = json.NewDecoder(req.Body).Decode(&e)
		e["id"] = chi.URLParam(req, "id")
		writeJSON(w, e)
	}
	deleted := func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]bool{"success": true})
	}

	for _, path := range []string{"/assets", "/brand-items", "/team", "/chat", "/notes-checks", "/agenda-items"} {
		r.Post(path, echoCreate)
	}
	for _, path := range []string{"/assets/{id}", "/team/{id}", "/notes-checks/{id}", "/agenda-items/{id}"} {
		r.Put(path, echoUpdate)
		r.Delete(path, deleted)
	}

	return r
}

// newTestSession starts a fake collaborator and returns a session signed in
// as Ana, plus the fake for assertions.
func newTestSession(t *testing.T) (*Session, *fakeCollab) {
	t.Helper()
	fake := newFakeCollab()
	srv := httptest.NewServer(fake.router())
	t.Cleanup(srv.Close)

	s := NewSession(NewClient(srv.URL, srv.Client()), nil, zap.NewNop())
	s.CurrentUser = &models.TeamMember{ID: "u-ana", Name: "Ana", Role: "Design"}
	s.Team = []models.TeamMember{*s.CurrentUser}
	return s, fake
}
