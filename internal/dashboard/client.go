// internal/dashboard/client.go
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/davidmarban/crewdeck/internal/domain/models"
)

// Client is the entity store client: one method per collaborator operation,
// JSON in and out against a base URL. Errors propagate to the caller; there
// are no retries and no optimistic pre-update, so a failed call leaves the
// session state untouched.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Client for the collaborator at baseURL (e.g.
// "http://localhost:8080/api"). A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: httpClient,
	}
}

// apiError is the collaborator's JSON error body.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		if json.NewDecoder(resp.Body).Decode(&ae) == nil && ae.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, ae.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

/*──────────────────────────── assets ───────────────────────────*/

func (c *Client) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var out []models.Asset
	err := c.get(ctx, "/assets", &out)
	return out, err
}

func (c *Client) CreateAsset(ctx context.Context, a models.Asset) (models.Asset, error) {
	var out models.Asset
	err := c.post(ctx, "/assets", a, &out)
	return out, err
}

func (c *Client) UpdateAsset(ctx context.Context, a models.Asset) (models.Asset, error) {
	var out models.Asset
	err := c.put(ctx, "/assets/"+a.ID, a, &out)
	return out, err
}

func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.del(ctx, "/assets/"+id)
}

/*────────────────────────── brand kit ──────────────────────────*/

func (c *Client) ListBrandItems(ctx context.Context) ([]models.BrandItem, error) {
	var out []models.BrandItem
	err := c.get(ctx, "/brand-items", &out)
	return out, err
}

func (c *Client) CreateBrandItem(ctx context.Context, b models.BrandItem) (models.BrandItem, error) {
	var out models.BrandItem
	err := c.post(ctx, "/brand-items", b, &out)
	return out, err
}

/*──────────────────────────── team ─────────────────────────────*/

func (c *Client) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	var out []models.TeamMember
	err := c.get(ctx, "/team", &out)
	return out, err
}

func (c *Client) CreateMember(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	var out models.TeamMember
	err := c.post(ctx, "/team", m, &out)
	return out, err
}

func (c *Client) UpdateMember(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	var out models.TeamMember
	err := c.put(ctx, "/team/"+m.ID, m, &out)
	return out, err
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.del(ctx, "/team/"+id)
}

// Login checks credentials against the collaborator and returns the matching
// member. A failed match surfaces as an error from the 401 response.
func (c *Client) Login(ctx context.Context, name, password string) (models.TeamMember, error) {
	body := map[string]string{"name": name, "password": password}
	var out models.TeamMember
	err := c.post(ctx, "/auth/login", body, &out)
	return out, err
}

/*─────────────────────────── projects ──────────────────────────*/

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	err := c.get(ctx, "/projects", &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	var out models.Project
	err := c.post(ctx, "/projects", p, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	var out models.Project
	err := c.put(ctx, "/projects/"+p.ID, p, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.del(ctx, "/projects/"+id)
}

func (c *Client) UpdateStage(ctx context.Context, projectID string, stage models.ProjectStage) (models.ProjectStage, error) {
	var out models.ProjectStage
	err := c.put(ctx, "/projects/"+projectID+"/stages/"+stage.ID, stage, &out)
	return out, err
}

/*─────────────────────────── activity ──────────────────────────*/

func (c *Client) ListLogs(ctx context.Context) ([]models.ActivityLog, error) {
	var out []models.ActivityLog
	err := c.get(ctx, "/activity-logs", &out)
	return out, err
}

func (c *Client) CreateLog(ctx context.Context, l models.ActivityLog) (models.ActivityLog, error) {
	var out models.ActivityLog
	err := c.post(ctx, "/activity-logs", l, &out)
	return out, err
}

/*───────────────────────────── chat ────────────────────────────*/

func (c *Client) ListChat(ctx context.Context) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	err := c.get(ctx, "/chat", &out)
	return out, err
}

func (c *Client) SendChatMessage(ctx context.Context, m models.ChatMessage) (models.ChatMessage, error) {
	var out models.ChatMessage
	err := c.post(ctx, "/chat", m, &out)
	return out, err
}

/*────────────────────────── proposals ──────────────────────────*/

func (c *Client) ListProposals(ctx context.Context) ([]models.Proposal, error) {
	var out []models.Proposal
	err := c.get(ctx, "/proposals", &out)
	return out, err
}

func (c *Client) CreateProposal(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	var out models.Proposal
	err := c.post(ctx, "/proposals", p, &out)
	return out, err
}

func (c *Client) DeleteProposal(ctx context.Context, id string) error {
	return c.del(ctx, "/proposals/"+id)
}

func (c *Client) RespondToProposal(ctx context.Context, proposalID string, r models.ProposalResponse) (models.ProposalResponse, error) {
	var out models.ProposalResponse
	err := c.post(ctx, "/proposals/"+proposalID+"/responses", r, &out)
	return out, err
}

func (c *Client) DeleteProposalResponse(ctx context.Context, proposalID, responseID string) error {
	return c.del(ctx, "/proposals/"+proposalID+"/responses/"+responseID)
}

/*──────────────────────── notes / checks ───────────────────────*/

func (c *Client) ListNotesChecks(ctx context.Context) ([]models.NoteCheck, error) {
	var out []models.NoteCheck
	err := c.get(ctx, "/notes-checks", &out)
	return out, err
}

func (c *Client) CreateNoteCheck(ctx context.Context, n models.NoteCheck) (models.NoteCheck, error) {
	var out models.NoteCheck
	err := c.post(ctx, "/notes-checks", n, &out)
	return out, err
}

func (c *Client) UpdateNoteCheck(ctx context.Context, n models.NoteCheck) (models.NoteCheck, error) {
	var out models.NoteCheck
	err := c.put(ctx, "/notes-checks/"+n.ID, n, &out)
	return out, err
}

func (c *Client) DeleteNoteCheck(ctx context.Context, id string) error {
	return c.del(ctx, "/notes-checks/"+id)
}

/*───────────────────────── agenda items ────────────────────────*/

func (c *Client) ListAgendaItems(ctx context.Context) ([]models.AgendaItem, error) {
	var out []models.AgendaItem
	err := c.get(ctx, "/agenda-items", &out)
	return out, err
}

func (c *Client) CreateAgendaItem(ctx context.Context, a models.AgendaItem) (models.AgendaItem, error) {
	var out models.AgendaItem
	err := c.post(ctx, "/agenda-items", a, &out)
	return out, err
}

func (c *Client) UpdateAgendaItem(ctx context.Context, a models.AgendaItem) (models.AgendaItem, error) {
	var out models.AgendaItem
	err := c.put(ctx, "/agenda-items/"+a.ID, a, &out)
	return out, err
}

func (c *Client) DeleteAgendaItem(ctx context.Context, id string) error {
	return c.del(ctx, "/agenda-items/"+id)
}
