// internal/dashboard/actions.go
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"go.uber.org/zap"
)

// Every action follows the same two-phase shape: the remote call runs
// first, and only a successful response is applied to the session through
// the collection reducers. The audit write happens after the local apply
// and is allowed to fail; a lost log entry is logged at Warn and the
// primary mutation stands.

// addLog composes an ActivityLog attributed to the current user and
// persists it. Exactly one call per logical user action; bulk load and
// non-log-worthy operations (chat, note edits, agenda edits) never call it.
func (s *Session) addLog(ctx context.Context, action string) {
	if s.CurrentUser == nil {
		return
	}
	entry := models.ActivityLog{
		Action: action,
		UserID: s.CurrentUser.ID,
		Time:   "ahora",
	}
	created, err := s.client.CreateLog(ctx, entry)
	if err != nil {
		s.log.Warn("activity log write failed", zap.String("action", action), zap.Error(err))
		return
	}
	s.Logs = prepend(s.Logs, created)
}

/*──────────────────────────── assets ───────────────────────────*/

// UploadAsset registers a new asset and prepends it to the collection.
func (s *Session) UploadAsset(ctx context.Context, a models.Asset) error {
	if a.Name == "" {
		return fmt.Errorf("asset name is required")
	}
	created, err := s.client.CreateAsset(ctx, a)
	if err != nil {
		return err
	}
	s.Assets = prepend(s.Assets, created)
	s.addLog(ctx, "Subió nuevo archivo: "+created.Name)
	return nil
}

// UpdateAsset replaces the asset in place.
func (s *Session) UpdateAsset(ctx context.Context, a models.Asset) error {
	updated, err := s.client.UpdateAsset(ctx, a)
	if err != nil {
		return err
	}
	s.Assets = replaceByID(s.Assets, updated)
	s.addLog(ctx, "Editó archivo: "+updated.Name)
	return nil
}

// DeleteAsset removes the asset.
func (s *Session) DeleteAsset(ctx context.Context, id string) error {
	asset := findByID(s.Assets, id)
	if err := s.client.DeleteAsset(ctx, id); err != nil {
		return err
	}
	s.Assets = removeByID(s.Assets, id)
	if asset != nil {
		s.addLog(ctx, "Eliminó archivo: "+asset.Name)
	}
	return nil
}

/*────────────────────────── brand kit ──────────────────────────*/

// AddBrandItem adds an entry to the brand kit.
func (s *Session) AddBrandItem(ctx context.Context, b models.BrandItem) error {
	if err := b.Validate(); err != nil {
		return err
	}
	created, err := s.client.CreateBrandItem(ctx, b)
	if err != nil {
		return err
	}
	s.BrandItems = prepend(s.BrandItems, created)
	s.addLog(ctx, "Añadió a kit de marca: "+truncate(created.Content, 20)+"...")
	return nil
}

// truncate returns the first n runes of str.
func truncate(str string, n int) string {
	runes := []rune(str)
	if len(runes) <= n {
		return str
	}
	return string(runes[:n])
}

/*──────────────────────────── team ─────────────────────────────*/

// AddMember adds a member to the roster (appended, insertion order).
func (s *Session) AddMember(ctx context.Context, m models.TeamMember) error {
	if m.Name == "" || m.Password == "" {
		return fmt.Errorf("member name and password are required")
	}
	created, err := s.client.CreateMember(ctx, m)
	if err != nil {
		return err
	}
	s.Team = appendItem(s.Team, created)
	s.addLog(ctx, "Añadió miembro: "+created.Name)
	return nil
}

// UpdateMember replaces the member in place. When the current user edits
// their own record, the signed-in identity follows the update.
func (s *Session) UpdateMember(ctx context.Context, m models.TeamMember) error {
	updated, err := s.client.UpdateMember(ctx, m)
	if err != nil {
		return err
	}
	s.Team = replaceByID(s.Team, updated)
	if s.CurrentUser != nil && s.CurrentUser.ID == updated.ID {
		u := updated
		s.CurrentUser = &u
	}
	s.addLog(ctx, "Actualizó miembro: "+updated.Name)
	return nil
}

// DeleteMember removes the member from the roster.
func (s *Session) DeleteMember(ctx context.Context, id string) error {
	member := findByID(s.Team, id)
	if err := s.client.DeleteMember(ctx, id); err != nil {
		return err
	}
	s.Team = removeByID(s.Team, id)
	if member != nil {
		s.addLog(ctx, "Eliminó miembro: "+member.Name)
	}
	return nil
}

/*─────────────────────────── projects ──────────────────────────*/

// AddProject creates a project.
func (s *Session) AddProject(ctx context.Context, p models.Project) error {
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	created, err := s.client.CreateProject(ctx, p)
	if err != nil {
		return err
	}
	s.Projects = prepend(s.Projects, created)
	s.addLog(ctx, "Creó proyecto: "+created.Title)
	return nil
}

// UpdateProject replaces the project in Projects and, when promoted, in
// CustomSections through the same reducer so the two copies cannot diverge.
func (s *Session) UpdateProject(ctx context.Context, p models.Project) error {
	updated, err := s.client.UpdateProject(ctx, p)
	if err != nil {
		return err
	}
	s.applyProject(updated)
	s.addLog(ctx, "Actualizó proyecto: "+updated.Title)
	return nil
}

// applyProject writes one persisted project copy into both lists.
func (s *Session) applyProject(p models.Project) {
	s.Projects = replaceByID(s.Projects, p)
	if containsID(s.CustomSections, p.ID) {
		if p.Promoted {
			s.CustomSections = replaceByID(s.CustomSections, p)
		} else {
			s.CustomSections = removeByID(s.CustomSections, p.ID)
		}
	} else if p.Promoted {
		s.CustomSections = appendItem(s.CustomSections, p)
	}
}

// DeleteProject removes the project from Projects and CustomSections, and
// resets the active tab to the dashboard if it was showing this project.
// Deletion is terminal; there is no undelete.
func (s *Session) DeleteProject(ctx context.Context, id string) error {
	project := findByID(s.Projects, id)
	if err := s.client.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.Projects = removeByID(s.Projects, id)
	s.CustomSections = removeByID(s.CustomSections, id)
	if s.ActiveTab == ProjectViewKey(id) {
		s.SetActiveTab(ViewDashboard)
	}
	if project != nil {
		s.addLog(ctx, "Eliminó proyecto: "+project.Title)
	}
	return nil
}

// ArchiveProject marks the project archived, demotes it from the sidebar,
// and moves the view to the progress tab.
func (s *Session) ArchiveProject(ctx context.Context, id string) error {
	project := findByID(s.Projects, id)
	if project == nil {
		return fmt.Errorf("unknown project %q", id)
	}
	p := *project
	p.IsArchived = true
	p.Promoted = false
	updated, err := s.client.UpdateProject(ctx, p)
	if err != nil {
		return err
	}
	s.applyProject(updated)
	s.SetActiveTab(ViewProgress)
	s.addLog(ctx, "Archivó proyecto: "+id)
	return nil
}

// UnarchiveProject clears the archived flag. It does not re-promote and
// leaves the active tab alone.
func (s *Session) UnarchiveProject(ctx context.Context, id string) error {
	project := findByID(s.Projects, id)
	if project == nil {
		return fmt.Errorf("unknown project %q", id)
	}
	p := *project
	p.IsArchived = false
	updated, err := s.client.UpdateProject(ctx, p)
	if err != nil {
		return err
	}
	s.applyProject(updated)
	s.addLog(ctx, "Recuperó proyecto: "+id)
	return nil
}

// PromoteProject pins the project to the sidebar quick-access list. No-op
// when it is already promoted.
func (s *Session) PromoteProject(ctx context.Context, id string) error {
	if containsID(s.CustomSections, id) {
		return nil
	}
	project := findByID(s.Projects, id)
	if project == nil {
		return fmt.Errorf("unknown project %q", id)
	}
	p := *project
	p.Promoted = true
	updated, err := s.client.UpdateProject(ctx, p)
	if err != nil {
		return err
	}
	s.applyProject(updated)
	s.addLog(ctx, "Creó espacio de trabajo para: "+updated.Title)
	return nil
}

// AddProjectNote prepends a free-text note to the project (newest-first).
func (s *Session) AddProjectNote(ctx context.Context, id, note string) error {
	if note == "" {
		return fmt.Errorf("note text is required")
	}
	project := findByID(s.Projects, id)
	if project == nil {
		return fmt.Errorf("unknown project %q", id)
	}
	p := *project
	p.Notes = append([]string{note}, p.Notes...)
	updated, err := s.client.UpdateProject(ctx, p)
	if err != nil {
		return err
	}
	s.applyProject(updated)
	s.addLog(ctx, "Añadió nota a proyecto")
	return nil
}

// ToggleStage flips a stage's completion. The false→true transition records
// attribution (current user's id, date) and emits exactly one activity log;
// reopening clears attribution and emits none. The toggle is observed
// against the primary Projects collection, and the persisted copy is then
// applied to both lists, so a promoted project cannot double-log.
func (s *Session) ToggleStage(ctx context.Context, projectID, stageID string) error {
	project := findByID(s.Projects, projectID)
	if project == nil {
		return fmt.Errorf("unknown project %q", projectID)
	}
	stagePtr := project.Stage(stageID)
	if stagePtr == nil {
		return fmt.Errorf("unknown stage %q in project %q", stageID, projectID)
	}

	stage := *stagePtr
	completing := !stage.IsCompleted
	stage.IsCompleted = completing
	if completing {
		if s.CurrentUser != nil {
			stage.CompletedBy = s.CurrentUser.ID
		}
		stage.CompletedAt = time.Now().Format("2006-01-02")
	} else {
		stage.CompletedBy = ""
		stage.CompletedAt = ""
	}

	persisted, err := s.client.UpdateStage(ctx, projectID, stage)
	if err != nil {
		return err
	}

	p := *project
	p.Stages = make([]models.ProjectStage, len(project.Stages))
	copy(p.Stages, project.Stages)
	if sp := p.Stage(stageID); sp != nil {
		*sp = persisted
	}
	s.applyProject(p)

	if completing {
		s.addLog(ctx, fmt.Sprintf("Completó tarea %q en %s", persisted.Title, p.Title))
	}
	return nil
}

/*───────────────────────────── chat ────────────────────────────*/

// SendMessage appends a chat message. Chat traffic is not log-worthy.
func (s *Session) SendMessage(ctx context.Context, content string, msgContext *models.ChatContext) error {
	if content == "" {
		return fmt.Errorf("message content is required")
	}
	if s.CurrentUser == nil {
		return fmt.Errorf("not signed in")
	}
	if msgContext != nil {
		if err := msgContext.Validate(); err != nil {
			return err
		}
	}
	msg := models.ChatMessage{
		UserID:    s.CurrentUser.ID,
		Content:   content,
		Timestamp: time.Now().Format("15:04"),
		Context:   msgContext,
	}
	created, err := s.client.SendChatMessage(ctx, msg)
	if err != nil {
		return err
	}
	s.Messages = appendItem(s.Messages, created)
	return nil
}

/*──────────────────────── notes / checks ───────────────────────*/

// noteCheckLabel names the variant for audit text.
func noteCheckLabel(t models.NoteCheckType) string {
	if t == models.ChecklistVariant {
		return "checklist"
	}
	return "nota"
}

// AddNoteCheck creates a note or checklist owned by the current user.
func (s *Session) AddNoteCheck(ctx context.Context, n models.NoteCheck) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if s.CurrentUser != nil {
		n.UserID = s.CurrentUser.ID
		n.UserName = s.CurrentUser.Name
		n.UserAvatar = s.CurrentUser.Avatar
	}
	created, err := s.client.CreateNoteCheck(ctx, n)
	if err != nil {
		return err
	}
	s.NotesChecks = prepend(s.NotesChecks, created)
	s.addLog(ctx, "Creó "+noteCheckLabel(created.Type)+": "+created.Title)
	return nil
}

// UpdateNoteCheck replaces the note in place. Edits are not log-worthy.
func (s *Session) UpdateNoteCheck(ctx context.Context, n models.NoteCheck) error {
	if err := n.Validate(); err != nil {
		return err
	}
	updated, err := s.client.UpdateNoteCheck(ctx, n)
	if err != nil {
		return err
	}
	s.NotesChecks = replaceByID(s.NotesChecks, updated)
	return nil
}

// DeleteNoteCheck removes the note.
func (s *Session) DeleteNoteCheck(ctx context.Context, id string) error {
	note := findByID(s.NotesChecks, id)
	if err := s.client.DeleteNoteCheck(ctx, id); err != nil {
		return err
	}
	s.NotesChecks = removeByID(s.NotesChecks, id)
	if note != nil {
		s.addLog(ctx, "Eliminó "+noteCheckLabel(note.Type)+": "+note.Title)
	}
	return nil
}

// PublishNoteCheck shares the note with the whole team.
func (s *Session) PublishNoteCheck(ctx context.Context, id string) error {
	note := findByID(s.NotesChecks, id)
	if note == nil {
		return fmt.Errorf("unknown note %q", id)
	}
	n := *note
	n.IsPublished = true
	updated, err := s.client.UpdateNoteCheck(ctx, n)
	if err != nil {
		return err
	}
	s.NotesChecks = replaceByID(s.NotesChecks, updated)
	s.addLog(ctx, "Publicó "+noteCheckLabel(updated.Type)+": "+updated.Title)
	return nil
}

// ToggleCheckItem flips one checklist line. Not log-worthy.
func (s *Session) ToggleCheckItem(ctx context.Context, noteID, itemID string) error {
	note := findByID(s.NotesChecks, noteID)
	if note == nil {
		return fmt.Errorf("unknown note %q", noteID)
	}
	n := *note
	n.Items = make([]models.CheckItem, len(note.Items))
	copy(n.Items, note.Items)
	item := n.Item(itemID)
	if item == nil {
		return fmt.Errorf("unknown item %q in note %q", itemID, noteID)
	}
	item.Completed = !item.Completed
	updated, err := s.client.UpdateNoteCheck(ctx, n)
	if err != nil {
		return err
	}
	s.NotesChecks = replaceByID(s.NotesChecks, updated)
	return nil
}

/*───────────────────────── agenda items ────────────────────────*/

// AddAgendaItem schedules an entry on the current user's agenda.
func (s *Session) AddAgendaItem(ctx context.Context, a models.AgendaItem) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if s.CurrentUser != nil {
		a.UserID = s.CurrentUser.ID
		a.UserName = s.CurrentUser.Name
		a.UserAvatar = s.CurrentUser.Avatar
	}
	created, err := s.client.CreateAgendaItem(ctx, a)
	if err != nil {
		return err
	}
	s.AgendaItems = prepend(s.AgendaItems, created)
	s.addLog(ctx, "Agendó: "+created.Title+" para "+created.Date)
	return nil
}

// UpdateAgendaItem replaces the entry in place. Edits are not log-worthy.
func (s *Session) UpdateAgendaItem(ctx context.Context, a models.AgendaItem) error {
	if err := a.Validate(); err != nil {
		return err
	}
	updated, err := s.client.UpdateAgendaItem(ctx, a)
	if err != nil {
		return err
	}
	s.AgendaItems = replaceByID(s.AgendaItems, updated)
	return nil
}

// DeleteAgendaItem removes the entry.
func (s *Session) DeleteAgendaItem(ctx context.Context, id string) error {
	item := findByID(s.AgendaItems, id)
	if err := s.client.DeleteAgendaItem(ctx, id); err != nil {
		return err
	}
	s.AgendaItems = removeByID(s.AgendaItems, id)
	if item != nil {
		s.addLog(ctx, "Eliminó evento: "+item.Title)
	}
	return nil
}

/*────────────────────────── proposals ──────────────────────────*/

// AddProposal suggests a meeting for the team to vote on.
func (s *Session) AddProposal(ctx context.Context, p models.Proposal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if s.CurrentUser != nil {
		p.UserID = s.CurrentUser.ID
		p.UserName = s.CurrentUser.Name
		p.UserAvatar = s.CurrentUser.Avatar
	}
	created, err := s.client.CreateProposal(ctx, p)
	if err != nil {
		return err
	}
	s.Proposals = prepend(s.Proposals, created)
	s.addLog(ctx, "Propuso reunión: "+created.Title)
	return nil
}

// DeleteProposal removes the proposal.
func (s *Session) DeleteProposal(ctx context.Context, id string) error {
	proposal := findByID(s.Proposals, id)
	if err := s.client.DeleteProposal(ctx, id); err != nil {
		return err
	}
	s.Proposals = removeByID(s.Proposals, id)
	if proposal != nil {
		s.addLog(ctx, "Eliminó propuesta: "+proposal.Title)
	}
	return nil
}

// RespondToProposal records the current user's answer. Answering again
// updates the existing response in place; a second record is never
// appended for the same (proposal, user) pair.
func (s *Session) RespondToProposal(ctx context.Context, proposalID string, response models.ResponseType) error {
	if !models.ValidResponse(response) {
		return fmt.Errorf("unknown response %q", response)
	}
	if s.CurrentUser == nil {
		return fmt.Errorf("not signed in")
	}
	proposal := findByID(s.Proposals, proposalID)
	if proposal == nil {
		return fmt.Errorf("unknown proposal %q", proposalID)
	}

	r := models.ProposalResponse{
		UserID:     s.CurrentUser.ID,
		UserName:   s.CurrentUser.Name,
		UserAvatar: s.CurrentUser.Avatar,
		Response:   response,
	}
	persisted, err := s.client.RespondToProposal(ctx, proposalID, r)
	if err != nil {
		return err
	}

	p := *proposal
	p.Responses = make([]models.ProposalResponse, len(proposal.Responses))
	copy(p.Responses, proposal.Responses)
	if existing := p.ResponseBy(persisted.UserID); existing != nil {
		*existing = persisted
	} else {
		p.Responses = append(p.Responses, persisted)
	}
	s.Proposals = replaceByID(s.Proposals, p)
	return nil
}

// DeleteProposalResponse withdraws one answer from a proposal.
func (s *Session) DeleteProposalResponse(ctx context.Context, proposalID, responseID string) error {
	proposal := findByID(s.Proposals, proposalID)
	if proposal == nil {
		return fmt.Errorf("unknown proposal %q", proposalID)
	}
	if err := s.client.DeleteProposalResponse(ctx, proposalID, responseID); err != nil {
		return err
	}
	p := *proposal
	p.Responses = make([]models.ProposalResponse, 0, len(proposal.Responses))
	for _, r := range proposal.Responses {
		if r.ID != responseID {
			p.Responses = append(p.Responses, r)
		}
	}
	s.Proposals = replaceByID(s.Proposals, p)
	return nil
}
