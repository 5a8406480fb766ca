package noteschecks

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/davidmarban/crewdeck/internal/testutil"
	"go.uber.org/zap"
)

func TestCreateValidation(t *testing.T) {
	h := &Handler{Log: zap.NewNop()}

	cases := []struct {
		name string
		note models.NoteCheck
	}{
		{"missing title", models.NoteCheck{Type: models.NoteVariant, Content: "texto"}},
		{"unknown type", models.NoteCheck{Type: "lista", Title: "x"}},
		{"note with items", models.NoteCheck{
			Type: models.NoteVariant, Title: "x",
			Items: []models.CheckItem{{Text: "uno"}},
		}},
		{"checklist with content", models.NoteCheck{
			Type: models.ChecklistVariant, Title: "x", Content: "texto",
		}},
	}
	for _, tc := range cases {
		r := testutil.JSONRequest(t, http.MethodPost, "/", tc.note)
		w := httptest.NewRecorder()
		h.Create(w, r)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, w.Code)
		}
	}
}
