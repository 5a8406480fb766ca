package projects

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/davidmarban/crewdeck/internal/testutil"
	"go.uber.org/zap"
)

func testHandler() *Handler {
	return &Handler{Log: zap.NewNop()}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	h := testHandler()
	r := testutil.JSONRequest(t, http.MethodPost, "/", models.Project{Description: "no title"})
	w := httptest.NewRecorder()

	h.Create(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCreateRejectsMarkupOnlyTitle(t *testing.T) {
	h := testHandler()
	r := testutil.JSONRequest(t, http.MethodPost, "/", models.Project{Title: "<script>x</script>"})
	w := httptest.NewRecorder()

	h.Create(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": `))
	w := httptest.NewRecorder()

	h.Create(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","bogus":true}`))
	w := httptest.NewRecorder()

	h.Create(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	h := testHandler()
	r := testutil.JSONRequest(t, http.MethodPut, "/p1", models.Project{})
	r = testutil.WithChiURLParam(r, "id", "p1")
	w := httptest.NewRecorder()

	h.Update(w, r)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
