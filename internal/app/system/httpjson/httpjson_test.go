package httpjson

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestReadDecodes(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ok"}`))
	w := httptest.NewRecorder()

	var p payload
	if err := Read(w, r, &p); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.Name != "ok" {
		t.Fatalf("decoded name = %q", p.Name)
	}
}

func TestReadRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ok","extra":1}`))
	var p payload
	if err := Read(httptest.NewRecorder(), r, &p); err == nil {
		t.Fatalf("unknown field should be rejected")
	}
}

func TestReadRejectsTrailingGarbage(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ok"}{"name":"again"}`))
	var p payload
	if err := Read(httptest.NewRecorder(), r, &p); err == nil {
		t.Fatalf("second JSON value should be rejected")
	}
}

func TestErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, 404, "project not found")
	if w.Code != 404 {
		t.Fatalf("status = %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"project not found"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestDeletedBody(t *testing.T) {
	w := httptest.NewRecorder()
	Deleted(w)
	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"success":true}` {
		t.Fatalf("body = %s", got)
	}
}
