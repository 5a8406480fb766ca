package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// fakeCompletions serves an OpenAI-compatible chat completion endpoint
// returning the given content, capturing the last request body.
func fakeCompletions(t *testing.T, content string, lastBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastBody != nil {
			_ = json.NewDecoder(r.Body).Decode(lastBody)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
}

func TestGenerateReturnsText(t *testing.T) {
	var body map[string]any
	srv := fakeCompletions(t, "- Idea uno\n- Idea dos", &body)
	defer srv.Close()

	c := New("test-key", srv.URL+"/v1", "gemini-2.5-flash", zap.NewNop())
	got := c.Generate(context.Background(), "nombres para la campaña")
	if got != "- Idea uno\n- Idea dos" {
		t.Fatalf("Generate = %q", got)
	}

	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	sys := msgs[0].(map[string]any)
	if sys["role"] != "system" {
		t.Fatalf("first message role = %v, want system", sys["role"])
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL+"/v1", "gemini-2.5-flash", zap.NewNop())
	if got := c.Generate(context.Background(), "hola"); got != emptyReply {
		t.Fatalf("Generate = %q, want the empty-reply notice", got)
	}
}

func TestGenerateWhitespaceOnlyReply(t *testing.T) {
	srv := fakeCompletions(t, "   \n", nil)
	defer srv.Close()

	c := New("test-key", srv.URL+"/v1", "gemini-2.5-flash", zap.NewNop())
	if got := c.Generate(context.Background(), "hola"); got != emptyReply {
		t.Fatalf("Generate = %q, want the empty-reply notice", got)
	}
}

func TestGenerateErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "quota"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("test-key", srv.URL+"/v1", "gemini-2.5-flash", zap.NewNop())
	if got := c.Generate(context.Background(), "hola"); got != errorReply {
		t.Fatalf("Generate = %q, want the error fallback text", got)
	}
}

func TestDisabledWithoutAPIKey(t *testing.T) {
	c := New("", "", "", zap.NewNop())
	if got := c.Generate(context.Background(), "hola"); got != disabledReply {
		t.Fatalf("Generate = %q, want the not-configured notice", got)
	}
}
