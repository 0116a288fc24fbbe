package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPGenerator(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload struct {
		Model    string        `json:"model"`
		Messages []chatMessage `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("Failed to decode request payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "A calm week for the desk."}},
			},
		})
	}))
	defer srv.Close()

	gen := HTTPGenerator{BaseURL: srv.URL, APIKey: "secret", Model: "gpt-4o-mini"}
	ins, err := gen.Generate(context.Background(), Request{RangeLabel: "last-7-days"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("Expected chat-completions path, got %s", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Expected bearer auth, got %q", gotAuth)
	}
	if len(gotPayload.Messages) != 2 || gotPayload.Messages[0].Role != "system" {
		t.Errorf("Expected system+user messages, got %+v", gotPayload.Messages)
	}
	if gotPayload.Model != "gpt-4o-mini" {
		t.Errorf("Unexpected model in payload: %s", gotPayload.Model)
	}
	if ins.Narrative != "A calm week for the desk." {
		t.Errorf("Unexpected narrative: %s", ins.Narrative)
	}
	if ins.Model != "gpt-4o-mini" {
		t.Errorf("Unexpected model on insight: %s", ins.Model)
	}
}

func TestHTTPGeneratorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen := HTTPGenerator{BaseURL: srv.URL, Model: "gpt-4o-mini"}
	if _, err := gen.Generate(context.Background(), Request{RangeLabel: "all"}); err == nil {
		t.Fatal("Expected an error for a non-2xx response")
	}
}
