package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/config"
)

func newTestCompleter(url string) *HTTPCompleter {
	return NewHTTPCompleter(&config.Config{
		AIBaseURL:    url,
		AIAPIKey:     "test-key",
		AIModel:      "test-model",
		AITimeoutSec: 5,
	})
}

func TestCompleteParsesResponse(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "write a post" {
			t.Errorf("unexpected request messages: %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: "  here is your post  "}}},
		})
	}))
	defer srv.Close()

	out, err := newTestCompleter(srv.URL).Complete(context.Background(), "write a post")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "here is your post" {
		t.Errorf("output = %q, want trimmed completion", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer srv.Close()

	_, err := newTestCompleter(srv.URL).Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error from non-200 response")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestCompleter(srv.URL).Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
