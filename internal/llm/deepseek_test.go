package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDeepSeekClient_GenerateText(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer server.Close()

	client := NewDeepSeekClient("test-key", WithBaseURL(server.URL))
	got, err := client.GenerateText(context.Background(), Request{
		System:      "be helpful",
		Prompt:      "write something",
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if got != "generated text" {
		t.Errorf("Unexpected reply: %q", got)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "deepseek-chat" {
		t.Errorf("Unexpected model: %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("Unexpected messages: %+v", gotReq.Messages)
	}
}

func TestDeepSeekClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	}))
	defer server.Close()

	client := NewDeepSeekClient("test-key", WithBaseURL(server.URL))
	_, err := client.GenerateText(context.Background(), Request{Prompt: "x"})
	if err == nil {
		t.Fatal("Expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("Error should carry the status code: %v", err)
	}
}

func TestDeepSeekClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewDeepSeekClient("test-key", WithBaseURL(server.URL))
	_, err := client.GenerateText(context.Background(), Request{Prompt: "x"})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("Expected no-choices error, got %v", err)
	}
}
