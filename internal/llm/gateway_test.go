package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// mockGenerator returns canned replies in order, then repeats the last.
type mockGenerator struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (m *mockGenerator) GenerateText(ctx context.Context, req Request) (string, error) {
	idx := m.calls
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	m.calls++
	m.prompts = append(m.prompts, req.Prompt)
	if idx < len(m.errs) && m.errs[idx] != nil {
		return "", m.errs[idx]
	}
	return m.replies[idx], nil
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestGenerate_Sanitizes(t *testing.T) {
	mock := &mockGenerator{replies: []string{"```html\n<p>Hello **world**</p>\n```"}}
	g := NewGateway(mock, "mock", 0, 0)

	got, err := g.Generate(context.Background(), Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "<p>Hello world</p>" {
		t.Errorf("Expected sanitized reply, got %q", got)
	}
}

func TestGenerate_WrapsError(t *testing.T) {
	mock := &mockGenerator{replies: []string{""}, errs: []error{fmt.Errorf("boom")}}
	g := NewGateway(mock, "mock", 0, 0)

	_, err := g.Generate(context.Background(), Request{Prompt: "x"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Expected GenerationError, got %v", err)
	}
	if genErr.Provider != "mock" {
		t.Errorf("Unexpected provider label: %q", genErr.Provider)
	}
}

func TestGenerateLongForm_FirstDraftLongEnough(t *testing.T) {
	mock := &mockGenerator{replies: []string{words(1300)}}
	g := NewGateway(mock, "mock", 1200, 2)

	got, err := g.GenerateLongForm(context.Background(), Request{Prompt: "write"})
	if err != nil {
		t.Fatalf("GenerateLongForm failed: %v", err)
	}
	if mock.calls != 1 {
		t.Errorf("Expected 1 call, got %d", mock.calls)
	}
	if CountWords(got) != 1300 {
		t.Errorf("Expected 1300 words, got %d", CountWords(got))
	}
}

func TestGenerateLongForm_RetriesAndKeepsLongest(t *testing.T) {
	mock := &mockGenerator{replies: []string{words(800), words(500), words(900)}}
	g := NewGateway(mock, "mock", 1200, 2)

	got, err := g.GenerateLongForm(context.Background(), Request{Prompt: "write"})
	if err != nil {
		t.Fatalf("GenerateLongForm failed: %v", err)
	}
	if mock.calls != 3 {
		t.Errorf("Expected 3 calls (1 + 2 retries), got %d", mock.calls)
	}
	if CountWords(got) != 900 {
		t.Errorf("Expected longest draft (900 words), got %d", CountWords(got))
	}
}

func TestGenerateLongForm_StopsEarlyOnSuccess(t *testing.T) {
	mock := &mockGenerator{replies: []string{words(100), words(1250)}}
	g := NewGateway(mock, "mock", 1200, 2)

	got, err := g.GenerateLongForm(context.Background(), Request{Prompt: "write"})
	if err != nil {
		t.Fatalf("GenerateLongForm failed: %v", err)
	}
	if mock.calls != 2 {
		t.Errorf("Expected 2 calls, got %d", mock.calls)
	}
	if CountWords(got) != 1250 {
		t.Errorf("Expected 1250 words, got %d", CountWords(got))
	}
}

func TestGenerateLongForm_RetryPromptIsFresh(t *testing.T) {
	mock := &mockGenerator{replies: []string{words(100), words(1250)}}
	g := NewGateway(mock, "mock", 1200, 2)

	if _, err := g.GenerateLongForm(context.Background(), Request{Prompt: "base prompt"}); err != nil {
		t.Fatalf("GenerateLongForm failed: %v", err)
	}

	retry := mock.prompts[1]
	if !strings.HasPrefix(retry, "base prompt") {
		t.Errorf("Retry should restate the base prompt, got %q", retry)
	}
	if !strings.Contains(retry, "100 words") {
		t.Errorf("Retry should report the short count, got %q", retry)
	}
	if strings.Count(retry, "IMPORTANT: Your previous draft") != 1 {
		t.Errorf("Corrective instruction should not accumulate, got %q", retry)
	}
}

func TestGenerateLongForm_ErrorAfterDraftKeepsDraft(t *testing.T) {
	mock := &mockGenerator{
		replies: []string{words(700), ""},
		errs:    []error{nil, fmt.Errorf("rate limited")},
	}
	g := NewGateway(mock, "mock", 1200, 2)

	got, err := g.GenerateLongForm(context.Background(), Request{Prompt: "write"})
	if err != nil {
		t.Fatalf("Expected best-effort draft, got error: %v", err)
	}
	if CountWords(got) != 700 {
		t.Errorf("Expected the 700-word draft, got %d words", CountWords(got))
	}
}

func TestCountWords_StripsTags(t *testing.T) {
	if n := CountWords("<h1>Two words</h1><p>and two more</p>"); n != 5 {
		t.Errorf("Expected 5 words, got %d", n)
	}
}
