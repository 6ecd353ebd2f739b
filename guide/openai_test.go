package guide

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider()
	if p.model != DefaultModel {
		t.Fatalf("expected default model %q, got %q", DefaultModel, p.model)
	}
}

func TestNewOpenAIProvider_WithModel(t *testing.T) {
	p := NewOpenAIProvider(WithModel("gemini-2.0-flash"))
	if p.model != "gemini-2.0-flash" {
		t.Fatalf("expected model %q, got %q", "gemini-2.0-flash", p.model)
	}
}

// TestNewOpenAIProvider_EmptyOptionsKeepDefaults verifies empty option values
// do not clobber the built-in defaults.
func TestNewOpenAIProvider_EmptyOptionsKeepDefaults(t *testing.T) {
	p := NewOpenAIProvider(WithModel(""), WithBaseURL(""))
	if p.model != DefaultModel {
		t.Fatalf("expected default model, got %q", p.model)
	}
}

func TestNewOpenAIProvider_AllOptions(t *testing.T) {
	p := NewOpenAIProvider(
		WithModel("gpt-4o-mini"),
		WithAPIKey("test-key"),
		WithBaseURL("http://localhost:11434/v1"),
		WithTimeout(30*time.Second),
	)
	if p.model != "gpt-4o-mini" {
		t.Fatalf("expected model %q, got %q", "gpt-4o-mini", p.model)
	}
}

func TestOpenAIProvider_ImplementsProvider(t *testing.T) {
	var _ Provider = (*OpenAIProvider)(nil)
}

// TestComplete_Success tests the Complete method against a fake
// OpenAI-compatible server.
func TestComplete_Success(t *testing.T) {
	mockResp := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   DefaultModel,
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": "🌍 DESTINATION VIBE BOARD FOR TOKYO",
					"refusal": "",
				},
				"logprobs": nil,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     42,
			"completion_tokens": 15,
			"total_tokens":      57,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mockResp)
	}))
	defer srv.Close()

	provider := NewOpenAIProvider(
		WithBaseURL(srv.URL),
		WithAPIKey("test-key"),
	)

	resp, err := provider.Complete(context.Background(), BuildMessages("Tokyo"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if resp.Content != "🌍 DESTINATION VIBE BOARD FOR TOKYO" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.PromptTokens != 42 {
		t.Errorf("PromptTokens = %d, want 42", resp.PromptTokens)
	}
	if resp.CompletionTokens != 15 {
		t.Errorf("CompletionTokens = %d, want 15", resp.CompletionTokens)
	}
}

// TestComplete_NoChoices tests that Complete returns an error when the API
// responds with no choices.
func TestComplete_NoChoices(t *testing.T) {
	mockResp := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   DefaultModel,
		"choices": []map[string]any{},
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 0,
			"total_tokens":      10,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mockResp)
	}))
	defer srv.Close()

	provider := NewOpenAIProvider(
		WithBaseURL(srv.URL),
		WithAPIKey("test-key"),
	)

	_, err := provider.Complete(context.Background(), []Message{
		{Role: RoleUser, Content: "Hello"},
	})
	if err == nil {
		t.Fatal("expected error for no choices")
	}
	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("error = %q, want to contain 'no choices'", err.Error())
	}
}

// TestComplete_APIError tests that Complete wraps API errors.
func TestComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "authentication_error"}}`))
	}))
	defer srv.Close()

	provider := NewOpenAIProvider(
		WithBaseURL(srv.URL),
		WithAPIKey("bad-key"),
	)

	_, err := provider.Complete(context.Background(), []Message{
		{Role: RoleUser, Content: "Hello"},
	})
	if err == nil {
		t.Fatal("expected error for HTTP 401")
	}
}

// TestToOpenAIMessages tests the message conversion function.
func TestToOpenAIMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "You are a Travel Agent."},
		{Role: RoleUser, Content: "Create a vibe board."},
		{Role: Role("unknown"), Content: "Defaults to user."},
	}

	result := toOpenAIMessages(messages)
	if len(result) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(result))
	}
}

func TestToOpenAIMessages_Empty(t *testing.T) {
	result := toOpenAIMessages(nil)
	if len(result) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(result))
	}
}
