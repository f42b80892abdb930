package genai

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := Config{APIKey: "key", Model: "gemini-2.5-flash"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestConfigValidateMissingAPIKey(t *testing.T) {
	t.Parallel()

	cfg := Config{Model: "gemini-2.5-flash"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestConfigValidateMissingModel(t *testing.T) {
	t.Parallel()

	cfg := Config{APIKey: "key", Model: "   "}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		BaseURL: "https://example.test/v1/",
		APIKey:  "key",
		Model:   "gemini-2.5-flash",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.model != "gemini-2.5-flash" {
		t.Fatalf("model = %q", client.model)
	}
}

func TestNewClientRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{Model: "m"}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
