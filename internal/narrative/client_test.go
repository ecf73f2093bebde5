package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate_Success(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"## 1. Match Summary\nBarcelona controlled."}}]}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	out, err := c.Generate(context.Background(), `{"Barcelona":{}}`, "Barcelona", "Alavés", 3, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "Match Summary") {
		t.Errorf("out = %q", out)
	}

	if gotBody.Model != DefaultModel {
		t.Errorf("model = %q; want %q", gotBody.Model, DefaultModel)
	}
	if gotBody.Temperature != DefaultTemperature {
		t.Errorf("temperature = %v", gotBody.Temperature)
	}
	if gotBody.MaxTokens != DefaultMaxTokens {
		t.Errorf("max_tokens = %v", gotBody.MaxTokens)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v", gotBody.Messages)
	}

	prompt := gotBody.Messages[1].Content
	for _, section := range []string{
		"## 1. Match Summary",
		"## 2. Tactical Structure",
		"## 3. Turning Point",
		"## 4. Substitution Impact",
		"## 5. Why the Result Happened",
	} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if !strings.Contains(prompt, "Barcelona 3 - 0 Alavés") {
		t.Error("prompt missing score line")
	}
	if !strings.Contains(prompt, `{"Barcelona":{}}`) {
		t.Error("prompt missing stats JSON")
	}
}

func TestGenerate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, APIKey: "bad"})

	_, err := c.Generate(context.Background(), "{}", "A", "B", 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("err = %v", err)
	}
}

func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})

	if _, err := c.Generate(context.Background(), "{}", "A", "B", 0, 0); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})

	if c.cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", c.cfg.BaseURL)
	}
	if c.cfg.Model != DefaultModel {
		t.Errorf("Model = %q", c.cfg.Model)
	}
	if c.cfg.Temperature != DefaultTemperature || c.cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("decoding params = %v/%v", c.cfg.Temperature, c.cfg.MaxTokens)
	}
}
