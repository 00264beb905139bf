package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creativista-api/internal/config"
	"creativista-api/internal/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:             "8080",
		AllowedOrigins:   []string{"*"},
		MaxBodyBytes:     60 << 20,
		AIRequestTimeout: time.Second,
	}
}

func testServices() *Services {
	return &Services{Store: storage.NewMemoryStorage()}
}

func TestCreateHandlerPipeline(t *testing.T) {
	h := CreateHandler(testConfig(), testServices())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Error("request id missing")
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS headers missing")
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Errorf("unexpected health body: %q", resp.Body.String())
	}
}

// With no Gemini key configured the AI endpoints must answer 503
// before any downstream call is attempted.
func TestCreateHandlerAIUnavailable(t *testing.T) {
	h := CreateHandler(testConfig(), testServices())

	req := httptest.NewRequest(http.MethodPost, "/api/enhance-prompt", strings.NewReader(`{"prompt":"a castle"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "AI service unavailable" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestCreateHandlerBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 32
	h := CreateHandler(cfg, testServices())

	payload := `{"prompt":"` + strings.Repeat("x", 128) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/enhance-prompt", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("oversized body: expected 400, got %d", resp.Code)
	}
}

func TestInitServicesMemoryFallback(t *testing.T) {
	cfg := testConfig()
	svcs, err := InitServices(t.Context(), cfg)
	if err != nil {
		t.Fatalf("InitServices: %v", err)
	}
	defer svcs.Close()

	if _, ok := svcs.Store.(*storage.MemoryStorage); !ok {
		t.Errorf("expected memory storage fallback, got %T", svcs.Store)
	}
	if svcs.AI != nil {
		t.Error("expected nil AI client without an API key")
	}
}
