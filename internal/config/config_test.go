package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_BODY_BYTES", "AI_REQUEST_TIMEOUT", "FIRESTORE_ADMINS_COLLECTION", "FIRESTORE_IMAGES_COLLECTION"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxBodyBytes != 60<<20 {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, 60<<20)
	}
	if cfg.AIRequestTimeout != 120*time.Second {
		t.Errorf("AIRequestTimeout = %v, want 120s", cfg.AIRequestTimeout)
	}
	if cfg.AdminsCollection != "admins" || cfg.ImagesCollection != "community_images" {
		t.Errorf("unexpected collection defaults: %q %q", cfg.AdminsCollection, cfg.ImagesCollection)
	}
}

func TestGeminiKeyFallback(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "secondary")
	if got := firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"); got != "secondary" {
		t.Errorf("firstEnv = %q, want secondary", got)
	}

	t.Setenv("GOOGLE_API_KEY", "primary")
	if got := firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"); got != "primary" {
		t.Errorf("firstEnv = %q, want primary (first one present wins)", got)
	}
}

func TestGetDurationEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"duration format", "90s", 90 * time.Second},
		{"integer seconds", "45", 45 * time.Second},
		{"invalid falls back", "soon", time.Minute},
		{"empty falls back", "", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := getDurationEnv("TEST_DURATION", time.Minute); got != tt.want {
				t.Errorf("getDurationEnv(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{MaxBodyBytes: 0, AIRequestTimeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero MaxBodyBytes")
	}
	cfg = &Config{MaxBodyBytes: 1, AIRequestTimeout: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero AIRequestTimeout")
	}
}
