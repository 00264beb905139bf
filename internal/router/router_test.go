package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"creativista-api/internal/gemini"
	"creativista-api/internal/handlers"
	"creativista-api/internal/models"
	"creativista-api/internal/storage"
)

// mockAI implements gemini.Service with canned responses.
type mockAI struct {
	enhanced        string
	described       string
	reply           string
	generated       *gemini.GeneratedImage
	err             error
	transformPrompt string
}

func (m *mockAI) EnhancePrompt(_ context.Context, prompt string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.enhanced, nil
}

func (m *mockAI) DescribeImage(_ context.Context, image string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.described, nil
}

func (m *mockAI) SupportChat(_ context.Context, message string, history []models.ChatMessage) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockAI) GenerateTextToImage(_ context.Context, prompt string) (*gemini.GeneratedImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.generated, nil
}

func (m *mockAI) GenerateImageToImage(_ context.Context, images []models.InputImage, transformPrompt string) (*gemini.GeneratedImage, error) {
	m.transformPrompt = transformPrompt
	if m.err != nil {
		return nil, m.err
	}
	return m.generated, nil
}

func newHandler(ai gemini.Service) http.Handler {
	return Setup(handlers.New(storage.NewMemoryStorage(), ai), nil)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	decoded := map[string]any{}
	if resp.Body.Len() > 0 {
		var v any
		if err := json.Unmarshal(resp.Body.Bytes(), &v); err != nil {
			t.Fatalf("unmarshal response %q: %v", resp.Body.String(), err)
		}
		if m, ok := v.(map[string]any); ok {
			decoded = m
		}
	}
	return resp, decoded
}

func TestHealth(t *testing.T) {
	resp, body := doJSON(t, newHandler(nil), http.MethodGet, "/api/health", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
}

func TestTextToImage(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		ai := &mockAI{}
		resp, body := doJSON(t, newHandler(ai), http.MethodPost, "/api/text-to-image", nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.Code)
		}
		if body["error"] == "" || body["error"] == nil {
			t.Error("expected error field in body")
		}
	})

	t.Run("no credential configured", func(t *testing.T) {
		resp, body := doJSON(t, newHandler(nil), http.MethodPost, "/api/text-to-image", models.TextToImageRequest{Prompt: "a castle"})
		if resp.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", resp.Code)
		}
		if body["error"] != "AI service unavailable" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ai := &mockAI{generated: &gemini.GeneratedImage{ImageData: "AAAA", Description: "d"}}
		resp, body := doJSON(t, newHandler(ai), http.MethodPost, "/api/text-to-image", models.TextToImageRequest{Prompt: "a castle"})
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %v", resp.Code, body)
		}
		if body["generatedImage"] != "data:image/png;base64,AAAA" {
			t.Errorf("generatedImage = %v", body["generatedImage"])
		}
		if body["description"] != "d" {
			t.Errorf("description = %v", body["description"])
		}
	})

	t.Run("downstream failure", func(t *testing.T) {
		ai := &mockAI{err: errors.New("model exploded")}
		resp, body := doJSON(t, newHandler(ai), http.MethodPost, "/api/text-to-image", models.TextToImageRequest{Prompt: "a castle"})
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", resp.Code)
		}
		if body["details"] != "model exploded" {
			t.Errorf("details = %v", body["details"])
		}
	})
}

func TestImageToImageValidation(t *testing.T) {
	ai := &mockAI{generated: &gemini.GeneratedImage{ImageData: "AAAA", Description: "d"}}
	h := newHandler(ai)

	resp, _ := doJSON(t, h, http.MethodPost, "/api/image-to-image", models.ImageToImageRequest{TransformPrompt: "make it night"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing images: expected 400, got %d", resp.Code)
	}

	resp, _ = doJSON(t, h, http.MethodPost, "/api/image-to-image", models.ImageToImageRequest{
		Images: []models.InputImage{{Data: "AAAA", Type: "image/png"}},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing transformPrompt: expected 400, got %d", resp.Code)
	}

	resp, body := doJSON(t, h, http.MethodPost, "/api/image-to-image", models.ImageToImageRequest{
		Images:          []models.InputImage{{Data: "AAAA", Type: "image/png"}},
		TransformPrompt: "make it night",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.Code, body)
	}
	if body["generatedImage"] != "data:image/png;base64,AAAA" {
		t.Errorf("generatedImage = %v", body["generatedImage"])
	}
}

func TestSketchToImage(t *testing.T) {
	ai := &mockAI{generated: &gemini.GeneratedImage{ImageData: "BBBB", Description: "photo"}}
	h := newHandler(ai)

	resp, _ := doJSON(t, h, http.MethodPost, "/api/sketch-to-image", models.SketchToImageRequest{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing sketchData: expected 400, got %d", resp.Code)
	}

	resp, body := doJSON(t, h, http.MethodPost, "/api/sketch-to-image", models.SketchToImageRequest{SketchData: "AAAA", Prompt: "a sunny meadow"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.Code, body)
	}
	// Sketch responses carry bare base64, not a data URL.
	if body["imageData"] != "BBBB" {
		t.Errorf("imageData = %v", body["imageData"])
	}
	if ai.transformPrompt == "" || !bytes.Contains([]byte(ai.transformPrompt), []byte("a sunny meadow")) {
		t.Errorf("user prompt not folded into transform prompt: %q", ai.transformPrompt)
	}
}

func TestEnhancePrompt(t *testing.T) {
	ai := &mockAI{enhanced: "a castle at golden hour, volumetric light"}
	resp, body := doJSON(t, newHandler(ai), http.MethodPost, "/api/enhance-prompt", models.EnhancePromptRequest{Prompt: "a castle"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body["enhancedPrompt"] != ai.enhanced {
		t.Errorf("enhancedPrompt = %v", body["enhancedPrompt"])
	}
}

func TestSupportChat(t *testing.T) {
	ai := &mockAI{reply: "Click Text to Image in the sidebar."}
	resp, body := doJSON(t, newHandler(ai), http.MethodPost, "/api/support-chat", models.SupportChatRequest{
		Message: "how do I generate an image?",
		History: []models.ChatMessage{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body["response"] != ai.reply {
		t.Errorf("response = %v", body["response"])
	}

	resp, _ = doJSON(t, newHandler(ai), http.MethodPost, "/api/support-chat", models.SupportChatRequest{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing message: expected 400, got %d", resp.Code)
	}
}

func TestAdminCheck(t *testing.T) {
	h := newHandler(nil)

	// No email parameter is never an error.
	resp, body := doJSON(t, h, http.MethodGet, "/api/admin/check", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body["isAdmin"] != false {
		t.Errorf("isAdmin = %v, want false", body["isAdmin"])
	}

	resp, _ = doJSON(t, h, http.MethodPost, "/api/admin/create", models.InsertAdmin{Email: "a@example.com"})
	if resp.Code != http.StatusOK {
		t.Fatalf("create admin: expected 200, got %d", resp.Code)
	}

	_, body = doJSON(t, h, http.MethodGet, "/api/admin/check?email=a@example.com", nil)
	if body["isAdmin"] != true {
		t.Errorf("isAdmin = %v, want true", body["isAdmin"])
	}

	_, body = doJSON(t, h, http.MethodGet, "/api/admin/check?email=unknown@example.com", nil)
	if body["isAdmin"] != false {
		t.Errorf("isAdmin = %v, want false for unknown email", body["isAdmin"])
	}
}

func TestAdminCreate(t *testing.T) {
	h := newHandler(nil)

	resp, body := doJSON(t, h, http.MethodPost, "/api/admin/create", models.InsertAdmin{Email: "a@example.com"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.Code, body)
	}
	if body["id"] == "" || body["id"] == nil || body["createdAt"] == nil {
		t.Errorf("expected generated id and createdAt, got %v", body)
	}

	// Duplicate email conflicts and must not create a second record.
	resp, body = doJSON(t, h, http.MethodPost, "/api/admin/create", models.InsertAdmin{Email: "a@example.com"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	if body["error"] != "Admin already exists" {
		t.Errorf("error = %v", body["error"])
	}

	resp, body = doJSON(t, h, http.MethodPost, "/api/admin/create", map[string]any{"firebaseUid": "uid-1"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing email: expected 400, got %d", resp.Code)
	}
	if body["details"] == nil {
		t.Error("expected validation details")
	}
}

func TestCommunityImagesLifecycle(t *testing.T) {
	h := newHandler(nil)

	resp, body := doJSON(t, h, http.MethodGet, "/api/community-images", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp, created := doJSON(t, h, http.MethodPost, "/api/admin/community-images", models.InsertCommunityImage{
		ImageUrl:    "https://x/y.png",
		ArtStyle:    "anime",
		AspectRatio: "1:1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %v", resp.Code, created)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("expected generated id, got %v", created)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/community-images", nil)
	listResp := httptest.NewRecorder()
	h.ServeHTTP(listResp, req)
	var images []models.CommunityImage
	if err := json.Unmarshal(listResp.Body.Bytes(), &images); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(images) != 1 || images[0].ImageUrl != "https://x/y.png" || images[0].ArtStyle != "anime" {
		t.Fatalf("unexpected listing: %+v", images)
	}

	resp, body = doJSON(t, h, http.MethodDelete, "/api/admin/community-images/"+id, nil)
	if resp.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("delete: expected success, got %d %v", resp.Code, body)
	}

	// Idempotent: deleting the same id again still succeeds.
	resp, body = doJSON(t, h, http.MethodDelete, "/api/admin/community-images/"+id, nil)
	if resp.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("second delete: expected success, got %d %v", resp.Code, body)
	}
}

func TestCommunityImageCreateValidation(t *testing.T) {
	resp, body := doJSON(t, newHandler(nil), http.MethodPost, "/api/admin/community-images", models.InsertCommunityImage{ArtStyle: "anime"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	details, _ := body["details"].(string)
	for _, want := range []string{"imageUrl", "aspectRatio"} {
		if !bytes.Contains([]byte(details), []byte(want)) {
			t.Errorf("details %q missing %q", details, want)
		}
	}
}

func TestAdminKeyAuth(t *testing.T) {
	h := Setup(handlers.New(storage.NewMemoryStorage(), nil), []string{"secret-key"})

	payload, _ := json.Marshal(models.InsertAdmin{Email: "a@example.com"})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/create", bytes.NewReader(payload))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("no key: expected 401, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/create", bytes.NewReader(payload))
	req.Header.Set("X-API-Key", "secret-key")
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("valid key: expected 200, got %d", resp.Code)
	}

	// Admin status lookup stays open.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("admin check should not require a key, got %d", resp.Code)
	}
}
