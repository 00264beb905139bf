package models

// Request and response bodies for the AI endpoints. Responses are
// endpoint-specific; errors always use ErrorResponse.

type EnhancePromptRequest struct {
	Prompt string `json:"prompt"`
}

type EnhancePromptResponse struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

type GeneratePromptRequest struct {
	// Image is a data URL ("data:image/png;base64,...").
	Image string `json:"image"`
}

type GeneratePromptResponse struct {
	Prompt string `json:"prompt"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SupportChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

type SupportChatResponse struct {
	Response string `json:"response"`
}

type TextToImageRequest struct {
	Prompt string `json:"prompt"`
}

type InputImage struct {
	// Data is either a bare base64 string or a full data URL.
	Data string `json:"data"`
	Type string `json:"type"`
}

type ImageToImageRequest struct {
	Images          []InputImage `json:"images"`
	TransformPrompt string       `json:"transformPrompt"`
}

type GeneratedImageResponse struct {
	Success        bool   `json:"success"`
	GeneratedImage string `json:"generatedImage"`
	Description    string `json:"description"`
}

type SketchToImageRequest struct {
	SketchData string `json:"sketchData"`
	Prompt     string `json:"prompt"`
}

type SketchToImageResponse struct {
	Success     bool   `json:"success"`
	ImageData   string `json:"imageData"`
	Description string `json:"description"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every non-2xx JSON body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
