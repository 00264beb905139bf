// Package gemini wraps the Google generative AI API for the five AI
// endpoints. It owns the prompt templates, tolerates responses with no
// usable text, and surfaces transport errors unmodified so the
// handlers decide how to report them.
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"creativista-api/internal/imageutil"
	"creativista-api/internal/models"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.0-flash-preview-image-generation"

	// Inputs larger than this are downscaled before upload.
	maxInputDimension = 3072

	defaultDescription = "Generated image"
)

// GeneratedImage is the payload extracted from an image-generation
// response. ImageData is base64 without the data-URL prefix.
type GeneratedImage struct {
	ImageData   string
	Description string
}

// Service is what the handlers depend on; tests substitute a mock.
type Service interface {
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
	DescribeImage(ctx context.Context, image string) (string, error)
	SupportChat(ctx context.Context, message string, history []models.ChatMessage) (string, error)
	GenerateTextToImage(ctx context.Context, prompt string) (*GeneratedImage, error)
	GenerateImageToImage(ctx context.Context, images []models.InputImage, transformPrompt string) (*GeneratedImage, error)
}

// Client calls the Gemini API.
type Client struct {
	client  *genai.Client
	timeout time.Duration
}

var _ Service = (*Client)(nil)

// NewClient creates a Gemini client for the given API key. Every call
// made through it runs under the given timeout.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, timeout: timeout}, nil
}

// EnhancePrompt rewrites a basic image prompt into a more detailed
// one. An empty model response falls back to the original prompt.
func (c *Client) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	enhancementPrompt := fmt.Sprintf(`You are an expert AI image prompt engineer. Your task is to enhance and improve image generation prompts to make them more detailed, creative, and effective for AI image generation.

Given the basic prompt: "%s"

Please enhance this prompt by:
1. Adding specific visual details (lighting, colors, composition)
2. Including artistic style information if appropriate
3. Adding technical photography/art terms that improve image quality
4. Maintaining the original intent while making it more descriptive
5. Keeping it concise but detailed (aim for 1-2 sentences)

Return only the enhanced prompt, nothing else.`, prompt)

	resp, err := c.client.Models.GenerateContent(ctx, textModel, genai.Text(enhancementPrompt), nil)
	if err != nil {
		return "", err
	}

	if enhanced := extractText(resp); enhanced != "" {
		return enhanced, nil
	}
	return prompt, nil
}

// DescribeImage turns an uploaded image (data URL) into a reusable
// generation prompt.
func (c *Client) DescribeImage(ctx context.Context, image string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	mimeType, data, err := imageutil.ParseDataURL(image, "")
	if err != nil {
		return "", err
	}
	mimeType, data = imageutil.Downscale(mimeType, data, maxInputDimension)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText("Analyze this image and create a detailed, descriptive prompt that could be used to generate a similar image with AI. Focus on: visual elements, composition, colors, lighting, style, mood, and any notable details. Return only the prompt, nothing else."),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, textModel, contents, nil)
	if err != nil {
		return "", err
	}

	if prompt := extractText(resp); prompt != "" {
		return prompt, nil
	}
	return "Unable to generate prompt from image", nil
}

// SupportChat runs one conversational support turn. The system primer
// and the prior turns are replayed before the new message; history
// entries with blank content are dropped.
func (c *Client) SupportChat(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(supportSystemMessage, genai.RoleUser),
		genai.NewContentFromText("Understood. I'm ready to help with CreatiVista AI support questions. How can I assist you today?", genai.RoleModel),
	}
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		role := genai.Role(genai.RoleModel)
		if turn.Role == "user" {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := c.client.Models.GenerateContent(ctx, textModel, contents, nil)
	if err != nil {
		return "", err
	}

	if reply := extractText(resp); reply != "" {
		return reply, nil
	}
	return "I apologize, but I'm having trouble generating a response. Please try again.", nil
}

// GenerateTextToImage produces an image from a text prompt.
func (c *Client) GenerateTextToImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, imageModel, genai.Text(prompt), imageGenConfig())
	if err != nil {
		return nil, err
	}
	return extractImage(resp)
}

// GenerateImageToImage transforms one or more input images according
// to the transform prompt. Inputs may be data URLs or bare base64.
func (c *Client) GenerateImageToImage(ctx context.Context, images []models.InputImage, transformPrompt string) (*GeneratedImage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		mimeType, data, err := imageutil.ParseDataURL(img.Data, img.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid input image: %w", err)
		}
		mimeType, data = imageutil.Downscale(mimeType, data, maxInputDimension)
		parts = append(parts, genai.NewPartFromBytes(data, mimeType))
	}
	parts = append(parts, genai.NewPartFromText(transformPrompt))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, imageModel, contents, imageGenConfig())
	if err != nil {
		return nil, err
	}
	return extractImage(resp)
}

func imageGenConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
}
