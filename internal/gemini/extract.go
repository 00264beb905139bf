package gemini

import (
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// extractText returns the trimmed concatenation of all text parts of
// the first candidate, or "" when the response carries no usable text.
func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range candidateParts(resp) {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// extractImage pulls the generated image and its accompanying
// description out of an image-generation response. A missing
// description falls back to a default string; a missing image is an
// error.
func extractImage(resp *genai.GenerateContentResponse) (*GeneratedImage, error) {
	result := &GeneratedImage{Description: defaultDescription}

	var texts []string
	for _, part := range candidateParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.ImageData == "" {
			result.ImageData = base64.StdEncoding.EncodeToString(part.InlineData.Data)
		}
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	if result.ImageData == "" {
		return nil, fmt.Errorf("no image data in model response")
	}
	if description := strings.TrimSpace(strings.Join(texts, " ")); description != "" {
		result.Description = description
	}
	return result, nil
}

func candidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}
