// Package imageutil handles the browser-facing image encoding: data
// URLs in requests and responses, and downscaling of oversized inputs
// before they are shipped to the model API.
package imageutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

const defaultMimeType = "image/png"

// ParseDataURL decodes a "data:image/png;base64,...." string into its
// mime type and raw bytes. A bare base64 string without the data-URL
// prefix is accepted too, since canvas exports and API clients send
// both forms; fallbackMimeType is used in that case (image/png when
// empty).
func ParseDataURL(s, fallbackMimeType string) (string, []byte, error) {
	if fallbackMimeType == "" {
		fallbackMimeType = defaultMimeType
	}

	payload := s
	mimeType := fallbackMimeType

	if strings.HasPrefix(s, "data:") {
		header, rest, ok := strings.Cut(s, ",")
		if !ok {
			return "", nil, fmt.Errorf("malformed data URL: no comma separator")
		}
		payload = rest

		meta := strings.TrimPrefix(header, "data:")
		if mt, _, _ := strings.Cut(meta, ";"); mt != "" {
			mimeType = mt
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 image data: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty image data")
	}
	return mimeType, data, nil
}

// DataURL encodes raw image bytes as a data URL.
func DataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// Downscale resizes an image so neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged, keeping their original encoding; resized images are
// re-encoded as PNG. Undecodable input is also returned unchanged so
// the model API can produce its own error for formats we don't know.
func Downscale(mimeType string, data []byte, maxDim int) (string, []byte) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return mimeType, data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return mimeType, data
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return mimeType, data
	}
	return defaultMimeType, buf.Bytes()
}
