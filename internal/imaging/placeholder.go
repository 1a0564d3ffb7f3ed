package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultPlaceholderSize is the edge length of a placeholder in pixels.
const DefaultPlaceholderSize = 10

const placeholderJPEGQuality = 80

// PlaceholderResult is a tiny preview of an image as a base64 data URL,
// meant to be stretched and blurred by the page while the real image loads.
type PlaceholderResult struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mime_type"`
	DataURL  string `json:"data_url"`
}

// Placeholder downscales img to size x size and encodes it as a data URL.
//
// JPEG sources stay JPEG; every other format is encoded as PNG so that
// transparency survives. A size of zero or less selects DefaultPlaceholderSize.
func Placeholder(img image.Image, format string, size int) (*PlaceholderResult, error) {
	if size <= 0 {
		size = DefaultPlaceholderSize
	}

	small := transform.Resize(img, size, size, transform.Linear)

	encoder := imgio.PNGEncoder()
	mimeType := "image/png"
	if format == "jpeg" {
		encoder = imgio.JPEGEncoder(placeholderJPEGQuality)
		mimeType = "image/jpeg"
	}

	var buf bytes.Buffer
	if err := encoder(&buf, small); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}

	return &PlaceholderResult{
		Width:    small.Bounds().Dx(),
		Height:   small.Bounds().Dy(),
		MimeType: mimeType,
		DataURL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
