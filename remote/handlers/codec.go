package handlers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/bmp"
)

// encodeImage encodes a captured image into the requested format.
// Supported formats: png, bmp.
func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %v", err)
		}
	case "bmp":
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode bmp: %v", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format %q (expected png or bmp)", format)
	}

	return buf.Bytes(), nil
}
