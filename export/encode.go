package export

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/promoforge/compositor/asset"
)

const jpegQuality = 90

// Encode serializes a rendered surface in the requested encoding.
func Encode(img image.Image, enc asset.Encoding) ([]byte, error) {
	var buf bytes.Buffer
	switch enc {
	case asset.PNG:
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, fmt.Errorf("export: encode png: %w", err)
		}
	case asset.JPEG:
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return nil, fmt.Errorf("export: encode jpeg: %w", err)
		}
	default:
		return nil, fmt.Errorf("export: unknown encoding %q", enc)
	}
	return buf.Bytes(), nil
}

// Thumbnail downscales a surface to fit within maxW x maxH, preserving
// aspect ratio, and encodes it the same way as the full asset.
func Thumbnail(img image.Image, maxW, maxH int, enc asset.Encoding) ([]byte, error) {
	return Encode(imaging.Fit(img, maxW, maxH, imaging.Lanczos), enc)
}
