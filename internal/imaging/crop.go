package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// MaxScale bounds the enlargement factor accepted by EncodePNG.
const MaxScale = 64

// ImageResult contains an encoded image.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Enlarge scales img up by an integer factor with nearest-neighbor sampling,
// so every source pixel becomes a scale x scale block.
func Enlarge(img image.Image, scale int) (*image.NRGBA, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("scale %d out of range 1-%d", scale, MaxScale)
	}
	b := img.Bounds()
	if scale == 1 {
		return imaging.Clone(img), nil
	}
	return imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor), nil
}

// EncodePNG enlarges img by scale and returns it as base64 PNG.
func EncodePNG(img image.Image, scale int) (*ImageResult, error) {
	out, err := Enlarge(img, scale)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Scale:       scale,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Crop extracts a rectangle from img and returns it enlarged as base64 PNG.
//
// The rectangle is in the image's own coordinate space and must lie fully
// inside its bounds.
func Crop(img image.Image, r image.Rectangle, scale int) (*ImageResult, error) {
	bounds := img.Bounds()
	if r.Empty() {
		return nil, fmt.Errorf("invalid crop region %v: x1 must be < x2, y1 must be < y2", r)
	}
	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region %v outside image bounds %v", r, bounds)
	}

	return EncodePNG(imaging.Crop(img, r), scale)
}

// SavePNG enlarges img by scale and writes it to path as PNG, whatever the
// file extension.
func SavePNG(img image.Image, scale int, path string) error {
	out, err := Enlarge(img, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := imaging.Encode(f, out, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}
