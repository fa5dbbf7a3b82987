package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// decodeResult turns an ImageResult back into an image.
func decodeResult(t *testing.T, r *ImageResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestEnlarge(t *testing.T) {
	img := createPatternImage(16, 32)

	out, err := Enlarge(img, 8)
	if err != nil {
		t.Fatalf("Enlarge failed: %v", err)
	}
	if out.Bounds() != image.Rect(0, 0, 128, 256) {
		t.Fatalf("bounds: got %v, want 128x256", out.Bounds())
	}

	// Each source pixel becomes an exact 8x8 block.
	for _, p := range []image.Point{{0, 0}, {7, 15}, {8, 0}, {15, 31}} {
		want := color.NRGBAModel.Convert(img.At(p.X, p.Y))
		for _, d := range []image.Point{{0, 0}, {7, 7}, {3, 5}} {
			got := out.At(p.X*8+d.X, p.Y*8+d.Y)
			if got != want {
				t.Errorf("block (%d,%d)+%v: got %v, want %v", p.X, p.Y, d, got, want)
			}
		}
	}
}

func TestEnlarge_ScaleRange(t *testing.T) {
	img := createInMemoryImage(16, 32, color.RGBA{255, 0, 0, 255})

	for _, scale := range []int{0, -1, MaxScale + 1} {
		if _, err := Enlarge(img, scale); err == nil {
			t.Errorf("Enlarge should fail for scale %d", scale)
		}
	}

	out, err := Enlarge(img, 1)
	if err != nil {
		t.Fatalf("Enlarge(1) failed: %v", err)
	}
	if out.Bounds().Dx() != 16 || out.Bounds().Dy() != 32 {
		t.Errorf("scale 1 should keep size, got %v", out.Bounds())
	}
}

func TestEncodePNG(t *testing.T) {
	img := createInMemoryImage(16, 32, color.RGBA{0, 0, 255, 255})

	result, err := EncodePNG(img, 4)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if result.Width != 64 || result.Height != 128 || result.Scale != 4 {
		t.Errorf("result: got %dx%d scale %d, want 64x128 scale 4", result.Width, result.Height, result.Scale)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded := decodeResult(t, result)
	r, g, b, a := decoded.At(63, 127).RGBA()
	if r != 0 || g != 0 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("decoded pixel: got (%d,%d,%d,%d), want opaque blue", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestEncodePNG_KeepsTransparency(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 32))
	img.Set(4, 0, color.RGBA{255, 0, 0, 255})

	decoded := decodeResult(t, mustEncode(t, img, 2))
	if _, _, _, a := decoded.At(0, 0).RGBA(); a != 0 {
		t.Errorf("pixel (0,0) alpha: got %d, want 0", a)
	}
	if _, _, _, a := decoded.At(9, 1).RGBA(); a>>8 != 255 {
		t.Errorf("pixel (9,1) alpha: got %d, want 255", a>>8)
	}
}

func mustEncode(t *testing.T, img image.Image, scale int) *ImageResult {
	t.Helper()
	r, err := EncodePNG(img, scale)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	return r
}

func TestCrop(t *testing.T) {
	img := createPatternImage(64, 64)

	result, err := Crop(img, image.Rect(8, 8, 16, 16), 1)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if result.Width != 8 || result.Height != 8 {
		t.Errorf("dimensions: got %dx%d, want 8x8", result.Width, result.Height)
	}

	// (8,8)-(16,16) lies in the red top-left quadrant.
	r, g, b, _ := decodeResult(t, result).At(4, 4).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("cropped color: got (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestCrop_WithScale(t *testing.T) {
	img := createPatternImage(64, 64)

	result, err := Crop(img, image.Rect(44, 20, 47, 32), 8)
	if err != nil {
		t.Fatalf("Crop with scale failed: %v", err)
	}
	if result.Width != 24 || result.Height != 96 {
		t.Errorf("scaled dimensions: got %dx%d, want 24x96", result.Width, result.Height)
	}
}

func TestCrop_OffsetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(100, 100, 164, 164))
	img.Set(108, 108, color.RGBA{0, 255, 0, 255})

	result, err := Crop(img, image.Rect(108, 108, 116, 116), 1)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if _, g, _, _ := decodeResult(t, result).At(0, 0).RGBA(); g>>8 != 255 {
		t.Error("crop should use the image's own coordinates")
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(64, 32, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		r    image.Rectangle
	}{
		{"x negative", image.Rect(-1, 0, 8, 8)},
		{"y negative", image.Rect(0, -1, 8, 8)},
		{"past right", image.Rect(60, 0, 68, 8)},
		{"overlay row on legacy skin", image.Rect(20, 36, 28, 48)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.r, 1); err == nil {
				t.Error("Crop should fail for out-of-bounds region")
			}
		})
	}
}

func TestCrop_EmptyRegion(t *testing.T) {
	img := createInMemoryImage(64, 64, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"zero width", 8, 8, 8, 16},
		{"zero height", 8, 8, 16, 8},
		{"zero area", 8, 8, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := image.Rectangle{Min: image.Pt(tt.x1, tt.y1), Max: image.Pt(tt.x2, tt.y2)}
			if _, err := Crop(img, r, 1); err == nil {
				t.Error("Crop should fail for empty region")
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	img := createInMemoryImage(16, 32, color.RGBA{255, 0, 0, 255})
	path := filepath.Join(t.TempDir(), "preview.out")

	if err := SavePNG(img, 2, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	out, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if out.Bounds().Dx() != 32 || out.Bounds().Dy() != 64 {
		t.Errorf("got %v, want 32x64", out.Bounds())
	}
}

func TestSavePNG_Errors(t *testing.T) {
	img := createInMemoryImage(16, 32, color.RGBA{255, 0, 0, 255})

	if err := SavePNG(img, 0, filepath.Join(t.TempDir(), "a.png")); err == nil {
		t.Error("expected error for scale 0")
	}
	if err := SavePNG(img, 1, filepath.Join(t.TempDir(), "missing", "a.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}
