package skin

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
)

// ValidateSize reports whether img has valid skin dimensions: 64 pixels
// wide and 32 or 64 pixels tall.
func ValidateSize(img image.Image) bool {
	size := img.Bounds().Size()
	return size.X == TextureWidth && (size.Y == LegacyHeight || size.Y == ModernHeight)
}

// Texture is a validated, read-only skin atlas with its origin at (0,0).
//
// Texture implements image.Image so it can be handed to any image
// function, but exposes no way to modify its pixels.
type Texture struct {
	pix *image.RGBA
}

// NewTexture validates img and copies it into an RGBA buffer.
//
// Returns an *InvalidSizeError (matching ErrInvalidTextureSize) when the
// size check fails; no pixels are read in that case.
func NewTexture(img image.Image) (*Texture, error) {
	if !ValidateSize(img) {
		size := img.Bounds().Size()
		return nil, &InvalidSizeError{Width: size.X, Height: size.Y}
	}
	pix := clone.AsRGBA(img)
	// Pix is laid out relative to Rect.Min, so rebasing the rectangle moves
	// the origin without touching pixel data.
	pix.Rect = pix.Rect.Sub(pix.Rect.Min)
	return &Texture{pix: pix}, nil
}

// HasOverlay reports whether the texture carries the full second layer,
// which is the case for 64x64 textures only.
func (t *Texture) HasOverlay() bool {
	return t.pix.Rect.Dy() == ModernHeight
}

// ColorModel implements image.Image.
func (t *Texture) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (t *Texture) Bounds() image.Rectangle { return t.pix.Rect }

// At implements image.Image.
func (t *Texture) At(x, y int) color.Color { return t.pix.At(x, y) }

// Regions returns the regions Render draws for the variant.
func (t *Texture) Regions(v ModelVariant) []Region {
	return RegionsFor(v, t.HasOverlay())
}

// Render composites the preview for the variant into a new 16x32 canvas.
func (t *Texture) Render(v ModelVariant) (*image.RGBA, error) {
	return composite(t.pix, t.Regions(v))
}

// RenderPreview renders the flat front-view preview of a skin.
//
// The result is always a 16x32 RGBA image. Canvas pixels not covered by any
// region stay fully transparent.
//
// Errors:
//   - *InvalidSizeError (ErrInvalidTextureSize) if img is not 64x32 or 64x64
//   - *RegionError (ErrRegionOutOfBounds) if a region table entry does not
//     fit; this cannot happen with the built-in tables
func RenderPreview(img image.Image, v ModelVariant) (*image.RGBA, error) {
	tex, err := NewTexture(img)
	if err != nil {
		return nil, err
	}
	return tex.Render(v)
}

// composite blits regions from src onto a fresh transparent canvas in order.
// Every region is bounds-checked before any drawing starts, so a bad table
// never yields a partially drawn canvas.
func composite(src *image.RGBA, regions []Region) (*image.RGBA, error) {
	canvasBounds := image.Rect(0, 0, PreviewWidth, PreviewHeight)
	for _, r := range regions {
		if !r.Src.In(src.Rect) {
			return nil, &RegionError{Region: r, Bounds: src.Rect}
		}
		if !r.DstRect().In(canvasBounds) {
			return nil, &RegionError{Region: r, Bounds: canvasBounds}
		}
	}

	canvas := image.NewRGBA(canvasBounds)
	for _, r := range regions {
		draw.Draw(canvas, r.DstRect(), src, r.Src.Min, draw.Over)
	}
	return canvas, nil
}
