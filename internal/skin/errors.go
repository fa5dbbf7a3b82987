package skin

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidTextureSize reports a texture that is not 64x32 or 64x64.
	ErrInvalidTextureSize = errors.New("invalid skin texture size")

	// ErrRegionOutOfBounds reports a region table entry that reads outside
	// the texture or writes outside the preview canvas. It indicates a
	// broken table, never bad user input.
	ErrRegionOutOfBounds = errors.New("skin region out of bounds")
)

// InvalidSizeError carries the observed dimensions of a rejected texture.
type InvalidSizeError struct {
	Width  int
	Height int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid image size: %d*%d (want %dx%d or %dx%d)",
		e.Width, e.Height, TextureWidth, LegacyHeight, TextureWidth, ModernHeight)
}

// Is makes errors.Is(err, ErrInvalidTextureSize) hold.
func (e *InvalidSizeError) Is(target error) bool {
	return target == ErrInvalidTextureSize
}

// RegionError describes the region that failed the bounds check.
type RegionError struct {
	Region Region
	// Bounds is the rectangle the region had to fit in: the texture
	// bounds for the source side, the canvas bounds for the destination.
	Bounds image.Rectangle
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("region %q: src %v dst %v does not fit %v",
		e.Region.Part, e.Region.Src, e.Region.DstRect(), e.Bounds)
}

// Is makes errors.Is(err, ErrRegionOutOfBounds) hold.
func (e *RegionError) Is(target error) bool {
	return target == ErrRegionOutOfBounds
}
