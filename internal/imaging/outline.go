package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// OutlineResult is an enlarged image with rectangle outlines drawn on it.
type OutlineResult struct {
	ImageResult
	Outlines int `json:"outlines"`
}

// DefaultOutlineColor is semi-transparent magenta, rarely used in skins.
const DefaultOutlineColor = "#FF00FFC0"

// OutlineRegions enlarges img by scale and draws a one pixel border around
// each rectangle, so atlas coordinates can be checked against a real skin.
//
// Rectangles are given in img coordinates. Rectangles that fall partly
// outside the image are clipped; fully outside ones are drawn nowhere but
// still counted.
func OutlineRegions(img image.Image, rects []image.Rectangle, scale int, colorHex string) (*OutlineResult, error) {
	lineColor, err := parseHexColor(colorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid outline color %q: %w", colorHex, err)
	}

	enlarged, err := Enlarge(img, scale)
	if err != nil {
		return nil, err
	}
	origin := img.Bounds().Min
	src := image.NewUniform(lineColor)

	for _, r := range rects {
		r = r.Sub(origin)
		r = image.Rect(r.Min.X*scale, r.Min.Y*scale, r.Max.X*scale, r.Max.Y*scale)
		edges := []image.Rectangle{
			image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
			image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
			image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
			image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
		}
		for _, e := range edges {
			draw.Draw(enlarged, e.Intersect(enlarged.Bounds()), src, image.Point{}, draw.Over)
		}
	}

	encoded, err := EncodePNG(enlarged, 1)
	if err != nil {
		return nil, err
	}
	encoded.Scale = scale
	return &OutlineResult{ImageResult: *encoded, Outlines: len(rects)}, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
