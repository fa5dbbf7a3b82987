package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor represents a non-premultiplied RGBA color with 8-bit components.
//
// Alpha 0 is fully transparent, 255 fully opaque.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex         string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGB         RGBColor  `json:"rgb"`
	RGBA        RGBAColor `json:"rgba"`
	HSL         HSLColor  `json:"hsl"`
	Transparent bool      `json:"transparent"`
}

// SampleColor extracts the color at a pixel coordinate.
//
// Color channels are reported non-premultiplied, so a half transparent red
// pixel reads as R=255 A=128 rather than R=128 A=128. Fully transparent
// pixels report all channels as zero and Transparent=true.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, img.Bounds())
	}
	return newColorResult(img.At(x, y)), nil
}

func newColorResult(c color.Color) *ColorResult {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return &ColorResult{
		Hex:         fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B),
		RGB:         RGBColor{R: n.R, G: n.G, B: n.B},
		RGBA:        RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSL:         rgbToHSL(n.R, n.G, n.B),
		Transparent: n.A == 0,
	}
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several points. If any point is out of bounds
// the whole call fails and no partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ColorFrequency is one palette entry.
type ColorFrequency struct {
	Color      ColorResult `json:"color"`
	Pixels     int         `json:"pixels"`
	Percentage float64     `json:"percentage"` // share of the non-transparent pixels (0-100)
}

// PaletteResult lists the colors of an image, most frequent first.
type PaletteResult struct {
	Colors            []ColorFrequency `json:"colors"`
	DistinctColors    int              `json:"distinct_colors"`
	OpaquePixels      int              `json:"opaque_pixels"`
	TransparentPixels int              `json:"transparent_pixels"`
}

// Palette counts the exact colors used in region (or the whole image when
// region is nil) and returns the count most frequent ones.
//
// Skins are hand-drawn pixel art, so colors are not quantized. Fully
// transparent pixels are counted separately and excluded from the palette.
// Ties are broken by hex value so the output is stable.
func Palette(img image.Image, count int, region *image.Rectangle) (*PaletteResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	bounds := img.Bounds()
	if region != nil {
		if !region.In(bounds) || region.Empty() {
			return nil, fmt.Errorf("region %v outside image bounds %v", *region, bounds)
		}
		bounds = *region
	}

	counts := make(map[color.NRGBA]int)
	transparent := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				transparent++
				continue
			}
			counts[n]++
		}
	}

	opaque := 0
	for _, n := range counts {
		opaque += n
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Color:      *newColorResult(c),
			Pixels:     n,
			Percentage: float64(n) / float64(opaque) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Pixels != colors[j].Pixels {
			return colors[i].Pixels > colors[j].Pixels
		}
		ci, cj := colors[i].Color, colors[j].Color
		if ci.Hex != cj.Hex {
			return ci.Hex < cj.Hex
		}
		return ci.RGBA.A < cj.RGBA.A
	})

	distinct := len(colors)
	if len(colors) > count {
		colors = colors[:count]
	}

	return &PaletteResult{
		Colors:            colors,
		DistinctColors:    distinct,
		OpaquePixels:      opaque,
		TransparentPixels: transparent,
	}, nil
}

// rgbToHSL converts 8-bit RGB values to HSL with hue in whole degrees and
// saturation and lightness in whole percent.
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	hue := int(math.Round(h)) % 360
	return HSLColor{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
