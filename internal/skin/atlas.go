package skin

import "image"

// Texture and preview geometry.
const (
	TextureWidth  = 64
	LegacyHeight  = 32
	ModernHeight  = 64
	PreviewWidth  = 16
	PreviewHeight = 32
)

// Layer identifies which texture layer a region is read from.
type Layer string

const (
	// LayerBase is the first layer, present in every valid texture.
	LayerBase Layer = "base"
	// LayerOverlay is the second, worn-over layer. Except for the hat it
	// exists only in 64x64 textures.
	LayerOverlay Layer = "overlay"
)

// Region is one blit: a source rectangle in the texture and the top-left
// point it is copied to in the preview canvas.
type Region struct {
	Part  string          `json:"part"`
	Layer Layer           `json:"layer"`
	Src   image.Rectangle `json:"src"`
	Dst   image.Point     `json:"dst"`
}

// DstRect returns the canvas rectangle covered by the region.
func (r Region) DstRect() image.Rectangle {
	return image.Rectangle{Min: r.Dst, Max: r.Dst.Add(r.Src.Size())}
}

// regionSpec is a table row. Arm rows take their width, and for the right
// arm also their destination x, from the model variant.
type regionSpec struct {
	part     string
	layer    Layer
	x, y     int
	w, h     int
	dx, dy   int
	arm      bool
	rightArm bool
}

// baseRegions applies to every valid texture. The hat is an overlay-layer
// part, but its cell exists in 64x32 textures too, so it lives in this set
// rather than in overlayRegions. It is drawn last so it sits over the head.
var baseRegions = [...]regionSpec{
	{part: "head", layer: LayerBase, x: 8, y: 8, w: 8, h: 8, dx: 4, dy: 0},
	{part: "body", layer: LayerBase, x: 20, y: 20, w: 8, h: 12, dx: 4, dy: 8},
	{part: "right_arm", layer: LayerBase, x: 44, y: 20, h: 12, dy: 8, arm: true, rightArm: true},
	{part: "left_arm", layer: LayerBase, x: 44, y: 20, h: 12, dx: 12, dy: 8, arm: true},
	{part: "left_leg", layer: LayerBase, x: 4, y: 20, w: 4, h: 12, dx: 4, dy: 20},
	{part: "right_leg", layer: LayerBase, x: 4, y: 20, w: 4, h: 12, dx: 8, dy: 20},
	{part: "hat", layer: LayerOverlay, x: 40, y: 8, w: 8, h: 8, dx: 4, dy: 0},
}

// overlayRegions exists only in 64x64 textures. The two left arm rows read
// different atlas cells onto the same destination; both are kept as-is.
var overlayRegions = [...]regionSpec{
	{part: "left_arm_overlay", layer: LayerOverlay, x: 36, y: 52, h: 12, dx: 12, dy: 8, arm: true},
	{part: "left_leg_overlay", layer: LayerOverlay, x: 20, y: 52, w: 4, h: 12, dx: 8, dy: 20},
	{part: "body_overlay", layer: LayerOverlay, x: 20, y: 36, w: 8, h: 12, dx: 4, dy: 8},
	{part: "left_arm_wear", layer: LayerOverlay, x: 52, y: 52, h: 12, dx: 12, dy: 8, arm: true},
	{part: "right_arm_overlay", layer: LayerOverlay, x: 44, y: 36, h: 12, dy: 8, arm: true, rightArm: true},
	{part: "left_leg_wear", layer: LayerOverlay, x: 4, y: 52, w: 4, h: 12, dx: 8, dy: 20},
	{part: "right_leg_overlay", layer: LayerOverlay, x: 4, y: 36, w: 4, h: 12, dx: 4, dy: 20},
}

// MaxRegions is the length of the largest RegionSet.
const MaxRegions = len(baseRegions) + len(overlayRegions)

func (s regionSpec) resolve(v ModelVariant) Region {
	w, dx := s.w, s.dx
	if s.arm {
		w = v.armWidth()
	}
	if s.rightArm {
		dx = v.armOffset()
	}
	return Region{
		Part:  s.part,
		Layer: s.layer,
		Src:   image.Rect(s.x, s.y, s.x+w, s.y+s.h),
		Dst:   image.Pt(dx, s.dy),
	}
}

// RegionsFor returns the ordered regions drawn for a variant. The overlay
// rows are appended only when hasOverlay is true (64x64 textures).
//
// The returned slice is freshly allocated and may be modified by the caller.
func RegionsFor(v ModelVariant, hasOverlay bool) []Region {
	regions := make([]Region, 0, MaxRegions)
	for _, s := range baseRegions {
		regions = append(regions, s.resolve(v))
	}
	if hasOverlay {
		for _, s := range overlayRegions {
			regions = append(regions, s.resolve(v))
		}
	}
	return regions
}

// FindRegion looks up a region by part name in the set for the variant and
// the modern 64x64 layout.
func FindRegion(v ModelVariant, part string) (Region, bool) {
	for _, r := range RegionsFor(v, true) {
		if r.Part == part {
			return r, true
		}
	}
	return Region{}, false
}

// PartNames lists every part name in drawing order.
func PartNames() []string {
	names := make([]string, 0, MaxRegions)
	for _, s := range baseRegions {
		names = append(names, s.part)
	}
	for _, s := range overlayRegions {
		names = append(names, s.part)
	}
	return names
}
