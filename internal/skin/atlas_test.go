package skin

import (
	"image"
	"testing"
)

func TestRegionsFor_BaseTable(t *testing.T) {
	tests := []struct {
		variant ModelVariant
		want    []Region
	}{
		{
			Classic,
			[]Region{
				{"head", LayerBase, image.Rect(8, 8, 16, 16), image.Pt(4, 0)},
				{"body", LayerBase, image.Rect(20, 20, 28, 32), image.Pt(4, 8)},
				{"right_arm", LayerBase, image.Rect(44, 20, 48, 32), image.Pt(0, 8)},
				{"left_arm", LayerBase, image.Rect(44, 20, 48, 32), image.Pt(12, 8)},
				{"left_leg", LayerBase, image.Rect(4, 20, 8, 32), image.Pt(4, 20)},
				{"right_leg", LayerBase, image.Rect(4, 20, 8, 32), image.Pt(8, 20)},
				{"hat", LayerOverlay, image.Rect(40, 8, 48, 16), image.Pt(4, 0)},
			},
		},
		{
			Slim,
			[]Region{
				{"head", LayerBase, image.Rect(8, 8, 16, 16), image.Pt(4, 0)},
				{"body", LayerBase, image.Rect(20, 20, 28, 32), image.Pt(4, 8)},
				{"right_arm", LayerBase, image.Rect(44, 20, 47, 32), image.Pt(1, 8)},
				{"left_arm", LayerBase, image.Rect(44, 20, 47, 32), image.Pt(12, 8)},
				{"left_leg", LayerBase, image.Rect(4, 20, 8, 32), image.Pt(4, 20)},
				{"right_leg", LayerBase, image.Rect(4, 20, 8, 32), image.Pt(8, 20)},
				{"hat", LayerOverlay, image.Rect(40, 8, 48, 16), image.Pt(4, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			got := RegionsFor(tt.variant, false)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d regions, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("region %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRegionsFor_OverlayTable(t *testing.T) {
	tests := []struct {
		variant ModelVariant
		want    []Region
	}{
		{
			Classic,
			[]Region{
				{"left_arm_overlay", LayerOverlay, image.Rect(36, 52, 40, 64), image.Pt(12, 8)},
				{"left_leg_overlay", LayerOverlay, image.Rect(20, 52, 24, 64), image.Pt(8, 20)},
				{"body_overlay", LayerOverlay, image.Rect(20, 36, 28, 48), image.Pt(4, 8)},
				{"left_arm_wear", LayerOverlay, image.Rect(52, 52, 56, 64), image.Pt(12, 8)},
				{"right_arm_overlay", LayerOverlay, image.Rect(44, 36, 48, 48), image.Pt(0, 8)},
				{"left_leg_wear", LayerOverlay, image.Rect(4, 52, 8, 64), image.Pt(8, 20)},
				{"right_leg_overlay", LayerOverlay, image.Rect(4, 36, 8, 48), image.Pt(4, 20)},
			},
		},
		{
			Slim,
			[]Region{
				{"left_arm_overlay", LayerOverlay, image.Rect(36, 52, 39, 64), image.Pt(12, 8)},
				{"left_leg_overlay", LayerOverlay, image.Rect(20, 52, 24, 64), image.Pt(8, 20)},
				{"body_overlay", LayerOverlay, image.Rect(20, 36, 28, 48), image.Pt(4, 8)},
				{"left_arm_wear", LayerOverlay, image.Rect(52, 52, 55, 64), image.Pt(12, 8)},
				{"right_arm_overlay", LayerOverlay, image.Rect(44, 36, 47, 48), image.Pt(1, 8)},
				{"left_leg_wear", LayerOverlay, image.Rect(4, 52, 8, 64), image.Pt(8, 20)},
				{"right_leg_overlay", LayerOverlay, image.Rect(4, 36, 8, 48), image.Pt(4, 20)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			all := RegionsFor(tt.variant, true)
			base := RegionsFor(tt.variant, false)
			if len(all) != MaxRegions {
				t.Fatalf("got %d regions, want %d", len(all), MaxRegions)
			}
			for i := range base {
				if all[i] != base[i] {
					t.Errorf("region %d: overlay set should start with the base set", i)
				}
			}
			got := all[len(base):]
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("overlay region %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRegionsFor_AllInBounds(t *testing.T) {
	canvas := image.Rect(0, 0, PreviewWidth, PreviewHeight)
	for _, v := range []ModelVariant{Classic, Slim} {
		for _, height := range []int{LegacyHeight, ModernHeight} {
			tex := image.Rect(0, 0, TextureWidth, height)
			for _, r := range RegionsFor(v, height == ModernHeight) {
				if !r.Src.In(tex) {
					t.Errorf("%v 64x%d: %s source %v outside texture", v, height, r.Part, r.Src)
				}
				if !r.DstRect().In(canvas) {
					t.Errorf("%v 64x%d: %s destination %v outside canvas", v, height, r.Part, r.DstRect())
				}
			}
		}
	}
}

func TestRegionsFor_ReturnsCopy(t *testing.T) {
	a := RegionsFor(Classic, true)
	a[0].Src = image.Rect(0, 0, 1, 1)
	b := RegionsFor(Classic, true)
	if b[0].Src != image.Rect(8, 8, 16, 16) {
		t.Error("modifying a returned slice must not change later results")
	}
}

func TestRegion_DstRect(t *testing.T) {
	r := Region{Src: image.Rect(44, 20, 47, 32), Dst: image.Pt(1, 8)}
	if got, want := r.DstRect(), image.Rect(1, 8, 4, 20); got != want {
		t.Errorf("DstRect: got %v, want %v", got, want)
	}
}

func TestFindRegion(t *testing.T) {
	r, ok := FindRegion(Slim, "right_arm_overlay")
	if !ok {
		t.Fatal("FindRegion should find right_arm_overlay")
	}
	if r.Src != image.Rect(44, 36, 47, 48) || r.Dst != image.Pt(1, 8) {
		t.Errorf("right_arm_overlay: got %+v", r)
	}

	if _, ok := FindRegion(Classic, "tail"); ok {
		t.Error("FindRegion should not find an unknown part")
	}
}

func TestPartNames(t *testing.T) {
	names := PartNames()
	if len(names) != MaxRegions {
		t.Fatalf("got %d names, want %d", len(names), MaxRegions)
	}
	if names[0] != "head" || names[6] != "hat" || names[len(names)-1] != "right_leg_overlay" {
		t.Errorf("unexpected order: %v", names)
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate part name %q", n)
		}
		seen[n] = true
	}
}

func TestRegionsFor_LegacyHat(t *testing.T) {
	for _, v := range []ModelVariant{Classic, Slim} {
		regions := RegionsFor(v, false)
		last := regions[len(regions)-1]
		if last.Part != "hat" || last.Layer != LayerOverlay {
			t.Fatalf("%v: last legacy region is %s/%s, want hat/overlay", v, last.Part, last.Layer)
		}
		if !last.Src.In(image.Rect(0, 0, TextureWidth, LegacyHeight)) {
			t.Errorf("%v: hat cell %v is outside a 64x32 texture", v, last.Src)
		}
		for _, r := range regions[:len(regions)-1] {
			if r.Layer != LayerBase {
				t.Errorf("%v: %s drawn before the hat has layer %s", v, r.Part, r.Layer)
			}
		}
	}
}
