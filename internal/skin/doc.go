// Package skin renders flat front-view previews of character skin textures.
//
// A skin is a 64x64 (or legacy 64x32) texture atlas in which every body part
// occupies fixed coordinates. The preview is a 16x32 canvas assembled by
// copying those parts, in a fixed order, onto their place in a front-facing
// silhouette.
//
// # Layouts
//
// Two texture layouts are accepted:
//   - 64x32 legacy: base layer plus the hat overlay only
//   - 64x64 modern: base layer plus the full second (overlay) layer for the
//     body, arms and legs
//
// Any other size is rejected with ErrInvalidTextureSize before any pixel is
// read.
//
// # Model Variants
//
// Classic models have 4 pixel wide arms, Slim models 3 pixel wide arms. The
// variant changes only the arm source width and the right arm's destination
// x offset, so the narrower arm still touches the torso.
//
// # Compositing
//
// Regions are drawn in declaration order with alpha-over compositing. A fully
// transparent pixel in a later region leaves the earlier pixel visible, which
// is what makes the overlay layer optional per pixel.
//
// # Thread Safety
//
// All functions are pure. The region tables are never mutated after package
// initialization, and every render allocates its own canvas, so renders may
// run concurrently on any inputs.
package skin
