// Package imaging provides the image I/O and inspection helpers used around
// the skin compositor.
//
// It loads and caches skin files from disk, reports their geometry, encodes
// previews and atlas crops as base64 PNG, samples pixel colors, and draws
// region outlines over an enlarged texture for visual checks of the atlas
// table.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward, Y increases downward
//   - Rectangles are half-open: Min is inclusive, Max is exclusive
//
// # Scaling
//
// Skins are pixel art, so every enlargement uses integer factors and
// nearest-neighbor sampling. A scale of 8 turns the 16x32 preview into a
// 128x256 image with each source pixel an 8x8 block.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless
// and never modify their input images.
package imaging
