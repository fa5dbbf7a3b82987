package imaging

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/skin-preview-mcp/internal/skin"
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// Skin textures are at most 64x64, so the cache stays small unless a very large
// number of distinct files are loaded.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Any format registered with the imaging package can be read (PNG, JPEG, GIF,
// BMP, TIFF). The image is cached using the exact path string provided.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// Call it after a skin file was rewritten on disk so the next Load sees the
// new contents. Evicting an unknown path does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// LoadTexture loads a skin file and validates it as a texture.
//
// The returned error matches skin.ErrInvalidTextureSize when the file decodes
// but is not 64x32 or 64x64.
func (c *ImageCache) LoadTexture(path string) (*skin.Texture, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	tex, err := skin.NewTexture(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tex, nil
}

// Skin layout names reported in SkinInfo.Layout.
const (
	LayoutLegacy = "legacy"
	LayoutModern = "modern"
)

// SkinInfo contains metadata about a skin file.
type SkinInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension ("png", "jpeg",
	// "gif", "bmp", "tiff") or "unknown".
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// ValidSkin is true when the image is 64x32 or 64x64.
	ValidSkin bool `json:"valid_skin"`

	// HasOverlay is true for 64x64 skins, which carry the second layer for
	// body, arms and legs.
	HasOverlay bool `json:"has_overlay"`

	// Layout is "legacy" (64x32), "modern" (64x64), or empty for invalid skins.
	Layout string `json:"layout,omitempty"`
}

// LoadSkinInfo loads an image and describes it as a skin.
//
// An image with the wrong size is not an error here: it is reported with
// ValidSkin=false so callers can tell the user why it was rejected.
func LoadSkinInfo(cache *ImageCache, path string) (*SkinInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted:
		hasAlpha = true
	}

	bounds := img.Bounds()
	info := &SkinInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
		ValidSkin:     skin.ValidateSize(img),
	}
	if info.ValidSkin {
		info.HasOverlay = info.Height == skin.ModernHeight
		info.Layout = LayoutLegacy
		if info.HasOverlay {
			info.Layout = LayoutModern
		}
	}
	return info, nil
}
