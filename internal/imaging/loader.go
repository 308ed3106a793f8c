package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/picture-tools-mcp/internal/raster"
)

// ImageCache provides thread-safe caching of decoded pictures to avoid
// redundant disk reads.
//
// The cache stores one raster per file path. Load always hands out a private
// copy, so callers may transform the returned raster freely without changing
// what later Load calls see.
//
// # Memory Management
//
// Cached rasters remain in memory until explicitly removed via Evict() or
// Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	pic, err := cache.Load("/path/to/beach.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	imaging.ZeroBlue(pic)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*raster.Raster
}

// NewImageCache creates and initializes a new empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*raster.Raster),
	}
}

// Load returns a copy of the picture at path, decoding it on first use.
//
// Parameters:
//   - path: File path to the picture. Supported formats are PNG, JPEG, GIF,
//     BMP, TIFF and WebP. EXIF orientation is applied when present.
//
// Returns:
//   - *raster.Raster: A copy the caller owns.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The picture is cached under the exact path string provided.
func (c *ImageCache) Load(path string) (*raster.Raster, error) {
	c.mu.RLock()
	r, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return r.Clone(), nil
	}

	r, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = r
	c.mu.Unlock()

	return r.Clone(), nil
}

// Clear removes all pictures from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*raster.Raster)
	c.mu.Unlock()
}

// Evict removes the picture cached under path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached pictures.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Open decodes the picture at path into a new raster without caching it.
func Open(path string) (*raster.Raster, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return raster.FromImage(img), nil
}

// Save encodes r to path. The format follows the file extension: .png, .jpg,
// .jpeg, .gif, .tif, .tiff or .bmp. Missing parent directories are created.
func Save(r *raster.Raster, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(r, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes r as PNG and returns it base64 encoded.
func EncodePNGBase64(r *raster.Raster) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, r, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PictureInfo contains metadata about a picture file.
type PictureInfo struct {
	// Width is the picture width in pixels.
	Width int `json:"width"`

	// Height is the picture height in pixels.
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif", "bmp",
	// "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadPictureInfo loads a picture through cache and describes it.
//
// Returns:
//   - *PictureInfo: Dimensions, format and file size.
//   - error: Non-nil if the picture cannot be loaded or the file cannot be stat'd.
func LoadPictureInfo(cache *ImageCache, path string) (*PictureInfo, error) {
	r, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &PictureInfo{
		Width:         r.Width(),
		Height:        r.Height(),
		Format:        formatFromExt(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
