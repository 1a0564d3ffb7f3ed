package imaging

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Open reads and decodes the image file at path.
//
// Decoding goes through github.com/disintegration/imaging, which registers
// JPEG, PNG, GIF, TIFF and BMP decoders. EXIF orientation is not
// applied: the decoded grid has exactly the stored width and height.
//
// Returns:
//   - image.Image: The decoded image in its native type (*image.YCbCr for
//     most JPEGs, *image.Paletted for GIFs, *image.NRGBA or *image.RGBA for PNGs).
//   - string: Format name derived from the file extension ("jpeg", "png",
//     "gif", "tiff", "bmp") or "unknown".
//   - error: wraps ErrInputNotFound when the file cannot be opened or is a
//     directory, ErrDecode when the contents are not a supported image.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	if stat.IsDir() {
		return nil, "", fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return img, formatName(path), nil
}

// formatName maps a file extension to a lowercase format name.
func formatName(path string) string {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(format.String())
}

type cachedImage struct {
	img    image.Image
	format string
}

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// Once an image is loaded, subsequent Load calls for the same path return the
// cached copy without disk I/O. Cached images are shared between callers and
// must be treated as read-only; the recolor operations always work on copies.
//
// Entries stay in memory until Evict or Clear. A tool that writes to a path
// should Evict it so the next Load sees the new contents.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

// NewImageCache creates an empty cache ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
func (c *ImageCache) Load(path string) (image.Image, error) {
	img, _, err := c.LoadWithFormat(path)
	return img, err
}

// LoadWithFormat is Load that also returns the format name reported by Open.
// Errors are the classified errors from Open and are never cached.
func (c *ImageCache) LoadWithFormat(path string) (image.Image, string, error) {
	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry.img, entry.format, nil
	}
	c.mu.RUnlock()

	img, format, err := Open(path)
	if err != nil {
		return nil, "", err
	}

	c.mu.Lock()
	c.images[path] = cachedImage{img: img, format: format}
	c.mu.Unlock()

	return img, format, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes a single path from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "jpeg", "png", "gif", "tiff", "bmp" or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries transparency. Recoloring
	// never compares or changes this channel.
	HasAlpha bool `json:"has_alpha"`

	// Paletted is true for indexed images, which are recolored by palette entry.
	Paletted bool `json:"paletted"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and describes it.
//
// Color depth is "16-bit" for *image.RGBA64, *image.NRGBA64 and *image.Gray16,
// "8-bit" otherwise. Paletted images report HasAlpha when any palette entry is
// not fully opaque.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, format, err := cache.LoadWithFormat(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	paletted := false
	colorDepth := "8-bit"
	switch m := img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	case *image.Paletted:
		paletted = true
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				hasAlpha = true
				break
			}
		}
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		Paletted:      paletted,
		FileSizeBytes: stat.Size(),
	}, nil
}
