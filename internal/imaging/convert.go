package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToNRGBA returns a copy of img as *image.NRGBA with the same bounds.
// The copy is always fresh, even when img is already NRGBA, so callers may
// modify it freely.
func ToNRGBA(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	// Clone places the origin at (0,0); the pixel layout does not depend on it.
	dst.Rect = img.Bounds()
	return dst
}
