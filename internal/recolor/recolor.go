package recolor

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/ironsheep/image-recolor/internal/imaging"
)

// DefaultThreshold is the per-channel distance used when none is given.
const DefaultThreshold = 100

// Options describes one recolor run.
type Options struct {
	// Input is the image file to read.
	Input string

	// Output is the file to write. Its extension selects the encoder.
	Output string

	// Target is the "#RRGGBB" color to look for.
	Target string

	// Replacement is the "#RRGGBB" color written over matching pixels.
	Replacement string

	// Threshold is used as given; DefaultOptions sets DefaultThreshold.
	Threshold int

	// JPEGQuality applies to .jpg/.jpeg outputs. Zero selects the default.
	JPEGQuality int
}

// DefaultOptions returns Options with the default threshold and JPEG quality.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		JPEGQuality: imaging.DefaultJPEGQuality,
	}
}

// Result describes a completed run.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	Target      string `json:"target"`
	Replacement string `json:"replacement"`
	Threshold   int    `json:"threshold"`

	// Replaced is the number of pixels whose color was changed.
	Replaced int `json:"replaced"`

	// Total is Width*Height.
	Total int `json:"total"`

	// Stable is true when running again on the output would change nothing.
	Stable bool `json:"stable"`

	// Distance is the Lab distance between target and replacement.
	Distance float64 `json:"distance"`
}

// LoadFunc decodes the image at path; imaging.Open and
// (*imaging.ImageCache).LoadWithFormat both satisfy it.
type LoadFunc func(path string) (image.Image, string, error)

// File recolors opts.Input into opts.Output.
//
// Checks run cheapest first so nothing is read or written for a bad request:
// colors and threshold (ErrColorParse, ErrInvalidThreshold), then the output
// extension (ErrUnsupportedFormat), then the input (ErrInputNotFound,
// ErrDecode). The output is written only after every pixel has been
// processed, and atomically (ErrOutputWrite).
func File(opts Options) (*Result, error) {
	return FileWith(imaging.Open, opts)
}

// FileWith is File with a custom loader, typically a shared image cache.
// The loaded image is never modified.
func FileWith(load LoadFunc, opts Options) (*Result, error) {
	target, replacement, err := parseColors(opts.Target, opts.Replacement)
	if err != nil {
		return nil, err
	}
	if opts.Threshold < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidThreshold, opts.Threshold)
	}

	format, err := imaging.OutputFormat(opts.Output)
	if err != nil {
		return nil, err
	}

	src, _, err := load(opts.Input)
	if err != nil {
		return nil, err
	}

	dst, replaced := Apply(src, target, replacement, opts.Threshold)

	if err := imaging.Save(dst, opts.Output, imaging.SaveOptions{JPEGQuality: opts.JPEGQuality}); err != nil {
		return nil, err
	}

	bounds := dst.Bounds()
	return &Result{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Format:      strings.ToLower(format.String()),
		Target:      target.String(),
		Replacement: replacement.String(),
		Threshold:   opts.Threshold,
		Replaced:    replaced,
		Total:       bounds.Dx() * bounds.Dy(),
		Stable:      Stable(target, replacement, opts.Threshold),
		Distance:    target.DistanceLab(replacement),
	}, nil
}

func parseColors(targetHex, replacementHex string) (Color, Color, error) {
	target, err := ParseHex(targetHex)
	if err != nil {
		return Color{}, Color{}, fmt.Errorf("target: %w", err)
	}
	replacement, err := ParseHex(replacementHex)
	if err != nil {
		return Color{}, Color{}, fmt.Errorf("replacement: %w", err)
	}
	return target, replacement, nil
}

// Apply returns a recolored copy of img and the number of replaced pixels.
//
// Paletted images stay paletted: matching palette entries are rewritten,
// which gives the same per-pixel result as testing every pixel. All other
// images are converted to *image.NRGBA. Bounds are preserved in both cases.
func Apply(img image.Image, target, replacement Color, threshold int) (image.Image, int) {
	if p, ok := img.(*image.Paletted); ok {
		return applyPaletted(p, target, replacement, threshold)
	}

	dst := imaging.ToNRGBA(img)
	replaced := 0
	forEachPixel(dst, func(pix []uint8) {
		if Matches(Color{pix[0], pix[1], pix[2]}, target, threshold) {
			pix[0], pix[1], pix[2] = replacement.R, replacement.G, replacement.B
			replaced++
		}
	})
	return dst, replaced
}

// Count returns how many pixels of img Apply would replace, without
// producing an output image.
func Count(img image.Image, target Color, threshold int) int {
	if p, ok := img.(*image.Paletted); ok {
		hits := paletteMatches(p.Palette, target, threshold)
		return countIndexed(p, hits)
	}

	src, ok := img.(*image.NRGBA)
	if !ok {
		src = imaging.ToNRGBA(img)
	}
	n := 0
	forEachPixel(src, func(pix []uint8) {
		if Matches(Color{pix[0], pix[1], pix[2]}, target, threshold) {
			n++
		}
	})
	return n
}

// forEachPixel calls fn with the 4-byte RGBA slice of every pixel.
func forEachPixel(img *image.NRGBA, fn func(pix []uint8)) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			fn(img.Pix[i : i+4 : i+4])
			i += 4
		}
	}
}

func applyPaletted(src *image.Paletted, target, replacement Color, threshold int) (image.Image, int) {
	hits := paletteMatches(src.Palette, target, threshold)

	pal := make(color.Palette, len(src.Palette))
	for i, c := range src.Palette {
		if hits[i] {
			pal[i] = replacement.NRGBA(color.NRGBAModel.Convert(c).(color.NRGBA).A)
		} else {
			pal[i] = c
		}
	}

	dst := &image.Paletted{
		Pix:     append([]uint8(nil), src.Pix...),
		Stride:  src.Stride,
		Rect:    src.Rect,
		Palette: pal,
	}
	return dst, countIndexed(src, hits)
}

func paletteMatches(pal color.Palette, target Color, threshold int) []bool {
	hits := make([]bool, len(pal))
	for i, c := range pal {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		hits[i] = Matches(Color{n.R, n.G, n.B}, target, threshold)
	}
	return hits
}

func countIndexed(p *image.Paletted, hits []bool) int {
	n := 0
	b := p.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := p.Pix[p.PixOffset(b.Min.X, y) : p.PixOffset(b.Min.X, y)+b.Dx()]
		for _, idx := range row {
			if int(idx) < len(hits) && hits[idx] {
				n++
			}
		}
	}
	return n
}
