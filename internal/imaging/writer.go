package imaging

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when SaveOptions.JPEGQuality is zero.
const DefaultJPEGQuality = 95

// SaveOptions controls how Save encodes its output.
type SaveOptions struct {
	// JPEGQuality is the JPEG quality (1-100). Zero selects DefaultJPEGQuality;
	// values above 100 are clamped. Ignored for other formats.
	JPEGQuality int
}

// OutputFormat resolves the encoder for path from its extension.
// It performs no I/O, so callers can reject a bad output path before reading
// any input.
func OutputFormat(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return format, nil
}

// Save encodes img in the format implied by path's extension and writes it.
//
// The whole image is encoded into memory first, then written to a temporary
// file in the destination directory and renamed over path. Either the
// complete file appears at path or path is left untouched.
//
// Errors wrap ErrUnsupportedFormat for unknown extensions and ErrOutputWrite
// for encoder failures, a missing directory or missing permissions.
func Save(img image.Image, path string, opts SaveOptions) error {
	format, err := OutputFormat(path)
	if err != nil {
		return err
	}

	quality := opts.JPEGQuality
	switch {
	case quality <= 0:
		quality = DefaultJPEGQuality
	case quality > 100:
		quality = 100
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrOutputWrite, format, err)
	}

	return writeFileAtomic(path, buf.Bytes())
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	// CreateTemp uses 0600.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}
