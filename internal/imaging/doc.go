// Package imaging provides the file and inspection layer around recoloring.
//
// It decodes images from disk, caches decoded images for the MCP server,
// encodes results back to disk, and offers the small inspection helpers used
// to choose a color to replace: pixel sampling and dominant color extraction.
// Coordinates are 0-based with (0,0) at the top-left corner.
//
// # Formats
//
// Decoding and encoding are delegated to github.com/disintegration/imaging,
// which covers JPEG, PNG, GIF, TIFF and BMP. The output format is always
// chosen from the output file extension.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Images returned from the cache are
// shared and must not be modified.
//
// # Error Handling
//
// Open and Save classify failures with the sentinel errors ErrInputNotFound,
// ErrDecode, ErrUnsupportedFormat and ErrOutputWrite. Test for them with
// errors.Is; the wrapped chain still carries the underlying cause, so
// errors.Is(err, fs.ErrNotExist) works for a missing input.
//
// # Atomic Output
//
// Save never leaves a partially written file at the destination path: the
// encoded bytes go to a temporary sibling file that is renamed into place.
package imaging
