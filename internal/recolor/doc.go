// Package recolor replaces pixels close to a target color with a fixed
// replacement color.
//
// A pixel matches when each of its red, green and blue components differs
// from the target's by strictly less than the threshold:
//
//	|p.R-t.R| < T && |p.G-t.G| < T && |p.B-t.B| < T
//
// Alpha is never compared and is carried over unchanged, so transparent
// regions stay transparent. A threshold of 0 is the exact-match mode: only
// pixels equal to the target are replaced (the strict inequality alone would
// match nothing). 256 or more matches every pixel.
//
// File runs the whole operation on disk: both colors are parsed first, the
// output extension is checked, the input is decoded, every pixel is tested,
// and the result is written in one step. Apply is the in-memory transform and
// never modifies the image it is given.
package recolor
