package recolor

// Matches reports whether p is within threshold of target on all three RGB
// channels. The comparison is written out per channel; alpha and any other
// channel of the source pixel never take part.
//
// Threshold 0 is the exact-match mode and matches only p == target.
func Matches(p, target Color, threshold int) bool {
	if threshold == 0 {
		return p == target
	}
	return absDiff(p.R, target.R) < threshold &&
		absDiff(p.G, target.G) < threshold &&
		absDiff(p.B, target.B) < threshold
}

// Stable reports whether recoloring is idempotent for these settings: the
// replacement color itself does not match the target, so a second pass over
// the output replaces nothing that the first pass wrote.
func Stable(target, replacement Color, threshold int) bool {
	return !Matches(replacement, target, threshold)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
