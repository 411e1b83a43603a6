package geom

import (
	"github.com/aurelien-rainone/gogeo/f32"
	"github.com/aurelien-rainone/math32"
)

// Epsilon is the ray-parallel tolerance used by the Möller–Trumbore
// intersection test. Matches the C reference implementation this spec
// was distilled from.
const Epsilon float32 = 1e-7

// Clamp restricts v to [low, high].
func Clamp(v, low, high float32) float32 {
	return f32.Clamp(v, low, high)
}

// ClampInt restricts v to [low, high].
func ClampInt(v, low, high int32) int32 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// RoundToInt rounds v to the nearest integer, ties away from zero.
func RoundToInt(v float32) int32 {
	if v >= 0 {
		return int32(math32.Floor(v + 0.5))
	}
	return int32(math32.Ceil(v - 0.5))
}

// ApproxEqual reports whether a and b are equal to within the tolerance
// used when comparing round-tripped single-precision geometry (spec.md
// §8 round trips: "h ± 1e-5").
func ApproxEqual(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}
