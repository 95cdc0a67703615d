package uiraster

import (
	"math"

	"github.com/gogpu/uiraster/internal/blend"
)

// Distances are in pixels, negative inside the shape. All arithmetic is
// float32 with explicit conversions where a fused multiply-add could
// otherwise change the result.

// sdfRoundedBox returns the signed distance from (px, py) to a box centred
// on the origin with half-extents (bx, by) and corner radius r.
func sdfRoundedBox(px, py, bx, by, r float32) float32 {
	qx := abs32(px) - bx + r
	qy := abs32(py) - by + r
	return min(max(qx, qy), 0) + length(max(qx, 0), max(qy, 0)) - r
}

// sdfCircle returns the signed distance from (px, py) to a circle of the
// given radius centred on the origin.
func sdfCircle(px, py, radius float32) float32 {
	return length(px, py) - radius
}

// pickColor composites a shape sample at signed distance d onto dst.
//
// Two clamped ramps give a one pixel antialiased edge: the outline band
// peaks at d = -outlineRadius and the fill starts one band further in.
// Outline and fill are composited in that order with a single truncation.
func pickColor(dst *[4]uint8, outline, fill [4]uint8, outlineRadius, d float32) {
	of := clamp01(outlineRadius - abs32(d+outlineRadius))
	ff := clamp01(min(1, outlineRadius) - float32(outlineRadius*2) - d)
	blend.Over2(dst, outline, fill, of, ff)
}

func length(x, y float32) float32 {
	return sqrt32(float32(x*x) + float32(y*y))
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}

// sqrt32 is correctly rounded: the float64 square root of a float32 rounds
// to the same value as a native float32 square root.
func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// clamp01 clamps v to [0, 1]. NaN maps to 0.
func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
