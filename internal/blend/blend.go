// Package blend provides the premultiplied source-over compositing used
// by the tile rasterizer.
//
// All arithmetic is float32 and every result is truncated, not rounded,
// to 8 bits. The explicit float32 conversions around each product keep
// the compiler from fusing multiply-add pairs, so results are identical on
// every architecture.
package blend

// Recip255 is 1/255 as used by all coverage conversions.
const Recip255 float32 = 0.00392156862745098

// Over composites the premultiplied colour src, scaled by coverage alpha,
// over dst:
//
//	dst[i] = src[i]*alpha + dst[i]*(1 - src[3]/255*alpha)
func Over(dst *[4]uint8, src [4]uint8, alpha float32) {
	f := factor(src[3], alpha)
	for i := range dst {
		v := float32(float32(src[i])*alpha) + float32(float32(dst[i])*f)
		dst[i] = toByte(v)
	}
}

// Over2 composites c1 with coverage a1 and then c2 with coverage a2 over
// dst. The intermediate result is kept in float32; only the final value is
// truncated.
func Over2(dst *[4]uint8, c1, c2 [4]uint8, a1, a2 float32) {
	f1 := factor(c1[3], a1)
	f2 := factor(c2[3], a2)
	for i := range dst {
		v1 := float32(float32(c1[i])*a1) + float32(float32(dst[i])*f1)
		v2 := float32(float32(c2[i])*a2) + float32(v1*f2)
		dst[i] = toByte(v2)
	}
}

// factor returns the destination weight 1 - a/255*alpha.
func factor(a uint8, alpha float32) float32 {
	return 1 - float32(float32(float32(a)*Recip255)*alpha)
}

// toByte truncates v to a byte. Values outside [0, 255] only arise from
// non-premultiplied input and are clamped.
func toByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
