package uiraster

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Kind identifies the primitive a Command draws.
type Kind uint32

const (
	// KindRect is a filled, optionally outlined, rounded rectangle.
	KindRect Kind = iota

	// KindCircle is a filled, optionally outlined circle inscribed in the
	// command's rect.
	KindCircle

	// KindAlphaImage tints a single-channel coverage bitmap.
	KindAlphaImage

	// KindRGBAImage composites a premultiplied 4-channel bitmap, then its tint.
	KindRGBAImage

	kindCount
)

var kindNames = [...]string{
	KindRect:       "Rect",
	KindCircle:     "Circle",
	KindAlphaImage: "AlphaImage",
	KindRGBAImage:  "RGBAImage",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// Shape is the payload of KindRect and KindCircle commands.
type Shape struct {
	// Fill is the interior colour.
	Fill Color

	// Outline is the colour of the band along the inside of the edge.
	Outline Color

	// OutlineRadius is the outline band half-width in pixels.
	// The band covers roughly 2*OutlineRadius pixels.
	OutlineRadius float32

	// CornerRadius rounds the corners of a rect. Ignored for circles.
	CornerRadius float32
}

// Image is the payload of KindAlphaImage and KindRGBAImage commands.
//
// Pix is owned by the caller and read only during Draw. Its identity
// (address, length, stride) is part of the command hash, its contents are
// not: to change a bitmap in place between frames, pass a new slice.
type Image struct {
	// Tint is composited per pixel. For alpha images it is scaled by the
	// sampled coverage; for RGBA images it is applied on top at full strength.
	Tint Color

	// Pix starts at the bitmap's top-left pixel.
	Pix []byte

	// Stride is the distance in bytes between rows of Pix.
	Stride int

	// Scale magnifies the bitmap; a scale of 2 draws each texel as 2x2
	// pixels. Non-positive scales draw nothing.
	Scale float32
}

// Command is one draw primitive. Kind selects which payload is used; the
// other payload is ignored entirely, including for hashing.
//
// Commands are not retained after Draw returns.
type Command struct {
	Kind  Kind
	Rect  Rect
	Shape Shape
	Image Image
}

// RectCommand returns a rounded-rectangle command.
func RectCommand(r Rect, s Shape) Command {
	return Command{Kind: KindRect, Rect: r, Shape: s}
}

// CircleCommand returns a circle command. The circle is centred in r with
// radius min(width, height)/2.
func CircleCommand(r Rect, s Shape) Command {
	return Command{Kind: KindCircle, Rect: r, Shape: s}
}

// AlphaImageCommand returns a command tinting the coverage bitmap pix.
func AlphaImageCommand(r Rect, tint Color, pix []byte, stride int, scale float32) Command {
	return Command{Kind: KindAlphaImage, Rect: r, Image: Image{Tint: tint, Pix: pix, Stride: stride, Scale: scale}}
}

// RGBAImageCommand returns a command compositing the RGBA bitmap pix.
func RGBAImageCommand(r Rect, tint Color, pix []byte, stride int, scale float32) Command {
	return Command{Kind: KindRGBAImage, Rect: r, Image: Image{Tint: tint, Pix: pix, Stride: stride, Scale: scale}}
}

// isShape reports whether the command uses the Shape payload.
func (c *Command) isShape() bool {
	return c.Kind == KindRect || c.Kind == KindCircle
}

// squareTolerance is the relative difference between half extents below
// which a circle rect counts as square. Re-tightening a tightened rect
// differs from square by at most 2^-23 of the coordinate magnitudes.
const squareTolerance = 1.0 / (1 << 21)

// tighten shrinks a circle's rect to the square bounding the circle it
// draws. Rects that are square up to rounding are left untouched, so a
// tightened rect is a fixed point and resubmitting it hashes the same.
func (c *Command) tighten() {
	if c.Kind != KindCircle {
		return
	}
	r := &c.Rect
	w2 := (r.X1 - r.X0) * 0.5
	h2 := (r.Y1 - r.Y0) * 0.5
	mag := abs32(r.X0) + abs32(r.X1) + abs32(r.Y0) + abs32(r.Y1)
	if abs32(w2-h2) <= mag*squareTolerance {
		return
	}
	radius := min(w2, h2)
	x := r.X0 + w2
	y := r.Y0 + h2
	*r = Rect{X0: x - radius, Y0: y - radius, X1: x + radius, Y1: y + radius}
}

// recordSize bounds the canonical encoding of any command.
const recordSize = 64

// record is the canonical little-endian byte encoding of a command.
type record struct {
	buf [recordSize]byte
	n   int
}

func (r *record) u32(v uint32) {
	binary.LittleEndian.PutUint32(r.buf[r.n:], v)
	r.n += 4
}

func (r *record) u64(v uint64) {
	binary.LittleEndian.PutUint64(r.buf[r.n:], v)
	r.n += 8
}

func (r *record) f32(v float32) {
	r.u32(math.Float32bits(v))
}

func (r *record) color(c Color) {
	r.buf[r.n+0] = c.R
	r.buf[r.n+1] = c.G
	r.buf[r.n+2] = c.B
	r.buf[r.n+3] = c.A
	r.n += 4
}

// encode writes the fields that determine what the command draws.
func (c *Command) encode(r *record) {
	r.u32(uint32(c.Kind))
	r.f32(c.Rect.X0)
	r.f32(c.Rect.Y0)
	r.f32(c.Rect.X1)
	r.f32(c.Rect.Y1)

	switch c.Kind {
	case KindRect, KindCircle:
		s := &c.Shape
		r.color(s.Fill)
		r.color(s.Outline)
		r.f32(s.OutlineRadius)
		r.f32(s.CornerRadius)
	case KindAlphaImage, KindRGBAImage:
		im := &c.Image
		r.color(im.Tint)
		r.u64(uint64(uintptr(unsafe.Pointer(unsafe.SliceData(im.Pix)))))
		r.u64(uint64(len(im.Pix)))
		r.u64(uint64(im.Stride))
		r.f32(im.Scale)
	}
}

// Hash returns the content hash of the command as used by the tile cache.
func (c Command) Hash() uint32 {
	var r record
	c.encode(&r)
	return hashBytes(r.buf[:r.n])
}
