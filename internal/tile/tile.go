// Package tile provides the fixed-size pixel tile and the per-tile hash
// pair that back the tile cache.
//
// The canvas is divided into 16x16 pixel tiles stored as flat arrays so
// that whole grids can be carved out of a single memory block. Tiles are
// addressed in row-major order: index = ty * tilesX + tx.
package tile

import "math"

// Tile size constants.
const (
	// Size is the width and height of a tile in pixels.
	Size = 16

	// Pixels is the number of pixels in a tile.
	Pixels = Size * Size

	// Bytes is the size of a tile in bytes (4 bytes per pixel).
	Bytes = Pixels * 4
)

// Tile is a 16x16 block of R,G,B,A pixels in row-major order.
// Edge tiles always have the full size; pixels past the canvas edge are
// rendered but never exported.
type Tile [Pixels][4]uint8

// Fill sets every pixel of the tile to c.
func (t *Tile) Fill(c [4]uint8) {
	t[0] = c
	for n := 1; n < Pixels; n *= 2 {
		copy(t[n:], t[:n])
	}
}

// At returns the pixel at tile-local coordinates (px, py).
func (t *Tile) At(px, py int) [4]uint8 {
	return t[py*Size+px]
}

// Info holds the two hashes tracked for a tile.
type Info struct {
	// Old is the hash of the content currently rendered into the tile.
	Old uint32

	// New is the hash of the content the current command list implies.
	New uint32
}

// Dirty reports whether the tile needs redrawing.
func (i *Info) Dirty() bool {
	return i.Old != i.New
}

// Commit records the new hash as rendered.
func (i *Info) Commit() {
	i.Old = i.New
}

// Count returns the number of tiles needed to cover px pixels.
func Count(px uint32) uint32 {
	return uint32((uint64(px) + Size - 1) / Size)
}

// Span returns the half-open range of tile indices [lo, hi) touched by
// the pixel interval [p0, p1), rounded outward to tile granularity and
// clamped to [0, n]. Empty, inverted and NaN intervals yield lo == hi.
func Span(p0, p1 float32, n uint32) (lo, hi uint32) {
	if !(p0 < p1) {
		return 0, 0
	}
	lo = clampIndex(math.Floor(float64(p0)/Size), n)
	hi = clampIndex(math.Ceil(float64(p1)/Size), n)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampIndex(v float64, n uint32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= float64(n) {
		return n
	}
	return uint32(v)
}
