package uiraster

import (
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/gogpu/uiraster/internal/arena"
	"github.com/gogpu/uiraster/internal/tile"
)

// TileSize is the width and height of a cache tile in pixels.
const TileSize = tile.Size

// header is the context state stored at the start of the memory block.
// It must stay free of Go pointers.
type header struct {
	width    uint32
	height   uint32
	tilesX   uint32
	tilesY   uint32
	capacity uint32
	flags    uint32
	clear    [4]uint8
	ordered  bool
	_        [3]uint8
	stats    Stats
}

const (
	headerSize = int(unsafe.Sizeof(header{}))
	infoSize   = int(unsafe.Sizeof(tile.Info{}))
	tileSize   = int(unsafe.Sizeof(tile.Tile{}))
)

// Context is a tile-cached rasterizer living in a caller-provided memory
// block. The header, the per-tile hash pairs and the tile pixels are all
// carved from that block once, by New; the Context value itself is a small
// handle holding views into it.
//
// A Context is not safe for concurrent use. Contexts over disjoint blocks
// are independent.
type Context struct {
	mem   []byte
	hdr   *header
	info  []tile.Info
	tiles []tile.Tile

	logger *slog.Logger

	// noShortcut disables the fill shortcut; used to check that it does
	// not change output.
	noShortcut bool
}

// MinimumSize returns the number of bytes New needs to render a
// width x height surface without raising ErrorOutOfCapacity.
//
// The figure includes room for aligning the header and the tile arrays
// at any block address. It saturates at math.MaxInt.
func MinimumSize(width, height uint32) int {
	count := uint64(tile.Count(width)) * uint64(tile.Count(height))
	n := uint64(headerSize)*2 + uint64(infoSize)
	per := uint64(infoSize + tileSize)
	if count > (math.MaxInt-n)/per {
		return math.MaxInt
	}
	return int(n + count*per)
}

// New creates a Context for a width x height surface inside mem.
//
// New only fails, with ErrMemoryTooSmall, when mem cannot hold the context
// header. Otherwise the rest of the block is split into as many tiles as
// fit; if that is fewer than the surface needs, the returned Context has
// ErrorOutOfCapacity set and refuses to draw until it is resized to fit.
//
// The block is zeroed where it is carved and must not be modified or
// reused while the Context is alive.
func New(width, height uint32, mem []byte, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := arena.New(mem)
	hdr := arena.Alloc[header](a)
	if hdr == nil {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrMemoryTooSmall, len(mem), headerSize)
	}

	capacity := 0
	if a.Align(unsafe.Alignof(tile.Info{})) {
		capacity = int(min(uint64(a.Remaining()/(infoSize+tileSize)), math.MaxUint32))
	}
	info := arena.Slice[tile.Info](a, capacity)
	tiles := arena.Slice[tile.Tile](a, capacity)

	hdr.capacity = uint32(capacity)
	hdr.clear = o.clear.bytes()
	hdr.ordered = o.ordered

	c := &Context{
		mem:    mem,
		hdr:    hdr,
		info:   info,
		tiles:  tiles,
		logger: o.logger,
	}
	c.log().Info("uiraster: context created",
		"bytes", len(mem), "capacity", capacity, "arena", a.Offset())

	c.Resize(width, height)
	return c, nil
}

// Resize changes the logical surface size and reports whether it changed.
// The memory block and tile capacity stay as they were: if the new size
// needs more tiles than fit, ErrorOutOfCapacity is raised and drawing is
// refused until the surface is resized to fit.
func (c *Context) Resize(width, height uint32) bool {
	h := c.hdr
	changed := h.width != width || h.height != height

	h.width = width
	h.height = height
	h.tilesX = tile.Count(width)
	h.tilesY = tile.Count(height)
	c.checkCapacity()

	if changed {
		c.log().Info("uiraster: resized", "width", width, "height", height,
			"tilesX", h.tilesX, "tilesY", h.tilesY)
	}
	return changed
}

// fits reports whether the current tile grid fits in the tile arrays.
func (c *Context) fits() bool {
	h := c.hdr
	return uint64(h.tilesX)*uint64(h.tilesY) <= uint64(h.capacity)
}

func (c *Context) checkCapacity() {
	if c.fits() {
		return
	}
	h := c.hdr
	h.flags |= uint32(ErrorOutOfCapacity)
	c.log().Warn("uiraster: surface exceeds tile capacity",
		"need", uint64(h.tilesX)*uint64(h.tilesY), "capacity", h.capacity)
}

// Errors returns the sticky error flags.
func (c *Context) Errors() ErrorFlags {
	return ErrorFlags(c.hdr.flags)
}

// ClearErrors resets the error flags. Conditions that still hold are
// raised again immediately.
func (c *Context) ClearErrors() {
	c.hdr.flags = 0
	c.checkCapacity()
}

// ClearColor returns the background colour every tile starts from.
func (c *Context) ClearColor() Color {
	return colorOf(c.hdr.clear)
}

// SetClearColor sets the background colour. A change dirties every tile on
// the next Draw.
func (c *Context) SetClearColor(col Color) {
	c.hdr.clear = col.bytes()
}

// Width returns the surface width in pixels.
func (c *Context) Width() uint32 { return c.hdr.width }

// Height returns the surface height in pixels.
func (c *Context) Height() uint32 { return c.hdr.height }

// TilesX returns the number of tile columns.
func (c *Context) TilesX() uint32 { return c.hdr.tilesX }

// TilesY returns the number of tile rows.
func (c *Context) TilesY() uint32 { return c.hdr.tilesY }

// TileCapacity returns the number of tiles carved from the memory block.
func (c *Context) TileCapacity() uint32 { return c.hdr.capacity }

// Memory returns the block the Context lives in.
func (c *Context) Memory() []byte { return c.mem }

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}
