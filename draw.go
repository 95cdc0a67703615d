package uiraster

import "github.com/gogpu/uiraster/internal/tile"

// Stats describes the work done by the most recent Draw.
type Stats struct {
	// Tiles is the number of tiles in the grid.
	Tiles uint32

	// Redrawn is the number of tiles whose hash changed and were rendered.
	Redrawn uint32

	// Filled is the number of redrawn tiles rendered from the background
	// and covering fills alone, with no per-pixel work.
	Filled uint32
}

// Draw renders cmds and returns the number of tiles redrawn.
//
// Every tile gets a hash of the clear colour, its position and the commands
// whose rect overlaps it. Only tiles whose hash differs from the one they
// were last rendered with are redrawn; the others keep their pixels.
// Commands are composited in slice order.
//
// Before hashing, each circle command's Rect is rewritten in place to the
// square bounding the circle it draws, so the caller's slice is modified.
//
// While the surface needs more tiles than the Context has, Draw touches
// nothing, raises ErrorOutOfCapacity and returns 0.
func (c *Context) Draw(cmds []Command) uint32 {
	h := c.hdr
	if !c.fits() {
		h.flags |= uint32(ErrorOutOfCapacity)
		h.stats = Stats{}
		c.log().Warn("uiraster: draw refused, surface exceeds tile capacity",
			"tilesX", h.tilesX, "tilesY", h.tilesY, "capacity", h.capacity)
		return 0
	}

	for i := range cmds {
		cmds[i].tighten()
	}

	tx, ty := h.tilesX, h.tilesY
	info := c.info[:tx*ty]

	base := clearHash(h.clear)
	for y := range ty {
		row := info[y*tx : (y+1)*tx]
		for x := range row {
			row[x].New = tileSeed(base, uint32(x), y)
		}
	}

	for i := range cmds {
		cmd := &cmds[i]
		hv := cmd.Hash()
		if h.ordered {
			hv = foldIndex(hv, i)
		}
		x0, x1 := tile.Span(cmd.Rect.X0, cmd.Rect.X1, tx)
		y0, y1 := tile.Span(cmd.Rect.Y0, cmd.Rect.Y1, ty)
		for y := y0; y < y1; y++ {
			row := info[y*tx : (y+1)*tx]
			for x := x0; x < x1; x++ {
				row[x].New ^= hv
			}
		}
	}

	var redrawn, filled uint32
	for y := range ty {
		for x := range tx {
			ti := &info[y*tx+x]
			if !ti.Dirty() {
				continue
			}
			redrawn++
			ti.Commit()
			if c.drawTile(cmds, x, y) {
				filled++
			}
		}
	}

	h.stats = Stats{Tiles: tx * ty, Redrawn: redrawn, Filled: filled}
	c.log().Debug("uiraster: draw", "commands", len(cmds),
		"tiles", tx*ty, "redrawn", redrawn, "filled", filled)
	return redrawn
}

// Stats returns statistics for the most recent Draw.
func (c *Context) Stats() Stats {
	return c.hdr.stats
}
