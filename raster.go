package uiraster

import (
	"github.com/gogpu/uiraster/internal/blend"
	"github.com/gogpu/uiraster/internal/tile"
)

// maxSample bounds image sample coordinates before integer conversion.
const maxSample = 1 << 30

// tileRect returns the canvas-space rect of tile (tx, ty).
func tileRect(tx, ty uint32) Rect {
	x := float32(tx * tile.Size)
	y := float32(ty * tile.Size)
	return Rect{X0: x, Y0: y, X1: x + tile.Size, Y1: y + tile.Size}
}

// drawTile renders tile (tx, ty) from scratch and reports whether it took
// no per-pixel work.
//
// Leading commands that fully cover the tile with their fill are folded
// into the background colour; commands that miss the tile are skipped.
// The first other command that touches the tile ends the fold, and it and
// everything after it are rasterized per pixel over that background.
func (c *Context) drawTile(cmds []Command, tx, ty uint32) bool {
	t := &c.tiles[ty*c.hdr.tilesX+tx]
	tr := tileRect(tx, ty)

	bg := c.hdr.clear
	i := 0
	if !c.noShortcut {
		for ; i < len(cmds); i++ {
			cmd := &cmds[i]
			if cmd.coversTile(tr) {
				blend.Over(&bg, cmd.Shape.Fill.bytes(), 1)
				continue
			}
			if tr.Intersects(cmd.Rect) {
				break
			}
		}
	}
	t.Fill(bg)

	flat := true
	for j := i; j < len(cmds); j++ {
		cmd := &cmds[j]
		if !tr.Intersects(cmd.Rect) {
			continue
		}
		flat = false
		switch cmd.Kind {
		case KindRect, KindCircle:
			drawShape(t, tr, cmd)
		case KindAlphaImage, KindRGBAImage:
			drawImage(t, tr, cmd)
		}
	}
	return flat
}

// drawShape evaluates a rect or circle at every pixel of the tile. Samples
// are taken at integer pixel coordinates.
func drawShape(t *tile.Tile, tr Rect, cmd *Command) {
	s := &cmd.Shape
	r := cmd.Rect
	w2 := (r.X1 - r.X0) * 0.5
	h2 := (r.Y1 - r.Y0) * 0.5
	cx := r.X0 + w2
	cy := r.Y0 + h2
	radius := min(w2, h2)
	fill := s.Fill.bytes()
	outline := s.Outline.bytes()
	circle := cmd.Kind == KindCircle

	i := 0
	for py := range tile.Size {
		y := tr.Y0 + float32(py) - cy
		for px := range tile.Size {
			x := tr.X0 + float32(px) - cx
			var d float32
			if circle {
				d = sdfCircle(x, y, radius)
			} else {
				d = sdfRoundedBox(x, y, w2, h2, s.CornerRadius)
			}
			pickColor(&t[i], outline, fill, s.OutlineRadius, d)
			i++
		}
	}
}

// drawImage samples an image command over its overlap with the tile using
// nearest-neighbour lookup. Samples outside Pix are skipped.
func drawImage(t *tile.Tile, tr Rect, cmd *Command) {
	im := &cmd.Image
	if !(im.Scale > 0) || im.Stride < 0 {
		return
	}
	recip := 1 / im.Scale
	if !(recip < maxSample) {
		return
	}
	bpp := 1
	if cmd.Kind == KindRGBAImage {
		bpp = 4
	}

	r := cmd.Rect
	ir := r.intersect(tr)
	w := ir.X1 - ir.X0
	h := ir.Y1 - ir.Y0
	startX := ir.X0 - r.X0
	startY := ir.Y0 - r.Y0
	tx0 := int(ir.X0 - tr.X0)
	ty := int(ir.Y0 - tr.Y0)
	tint := im.Tint.bytes()

	for y := float32(0); y < h && ty < tile.Size; y++ {
		sy := (startY + y) * recip
		if !(sy < maxSample) {
			return
		}
		row := int(sy) * im.Stride

		tx := tx0
		for x := float32(0); x < w && tx < tile.Size; x++ {
			sx := (startX + x) * recip
			if !(sx < maxSample) {
				break
			}
			idx := row + int(sx)*bpp
			if idx >= 0 && idx <= len(im.Pix)-bpp {
				dst := &t[ty*tile.Size+tx]
				if bpp == 1 {
					blend.Over(dst, tint, float32(im.Pix[idx])*blend.Recip255)
				} else {
					blend.Over2(dst, [4]uint8(im.Pix[idx:idx+4]), tint, 1, 1)
				}
			}
			tx++
		}
		ty++
	}
}
