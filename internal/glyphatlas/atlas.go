// Package glyphatlas bakes a font into a single alpha bitmap and turns
// shaped labels into alpha image commands that sample it.
//
// The atlas holds the printable ASCII range. Labels are shaped with
// HarfBuzz so kerning and bidi runs are honoured; glyphs outside the atlas
// advance the pen but draw nothing.
package glyphatlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	firstRune = ' '
	lastRune  = '~'

	// Width is the atlas width in pixels. The height grows to fit.
	Width = 512

	// padding separates neighbouring glyph cells so nearest sampling at a
	// cell edge never picks up a neighbour.
	padding = 1
)

var (
	// ErrEmptyFont is returned by Bake for empty font data.
	ErrEmptyFont = errors.New("glyphatlas: empty font data")

	// ErrInvalidSize is returned by Bake for a non-positive size.
	ErrInvalidSize = errors.New("glyphatlas: invalid font size")
)

// Glyph locates one baked glyph.
type Glyph struct {
	// Cell is the glyph's rectangle in the atlas image.
	Cell image.Rectangle

	// Bearing is the offset of the cell's top-left corner from the pen
	// position on the baseline.
	Bearing image.Point

	// Advance is the unshaped horizontal advance in pixels.
	Advance float32
}

// Atlas is a baked font.
type Atlas struct {
	// Image holds the coverage of every glyph.
	Image *image.Alpha

	// Size is the font size in pixels.
	Size float64

	// Ascent and Descent are the font's line metrics in pixels.
	Ascent, Descent float32

	glyphs map[rune]Glyph
	face   *gotext.Face
}

// Bake rasterizes the printable ASCII glyphs of ttf at size pixels per em.
func Bake(ttf []byte, size float64) (*Atlas, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFont
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	shapeFace, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: parse font for shaping: %w", err)
	}

	a := &Atlas{
		Size:   size,
		glyphs: make(map[rune]Glyph, lastRune-firstRune+1),
		face:   shapeFace,
	}
	m := face.Metrics()
	a.Ascent = fixedToFloat(m.Ascent)
	a.Descent = fixedToFloat(m.Descent)

	height := a.pack(face)
	a.Image = image.NewAlpha(image.Rect(0, 0, Width, height))

	d := &font.Drawer{Dst: a.Image, Src: image.White, Face: face}
	for r, g := range a.glyphs {
		if g.Cell.Empty() {
			continue
		}
		d.Dot = fixed.P(g.Cell.Min.X-g.Bearing.X, g.Cell.Min.Y-g.Bearing.Y)
		d.DrawString(string(r))
	}
	return a, nil
}

// pack assigns atlas cells to every glyph in shelves and returns the
// atlas height needed.
func (a *Atlas) pack(face font.Face) int {
	x, y, shelf := padding, padding, 0
	for r := rune(firstRune); r <= lastRune; r++ {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		minX := bounds.Min.X.Floor()
		minY := bounds.Min.Y.Floor()
		w := bounds.Max.X.Ceil() - minX
		h := bounds.Max.Y.Ceil() - minY

		g := Glyph{Bearing: image.Pt(minX, minY), Advance: fixedToFloat(adv)}
		if w > 0 && h > 0 {
			if x+w+padding > Width {
				x = padding
				y += shelf + padding
				shelf = 0
			}
			g.Cell = image.Rect(x, y, x+w, y+h)
			x += w + padding
			shelf = max(shelf, h)
		}
		a.glyphs[r] = g
	}
	return y + shelf + padding
}

// Glyph returns the baked glyph for r.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}

// Pix returns the atlas bytes starting at the top-left pixel of the cell
// and the row stride, ready for an alpha image command.
func (a *Atlas) Pix(g Glyph) ([]byte, int) {
	off := a.Image.PixOffset(g.Cell.Min.X, g.Cell.Min.Y)
	return a.Image.Pix[off:], a.Image.Stride
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
