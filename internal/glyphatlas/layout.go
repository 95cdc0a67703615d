package glyphatlas

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/uiraster"
)

// Placed is a glyph positioned on the canvas.
type Placed struct {
	Rune  rune
	Glyph Glyph

	// X and Y are the pen position on the baseline.
	X, Y float32
}

// run is a span of a label in one direction, in visual order.
type run struct {
	text []rune
	rtl  bool
}

// Place shapes label and positions its glyphs with the pen starting at
// (x, y) on the baseline. It returns the placed glyphs and the pen
// position after the last one.
func (a *Atlas) Place(label string, x, y float32) ([]Placed, float32) {
	var out []Placed
	var shaper shaping.HarfbuzzShaper
	for _, r := range splitRuns(label) {
		output := shaper.Shape(shaping.Input{
			Text:      r.text,
			RunStart:  0,
			RunEnd:    len(r.text),
			Direction: direction(r.rtl),
			Face:      a.face,
			Size:      fixed.Int26_6(a.Size * 64),
			Script:    detectScript(r.text),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range output.Glyphs {
			ch := r.text[g.TextIndex()]
			if baked, ok := a.glyphs[ch]; ok && !baked.Cell.Empty() {
				out = append(out, Placed{
					Rune:  ch,
					Glyph: baked,
					X:     x + fixedToFloat(g.XOffset),
					Y:     y - fixedToFloat(g.YOffset),
				})
			}
			x += fixedToFloat(g.Advance)
		}
	}
	return out, x
}

// Measure returns the advance width of label.
func (a *Atlas) Measure(label string) float32 {
	_, end := a.Place(label, 0, 0)
	return end
}

// Layout shapes label and returns one alpha image command per visible
// glyph, tinted with tint. The pen starts at (x, y) on the baseline.
//
// Every command samples the atlas image directly, so commands for the same
// glyph at the same position hash identically from frame to frame.
func (a *Atlas) Layout(label string, x, y float32, tint uiraster.Color) []uiraster.Command {
	placed, _ := a.Place(label, x, y)
	cmds := make([]uiraster.Command, 0, len(placed))
	for _, p := range placed {
		g := p.Glyph
		pix, stride := a.Pix(g)
		rect := uiraster.XYWH(
			p.X+float32(g.Bearing.X),
			p.Y+float32(g.Bearing.Y),
			float32(g.Cell.Dx()),
			float32(g.Cell.Dy()),
		)
		cmds = append(cmds, uiraster.AlphaImageCommand(rect, tint, pix, stride, 1))
	}
	return cmds
}

// splitRuns splits label into directional runs in visual order.
func splitRuns(label string) []run {
	if label == "" {
		return nil
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(label, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return []run{{text: []rune(label)}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []run{{text: []rune(label)}}
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		runs = append(runs, run{
			text: []rune(r.String()),
			rtl:  r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

func direction(rtl bool) di.Direction {
	if rtl {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
