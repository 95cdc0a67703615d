package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/uiraster"
	"github.com/gogpu/uiraster/internal/glyphatlas"
)

// pictureSize is the edge length PNGs are scaled to before drawing.
const pictureSize = 96

// sceneCommands returns the sample scene: overlapping rounded rects, an
// outlined circle, a synthetic glyph, a gradient bitmap and a text label.
func sceneCommands(picture string, size float64) ([]uiraster.Command, error) {
	cmds := []uiraster.Command{
		uiraster.RectCommand(uiraster.Rect{X0: 50, Y0: 50, X1: 300, Y1: 300}, uiraster.Shape{
			Fill:         uiraster.Opaque(100, 100, 255),
			CornerRadius: 10,
		}),
		uiraster.RectCommand(uiraster.Rect{X0: 10, Y0: 10, X1: 400, Y1: 200}, uiraster.Shape{
			Fill:         uiraster.Opaque(100, 255, 100),
			CornerRadius: 30,
		}),
		uiraster.CircleCommand(uiraster.Rect{X0: 500, Y0: 300, X1: 1000, Y1: 900}, uiraster.Shape{
			Fill:          uiraster.Color{R: 20, G: 100, B: 100, A: 100},
			Outline:       uiraster.Color{A: 109},
			OutlineRadius: 10,
		}),
		uiraster.AlphaImageCommand(uiraster.Rect{X0: 40, Y0: 40, X1: 50, Y1: 70},
			uiraster.Opaque(0, 0, 0), tGlyph(), 10, 1),
		uiraster.RGBAImageCommand(uiraster.Rect{X0: 400, Y0: 400, X1: 424, Y1: 424},
			uiraster.Transparent, gradient(), 24*4, 1),
	}

	if picture != "" {
		pix, err := loadPicture(picture)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, uiraster.RGBAImageCommand(
			uiraster.XYWH(1100, 40, 2*pictureSize, 2*pictureSize),
			uiraster.Transparent, pix, pictureSize*4, 2))
	}

	label, err := textCommands("uiraster", 1100, 680, size)
	if err != nil {
		return nil, err
	}
	return append(cmds, label...), nil
}

// textCommands lays out label with the Go Regular font, with the pen
// starting at (x, y) on the baseline.
func textCommands(label string, x, y float32, size float64) ([]uiraster.Command, error) {
	atlas, err := glyphatlas.Bake(goregular.TTF, size)
	if err != nil {
		return nil, err
	}
	return atlas.Layout(label, x, y, uiraster.White), nil
}

// tGlyph returns a 10x30 coverage bitmap shaped like a fading T.
func tGlyph() []byte {
	g := make([]byte, 10*30)
	for x := range 10 {
		g[x] = 255
	}
	for y := range 30 {
		v := uint8(255 - y*255/30)
		g[y*10+4] = v
		g[y*10+5] = v
	}
	return g
}

// gradient returns a 24x24 opaque RGBA gradient.
func gradient() []byte {
	g := make([]byte, 24*24*4)
	for y := range 24 {
		for x := range 24 {
			i := (y*24 + x) * 4
			g[i+0] = 255
			g[i+1] = uint8(y * 10)
			g[i+2] = uint8(x * 10)
			g[i+3] = 255
		}
	}
	return g
}

// loadPicture decodes a PNG and scales it to pictureSize square,
// premultiplied RGBA.
func loadPicture(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, pictureSize, pictureSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst.Pix, nil
}
