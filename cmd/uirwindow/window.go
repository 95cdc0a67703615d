package main

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/uiraster"
	"github.com/gogpu/uiraster/internal/glyphatlas"
)

var background = uiraster.Opaque(73, 70, 70)

// surfaceFormat is the layout ebiten.Image.WritePixels expects.
const surfaceFormat = gputypes.TextureFormatRGBA8Unorm

// window implements ebiten.Game on top of a uiraster context.
type window struct {
	atlas   *glyphatlas.Atlas
	buttons []button
	ctx     *uiraster.Context
	cmds    []uiraster.Command
	format  uiraster.PixelFormat
	pix     []byte
	frame   *ebiten.Image
	stale   bool
	width   int
	height  int
}

func newWindow(atlas *glyphatlas.Atlas, width, height int) (*window, error) {
	format, ok := uiraster.FormatForTexture(surfaceFormat)
	if !ok {
		return nil, fmt.Errorf("no export layout for surface format %v", surfaceFormat)
	}
	w := &window{atlas: atlas, format: format, buttons: column(20, 20, 180, 50, 10, labels)}
	if err := w.allocate(width, height); err != nil {
		return nil, err
	}
	return w, nil
}

// allocate creates a context backed by a block sized for width x height.
func (w *window) allocate(width, height int) error {
	mem := make([]byte, uiraster.MinimumSize(uint32(width), uint32(height)))
	ctx, err := uiraster.New(uint32(width), uint32(height), mem, uiraster.WithClearColor(background))
	if err != nil {
		return fmt.Errorf("create context: %w", err)
	}
	w.ctx = ctx
	return nil
}

// resize adapts the context to the window size. The existing block is
// reused while it has room; a larger window gets a fresh block.
func (w *window) resize(width, height int) error {
	if w.frame != nil && int(w.ctx.Width()) == width && int(w.ctx.Height()) == height {
		return nil
	}
	w.ctx.Resize(uint32(width), uint32(height))
	if w.ctx.Errors().Has(uiraster.ErrorOutOfCapacity) {
		uiraster.Logger().Info("uirwindow: growing surface", "width", width, "height", height)
		if err := w.allocate(width, height); err != nil {
			return err
		}
	}
	w.pix = make([]byte, w.format.RowBytes(width)*height)
	if w.frame != nil {
		w.frame.Deallocate()
	}
	w.frame = ebiten.NewImage(width, height)
	w.stale = true
	return nil
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.width == 0 || w.height == 0 {
		return nil
	}
	if err := w.resize(w.width, w.height); err != nil {
		return err
	}

	mx, my := ebiten.CursorPosition()
	w.cmds = w.cmds[:0]
	for _, b := range w.buttons {
		w.cmds = b.appendCommands(w.cmds, w.atlas, float32(mx), float32(my))
	}

	if w.ctx.Draw(w.cmds) == 0 && !w.stale {
		return nil
	}
	w.stale = false
	if err := w.ctx.Export(w.pix, w.format.RowBytes(w.width), w.format); err != nil {
		return err
	}
	w.frame.WritePixels(w.pix)
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.frame != nil {
		screen.DrawImage(w.frame, nil)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return w.width, w.height
}
