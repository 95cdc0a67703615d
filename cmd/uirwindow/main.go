// Command uirwindow shows a column of buttons rendered with uiraster in a
// window. Hovered buttons darken; only tiles that change are redrawn and
// the frame is uploaded only when something was redrawn.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/uiraster"
	"github.com/gogpu/uiraster/internal/glyphatlas"
)

func main() {
	var (
		width   = flag.Int("width", 1280, "initial window width")
		height  = flag.Int("height", 720, "initial window height")
		size    = flag.Float64("size", 20, "label font size in pixels")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		uiraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	atlas, err := glyphatlas.Bake(goregular.TTF, *size)
	if err != nil {
		log.Fatalf("bake font: %v", err)
	}

	ui, err := newWindow(atlas, *width, *height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("uiraster")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(ui); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
