// Command uirdemo renders sample scenes with uiraster and writes them to a
// PNG or PPM file, or times redraws of a scene.
//
// Usage:
//
//	uirdemo -mode scene -out scene.png
//	uirdemo -mode text -label "Hello World!" -out text.ppm
//	uirdemo -mode bench
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/uiraster"
)

func main() {
	var (
		mode    = flag.String("mode", "scene", "what to render: scene, text or bench")
		width   = flag.Uint("width", 1280, "surface width")
		height  = flag.Uint("height", 720, "surface height")
		output  = flag.String("out", "", "output file (.png, .ppm or .raw); default <mode>.png")
		texture = flag.String("texture", "RGBA8Unorm", "texture layout of .raw output: RGBA8Unorm or BGRA8Unorm")
		picture = flag.String("image", "", "PNG drawn as an RGBA image in the scene")
		label   = flag.String("label", "Hello World!", "label for text mode")
		size    = flag.Float64("size", 32, "font size in pixels for text")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		uiraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tf, err := parseTexture(*texture)
	if err != nil {
		log.Fatal(err)
	}

	w, h := uint32(*width), uint32(*height)
	mem := make([]byte, uiraster.MinimumSize(w, h))

	switch *mode {
	case "bench":
		if err := runBench(w, h, mem); err != nil {
			log.Fatal(err)
		}
		return
	case "scene", "text":
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	ctx, err := uiraster.New(w, h, mem, uiraster.WithClearColor(uiraster.Opaque(255, 100, 100)))
	if err != nil {
		log.Fatal(err)
	}
	if ctx.Errors() != 0 {
		log.Fatalf("context errors: %v", ctx.Errors())
	}

	var cmds []uiraster.Command
	if *mode == "scene" {
		cmds, err = sceneCommands(*picture, *size)
	} else {
		cmds, err = textCommands(*label, 50, 100, *size)
	}
	if err != nil {
		log.Fatal(err)
	}

	redrawn := ctx.Draw(cmds)

	out := *output
	if out == "" {
		out = *mode + ".png"
	}
	if err := save(ctx, out, tf); err != nil {
		log.Fatal(err)
	}
	log.Printf("%s saved (%dx%d, %d commands, %d tiles drawn)", out, w, h, len(cmds), redrawn)
}
