// Package uiraster is a CPU rasterizer for user interface primitives with
// a per-tile dirty cache.
//
// # Overview
//
// A Context renders rounded rectangles, circles, tinted alpha bitmaps and
// RGBA bitmaps into a grid of 16x16 pixel tiles. Each Draw recomputes a
// content hash per tile from the clear colour and the commands overlapping
// it, and only tiles whose hash changed since the previous Draw are
// rendered again. A user interface that redraws its full command list every
// frame therefore only pays for the parts that actually moved.
//
// # Memory
//
// The Context never allocates after New. Its header, the per-tile hash
// pairs and the tile pixels are carved from one caller-provided block:
//
//	mem := make([]byte, uiraster.MinimumSize(640, 480))
//	ctx, err := uiraster.New(640, 480, mem, uiraster.WithClearColor(uiraster.White))
//	if err != nil {
//	    return err
//	}
//
// A block smaller than MinimumSize still yields a Context, with fewer tiles
// than the surface needs. Such a Context reports ErrorOutOfCapacity through
// Errors and refuses to draw until it is resized to fit. Resize never moves
// or grows the block.
//
// # Drawing
//
//	cmds := []uiraster.Command{
//	    uiraster.RectCommand(uiraster.XYWH(10, 10, 120, 32), uiraster.Shape{
//	        Fill:          uiraster.Opaque(40, 40, 48),
//	        Outline:       uiraster.Opaque(90, 90, 110),
//	        OutlineRadius: 1,
//	        CornerRadius:  6,
//	    }),
//	    uiraster.CircleCommand(uiraster.XYWH(150, 10, 32, 32), uiraster.Shape{
//	        Fill: uiraster.Opaque(200, 60, 60),
//	    }),
//	}
//	if ctx.Draw(cmds) > 0 {
//	    ctx.ExportRGBA(frame, stride)
//	}
//
// Colours are premultiplied R,G,B,A bytes. Compositing is source-over with
// truncation to 8 bits, and output is identical across runs and platforms.
//
// # Cache semantics
//
// By default a tile's hash is the XOR of the hashes of its commands. It
// depends on which commands overlap the tile but not on their order, and
// two identical commands on one tile cancel. WithOrderedHash mixes each
// command's index into its hash to make reordering visible to the cache.
//
// Image commands hash the identity of their pixel slice, not its contents.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X grows right and Y grows down.
// Shape samples are taken at integer pixel coordinates.
package uiraster
