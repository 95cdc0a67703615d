package uiraster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiraster/internal/pixfmt"
	"github.com/gogpu/uiraster/internal/tile"
)

// PixelFormat is the channel layout of an exported buffer.
type PixelFormat = pixfmt.Format

// Export formats.
const (
	FormatRGBA8 = pixfmt.FormatRGBA8
	FormatBGRA8 = pixfmt.FormatBGRA8
	FormatRGB8  = pixfmt.FormatRGB8
)

// FormatForTexture returns the export format matching a presentation
// texture format, or false if there is none.
func FormatForTexture(tf gputypes.TextureFormat) (PixelFormat, bool) {
	return pixfmt.FromTexture(tf)
}

// Export copies the rendered surface into dst, one row every stride bytes,
// in the given channel order. Pixels are premultiplied.
//
// Export only reads tile state and never renders. It returns
// ErrOutOfCapacity while the surface does not fit the tile capacity and
// ErrBufferTooSmall when dst cannot hold Height rows at stride.
func (c *Context) Export(dst []byte, stride int, format PixelFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidFormat, format)
	}
	if !c.fits() {
		return ErrOutOfCapacity
	}

	h := c.hdr
	width, height := int(h.width), int(h.height)
	if width == 0 || height == 0 {
		return nil
	}

	info := format.Info()
	bpp := info.BytesPerPixel
	row := format.RowBytes(width)
	if stride < row {
		return fmt.Errorf("%w: stride %d shorter than row of %d bytes", ErrBufferTooSmall, stride, row)
	}
	if need := (height-1)*stride + row; len(dst) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(dst), need)
	}

	tilesX := int(h.tilesX)
	order := info.Order
	for y := range height {
		out := dst[y*stride : y*stride+row]
		tiles := c.tiles[(y/tile.Size)*tilesX:]
		py := (y % tile.Size) * tile.Size
		for x := range width {
			src := &tiles[x/tile.Size][py+x%tile.Size]
			o := out[x*bpp : x*bpp+bpp]
			for k := range o {
				o[k] = src[order[k]]
			}
		}
	}
	return nil
}

// ExportRGBA is Export with FormatRGBA8.
func (c *Context) ExportRGBA(dst []byte, stride int) error {
	return c.Export(dst, stride, FormatRGBA8)
}

// ExportBGRA is Export with FormatBGRA8.
func (c *Context) ExportBGRA(dst []byte, stride int) error {
	return c.Export(dst, stride, FormatBGRA8)
}

// ExportRGB is Export with FormatRGB8. Alpha is dropped.
func (c *Context) ExportRGB(dst []byte, stride int) error {
	return c.Export(dst, stride, FormatRGB8)
}

// Image returns a copy of the rendered surface.
func (c *Context) Image() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(c.hdr.width), int(c.hdr.height)))
	if err := c.ExportRGBA(img.Pix, img.Stride); err != nil {
		return nil, err
	}
	return img, nil
}

// EncodePNG writes the rendered surface to w as a PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("uiraster: encode png: %w", err)
	}
	return nil
}
