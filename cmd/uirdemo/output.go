package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiraster"
)

// textureFormats are the surface formats a .raw file can be written in.
var textureFormats = []gputypes.TextureFormat{
	gputypes.TextureFormatRGBA8Unorm,
	gputypes.TextureFormatBGRA8Unorm,
}

// parseTexture looks up a texture format by name, ignoring case.
func parseTexture(name string) (gputypes.TextureFormat, error) {
	for _, tf := range textureFormats {
		if strings.EqualFold(tf.String(), name) {
			return tf, nil
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("unsupported texture format %q", name)
}

// save writes the surface to path, choosing the format by extension.
// Raw files hold tightly packed rows in the layout of texture.
func save(ctx *uiraster.Context, path string, texture gputypes.TextureFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return writePPM(ctx, f)
	case ".png":
		return ctx.EncodePNG(f)
	case ".raw":
		return writeRaw(ctx, f, texture)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

// writePPM writes the surface as a binary PPM. Alpha is dropped.
func writePPM(ctx *uiraster.Context, f *os.File) error {
	w, h := int(ctx.Width()), int(ctx.Height())
	stride := uiraster.FormatRGB8.RowBytes(w)
	buf := make([]byte, stride*h)
	if err := ctx.ExportRGB(buf, stride); err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", w, h)
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// writeRaw writes the surface as it would be uploaded to a texture of
// format tf.
func writeRaw(ctx *uiraster.Context, f *os.File, tf gputypes.TextureFormat) error {
	format, ok := uiraster.FormatForTexture(tf)
	if !ok {
		return fmt.Errorf("no export layout for texture format %v", tf)
	}
	stride := format.RowBytes(int(ctx.Width()))
	buf := make([]byte, stride*int(ctx.Height()))
	if err := ctx.Export(buf, stride, format); err != nil {
		return err
	}
	_, err := f.Write(buf)
	return err
}
