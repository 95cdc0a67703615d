// Package pixfmt describes the linear pixel layouts the tile grid can be
// exported to.
package pixfmt

import "github.com/gogpu/gputypes"

// Format represents a destination pixel layout.
type Format uint8

const (
	// FormatRGBA8 is 32-bit R,G,B,A, the native tile layout.
	FormatRGBA8 Format = iota

	// FormatBGRA8 is 32-bit B,G,R,A.
	// Common for window surfaces on Windows and most GPU swapchains.
	FormatBGRA8

	// FormatRGB8 is 24-bit R,G,B with alpha dropped.
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes written per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format carries the alpha channel.
	HasAlpha bool

	// Order maps each destination byte to the source R,G,B,A channel
	// index. Only the first BytesPerPixel entries are meaningful.
	Order [4]uint8
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGBA8: {
		BytesPerPixel: 4,
		HasAlpha:      true,
		Order:         [4]uint8{0, 1, 2, 3},
	},
	FormatBGRA8: {
		BytesPerPixel: 4,
		HasAlpha:      true,
		Order:         [4]uint8{2, 1, 0, 3},
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		HasAlpha:      false,
		Order:         [4]uint8{0, 1, 2, 0},
	},
}

var formatNames = [formatCount]string{
	FormatRGBA8: "RGBA8",
	FormatBGRA8: "BGRA8",
	FormatRGB8:  "RGB8",
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// RowBytes returns the minimum number of bytes for a row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// IsValid returns true if this is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return formatNames[f]
}

// FromTexture returns the export format matching a presentation texture
// format, so a frame can be written straight into a mapped surface.
// Reports false for texture formats with no matching 8-bit layout.
func FromTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8, true
	default:
		return 0, false
	}
}
