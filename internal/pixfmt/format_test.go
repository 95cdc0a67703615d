package pixfmt

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormat_BytesPerPixel(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{FormatRGBA8, 4},
		{FormatBGRA8, 4},
		{FormatRGB8, 3},
		{Format(200), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.expected {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatRGBA8, true},
		{FormatBGRA8, true},
		{FormatRGB8, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasAlpha(); got != tt.expected {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_Order(t *testing.T) {
	src := [4]uint8{'r', 'g', 'b', 'a'}
	tests := []struct {
		format Format
		want   string
	}{
		{FormatRGBA8, "rgba"},
		{FormatBGRA8, "bgra"},
		{FormatRGB8, "rgb"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			info := tt.format.Info()
			got := make([]byte, info.BytesPerPixel)
			for i := range got {
				got[i] = src[info.Order[i]]
			}
			if string(got) != tt.want {
				t.Errorf("reordered = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_RowBytes(t *testing.T) {
	if got := FormatRGB8.RowBytes(10); got != 30 {
		t.Errorf("RGB8.RowBytes(10) = %d, want 30", got)
	}
	if got := FormatBGRA8.RowBytes(10); got != 40 {
		t.Errorf("BGRA8.RowBytes(10) = %d, want 40", got)
	}
}

func TestFormat_IsValid(t *testing.T) {
	if !FormatRGB8.IsValid() {
		t.Error("RGB8 should be valid")
	}
	if Format(formatCount).IsValid() {
		t.Error("formatCount should be invalid")
	}
	if Format(200).String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", Format(200).String())
	}
}

func TestFromTexture(t *testing.T) {
	tests := []struct {
		name   string
		tf     gputypes.TextureFormat
		want   Format
		wantOK bool
	}{
		{"rgba", gputypes.TextureFormatRGBA8Unorm, FormatRGBA8, true},
		{"bgra", gputypes.TextureFormatBGRA8Unorm, FormatBGRA8, true},
		{"r8", gputypes.TextureFormatR8Unorm, 0, false},
		{"depth", gputypes.TextureFormatDepth24PlusStencil8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTexture(tt.tf)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("FromTexture(%v) = (%v, %v), want (%v, %v)", tt.tf, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
