package main

import (
	"github.com/gogpu/uiraster"
	"github.com/gogpu/uiraster/internal/glyphatlas"
)

var labels = []string{"Test Button", "Testing", "Play", "GO HERE", "This cool", "Goodbye"}

var (
	buttonIdle    = uiraster.Opaque(100, 100, 100)
	buttonHovered = uiraster.Opaque(30, 30, 30)
	buttonOutline = uiraster.Opaque(150, 150, 150)
)

type button struct {
	rect  uiraster.Rect
	label string
}

// column lays out one button per label, stacked downward from (x, y).
func column(x, y, w, h, gap float32, labels []string) []button {
	out := make([]button, len(labels))
	for i, l := range labels {
		out[i] = button{
			rect:  uiraster.XYWH(x, y+float32(i)*(h+gap), w, h),
			label: l,
		}
	}
	return out
}

func (b button) hovered(mx, my float32) bool {
	r := b.rect
	return mx >= r.X0 && mx < r.X1 && my >= r.Y0 && my < r.Y1
}

// appendCommands appends the button body followed by its label.
func (b button) appendCommands(cmds []uiraster.Command, atlas *glyphatlas.Atlas, mx, my float32) []uiraster.Command {
	fill := buttonIdle
	if b.hovered(mx, my) {
		fill = buttonHovered
	}
	cmds = append(cmds, uiraster.RectCommand(b.rect, uiraster.Shape{
		Fill:          fill,
		Outline:       buttonOutline,
		OutlineRadius: 3,
		CornerRadius:  5,
	}))
	return append(cmds, atlas.Layout(b.label, b.rect.X0+10, b.rect.Y1-15, uiraster.White)...)
}
