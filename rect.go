package uiraster

// Rect is an axis-aligned box in canvas pixels: [X0, X1) x [Y0, Y1).
//
// No ordering is enforced. A rect with X0 >= X1 or Y0 >= Y1 is empty and
// intersects nothing, so malformed geometry draws nothing.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// XYWH creates a Rect from its top-left corner and size.
func XYWH(x, y, w, h float32) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Width returns X1 - X0.
func (r Rect) Width() float32 { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() float32 { return r.Y1 - r.Y0 }

// Empty reports whether r contains no area. NaN coordinates are empty.
func (r Rect) Empty() bool {
	return !(r.X0 < r.X1) || !(r.Y0 < r.Y1)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Intersects reports whether r and o overlap with positive area.
// All comparisons are strict, and an empty or inverted rect intersects
// nothing.
func (r Rect) Intersects(o Rect) bool {
	return max(r.X0, o.X0) < min(r.X1, o.X1) && max(r.Y0, o.Y0) < min(r.Y1, o.Y1)
}

// Inside reports whether r lies entirely within o.
func (r Rect) Inside(o Rect) bool {
	return r.X1 <= o.X1 && o.X0 <= r.X0 && r.Y1 <= o.Y1 && o.Y0 <= r.Y0
}

// inset returns r shrunk by d on every side.
func (r Rect) inset(d float32) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// intersect returns the overlap of r and o. The result may be empty.
func (r Rect) intersect(o Rect) Rect {
	return Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
}
