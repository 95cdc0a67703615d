package uiraster

// coversTile reports whether every pixel of the tile tr lies in the flat
// interior of a shape command, where per-pixel evaluation would just
// composite the fill colour at full coverage.
//
// The non-fill margin is the outline band, the corner rounding and two
// pixels of antialiasing allowance.
func (c *Command) coversTile(tr Rect) bool {
	s := &c.Shape
	switch c.Kind {
	case KindRect:
		margin := float32(s.OutlineRadius*2) + s.CornerRadius + 2
		return tr.Inside(c.Rect.inset(margin))

	case KindCircle:
		margin := float32(s.OutlineRadius*2) + 2
		r := c.Rect
		w2 := (r.X1 - r.X0) * 0.5
		h2 := (r.Y1 - r.Y0) * 0.5
		fillRadius := min(w2, h2) - margin
		if !(fillRadius >= 0) {
			return false
		}
		limit := fillRadius * fillRadius
		cx := r.X0 + w2
		cy := r.Y0 + h2
		corners := [4][2]float32{
			{tr.X0, tr.Y0}, {tr.X0, tr.Y1},
			{tr.X1, tr.Y0}, {tr.X1, tr.Y1},
		}
		for _, p := range corners {
			dx := p[0] - cx
			dy := p[1] - cy
			if !(float32(dx*dx)+float32(dy*dy) <= limit) {
				return false
			}
		}
		return true
	}
	return false
}
