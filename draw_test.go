package uiraster

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"
)

var testFill = Color{R: 10, G: 20, B: 30, A: 255}

// tileHashes snapshots the committed hash of every tile.
func tileHashes(c *Context) []uint32 {
	n := c.TilesX() * c.TilesY()
	out := make([]uint32, n)
	for i := range out {
		out[i] = c.info[i].Old
	}
	return out
}

func mustImage(t *testing.T, c *Context) []byte {
	t.Helper()
	img, err := c.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	return img.Pix
}

// =============================================================================
// Dirty cache
// =============================================================================

func TestDraw_SingleTileRect(t *testing.T) {
	c := newTestContext(t, 32, 32)
	cmds := []Command{RectCommand(Rect{X0: 0, Y0: 0, X1: 16, Y1: 16}, Shape{Fill: testFill})}

	if got := c.Draw(cmds); got != 4 {
		t.Fatalf("first Draw() = %d, want 4", got)
	}

	// Samples sit on integer coordinates, so the rect's left column and
	// top row lie exactly on its edge at distance 0 and get no coverage.
	for y := range 16 {
		for x := range 16 {
			want := testFill.bytes()
			if x == 0 || y == 0 {
				want = Transparent.bytes()
			}
			if got := pixelAt(c, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	for y := range 32 {
		for x := range 32 {
			if x < 16 && y < 16 {
				continue
			}
			if got := pixelAt(c, x, y); got != Transparent.bytes() {
				t.Fatalf("pixel (%d,%d) outside the rect = %v, want clear", x, y, got)
			}
		}
	}

	if got := c.Draw(cmds); got != 0 {
		t.Errorf("second Draw() = %d, want 0", got)
	}
}

func TestDraw_FullTileCoverage(t *testing.T) {
	c := newTestContext(t, 32, 32)
	// Extending one pixel up and left puts every tile pixel strictly inside.
	cmds := []Command{RectCommand(Rect{X0: -1, Y0: -1, X1: 16, Y1: 16}, Shape{Fill: testFill})}

	if got := c.Draw(cmds); got != 4 {
		t.Fatalf("Draw() = %d, want 4", got)
	}
	for y := range 16 {
		for x := range 16 {
			if got := pixelAt(c, x, y); got != testFill.bytes() {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, testFill.bytes())
			}
		}
	}
	if got := pixelAt(c, 16, 16); got != Transparent.bytes() {
		t.Errorf("pixel (16,16) = %v, want clear", got)
	}
}

func TestDraw_ShiftRedrawsTouchedTiles(t *testing.T) {
	c := newTestContext(t, 32, 32)
	cmds := []Command{RectCommand(Rect{X0: 0, Y0: 0, X1: 16, Y1: 16}, Shape{Fill: testFill})}
	c.Draw(cmds)
	before := tileHashes(c)

	cmds[0].Rect = cmds[0].Rect.Translate(1, 0)
	if got := c.Draw(cmds); got != 2 {
		t.Errorf("Draw() after shift = %d, want 2", got)
	}

	after := tileHashes(c)
	// Tiles (0,1) and (1,1) touch neither position.
	for _, i := range []int{2, 3} {
		if before[i] != after[i] {
			t.Errorf("tile %d hash changed: %#x -> %#x", i, before[i], after[i])
		}
	}
	if got := pixelAt(c, 16, 5); got != testFill.bytes() {
		t.Errorf("pixel (16,5) = %v, want fill after shift", got)
	}
}

func TestDraw_Idempotent(t *testing.T) {
	c := newTestContext(t, 100, 70)
	cmds := testScene()

	if got, want := c.Draw(cmds), c.TilesX()*c.TilesY(); got != want {
		t.Errorf("first Draw() = %d, want %d", got, want)
	}
	for i := range 3 {
		if got := c.Draw(cmds); got != 0 {
			t.Errorf("repeat Draw() #%d = %d, want 0", i, got)
		}
	}
}

func TestDraw_Locality(t *testing.T) {
	c := newTestContext(t, 64, 64)
	cmds := []Command{
		RectCommand(XYWH(-8, -8, 80, 80), Shape{Fill: Opaque(30, 30, 30)}),
		RectCommand(Rect{X0: 20, Y0: 20, X1: 40, Y1: 40}, Shape{Fill: Opaque(200, 0, 0), CornerRadius: 3}),
		CircleCommand(XYWH(44, 2, 12, 12), Shape{Fill: Opaque(0, 200, 0)}),
	}
	c.Draw(cmds)
	before := tileHashes(c)

	cmds[1].Rect = cmds[1].Rect.Translate(1, 0)
	if got := c.Draw(cmds); got != 4 {
		t.Errorf("Draw() = %d, want 4", got)
	}

	// Old and new positions both span tiles x 1..2, y 1..2.
	after := tileHashes(c)
	for ty := range 4 {
		for tx := range 4 {
			i := ty*4 + tx
			touched := tx >= 1 && tx <= 2 && ty >= 1 && ty <= 2
			if changed := before[i] != after[i]; changed != touched {
				t.Errorf("tile (%d,%d) changed = %v, want %v", tx, ty, changed, touched)
			}
		}
	}
}

func TestDraw_PartialLastTile(t *testing.T) {
	c := newTestContext(t, 48, 16)
	c.Draw(nil)

	// Covers a sliver of the third tile.
	cmds := []Command{RectCommand(Rect{X0: 10, Y0: -4, X1: 33.5, Y1: 20}, Shape{Fill: White})}
	if got := c.Draw(cmds); got != 3 {
		t.Errorf("Draw() = %d, want 3", got)
	}
	if got := pixelAt(c, 32, 8); got != White.bytes() {
		t.Errorf("pixel (32,8) = %v, want white", got)
	}
}

func TestDraw_Determinism(t *testing.T) {
	a := newTestContext(t, 90, 50, WithClearColor(Opaque(240, 240, 240)))
	b := newTestContext(t, 90, 50, WithClearColor(Opaque(240, 240, 240)))
	a.Draw(testScene())
	b.Draw(testScene())

	if !bytes.Equal(mustImage(t, a), mustImage(t, b)) {
		t.Error("identical inputs produced different pixels")
	}
}

func TestDraw_Stats(t *testing.T) {
	c := newTestContext(t, 64, 32)
	c.Draw([]Command{RectCommand(XYWH(0, 0, 8, 8), Shape{Fill: White})})

	s := c.Stats()
	if s.Tiles != 8 || s.Redrawn != 8 {
		t.Errorf("Stats() = %+v, want 8 tiles, 8 redrawn", s)
	}
	// Only tile (0,0) has per-pixel work.
	if s.Filled != 7 {
		t.Errorf("Stats().Filled = %d, want 7", s.Filled)
	}

	c.Draw([]Command{RectCommand(XYWH(0, 0, 8, 8), Shape{Fill: White})})
	if s := c.Stats(); s.Redrawn != 0 || s.Filled != 0 {
		t.Errorf("Stats() after no-op draw = %+v", s)
	}
}

// =============================================================================
// Hash combination semantics
// =============================================================================

func overlapping() (Command, Command) {
	a := RectCommand(XYWH(2, 2, 20, 20), Shape{Fill: Color{R: 120, A: 128}})
	b := RectCommand(XYWH(8, 8, 20, 20), Shape{Fill: Color{B: 120, A: 128}})
	return a, b
}

// Reordering overlapping commands changes the correct output, but the
// default hash is order-insensitive and keeps the stale tiles.
func TestDraw_ReorderIgnoredByDefault(t *testing.T) {
	a, b := overlapping()
	c := newTestContext(t, 32, 32)
	c.Draw([]Command{a, b})

	if got := c.Draw([]Command{b, a}); got != 0 {
		t.Errorf("Draw() after reorder = %d, want 0", got)
	}
}

func TestDraw_ReorderWithOrderedHash(t *testing.T) {
	a, b := overlapping()
	c := newTestContext(t, 32, 32, WithOrderedHash())
	c.Draw([]Command{a, b})

	if got := c.Draw([]Command{b, a}); got == 0 {
		t.Fatal("Draw() after reorder = 0, want redraw")
	}

	fresh := newTestContext(t, 32, 32)
	fresh.Draw([]Command{b, a})
	if !bytes.Equal(mustImage(t, c), mustImage(t, fresh)) {
		t.Error("reordered output differs from a fresh render")
	}
}

// Two identical commands on a tile cancel out of the default hash.
func TestDraw_DuplicatesCancelByDefault(t *testing.T) {
	a, _ := overlapping()
	c := newTestContext(t, 32, 32)
	c.Draw(nil)

	if got := c.Draw([]Command{a, a}); got != 0 {
		t.Errorf("Draw() with a duplicate pair = %d, want 0", got)
	}
}

func TestDraw_DuplicatesWithOrderedHash(t *testing.T) {
	a, _ := overlapping()
	c := newTestContext(t, 32, 32, WithOrderedHash())
	c.Draw(nil)

	if got := c.Draw([]Command{a, a}); got == 0 {
		t.Error("Draw() with a duplicate pair = 0, want redraw")
	}
}

func TestDraw_ImageIdentity(t *testing.T) {
	pix := bytes.Repeat([]byte{255}, 16)
	c := newTestContext(t, 16, 16)
	cmds := []Command{AlphaImageCommand(XYWH(0, 0, 4, 4), White, pix, 4, 1)}
	c.Draw(cmds)

	// In-place edits are invisible to the cache.
	pix[0] = 0
	if got := c.Draw(cmds); got != 0 {
		t.Errorf("Draw() after in-place edit = %d, want 0", got)
	}

	cmds[0].Image.Pix = bytes.Clone(pix)
	if got := c.Draw(cmds); got != 1 {
		t.Errorf("Draw() with a new slice = %d, want 1", got)
	}
	if got := pixelAt(c, 0, 0); got != Transparent.bytes() {
		t.Errorf("pixel (0,0) = %v, want untouched clear", got)
	}
}

// =============================================================================
// Circle tightening
// =============================================================================

func TestDraw_TightensCircles(t *testing.T) {
	c := newTestContext(t, 64, 32)
	cmds := []Command{
		CircleCommand(Rect{X0: 0, Y0: 0, X1: 40, Y1: 20}, Shape{Fill: White}),
		RectCommand(Rect{X0: 0, Y0: 0, X1: 40, Y1: 20}, Shape{Fill: White}),
	}
	c.Draw(cmds)

	if want := (Rect{X0: 10, Y0: 0, X1: 30, Y1: 20}); cmds[0].Rect != want {
		t.Errorf("circle rect = %+v, want %+v", cmds[0].Rect, want)
	}
	if want := (Rect{X0: 0, Y0: 0, X1: 40, Y1: 20}); cmds[1].Rect != want {
		t.Errorf("rect command modified: %+v", cmds[1].Rect)
	}
	if got := c.Draw(cmds); got != 0 {
		t.Errorf("Draw() with tightened circle = %d, want 0", got)
	}
}

func TestDraw_FractionalCirclesIdempotent(t *testing.T) {
	c := newTestContext(t, 256, 256)
	rng := rand.New(rand.NewPCG(7, 11))
	cmds := make([]Command, 1)
	for i := range 5000 {
		x := rng.Float32() * 200
		y := rng.Float32() * 200
		cmds[0] = CircleCommand(Rect{
			X0: x,
			Y0: y,
			X1: x + 1 + rng.Float32()*50,
			Y1: y + 1 + rng.Float32()*50,
		}, Shape{Fill: White, Outline: Black, OutlineRadius: 1})
		c.Draw(cmds)
		tight := cmds[0].Rect
		if got := c.Draw(cmds); got != 0 {
			t.Fatalf("circle %d: second Draw() = %d, want 0 (rect %+v -> %+v)",
				i, got, tight, cmds[0].Rect)
		}
	}
}

// =============================================================================
// Malformed input
// =============================================================================

func TestDraw_MalformedGeometry(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	shape := Shape{Fill: White, Outline: Opaque(255, 0, 0), OutlineRadius: 1}

	cmds := []Command{
		RectCommand(Rect{X0: 20, Y0: 20, X1: 10, Y1: 30}, shape),
		RectCommand(Rect{X0: 10, Y0: 4, X1: 5, Y1: 12}, shape),
		CircleCommand(Rect{X0: 30, Y0: 40, X1: 20, Y1: 30}, shape),
		RectCommand(Rect{X0: 5, Y0: 5, X1: 5, Y1: 30}, shape),
		RectCommand(Rect{X0: -100, Y0: -100, X1: -50, Y1: -50}, shape),
		RectCommand(Rect{X0: 500, Y0: 500, X1: 600, Y1: 600}, shape),
		RectCommand(Rect{X0: nan, Y0: 0, X1: 10, Y1: 10}, shape),
		CircleCommand(Rect{X0: 0, Y0: nan, X1: 10, Y1: 10}, shape),
		RectCommand(Rect{X0: -inf, Y0: 40, X1: -inf, Y1: 50}, shape),
		AlphaImageCommand(Rect{X0: 30, Y0: 30, X1: 20, Y1: 40}, White, []byte{255}, 1, 1),
	}

	c := newTestContext(t, 48, 48)
	c.Draw(cmds)

	for y := range 48 {
		for x := range 48 {
			if got := pixelAt(c, x, y); got != Transparent.bytes() {
				t.Fatalf("pixel (%d,%d) = %v, want clear", x, y, got)
			}
		}
	}
}

func TestDraw_HugeGeometry(t *testing.T) {
	inf := float32(math.Inf(1))
	c := newTestContext(t, 40, 40)
	cmds := []Command{
		RectCommand(Rect{X0: -1e30, Y0: -1e30, X1: 1e30, Y1: 1e30}, Shape{Fill: testFill}),
		CircleCommand(Rect{X0: -inf, Y0: -inf, X1: inf, Y1: inf}, Shape{Fill: White}),
		AlphaImageCommand(Rect{X0: -1e20, Y0: 0, X1: 1e20, Y1: 40}, White, []byte{255}, 1, 1e-30),
		RGBAImageCommand(Rect{X0: -inf, Y0: 0, X1: 40, Y1: 40}, White, make([]byte, 4), 4, 1),
	}
	if got := c.Draw(cmds); got != 9 {
		t.Errorf("Draw() = %d, want 9", got)
	}
	if got := pixelAt(c, 20, 20); got != testFill.bytes() {
		t.Errorf("pixel (20,20) = %v, want %v", got, testFill.bytes())
	}
}

// testScene exercises every command kind.
func testScene() []Command {
	glyph := []byte{
		0, 64, 128, 255,
		64, 128, 255, 128,
		128, 255, 128, 64,
		255, 128, 64, 0,
	}
	rgba := make([]byte, 4*4*4)
	for i := range 16 {
		v := uint8(i * 16)
		copy(rgba[i*4:], []byte{v, 255 - v, 0, 255})
	}
	return []Command{
		RectCommand(XYWH(-4, -4, 200, 200), Shape{Fill: Opaque(230, 230, 235)}),
		RectCommand(XYWH(6, 6, 60, 28), Shape{
			Fill:          Opaque(60, 90, 200),
			Outline:       Opaque(20, 20, 40),
			OutlineRadius: 1.5,
			CornerRadius:  6,
		}),
		CircleCommand(XYWH(50, 20, 30, 24), Shape{
			Fill:          Color{R: 100, G: 20, B: 20, A: 128},
			Outline:       Opaque(0, 0, 0),
			OutlineRadius: 1,
		}),
		AlphaImageCommand(XYWH(12, 40, 8, 8), Opaque(0, 0, 0), glyph, 4, 2),
		RGBAImageCommand(XYWH(70, 30, 12, 12), Color{A: 0}, rgba, 16, 3),
	}
}
