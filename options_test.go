package uiraster

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.clear != Transparent {
		t.Errorf("default clear = %+v, want transparent", o.clear)
	}
	if o.ordered {
		t.Error("ordered hashing on by default")
	}
	if o.logger != nil {
		t.Error("default logger set")
	}
}

func TestOptions_Apply(t *testing.T) {
	l := slog.New(nopHandler{})
	c := newTestContext(t, 16, 16,
		WithClearColor(Opaque(1, 2, 3)),
		WithOrderedHash(),
		WithLogger(l),
	)

	if c.ClearColor() != Opaque(1, 2, 3) {
		t.Errorf("ClearColor() = %+v", c.ClearColor())
	}
	if !c.hdr.ordered {
		t.Error("WithOrderedHash not applied")
	}
	if c.log() != l {
		t.Error("WithLogger not applied")
	}
}
