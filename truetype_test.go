package media_test

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/media"
)

func TestTrueTypeFont(t *testing.T) {
	dev := newFakeDevice()
	gc := media.NewGraphicsContext(dev)

	font, err := media.NewTrueTypeFont(gc, goregular.TTF, 16, 'Ω')
	if err != nil {
		t.Fatalf("NewTrueTypeFont returned error: %v", err)
	}
	defer font.Destroy()

	a, ok := font.Glyph('A')
	if !ok {
		t.Fatal("expected a glyph for 'A'")
	}
	if a.Advance <= 0 || a.Bounds.Size.X <= 0 || a.Bounds.Position.Y >= 0 {
		t.Errorf("unexpected metrics for 'A': %+v", a)
	}
	if font.LineSpacing() < 16 {
		t.Errorf("expected line spacing of at least 16, got %v", font.LineSpacing())
	}
	if _, ok := font.Glyph('Ω'); !ok {
		t.Error("expected the extra rune to be baked")
	}
	if _, ok := font.Glyph('ü'); !ok {
		t.Error("expected Latin-1 to be baked")
	}
	if _, ok := font.Glyph('語'); ok {
		t.Error("expected no glyph for an unbaked rune")
	}

	size := font.Texture().Size()
	if size.X != 512 || size.Y == 0 {
		t.Errorf("unexpected atlas size %v", size)
	}
	r := a.TextureRect
	if r.Position.X+r.Size.X > float32(size.X) || r.Position.Y+r.Size.Y > float32(size.Y) {
		t.Errorf("glyph rect %+v outside the atlas", r)
	}
}

func TestTrueTypeFontInvalidData(t *testing.T) {
	gc := media.NewGraphicsContext(newFakeDevice())

	if _, err := media.NewTrueTypeFont(gc, []byte("not a font"), 12); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestTrueTypeFontText(t *testing.T) {
	gc := media.NewGraphicsContext(newFakeDevice())
	font, err := media.NewTrueTypeFont(gc, goregular.TTF, 20)
	if err != nil {
		t.Fatal(err)
	}

	txt := media.NewText(font, "Hi")
	if n := len(txt.FillVertices()); n != 8 {
		t.Errorf("expected 8 vertices, got %d", n)
	}
	if b := txt.LocalBounds(); b.Size.X <= 0 || b.Size.Y <= 0 {
		t.Errorf("expected non-empty bounds, got %+v", b)
	}
}
