package media_test

import (
	"testing"

	"github.com/go-theft-auto/media"
)

// fakeFont has 10 pixel glyphs for a few letters and '?'.
type fakeFont struct{}

func (fakeFont) Texture() *media.Texture { return nil }
func (fakeFont) LineSpacing() float32    { return 12 }

func (fakeFont) Glyph(r rune) (media.Glyph, bool) {
	switch r {
	case ' ':
		return media.Glyph{Advance: 5}, true
	case 'a', 'b', 'c', 'd', '?', 'é':
		return media.Glyph{
			Advance:     10,
			Bounds:      media.FloatRect{Position: media.Vec2f{Y: -10}, Size: media.Vec2f{X: 10, Y: 10}},
			TextureRect: media.FloatRect{Position: media.Vec2f{X: float32(r)}, Size: media.Vec2f{X: 10, Y: 10}},
		}, true
	}
	return media.Glyph{}, false
}

func TestTextLayout(t *testing.T) {
	txt := media.NewText(fakeFont{}, "ab")

	fill := txt.FillVertices()
	if len(fill) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(fill))
	}
	if fill[0].Position != (media.Vec2f{X: 0, Y: 2}) {
		t.Errorf("expected the first glyph at (0, 2), got %v", fill[0].Position)
	}
	if fill[4].Position != (media.Vec2f{X: 10, Y: 2}) {
		t.Errorf("expected the second glyph at (10, 2), got %v", fill[4].Position)
	}
	b := txt.LocalBounds()
	if b != (media.FloatRect{Position: media.Vec2f{Y: 2}, Size: media.Vec2f{X: 20, Y: 10}}) {
		t.Errorf("unexpected bounds %+v", b)
	}
}

func TestTextMissingGlyph(t *testing.T) {
	txt := media.NewText(fakeFont{}, "aΩ")

	fill := txt.FillVertices()
	if len(fill) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(fill))
	}
	if u := fill[4].TexCoords.X; u != '?' {
		t.Errorf("expected the '?' glyph, got u=%v", u)
	}
}

func TestTextNormalizes(t *testing.T) {
	txt := media.NewText(fakeFont{}, "é")

	if txt.String() != "é" {
		t.Errorf("expected the composed form, got %q", txt.String())
	}
	if n := len(txt.FillVertices()); n != 4 {
		t.Errorf("expected one glyph, got %d vertices", n)
	}
}

func TestTextFindCharacterPos(t *testing.T) {
	txt := media.NewText(fakeFont{}, "a b\ncd")

	tests := []struct {
		index int
		want  media.Vec2f
	}{
		{0, media.Vec2f{}},
		{2, media.Vec2f{X: 15}},
		{5, media.Vec2f{X: 10, Y: 12}},
		{99, media.Vec2f{X: 20, Y: 12}},
	}
	for _, tt := range tests {
		if got := txt.FindCharacterPos(tt.index); got != tt.want {
			t.Errorf("index %d: expected %v, got %v", tt.index, tt.want, got)
		}
	}
}

func TestTextOutline(t *testing.T) {
	txt := media.NewText(fakeFont{}, "a")
	txt.SetOutlineThickness(2)

	if n := len(txt.OutlineVertices()); n != 16 {
		t.Errorf("expected 16 outline vertices, got %d", n)
	}
	if b := txt.LocalBounds(); b.Size != (media.Vec2f{X: 14, Y: 14}) {
		t.Errorf("expected the outline in the bounds, got %+v", b)
	}
}

func TestTextSetStringRelayouts(t *testing.T) {
	txt := media.NewText(fakeFont{}, "abc")
	txt.FillVertices()

	txt.SetString("d")
	if n := len(txt.FillVertices()); n != 4 {
		t.Errorf("expected 4 vertices, got %d", n)
	}
	txt.SetString("")
	if txt.LocalBounds() != (media.FloatRect{}) {
		t.Errorf("expected empty bounds, got %+v", txt.LocalBounds())
	}
}

func TestTextDrawIndexed(t *testing.T) {
	dev, _, rt := newTestTarget(t)
	font, err := media.NewBitmapFont(rt.GraphicsContext(), 2)
	if err != nil {
		t.Fatal(err)
	}

	rt.Draw(media.NewText(font, "ab"), media.DefaultRenderStates())
	if len(dev.drawIndexed) != 1 || dev.drawIndexed[0] != 12 {
		t.Errorf("expected one draw of 12 indices, got %v", dev.drawIndexed)
	}
}

func TestBitmapFontFallback(t *testing.T) {
	gc := media.NewGraphicsContext(newFakeDevice())
	font, err := media.NewBitmapFont(gc, 1)
	if err != nil {
		t.Fatal(err)
	}

	arrow, ok := font.Glyph('→')
	gt, _ := font.Glyph('>')
	if !ok || arrow != gt {
		t.Errorf("expected '→' to use the '>' glyph")
	}
	if _, ok := font.Glyph('語'); ok {
		t.Error("expected no glyph outside ASCII")
	}
	if font.Texture().Size() != (media.Vec2u{X: 128, Y: 48}) {
		t.Errorf("expected a 128x48 atlas, got %v", font.Texture().Size())
	}
}
