package media

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	trueTypeAtlasWidth = 512
	trueTypePadding    = 1
)

// TrueTypeFont is a TrueType or OpenType face rasterized at one size.
// Printable ASCII and Latin-1 are baked when the font is created, along
// with any extra runes asked for.
type TrueTypeFont struct {
	texture     *Texture
	glyphs      map[rune]Glyph
	lineSpacing float32
}

var _ FontAtlas = (*TrueTypeFont)(nil)

type bakedGlyph struct {
	r       rune
	bounds  image.Rectangle
	mask    *image.Alpha
	advance fixed.Int26_6
}

// NewTrueTypeFont parses data and bakes the atlas at size pixels.
func NewTrueTypeFont(gc *GraphicsContext, data []byte, size float32, extra ...rune) (*TrueTypeFont, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	runes := make([]rune, 0, 95+96+len(extra))
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	for r := rune(160); r < 256; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, extra...)

	baked := make([]bakedGlyph, 0, len(runes))
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		if g, ok := rasterizeGlyph(face, r); ok {
			baked = append(baked, g)
		}
	}

	atlas, rects := packGlyphs(baked)
	texture, err := NewTextureFromImage(gc, atlas)
	if err != nil {
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}

	f := &TrueTypeFont{
		texture:     texture,
		glyphs:      make(map[rune]Glyph, len(baked)),
		lineSpacing: float32(face.Metrics().Height) / 64,
	}
	for i, g := range baked {
		f.glyphs[g.r] = Glyph{
			Advance: float32(g.advance) / 64,
			Bounds: FloatRect{
				Position: Vec2f{X: float32(g.bounds.Min.X), Y: float32(g.bounds.Min.Y)},
				Size:     Vec2f{X: float32(g.bounds.Dx()), Y: float32(g.bounds.Dy())},
			},
			TextureRect: FloatRect{
				Position: Vec2f{X: float32(rects[i].Min.X), Y: float32(rects[i].Min.Y)},
				Size:     Vec2f{X: float32(rects[i].Dx()), Y: float32(rects[i].Dy())},
			},
		}
	}
	return f, nil
}

// LoadTrueTypeFont reads a font file and bakes it at size pixels.
func LoadTrueTypeFont(gc *GraphicsContext, path string, size float32, extra ...rune) (*TrueTypeFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return NewTrueTypeFont(gc, data, size, extra...)
}

// rasterizeGlyph draws r into its own mask. Bounds are relative to the pen
// on the baseline.
func rasterizeGlyph(face font.Face, r rune) (bakedGlyph, bool) {
	fb, advance, ok := face.GlyphBounds(r)
	if !ok {
		return bakedGlyph{}, false
	}
	bounds := image.Rect(fb.Min.X.Floor(), fb.Min.Y.Floor(), fb.Max.X.Ceil(), fb.Max.Y.Ceil())
	g := bakedGlyph{r: r, bounds: bounds, advance: advance}
	if bounds.Empty() {
		return g, true
	}
	g.mask = image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	d := &font.Drawer{
		Dst:  g.mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(-bounds.Min.X, -bounds.Min.Y),
	}
	d.DrawString(string(r))
	return g, true
}

// packGlyphs lays the masks out on shelves of a fixed width atlas and
// returns the atlas with one rectangle per glyph. Coverage goes to alpha
// over white.
func packGlyphs(glyphs []bakedGlyph) (*image.RGBA, []image.Rectangle) {
	rects := make([]image.Rectangle, len(glyphs))
	x, y, shelf := trueTypePadding, trueTypePadding, 0
	for i, g := range glyphs {
		w, h := g.bounds.Dx(), g.bounds.Dy()
		if x+w+trueTypePadding > trueTypeAtlasWidth {
			x = trueTypePadding
			y += shelf + trueTypePadding
			shelf = 0
		}
		rects[i] = image.Rect(x, y, x+w, y+h)
		x += w + trueTypePadding
		shelf = max(shelf, h)
	}

	atlas := image.NewRGBA(image.Rect(0, 0, trueTypeAtlasWidth, y+shelf+trueTypePadding))
	for i, g := range glyphs {
		if g.mask == nil {
			continue
		}
		draw.DrawMask(atlas, rects[i], image.White, image.Point{}, g.mask, image.Point{}, draw.Src)
	}
	// Straight alpha over white, like BitmapFont.
	for i := 0; i < len(atlas.Pix); i += 4 {
		atlas.Pix[i], atlas.Pix[i+1], atlas.Pix[i+2] = 0xff, 0xff, 0xff
	}
	return atlas, rects
}

func (f *TrueTypeFont) Texture() *Texture { return f.texture }

func (f *TrueTypeFont) LineSpacing() float32 { return f.lineSpacing }

func (f *TrueTypeFont) Glyph(r rune) (Glyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	if fb := asciiFallback(r); fb != r {
		g, ok := f.glyphs[fb]
		return g, ok
	}
	return Glyph{}, false
}

// Destroy releases the atlas texture.
func (f *TrueTypeFont) Destroy() {
	f.texture.Destroy()
}
