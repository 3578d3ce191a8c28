package media

import "golang.org/x/text/unicode/norm"

// Text is a string laid out with glyphs from a FontAtlas.
//
// The layout handles spaces, tabs (four spaces) and newlines. Runes the
// atlas does not have are replaced by '?', or skipped when the atlas has
// no '?' either. Strings are NFC normalized so combining sequences
// find their precomposed glyph. Shaping is left to the atlas provider.
type Text struct {
	Transformable

	font             FontAtlas
	str              []rune
	fillColor        Color
	outlineColor     Color
	outlineThickness float32
	letterSpacing    float32 // Factor, 1 is the font default
	lineSpacing      float32 // Factor, 1 is the font default

	fill    []Vertex
	outline []Vertex
	bounds  FloatRect
	dirty   bool
}

// NewText returns white text using font.
func NewText(font FontAtlas, s string) *Text {
	return &Text{
		Transformable: NewTransformable(),
		font:          font,
		str:           []rune(norm.NFC.String(s)),
		fillColor:     ColorWhite,
		outlineColor:  ColorBlack,
		letterSpacing: 1,
		lineSpacing:   1,
		dirty:         true,
	}
}

func (t *Text) String() string   { return string(t.str) }
func (t *Text) Font() FontAtlas  { return t.font }
func (t *Text) FillColor() Color { return t.fillColor }

func (t *Text) SetString(s string) {
	t.str = append(t.str[:0], []rune(norm.NFC.String(s))...)
	t.dirty = true
}

func (t *Text) SetFont(font FontAtlas) {
	t.font = font
	t.dirty = true
}

func (t *Text) SetFillColor(c Color) {
	t.fillColor = c
	t.dirty = true
}

func (t *Text) SetOutlineColor(c Color) {
	t.outlineColor = c
	t.dirty = true
}

// SetOutlineThickness draws the glyphs a second time, offset in four
// diagonal directions by thickness pixels, behind the fill. Zero disables
// the outline.
func (t *Text) SetOutlineThickness(thickness float32) {
	t.outlineThickness = thickness
	t.dirty = true
}

// SetLetterSpacing scales the gap between glyphs.
func (t *Text) SetLetterSpacing(factor float32) {
	t.letterSpacing = factor
	t.dirty = true
}

// SetLineSpacing scales the distance between baselines.
func (t *Text) SetLineSpacing(factor float32) {
	t.lineSpacing = factor
	t.dirty = true
}

// LocalBounds returns the bounds of the laid out glyphs.
func (t *Text) LocalBounds() FloatRect {
	t.update()
	return t.bounds
}

// GlobalBounds returns the local bounds after the text transform.
func (t *Text) GlobalBounds() FloatRect {
	return t.Transform().TransformRect(t.LocalBounds())
}

// FillVertices returns four untransformed vertices per glyph in
// top-left, top-right, bottom-left, bottom-right order.
func (t *Text) FillVertices() []Vertex {
	t.update()
	return t.fill
}

// OutlineVertices returns the outline quads, empty without an outline.
func (t *Text) OutlineVertices() []Vertex {
	t.update()
	return t.outline
}

// FindCharacterPos returns the untransformed pen position before the
// character at index. Indices past the end return the position after the
// last character.
func (t *Text) FindCharacterPos(index int) Vec2f {
	if t.font == nil {
		return Vec2f{}
	}
	index = min(max(index, 0), len(t.str))
	ws, letter, line := t.spacing()

	var pos Vec2f
	for _, r := range t.str[:index] {
		switch r {
		case ' ':
			pos.X += ws
		case '\t':
			pos.X += ws * 4
		case '\n':
			pos.Y += line
			pos.X = 0
		case '\r':
		default:
			if g, ok := t.glyph(r); ok {
				pos.X += g.Advance + letter
			}
		}
	}
	return pos
}

// spacing returns the whitespace advance, the extra advance between
// letters and the distance between baselines.
func (t *Text) spacing() (whitespace, letter, line float32) {
	line = t.font.LineSpacing() * t.lineSpacing
	if g, ok := t.font.Glyph(' '); ok {
		whitespace = g.Advance
	} else {
		whitespace = t.font.LineSpacing() / 2
	}
	letter = (whitespace / 3) * (t.letterSpacing - 1)
	whitespace += letter
	return whitespace, letter, line
}

func (t *Text) glyph(r rune) (Glyph, bool) {
	if g, ok := t.font.Glyph(r); ok {
		return g, true
	}
	return t.font.Glyph('?')
}

var outlineOffsets = [4]Vec2f{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

func (t *Text) update() {
	if !t.dirty {
		return
	}
	t.dirty = false
	t.fill = t.fill[:0]
	t.outline = t.outline[:0]
	t.bounds = FloatRect{}
	if t.font == nil || len(t.str) == 0 {
		return
	}

	ws, letter, line := t.spacing()
	x, y := float32(0), t.font.LineSpacing()

	minX, minY := t.font.LineSpacing(), t.font.LineSpacing()
	maxX, maxY := float32(0), float32(0)
	laidOut := false

	for _, r := range t.str {
		switch r {
		case '\r':
			continue
		case ' ', '\t', '\n':
			minX = minf(minX, x)
			minY = minf(minY, y)
			switch r {
			case ' ':
				x += ws
			case '\t':
				x += ws * 4
			case '\n':
				y += line
				x = 0
			}
			maxX = maxf(maxX, x)
			maxY = maxf(maxY, y)
			laidOut = true
			continue
		}

		g, ok := t.glyph(r)
		if !ok {
			continue
		}
		if t.outlineThickness != 0 {
			for _, off := range outlineOffsets {
				t.outline = appendGlyphQuad(t.outline, Vec2f{X: x, Y: y}.Add(off.Mul(t.outlineThickness)), t.outlineColor, g)
			}
		}
		t.fill = appendGlyphQuad(t.fill, Vec2f{X: x, Y: y}, t.fillColor, g)

		left, top := x+g.Bounds.Position.X, y+g.Bounds.Position.Y
		right, bottom := left+g.Bounds.Size.X, top+g.Bounds.Size.Y
		minX = minf(minX, left)
		minY = minf(minY, top)
		maxX = maxf(maxX, right)
		maxY = maxf(maxY, bottom)
		laidOut = true

		x += g.Advance + letter
	}

	if !laidOut {
		return
	}
	if t.outlineThickness != 0 {
		o := abs32(t.outlineThickness)
		minX -= o
		minY -= o
		maxX += o
		maxY += o
	}
	t.bounds = FloatRect{
		Position: Vec2f{X: minX, Y: minY},
		Size:     Vec2f{X: maxX - minX, Y: maxY - minY},
	}
}

// appendGlyphQuad appends the quad of g with its pen at pos.
func appendGlyphQuad(vs []Vertex, pos Vec2f, color Color, g Glyph) []Vertex {
	left := pos.X + g.Bounds.Position.X
	top := pos.Y + g.Bounds.Position.Y
	right := left + g.Bounds.Size.X
	bottom := top + g.Bounds.Size.Y

	u1, v1 := g.TextureRect.Position.X, g.TextureRect.Position.Y
	u2, v2 := u1+g.TextureRect.Size.X, v1+g.TextureRect.Size.Y

	return append(vs,
		Vertex{Position: Vec2f{X: left, Y: top}, Color: color, TexCoords: Vec2f{X: u1, Y: v1}},
		Vertex{Position: Vec2f{X: right, Y: top}, Color: color, TexCoords: Vec2f{X: u2, Y: v1}},
		Vertex{Position: Vec2f{X: left, Y: bottom}, Color: color, TexCoords: Vec2f{X: u1, Y: v2}},
		Vertex{Position: Vec2f{X: right, Y: bottom}, Color: color, TexCoords: Vec2f{X: u2, Y: v2}},
	)
}
