package media

import "math"

// Sprite is a textured, transformable rectangle.
type Sprite struct {
	Transformable

	Texture     *Texture
	TextureRect FloatRect // Area of the texture shown, in pixels
	Color       Color
}

// NewSprite returns a sprite showing the whole texture.
func NewSprite(t *Texture) *Sprite {
	s := &Sprite{
		Transformable: NewTransformable(),
		Texture:       t,
		Color:         ColorWhite,
	}
	if t != nil {
		s.TextureRect = t.Rect()
	}
	return s
}

// LocalBounds returns the untransformed bounds.
func (s *Sprite) LocalBounds() FloatRect {
	return FloatRect{Size: Vec2f{X: abs32(s.TextureRect.Size.X), Y: abs32(s.TextureRect.Size.Y)}}
}

// GlobalBounds returns the bounds after the sprite transform.
func (s *Sprite) GlobalBounds() FloatRect {
	return s.Transform().TransformRect(s.LocalBounds())
}

// Vertices returns the four quad vertices in triangle strip order:
// top-left, bottom-left, top-right, bottom-right.
func (s *Sprite) Vertices() [4]Vertex {
	var out [4]Vertex
	appendSpriteQuad(s.Transform(), s.TextureRect, s.Color, out[:])
	return out
}

// appendSpriteQuad writes the pre-transformed quad for rect into dst[0:4].
func appendSpriteQuad(t Transform, rect FloatRect, color Color, dst []Vertex) {
	pos, size := rect.Position, rect.Size
	abs := Vec2f{X: abs32(size.X), Y: abs32(size.Y)}

	dst[0].Position = Vec2f{X: t.A02, Y: t.A12}
	dst[1].Position = Vec2f{X: t.A01*abs.Y + t.A02, Y: t.A11*abs.Y + t.A12}
	dst[2].Position = Vec2f{X: t.A00*abs.X + t.A02, Y: t.A10*abs.X + t.A12}
	dst[3].Position = t.TransformPoint(abs)

	for i := range 4 {
		dst[i].Color = color
	}

	dst[0].TexCoords = pos
	dst[1].TexCoords = pos.Add(Vec2f{Y: size.Y})
	dst[2].TexCoords = pos.Add(Vec2f{X: size.X})
	dst[3].TexCoords = pos.Add(size)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
