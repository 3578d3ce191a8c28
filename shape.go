package media

import "math"

// Shape is a convex polygon with an optional outline.
//
// The geometry is recomputed lazily after any point or style change.
// Fill vertices form a triangle fan around the bounds center; outline
// vertices form a triangle strip.
type Shape struct {
	Transformable

	points           []Vec2f
	fillColor        Color
	outlineColor     Color
	outlineThickness float32
	texture          *Texture
	textureRect      FloatRect

	fill         []Vertex
	outline      []Vertex
	insideBounds FloatRect
	bounds       FloatRect
	dirty        bool
}

// NewConvexShape returns a shape with the given points, in order.
func NewConvexShape(points ...Vec2f) *Shape {
	s := &Shape{
		Transformable: NewTransformable(),
		points:        append([]Vec2f(nil), points...),
		fillColor:     ColorWhite,
		outlineColor:  ColorWhite,
		dirty:         true,
	}
	return s
}

// NewRectangleShape returns an axis-aligned rectangle of the given size.
func NewRectangleShape(size Vec2f) *Shape {
	return NewConvexShape(
		Vec2f{},
		Vec2f{X: size.X},
		size,
		Vec2f{Y: size.Y},
	)
}

// NewCircleShape approximates a circle with pointCount points. The shape's
// local origin is the top-left of the bounding square.
func NewCircleShape(radius float32, pointCount int) *Shape {
	pts := make([]Vec2f, pointCount)
	for i := range pts {
		angle := float64(i)*2*math.Pi/float64(pointCount) - math.Pi/2
		pts[i] = Vec2f{
			X: radius + radius*float32(math.Cos(angle)),
			Y: radius + radius*float32(math.Sin(angle)),
		}
	}
	return NewConvexShape(pts...)
}

// PointCount returns the number of points.
func (s *Shape) PointCount() int { return len(s.points) }

// Point returns point i.
func (s *Shape) Point(i int) Vec2f { return s.points[i] }

// SetPoints replaces all points.
func (s *Shape) SetPoints(points ...Vec2f) {
	s.points = append(s.points[:0], points...)
	s.dirty = true
}

// SetPoint moves point i.
func (s *Shape) SetPoint(i int, p Vec2f) {
	s.points[i] = p
	s.dirty = true
}

func (s *Shape) FillColor() Color          { return s.fillColor }
func (s *Shape) OutlineColor() Color       { return s.outlineColor }
func (s *Shape) OutlineThickness() float32 { return s.outlineThickness }
func (s *Shape) Texture() *Texture         { return s.texture }
func (s *Shape) TextureRect() FloatRect    { return s.textureRect }

func (s *Shape) SetFillColor(c Color) {
	s.fillColor = c
	s.dirty = true
}

func (s *Shape) SetOutlineColor(c Color) {
	s.outlineColor = c
	s.dirty = true
}

// SetOutlineThickness sets the outline width. Negative values grow the
// outline inwards.
func (s *Shape) SetOutlineThickness(t float32) {
	s.outlineThickness = t
	s.dirty = true
}

// SetTexture sets the fill texture. When resetRect is true, or no texture
// rect was set yet, the rect covers the whole texture.
func (s *Shape) SetTexture(t *Texture, resetRect bool) {
	if t != nil && (resetRect || (s.texture == nil && s.textureRect == FloatRect{})) {
		s.textureRect = t.Rect()
	}
	s.texture = t
	s.dirty = true
}

func (s *Shape) SetTextureRect(r FloatRect) {
	s.textureRect = r
	s.dirty = true
}

// LocalBounds returns the bounds of the shape including its outline.
func (s *Shape) LocalBounds() FloatRect {
	s.update()
	return s.bounds
}

// GlobalBounds returns the local bounds after the shape transform.
func (s *Shape) GlobalBounds() FloatRect {
	return s.Transform().TransformRect(s.LocalBounds())
}

// FillVertices returns the untransformed triangle fan. The slice is owned by
// the shape and valid until the next change.
func (s *Shape) FillVertices() []Vertex {
	s.update()
	return s.fill
}

// OutlineVertices returns the untransformed triangle strip, empty when the
// outline thickness is zero.
func (s *Shape) OutlineVertices() []Vertex {
	s.update()
	if s.outlineThickness == 0 {
		return nil
	}
	return s.outline
}

func (s *Shape) update() {
	if !s.dirty {
		return
	}
	s.dirty = false

	n := len(s.points)
	if n < 3 {
		s.fill = s.fill[:0]
		s.outline = s.outline[:0]
		s.insideBounds = FloatRect{}
		s.bounds = FloatRect{}
		return
	}

	s.fill = resize(s.fill, n+2)
	for i, p := range s.points {
		s.fill[i+1].Position = p
	}
	s.fill[n+1].Position = s.fill[1].Position

	s.insideBounds = pointBounds(s.fill[1 : n+1])
	s.fill[0].Position = s.insideBounds.Center()

	for i := range s.fill {
		s.fill[i].Color = s.fillColor
	}
	s.updateTexCoords()
	s.updateOutline()
}

func (s *Shape) updateTexCoords() {
	b := s.insideBounds
	for i := range s.fill {
		var ratio Vec2f
		if b.Size.X > 0 {
			ratio.X = (s.fill[i].Position.X - b.Position.X) / b.Size.X
		}
		if b.Size.Y > 0 {
			ratio.Y = (s.fill[i].Position.Y - b.Position.Y) / b.Size.Y
		}
		s.fill[i].TexCoords = s.textureRect.Position.Add(s.textureRect.Size.CwiseMul(ratio))
	}
}

func (s *Shape) updateOutline() {
	if s.outlineThickness == 0 {
		s.outline = s.outline[:0]
		s.bounds = s.insideBounds
		return
	}

	n := len(s.fill) - 2
	s.outline = resize(s.outline, (n+1)*2)
	center := s.fill[0].Position

	for i := range n {
		index := i + 1

		p0 := s.fill[index-1].Position
		if i == 0 {
			p0 = s.fill[n].Position
		}
		p1 := s.fill[index].Position
		p2 := s.fill[index+1].Position

		n1 := computeNormal(p0, p1)
		n2 := computeNormal(p1, p2)

		// Make sure both normals point outwards.
		if n1.Dot(center.Sub(p1)) > 0 {
			n1 = n1.Mul(-1)
		}
		if n2.Dot(center.Sub(p1)) > 0 {
			n2 = n2.Mul(-1)
		}

		factor := 1 + n1.Dot(n2)
		normal := n1.Add(n2).Div(factor)

		s.outline[i*2].Position = p1
		s.outline[i*2+1].Position = p1.Add(normal.Mul(s.outlineThickness))
	}

	s.outline[n*2].Position = s.outline[0].Position
	s.outline[n*2+1].Position = s.outline[1].Position

	for i := range s.outline {
		s.outline[i].Color = s.outlineColor
	}
	s.bounds = pointBounds(s.outline)
}

func computeNormal(p1, p2 Vec2f) Vec2f {
	n := Vec2f{X: p1.Y - p2.Y, Y: p2.X - p1.X}
	if l := n.Length(); l != 0 {
		n = n.Div(l)
	}
	return n
}

func pointBounds(vs []Vertex) FloatRect {
	if len(vs) == 0 {
		return FloatRect{}
	}
	lo, hi := vs[0].Position, vs[0].Position
	for _, v := range vs[1:] {
		lo.X = minf(lo.X, v.Position.X)
		lo.Y = minf(lo.Y, v.Position.Y)
		hi.X = maxf(hi.X, v.Position.X)
		hi.Y = maxf(hi.Y, v.Position.Y)
	}
	return FloatRect{Position: lo, Size: hi.Sub(lo)}
}

func resize(vs []Vertex, n int) []Vertex {
	if cap(vs) < n {
		return make([]Vertex, n)
	}
	return vs[:n]
}
