package media

import "github.com/go-gl/mathgl/mgl32"

// fullRect is the whole target, as a fraction of its size.
var fullRect = FloatRect{Size: Vec2f{X: 1, Y: 1}}

// View is a 2D camera: the region of the scene that is shown and where on
// the render target it is shown.
type View struct {
	Center   Vec2f
	Size     Vec2f
	Rotation float32 // Degrees

	// Viewport and Scissor are fractions of the render target size.
	Viewport FloatRect
	Scissor  FloatRect
}

// NewView returns a view showing rect with a full viewport and no
// scissor.
func NewView(rect FloatRect) View {
	return View{
		Center:   rect.Position.Add(rect.Size.Div(2)),
		Size:     rect.Size,
		Viewport: fullRect,
		Scissor:  fullRect,
	}
}

// ClampScissor returns rect adjusted to lie within [0, 1].
func ClampScissor(rect FloatRect) FloatRect {
	rect.Position.X = clampf(rect.Position.X, 0, 1)
	rect.Position.Y = clampf(rect.Position.Y, 0, 1)
	rect.Size.X = maxf(rect.Size.X, 0)
	rect.Size.Y = maxf(rect.Size.Y, 0)
	if rect.Position.X+rect.Size.X > 1 {
		rect.Size.X = 1 - rect.Position.X
	}
	if rect.Position.Y+rect.Size.Y > 1 {
		rect.Size.Y = 1 - rect.Position.Y
	}
	return rect
}

// Transform returns the projection from scene coordinates to normalized
// device coordinates.
func (v View) Transform() Transform {
	sine, cosine := sinCosDegrees(v.Rotation)
	tx := -v.Center.X*cosine - v.Center.Y*sine + v.Center.X
	ty := v.Center.X*sine - v.Center.Y*cosine + v.Center.Y

	a := 2 / v.Size.X
	b := -2 / v.Size.Y
	c := -a * v.Center.X
	d := -b * v.Center.Y
	return Transform{
		A00: a * cosine, A01: a * sine, A02: a*tx + c,
		A10: -b * sine, A11: b * cosine, A12: b*ty + d,
	}
}

// InverseTransform maps normalized device coordinates back to the scene.
func (v View) InverseTransform() Transform {
	return v.Transform().Inverse()
}

// Projection returns the view transform as a 4x4 matrix.
func (v View) Projection() mgl32.Mat4 {
	return v.Transform().Matrix()
}

// roundedRect multiplies a fractional rect by size and rounds to pixels.
func roundedRect(size Vec2u, r FloatRect) IntRect {
	w, h := float32(size.X), float32(size.Y)
	round := func(f float32) int32 {
		if f < 0 {
			return int32(f - 0.5)
		}
		return int32(f + 0.5)
	}
	return IntRect{
		Position: Vec2i{X: round(w * r.Position.X), Y: round(h * r.Position.Y)},
		Size:     Vec2i{X: round(w * r.Size.X), Y: round(h * r.Size.Y)},
	}
}
