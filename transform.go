package media

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	| A00 A01 A02 |
//	| A10 A11 A12 |
//	|  0   0   1  |
type Transform struct {
	A00, A01, A02 float32
	A10, A11, A12 float32
}

// IdentityTransform leaves points unchanged.
var IdentityTransform = Transform{A00: 1, A11: 1}

// TransformFrom builds the transform of an object placed at position,
// scaled by scale around origin.
func TransformFrom(position, scale, origin Vec2f) Transform {
	return Transform{
		A00: scale.X,
		A02: -origin.X*scale.X + position.X,
		A11: scale.Y,
		A12: -origin.Y*scale.Y + position.Y,
	}
}

// TransformFromRotation is TransformFrom with a rotation given by its sine
// and cosine.
func TransformFromRotation(position, scale, origin Vec2f, sine, cosine float32) Transform {
	sxc := scale.X * cosine
	syc := scale.Y * cosine
	sxs := scale.X * -sine
	sys := scale.Y * -sine
	tx := -origin.X*sxc - origin.Y*sys + position.X
	ty := origin.X*sxs - origin.Y*syc + position.Y
	return Transform{A00: sxc, A01: sys, A02: tx, A10: -sxs, A11: syc, A12: ty}
}

// Matrix returns the transform as a column-major 4x4 matrix for GLSL.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Mat4{
		t.A00, t.A10, 0, 0,
		t.A01, t.A11, 0, 0,
		0, 0, 1, 0,
		t.A02, t.A12, 0, 1,
	}
}

// Inverse returns the inverse transform, or the identity if t is singular.
func (t Transform) Inverse() Transform {
	det := t.A00*t.A11 - t.A10*t.A01
	if det == 0 {
		return IdentityTransform
	}
	return Transform{
		A00: t.A11 / det,
		A01: -t.A01 / det,
		A02: (t.A12*t.A01 - t.A11*t.A02) / det,
		A10: -t.A10 / det,
		A11: t.A00 / det,
		A12: -(t.A12*t.A00 - t.A10*t.A02) / det,
	}
}

// TransformPoint applies the transform to a point.
func (t Transform) TransformPoint(p Vec2f) Vec2f {
	return Vec2f{
		X: t.A00*p.X + t.A01*p.Y + t.A02,
		Y: t.A10*p.X + t.A11*p.Y + t.A12,
	}
}

// TransformRect returns the axis-aligned bounding box of the transformed
// rectangle.
func (t Transform) TransformRect(r FloatRect) FloatRect {
	p0 := t.TransformPoint(r.Position)
	dx := Vec2f{X: t.A00 * r.Size.X, Y: t.A10 * r.Size.X}
	dy := Vec2f{X: t.A01 * r.Size.Y, Y: t.A11 * r.Size.Y}
	p1 := p0.Add(dy)
	p2 := p0.Add(dx)
	p3 := p2.Add(dy)

	minX := minf(minf(p0.X, p1.X), minf(p2.X, p3.X))
	maxX := maxf(maxf(p0.X, p1.X), maxf(p2.X, p3.X))
	minY := minf(minf(p0.Y, p1.Y), minf(p2.Y, p3.Y))
	maxY := maxf(maxf(p0.Y, p1.Y), maxf(p2.Y, p3.Y))
	return FloatRect{Position: Vec2f{X: minX, Y: minY}, Size: Vec2f{X: maxX - minX, Y: maxY - minY}}
}

// Combine returns t * other.
func (t Transform) Combine(o Transform) Transform {
	return Transform{
		A00: t.A00*o.A00 + t.A01*o.A10,
		A01: t.A00*o.A01 + t.A01*o.A11,
		A02: t.A00*o.A02 + t.A01*o.A12 + t.A02,
		A10: t.A10*o.A00 + t.A11*o.A10,
		A11: t.A10*o.A01 + t.A11*o.A11,
		A12: t.A10*o.A02 + t.A11*o.A12 + t.A12,
	}
}

// Translate returns t combined with a translation.
func (t Transform) Translate(offset Vec2f) Transform {
	return t.Combine(Transform{A00: 1, A02: offset.X, A11: 1, A12: offset.Y})
}

// Rotate returns t combined with a rotation of degrees around center.
func (t Transform) Rotate(degrees float32, center Vec2f) Transform {
	sin, cos := sinCosDegrees(degrees)
	return t.Combine(Transform{
		A00: cos, A01: -sin, A02: center.X*(1-cos) + center.Y*sin,
		A10: sin, A11: cos, A12: center.Y*(1-cos) - center.X*sin,
	})
}

// Scale returns t combined with a scaling around center.
func (t Transform) Scale(factors, center Vec2f) Transform {
	return t.Combine(Transform{
		A00: factors.X, A02: center.X * (1 - factors.X),
		A11: factors.Y, A12: center.Y * (1 - factors.Y),
	})
}

func sinCosDegrees(degrees float32) (float32, float32) {
	rad := positiveRemainder(float64(degrees), 360) * math.Pi / 180
	s, c := math.Sincos(rad)
	return float32(s), float32(c)
}

// Transformable holds the position, rotation, scale and origin of a
// drawable object.
type Transformable struct {
	Position Vec2f
	Rotation float32 // Degrees, clockwise
	Scale    Vec2f
	Origin   Vec2f
}

// NewTransformable returns a Transformable with unit scale.
func NewTransformable() Transformable {
	return Transformable{Scale: Vec2f{X: 1, Y: 1}}
}

// Transform returns the combined transform.
func (t Transformable) Transform() Transform {
	if t.Rotation == 0 {
		return TransformFrom(t.Position, t.Scale, t.Origin)
	}
	sin, cos := sinCosDegrees(t.Rotation)
	return TransformFromRotation(t.Position, t.Scale, t.Origin, sin, cos)
}

// InverseTransform returns the inverse of Transform.
func (t Transformable) InverseTransform() Transform {
	return t.Transform().Inverse()
}
