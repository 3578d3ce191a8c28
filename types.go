// Package media provides windowing, input events and hardware accelerated
// 2D drawing on top of OpenGL. Native windowing and the GL entry points are
// supplied by the backend packages; this package holds the render-state
// cache, the event queue and the value types they share.
package media

import "math"

// Vec2f represents a 2D vector for positions and sizes.
type Vec2f struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2f) Add(other Vec2f) Vec2f {
	return Vec2f{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2f) Sub(other Vec2f) Vec2f {
	return Vec2f{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2f) Mul(s float32) Vec2f {
	return Vec2f{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2f) Div(s float32) Vec2f {
	return Vec2f{X: v.X / s, Y: v.Y / s}
}

// CwiseMul multiplies component-wise.
func (v Vec2f) CwiseMul(other Vec2f) Vec2f {
	return Vec2f{X: v.X * other.X, Y: v.Y * other.Y}
}

// CwiseDiv divides component-wise.
func (v Vec2f) CwiseDiv(other Vec2f) Vec2f {
	return Vec2f{X: v.X / other.X, Y: v.Y / other.Y}
}

// Dot returns the dot product.
func (v Vec2f) Dot(other Vec2f) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared length.
func (v Vec2f) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the euclidean length.
func (v Vec2f) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalized returns the unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec2f) Normalized() Vec2f {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Perpendicular returns v rotated by +90 degrees.
func (v Vec2f) Perpendicular() Vec2f {
	return Vec2f{X: -v.Y, Y: v.X}
}

// ToVec2i truncates to an integer vector.
func (v Vec2f) ToVec2i() Vec2i {
	return Vec2i{X: int32(v.X), Y: int32(v.Y)}
}

// Vec2i is an integer 2D vector, used for pixel coordinates.
type Vec2i struct {
	X, Y int32
}

// Add returns the sum of two vectors.
func (v Vec2i) Add(other Vec2i) Vec2i {
	return Vec2i{X: v.X + other.X, Y: v.Y + other.Y}
}

// ToVec2f converts to a float vector.
func (v Vec2i) ToVec2f() Vec2f {
	return Vec2f{X: float32(v.X), Y: float32(v.Y)}
}

// Vec2u is an unsigned 2D vector, used for sizes.
type Vec2u struct {
	X, Y uint32
}

// ToVec2f converts to a float vector.
func (v Vec2u) ToVec2f() Vec2f {
	return Vec2f{X: float32(v.X), Y: float32(v.Y)}
}

// Vec3f is a 3D float vector. Sensor readings use it.
type Vec3f struct {
	X, Y, Z float32
}

// FloatRect represents a rectangle with position and size.
type FloatRect struct {
	Position Vec2f // Top-left position
	Size     Vec2f // Width and height
}

// Contains returns true if the point is inside the rectangle.
// Negative sizes are handled.
func (r FloatRect) Contains(p Vec2f) bool {
	minX, maxX := minf(r.Position.X, r.Position.X+r.Size.X), maxf(r.Position.X, r.Position.X+r.Size.X)
	minY, maxY := minf(r.Position.Y, r.Position.Y+r.Size.Y), maxf(r.Position.Y, r.Position.Y+r.Size.Y)
	return p.X >= minX && p.X < maxX && p.Y >= minY && p.Y < maxY
}

// FindIntersection returns the overlap of two rectangles, or false if they
// do not overlap.
func (r FloatRect) FindIntersection(other FloatRect) (FloatRect, bool) {
	r1MinX, r1MaxX := minf(r.Position.X, r.Position.X+r.Size.X), maxf(r.Position.X, r.Position.X+r.Size.X)
	r1MinY, r1MaxY := minf(r.Position.Y, r.Position.Y+r.Size.Y), maxf(r.Position.Y, r.Position.Y+r.Size.Y)
	r2MinX, r2MaxX := minf(other.Position.X, other.Position.X+other.Size.X), maxf(other.Position.X, other.Position.X+other.Size.X)
	r2MinY, r2MaxY := minf(other.Position.Y, other.Position.Y+other.Size.Y), maxf(other.Position.Y, other.Position.Y+other.Size.Y)

	left, top := maxf(r1MinX, r2MinX), maxf(r1MinY, r2MinY)
	right, bottom := minf(r1MaxX, r2MaxX), minf(r1MaxY, r2MaxY)
	if left >= right || top >= bottom {
		return FloatRect{}, false
	}
	return FloatRect{Position: Vec2f{X: left, Y: top}, Size: Vec2f{X: right - left, Y: bottom - top}}, true
}

// Center returns the center point.
func (r FloatRect) Center() Vec2f {
	return r.Position.Add(r.Size.Div(2))
}

// IntRect is an integer rectangle, used for viewports and texture areas.
type IntRect struct {
	Position Vec2i
	Size     Vec2i
}

// ToFloatRect converts to a float rectangle.
func (r IntRect) ToFloatRect() FloatRect {
	return FloatRect{Position: r.Position.ToVec2f(), Size: r.Size.ToVec2f()}
}

// Vertex is a point with color and texture coordinates.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Position  Vec2f // Position (x, y)
	Color     Color // RGBA, one byte per channel
	TexCoords Vec2f // Texture coordinates in pixels
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
