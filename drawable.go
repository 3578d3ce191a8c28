package media

// Drawable is anything RenderTarget.Draw accepts. The set is closed:
// *Sprite, *Shape, *Text, VertexArray, *VertexBuffer and *DrawableBatch.
type Drawable interface {
	drawable()
}

func (*Sprite) drawable()        {}
func (*Shape) drawable()         {}
func (*Text) drawable()          {}
func (VertexArray) drawable()    {}
func (*VertexBuffer) drawable()  {}
func (*DrawableBatch) drawable() {}

// VertexArray is a CPU-side vertex list drawn with one primitive type.
type VertexArray struct {
	Primitive PrimitiveType
	Vertices  []Vertex
}

// Bounds returns the axis-aligned bounds of the vertex positions.
func (va VertexArray) Bounds() FloatRect {
	return pointBounds(va.Vertices)
}
