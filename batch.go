package media

import "sync"

// batchPool reuses batch buffers between frames.
var batchPool = sync.Pool{
	New: func() any {
		return &DrawableBatch{
			vertices: make([]Vertex, 0, 1024),
			indices:  make([]uint32, 0, 2048),
		}
	},
}

// AcquireBatch gets an empty batch from the pool.
// Call ReleaseBatch when done to return it.
func AcquireBatch() *DrawableBatch {
	b := batchPool.Get().(*DrawableBatch)
	b.Clear()
	return b
}

// ReleaseBatch returns b to the pool.
func ReleaseBatch(b *DrawableBatch) {
	if b != nil {
		batchPool.Put(b)
	}
}

// DrawableBatch accumulates pre-transformed geometry as indexed triangles
// so many drawables sharing a texture go out in a single draw call.
type DrawableBatch struct {
	vertices []Vertex
	indices  []uint32
}

// Clear empties the batch, keeping its capacity.
func (b *DrawableBatch) Clear() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Vertices returns the batched vertices. The slice is owned by the batch.
func (b *DrawableBatch) Vertices() []Vertex { return b.vertices }

// Indices returns the triangle indices into Vertices.
func (b *DrawableBatch) Indices() []uint32 { return b.indices }

// VertexCount returns the number of batched vertices.
func (b *DrawableBatch) VertexCount() int { return len(b.vertices) }

// IsEmpty reports whether nothing was added since the last Clear.
func (b *DrawableBatch) IsEmpty() bool { return len(b.indices) == 0 }

func (b *DrawableBatch) base() uint32 { return uint32(len(b.vertices)) }

func (b *DrawableBatch) appendTransformed(t Transform, vs []Vertex) {
	for _, v := range vs {
		v.Position = t.TransformPoint(v.Position)
		b.vertices = append(b.vertices, v)
	}
}

func (b *DrawableBatch) appendQuadIndices(start uint32) {
	b.indices = append(b.indices, start, start+1, start+2, start+1, start+2, start+3)
}

// AddSprite adds the sprite quad.
func (b *DrawableBatch) AddSprite(s *Sprite) {
	start := b.base()
	n := len(b.vertices)
	b.vertices = append(b.vertices, make([]Vertex, 4)...)
	appendSpriteQuad(s.Transform(), s.TextureRect, s.Color, b.vertices[n:n+4])
	b.appendQuadIndices(start)
}

// AddText adds the text outline quads followed by its fill quads.
func (b *DrawableBatch) AddText(t *Text) {
	tr := t.Transform()
	b.AddQuads(tr, t.OutlineVertices())
	b.AddQuads(tr, t.FillVertices())
}

// AddShape adds the shape fill, then its outline.
func (b *DrawableBatch) AddShape(s *Shape) {
	tr := s.Transform()

	if fill := s.FillVertices(); len(fill) >= 3 {
		start := b.base()
		b.appendTransformed(tr, fill)
		for i := uint32(1); i < uint32(len(fill))-1; i++ {
			b.indices = append(b.indices, start, start+i, start+i+1)
		}
	}

	if outline := s.OutlineVertices(); len(outline) >= 3 {
		start := b.base()
		b.appendTransformed(tr, outline)
		for i := uint32(0); i < uint32(len(outline))-2; i++ {
			b.indices = append(b.indices, start+i, start+i+1, start+i+2)
		}
	}
}

// AddQuads adds vertices grouped by four in top-left, top-right,
// bottom-left, bottom-right order. A trailing partial quad is ignored.
func (b *DrawableBatch) AddQuads(t Transform, vs []Vertex) {
	vs = vs[:len(vs)/4*4]
	start := b.base()
	b.appendTransformed(t, vs)
	for q := uint32(0); q < uint32(len(vs)); q += 4 {
		b.appendQuadIndices(start + q)
	}
}

// AddTriangles adds a triangle list. A trailing partial triangle is
// ignored.
func (b *DrawableBatch) AddTriangles(t Transform, vs []Vertex) {
	vs = vs[:len(vs)/3*3]
	start := b.base()
	b.appendTransformed(t, vs)
	for i := range uint32(len(vs)) {
		b.indices = append(b.indices, start+i)
	}
}

// AddVertices adds vertices of any triangle topology, converting strips
// and fans to a list. It returns false for points and lines, which cannot
// be batched.
func (b *DrawableBatch) AddVertices(t Transform, vs []Vertex, p PrimitiveType) bool {
	switch p {
	case Triangles:
		b.AddTriangles(t, vs)
	case TriangleStrip:
		if len(vs) < 3 {
			return true
		}
		start := b.base()
		b.appendTransformed(t, vs)
		for k := range uint32(len(vs)) - 2 {
			if k%2 == 0 {
				b.indices = append(b.indices, start+k, start+k+1, start+k+2)
			} else {
				b.indices = append(b.indices, start+k+2, start+k+1, start+k)
			}
		}
	case TriangleFan:
		if len(vs) < 3 {
			return true
		}
		start := b.base()
		b.appendTransformed(t, vs)
		for i := uint32(1); i < uint32(len(vs))-1; i++ {
			b.indices = append(b.indices, start, start+i, start+i+1)
		}
	default:
		return false
	}
	return true
}

// AddIndexedVertices adds vertices selected by indices, which are
// relative to vs. Strips and fans are converted to a list. It returns
// false and adds nothing for points, lines and indices past the end of vs.
func (b *DrawableBatch) AddIndexedVertices(vs []Vertex, indices []uint32, p PrimitiveType) bool {
	if !isBatchable(p) || !indicesInRange(indices, len(vs)) {
		return false
	}
	start := b.base()
	b.vertices = append(b.vertices, vs...)
	n := uint32(len(indices))

	switch p {
	case Triangles:
		for _, i := range indices[:n/3*3] {
			b.indices = append(b.indices, start+i)
		}
	case TriangleStrip:
		for k := uint32(0); k+2 < n; k++ {
			i0, i1, i2 := indices[k], indices[k+1], indices[k+2]
			if k%2 == 1 {
				i0, i2 = i2, i0
			}
			b.indices = append(b.indices, start+i0, start+i1, start+i2)
		}
	case TriangleFan:
		for k := uint32(1); k+1 < n; k++ {
			b.indices = append(b.indices, start+indices[0], start+indices[k], start+indices[k+1])
		}
	}
	return true
}

// indicesInRange reports whether every index addresses one of count
// vertices.
func indicesInRange(indices []uint32, count int) bool {
	for _, i := range indices {
		if int(i) >= count {
			return false
		}
	}
	return true
}
