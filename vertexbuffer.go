package media

import "fmt"

// VertexBuffer stores vertices on the GPU so they can be drawn many times
// without re-uploading.
type VertexBuffer struct {
	gc        *GraphicsContext
	buffer    VBOHandle
	size      int
	primitive PrimitiveType
	usage     BufferUsage
}

// NewVertexBuffer allocates room for count vertices.
func NewVertexBuffer(gc *GraphicsContext, primitive PrimitiveType, usage BufferUsage, count int) (*VertexBuffer, error) {
	if count < 0 {
		return nil, fmt.Errorf("create vertex buffer of %d vertices: %w", count, ErrInvalidSize)
	}
	dev := gc.Device()
	vb := &VertexBuffer{
		gc:        gc,
		buffer:    CreateVBOHandle(dev),
		primitive: primitive,
		usage:     usage,
	}
	if !vb.buffer.Valid() {
		return nil, fmt.Errorf("create vertex buffer: %w", ErrUnsupported)
	}
	vb.buffer.Bind()
	dev.BufferVertices(make([]Vertex, count), usage)
	vb.buffer.Unbind()
	vb.size = count
	return vb, nil
}

// VertexCount returns the allocated vertex count.
func (vb *VertexBuffer) VertexCount() int { return vb.size }

// PrimitiveType returns the topology used when drawing.
func (vb *VertexBuffer) PrimitiveType() PrimitiveType { return vb.primitive }

// SetPrimitiveType changes the topology used when drawing.
func (vb *VertexBuffer) SetPrimitiveType(p PrimitiveType) { vb.primitive = p }

// Usage returns the usage hint.
func (vb *VertexBuffer) Usage() BufferUsage { return vb.usage }

// NativeHandle returns the GL buffer name.
func (vb *VertexBuffer) NativeHandle() uint32 { return vb.buffer.ID() }

// Update writes vertices starting at offset. Writing from offset 0 past the
// current size grows the buffer. Writing past the end from a non-zero
// offset is an error.
func (vb *VertexBuffer) Update(vertices []Vertex, offset int) error {
	if !vb.buffer.Valid() {
		return fmt.Errorf("update vertex buffer: %w", ErrUnsupported)
	}
	if offset < 0 || (offset > 0 && offset+len(vertices) > vb.size) {
		return fmt.Errorf("update vertex buffer at %d with %d vertices (size %d): %w",
			offset, len(vertices), vb.size, ErrInvalidSize)
	}
	dev := vb.gc.Device()
	vb.buffer.Bind()
	if offset == 0 && len(vertices) >= vb.size {
		dev.BufferVertices(vertices, vb.usage)
		vb.size = len(vertices)
	} else {
		dev.BufferSubVertices(offset, vertices)
	}
	vb.buffer.Unbind()
	return nil
}

// Bind binds the buffer to GL_ARRAY_BUFFER.
func (vb *VertexBuffer) Bind() {
	vb.buffer.Bind()
}

// Destroy deletes the GL buffer.
func (vb *VertexBuffer) Destroy() {
	vb.buffer.Destroy()
	vb.size = 0
}
