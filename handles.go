package media

// VAOHandle owns one vertex array object. The zero value is empty.
// Copying a live handle is a bug; transfer ownership with Take.
type VAOHandle struct {
	dev Device
	id  uint32
}

// CreateVAOHandle allocates a vertex array object on dev.
func CreateVAOHandle(dev Device) VAOHandle {
	return VAOHandle{dev: dev, id: dev.GenVertexArray()}
}

// ID returns the native id, 0 when empty.
func (h *VAOHandle) ID() uint32 { return h.id }

// Valid reports whether the handle owns an object.
func (h *VAOHandle) Valid() bool { return h.id != 0 }

// Bind makes the vertex array current.
func (h *VAOHandle) Bind() {
	if h.id != 0 {
		h.dev.BindVertexArray(h.id)
	}
}

// Unbind binds vertex array 0.
func (h *VAOHandle) Unbind() {
	if h.dev != nil {
		h.dev.BindVertexArray(0)
	}
}

// Destroy deletes the object. Safe to call on an empty handle.
func (h *VAOHandle) Destroy() {
	if h.id != 0 {
		h.dev.DeleteVertexArray(h.id)
	}
	*h = VAOHandle{}
}

// Take moves ownership out of h, leaving it empty.
func (h *VAOHandle) Take() VAOHandle {
	out := *h
	*h = VAOHandle{}
	return out
}

// VBOHandle owns one vertex buffer object.
type VBOHandle struct {
	dev Device
	id  uint32
}

// CreateVBOHandle allocates a buffer object on dev.
func CreateVBOHandle(dev Device) VBOHandle {
	return VBOHandle{dev: dev, id: dev.GenBuffer()}
}

func (h *VBOHandle) ID() uint32  { return h.id }
func (h *VBOHandle) Valid() bool { return h.id != 0 }

// Bind binds the buffer to GL_ARRAY_BUFFER.
func (h *VBOHandle) Bind() {
	if h.id != 0 {
		h.dev.BindArrayBuffer(h.id)
	}
}

func (h *VBOHandle) Unbind() {
	if h.dev != nil {
		h.dev.BindArrayBuffer(0)
	}
}

func (h *VBOHandle) Destroy() {
	if h.id != 0 {
		h.dev.DeleteBuffer(h.id)
	}
	*h = VBOHandle{}
}

func (h *VBOHandle) Take() VBOHandle {
	out := *h
	*h = VBOHandle{}
	return out
}

// EBOHandle owns one element (index) buffer object.
type EBOHandle struct {
	dev Device
	id  uint32
}

// CreateEBOHandle allocates a buffer object on dev.
func CreateEBOHandle(dev Device) EBOHandle {
	return EBOHandle{dev: dev, id: dev.GenBuffer()}
}

func (h *EBOHandle) ID() uint32  { return h.id }
func (h *EBOHandle) Valid() bool { return h.id != 0 }

// Bind binds the buffer to GL_ELEMENT_ARRAY_BUFFER.
func (h *EBOHandle) Bind() {
	if h.id != 0 {
		h.dev.BindElementBuffer(h.id)
	}
}

func (h *EBOHandle) Unbind() {
	if h.dev != nil {
		h.dev.BindElementBuffer(0)
	}
}

func (h *EBOHandle) Destroy() {
	if h.id != 0 {
		h.dev.DeleteBuffer(h.id)
	}
	*h = EBOHandle{}
}

func (h *EBOHandle) Take() EBOHandle {
	out := *h
	*h = EBOHandle{}
	return out
}

// vaoGroup is the VAO/VBO/EBO triple a render target streams through.
type vaoGroup struct {
	id  uint32
	vao VAOHandle
	vbo VBOHandle
	ebo EBOHandle
}

func newVAOGroup(gc *GraphicsContext) vaoGroup {
	dev := gc.Device()
	g := vaoGroup{
		id:  gc.nextVAOGroupID(),
		vao: CreateVAOHandle(dev),
		vbo: CreateVBOHandle(dev),
		ebo: CreateEBOHandle(dev),
	}
	return g
}

// bind binds all three objects and sets up the attribute pointers.
func (g *vaoGroup) bind() {
	g.vao.Bind()
	g.vbo.Bind()
	g.ebo.Bind()
	g.vao.dev.SetupVertexAttribs()
}

func (g *vaoGroup) destroy() {
	g.ebo.Destroy()
	g.vbo.Destroy()
	g.vao.Destroy()
}
