// Package opengl implements media.Device on OpenGL 4.1 core.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/media"
)

// Device issues media draw calls to the OpenGL context current on the
// calling thread.
type Device struct {
	maxTextureSize int

	boundFramebuffer uint32
	// stencil renderbuffers by framebuffer
	renderbuffers map[uint32]uint32
}

var (
	_ media.Device            = (*Device)(nil)
	_ media.DeviceInitializer = (*Device)(nil)
)

// New returns a device. The GL entry points are loaded by Init once a
// context is current, which media does on the first window activation.
func New() *Device {
	return &Device{renderbuffers: make(map[uint32]uint32)}
}

// Init loads the GL entry points. A context must be current.
func (d *Device) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init OpenGL: %w", err)
	}
	var maxSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSize)
	d.maxTextureSize = int(maxSize)

	media.Logger().Debug("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"max_texture_size", maxSize)
	return nil
}

func capability(c media.Capability) uint32 {
	switch c {
	case media.CapBlend:
		return gl.BLEND
	case media.CapCullFace:
		return gl.CULL_FACE
	case media.CapDepthTest:
		return gl.DEPTH_TEST
	case media.CapScissorTest:
		return gl.SCISSOR_TEST
	case media.CapStencilTest:
		return gl.STENCIL_TEST
	case media.CapFramebufferSRGB:
		return gl.FRAMEBUFFER_SRGB
	}
	return 0
}

func (d *Device) Enable(c media.Capability)  { gl.Enable(capability(c)) }
func (d *Device) Disable(c media.Capability) { gl.Disable(capability(c)) }

func (d *Device) ColorMask(r, g, b, a bool) { gl.ColorMask(r, g, b, a) }

var blendFactors = [...]uint32{
	media.BlendFactorZero:             gl.ZERO,
	media.BlendFactorOne:              gl.ONE,
	media.BlendFactorSrcColor:         gl.SRC_COLOR,
	media.BlendFactorOneMinusSrcColor: gl.ONE_MINUS_SRC_COLOR,
	media.BlendFactorDstColor:         gl.DST_COLOR,
	media.BlendFactorOneMinusDstColor: gl.ONE_MINUS_DST_COLOR,
	media.BlendFactorSrcAlpha:         gl.SRC_ALPHA,
	media.BlendFactorOneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
	media.BlendFactorDstAlpha:         gl.DST_ALPHA,
	media.BlendFactorOneMinusDstAlpha: gl.ONE_MINUS_DST_ALPHA,
}

var blendEquations = [...]uint32{
	media.BlendEquationAdd:             gl.FUNC_ADD,
	media.BlendEquationSubtract:        gl.FUNC_SUBTRACT,
	media.BlendEquationReverseSubtract: gl.FUNC_REVERSE_SUBTRACT,
	media.BlendEquationMin:             gl.MIN,
	media.BlendEquationMax:             gl.MAX,
}

func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha media.BlendFactor) {
	gl.BlendFuncSeparate(blendFactors[srcRGB], blendFactors[dstRGB], blendFactors[srcAlpha], blendFactors[dstAlpha])
}

func (d *Device) BlendEquationSeparate(color, alpha media.BlendEquation) {
	gl.BlendEquationSeparate(blendEquations[color], blendEquations[alpha])
}

// SupportsBlendMinMax is always true, MIN and MAX are core since 1.4.
func (d *Device) SupportsBlendMinMax() bool { return true }

var stencilOps = [...]uint32{
	media.StencilKeep:      gl.KEEP,
	media.StencilZero:      gl.ZERO,
	media.StencilReplace:   gl.REPLACE,
	media.StencilIncrement: gl.INCR,
	media.StencilDecrement: gl.DECR,
	media.StencilInvert:    gl.INVERT,
}

var stencilFuncs = [...]uint32{
	media.StencilNever:        gl.NEVER,
	media.StencilLess:         gl.LESS,
	media.StencilLessEqual:    gl.LEQUAL,
	media.StencilGreater:      gl.GREATER,
	media.StencilGreaterEqual: gl.GEQUAL,
	media.StencilEqual:        gl.EQUAL,
	media.StencilNotEqual:     gl.NOTEQUAL,
	media.StencilAlways:       gl.ALWAYS,
}

func (d *Device) StencilOp(fail, depthFail, pass media.StencilUpdateOperation) {
	gl.StencilOp(stencilOps[fail], stencilOps[depthFail], stencilOps[pass])
}

func (d *Device) StencilFunc(cmp media.StencilComparison, ref int32, mask uint32) {
	gl.StencilFunc(stencilFuncs[cmp], ref, mask)
}

func (d *Device) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }
func (d *Device) Scissor(x, y, w, h int32)  { gl.Scissor(x, y, w, h) }

func (d *Device) ClearColor(c media.Color) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func (d *Device) ClearStencil(v int32) { gl.ClearStencil(v) }

func (d *Device) Clear(mask media.ClearMask) {
	var bits uint32
	if mask&media.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&media.ClearStencilBuffer != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }
func (d *Device) BindVertexArray(id uint32)   { gl.BindVertexArray(id) }

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) DeleteBuffer(id uint32)      { gl.DeleteBuffers(1, &id) }
func (d *Device) BindArrayBuffer(id uint32)   { gl.BindBuffer(gl.ARRAY_BUFFER, id) }
func (d *Device) BindElementBuffer(id uint32) { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id) }

var vertexStride = int32(unsafe.Sizeof(media.Vertex{}))

// SetupVertexAttribs describes media.Vertex: position, normalized RGBA8
// color and pixel texture coordinates at locations 0, 1 and 2.
func (d *Device) SetupVertexAttribs() {
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(media.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, vertexStride, unsafe.Offsetof(media.Vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(media.Vertex{}.TexCoords))
	gl.EnableVertexAttribArray(2)
}

func bufferUsage(u media.BufferUsage) uint32 {
	switch u {
	case media.UsageDynamic:
		return gl.DYNAMIC_DRAW
	case media.UsageStatic:
		return gl.STATIC_DRAW
	}
	return gl.STREAM_DRAW
}

func (d *Device) BufferVertices(vertices []media.Vertex, usage media.BufferUsage) {
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, bufferUsage(usage))
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), bufferUsage(usage))
}

func (d *Device) BufferSubVertices(offset int, vertices []media.Vertex) {
	if len(vertices) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*int(vertexStride), len(vertices)*int(vertexStride), gl.Ptr(vertices))
}

func (d *Device) BufferIndices(indices []uint32, usage media.BufferUsage) {
	if len(indices) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, bufferUsage(usage))
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), bufferUsage(usage))
}

var primitiveModes = [...]uint32{
	media.Points:        gl.POINTS,
	media.Lines:         gl.LINES,
	media.LineStrip:     gl.LINE_STRIP,
	media.Triangles:     gl.TRIANGLES,
	media.TriangleStrip: gl.TRIANGLE_STRIP,
	media.TriangleFan:   gl.TRIANGLE_FAN,
}

func (d *Device) DrawArrays(p media.PrimitiveType, first, count int32) {
	gl.DrawArrays(primitiveModes[p], first, count)
}

func (d *Device) DrawElements(p media.PrimitiveType, count int32, indexOffset int) {
	gl.DrawElementsWithOffset(primitiveModes[p], count, gl.UNSIGNED_INT, uintptr(indexOffset)*4)
}

func applyTextureParams(params media.TextureParams) {
	filter := int32(gl.NEAREST)
	if params.Smooth {
		filter = gl.LINEAR
	}
	wrap := int32(gl.CLAMP_TO_EDGE)
	if params.Repeated {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
}

// withTexture runs fn with id bound, restoring the previous binding.
func withTexture(id uint32, fn func()) {
	var last int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &last)
	gl.BindTexture(gl.TEXTURE_2D, id)
	fn()
	gl.BindTexture(gl.TEXTURE_2D, uint32(last))
}

func (d *Device) CreateTexture(width, height int, pixels []byte, params media.TextureParams) (uint32, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, fmt.Errorf("glGenTextures returned 0: %w", media.ErrUnsupported)
	}

	internal := int32(gl.RGBA8)
	if params.SRGB {
		internal = gl.SRGB8_ALPHA8
	}
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}

	withTexture(tex, func() {
		applyTextureParams(params)
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	})
	if err := d.Error(); err != nil {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("glTexImage2D %dx%d: %w", width, height, err)
	}
	return tex, nil
}

func (d *Device) UpdateTexture(id uint32, x, y, width, height int, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	withTexture(id, func() {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	})
}

func (d *Device) SetTextureParams(id uint32, params media.TextureParams) {
	withTexture(id, func() { applyTextureParams(params) })
}

func (d *Device) ReadTexture(id uint32, width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	withTexture(id, func() {
		gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	})
	return pixels
}

func (d *Device) DeleteTexture(id uint32)           { gl.DeleteTextures(1, &id) }
func (d *Device) ActiveTexture(unit uint32)         { gl.ActiveTexture(gl.TEXTURE0 + unit) }
func (d *Device) BindTexture(id uint32)             { gl.BindTexture(gl.TEXTURE_2D, id) }
func (d *Device) MaxTextureSize() int               { return d.maxTextureSize }
func (d *Device) DeleteProgram(id uint32)           { gl.DeleteProgram(id) }
func (d *Device) UseProgram(id uint32)              { gl.UseProgram(id) }
func (d *Device) Uniform1i(loc int32, v int32)      { gl.Uniform1i(loc, v) }
func (d *Device) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (d *Device) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

func (d *Device) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

func (d *Device) UniformMatrix4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (d *Device) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (d *Device) DeleteFramebuffer(id uint32) {
	if rb, ok := d.renderbuffers[id]; ok {
		gl.DeleteRenderbuffers(1, &rb)
		delete(d.renderbuffers, id)
	}
	if d.boundFramebuffer == id {
		d.boundFramebuffer = 0
	}
	gl.DeleteFramebuffers(1, &id)
}

func (d *Device) BindFramebuffer(id uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
	d.boundFramebuffer = id
}

func (d *Device) FramebufferTexture(texture uint32, width, height int) error {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture, 0)

	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.STENCIL_INDEX8, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, rb)
	d.renderbuffers[d.boundFramebuffer] = rb

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete (status 0x%x): %w", status, media.ErrUnsupported)
	}
	return nil
}

func (d *Device) Flush() { gl.Flush() }

// CreateProgram compiles and links a program.
func (d *Device) CreateProgram(vertexSource, fragmentSource string) (uint32, error) {
	return createShaderProgram(cstr(vertexSource), cstr(fragmentSource))
}

// cstr returns s NUL terminated, as the gl string helpers expect.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %s", string(log))
	}
	return shader, nil
}

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// Error returns the oldest pending GL error.
func (d *Device) Error() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	if name, ok := glErrorNames[code]; ok {
		return fmt.Errorf("opengl: %s", name)
	}
	return fmt.Errorf("opengl: error 0x%x", code)
}
