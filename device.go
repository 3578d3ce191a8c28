package media

import "github.com/go-gl/mathgl/mgl32"

// Capability is a server-side GL capability toggled with Enable/Disable.
type Capability uint8

const (
	CapBlend Capability = iota
	CapCullFace
	CapDepthTest
	CapScissorTest
	CapStencilTest
	CapFramebufferSRGB
)

// ClearMask selects the buffers cleared by Device.Clear.
type ClearMask uint8

const (
	ClearColorBuffer ClearMask = 1 << iota
	ClearStencilBuffer
)

// BufferUsage hints how often buffer contents are rewritten.
type BufferUsage uint8

const (
	UsageStream BufferUsage = iota
	UsageDynamic
	UsageStatic
)

// TextureParams configures sampling for a texture.
type TextureParams struct {
	Smooth   bool
	Repeated bool
	SRGB     bool
}

// DeviceInitializer is implemented by devices that need a current context
// before their first call. Init runs once, the first time a window context
// is activated.
type DeviceInitializer interface {
	Init() error
}

// Device is the set of GPU entry points the render core issues.
// It is implemented on real OpenGL by backend/opengl.
//
// All methods act on the context that is current on the calling thread.
type Device interface {
	Enable(c Capability)
	Disable(c Capability)
	ColorMask(r, g, b, a bool)

	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor)
	BlendEquationSeparate(color, alpha BlendEquation)
	SupportsBlendMinMax() bool

	StencilOp(fail, depthFail, pass StencilUpdateOperation)
	StencilFunc(cmp StencilComparison, ref int32, mask uint32)

	Viewport(x, y, w, h int32)
	Scissor(x, y, w, h int32)

	ClearColor(c Color)
	ClearStencil(v int32)
	Clear(mask ClearMask)

	// Vertex array and buffer objects. Id 0 unbinds.
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindArrayBuffer(id uint32)
	BindElementBuffer(id uint32)
	// SetupVertexAttribs points attributes 0..2 at the bound array buffer
	// using the Vertex layout.
	SetupVertexAttribs()
	BufferVertices(vertices []Vertex, usage BufferUsage)
	BufferSubVertices(offset int, vertices []Vertex)
	BufferIndices(indices []uint32, usage BufferUsage)

	DrawArrays(p PrimitiveType, first, count int32)
	DrawElements(p PrimitiveType, count int32, indexOffset int)

	// Textures. Pixels are tightly packed RGBA8, may be nil.
	CreateTexture(width, height int, pixels []byte, params TextureParams) (uint32, error)
	UpdateTexture(id uint32, x, y, width, height int, pixels []byte)
	SetTextureParams(id uint32, params TextureParams)
	ReadTexture(id uint32, width, height int) []byte
	DeleteTexture(id uint32)
	ActiveTexture(unit uint32)
	BindTexture(id uint32)
	MaxTextureSize() int

	// Framebuffer objects. Id 0 binds the window's default framebuffer.
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(id uint32)
	// FramebufferTexture attaches texture as color attachment 0 of the
	// bound framebuffer, with a stencil buffer of the same size, and
	// reports an error when the framebuffer is incomplete.
	FramebufferTexture(texture uint32, width, height int) error
	// Flush submits queued commands without waiting for them.
	Flush()

	// Programs.
	CreateProgram(vertexSource, fragmentSource string) (uint32, error)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	// Error returns and clears the oldest pending GL error, or nil.
	Error() error
}
