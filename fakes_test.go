package media_test

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/media"
)

// fakeDevice records the calls the render core makes.
type fakeDevice struct {
	calls map[string]int

	nextID      uint32
	textures    map[uint32][]byte
	boundFBO    uint32
	drawArrays  []media.PrimitiveType
	drawIndexed []int32
	viewports   [][4]int32
	lastVerts   []media.Vertex
	failProgram bool
	initCalls   int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		calls:    make(map[string]int),
		textures: make(map[uint32][]byte),
	}
}

func (d *fakeDevice) rec(name string) { d.calls[name]++ }

func (d *fakeDevice) gen() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) Init() error { d.initCalls++; return nil }

func (d *fakeDevice) Enable(c media.Capability)  { d.rec("Enable") }
func (d *fakeDevice) Disable(c media.Capability) { d.rec("Disable") }
func (d *fakeDevice) ColorMask(r, g, b, a bool)  { d.rec("ColorMask") }

func (d *fakeDevice) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha media.BlendFactor) {
	d.rec("BlendFuncSeparate")
}

func (d *fakeDevice) BlendEquationSeparate(color, alpha media.BlendEquation) {
	d.rec("BlendEquationSeparate")
}

func (d *fakeDevice) SupportsBlendMinMax() bool { return true }

func (d *fakeDevice) StencilOp(fail, depthFail, pass media.StencilUpdateOperation) {
	d.rec("StencilOp")
}

func (d *fakeDevice) StencilFunc(cmp media.StencilComparison, ref int32, mask uint32) {
	d.rec("StencilFunc")
}

func (d *fakeDevice) Viewport(x, y, w, h int32) {
	d.rec("Viewport")
	d.viewports = append(d.viewports, [4]int32{x, y, w, h})
}

func (d *fakeDevice) Scissor(x, y, w, h int32)   { d.rec("Scissor") }
func (d *fakeDevice) ClearColor(c media.Color)   { d.rec("ClearColor") }
func (d *fakeDevice) ClearStencil(v int32)       { d.rec("ClearStencil") }
func (d *fakeDevice) Clear(mask media.ClearMask) { d.rec("Clear") }

func (d *fakeDevice) GenVertexArray() uint32      { d.rec("GenVertexArray"); return d.gen() }
func (d *fakeDevice) DeleteVertexArray(id uint32) { d.rec("DeleteVertexArray") }
func (d *fakeDevice) BindVertexArray(id uint32)   { d.rec("BindVertexArray") }
func (d *fakeDevice) GenBuffer() uint32           { d.rec("GenBuffer"); return d.gen() }
func (d *fakeDevice) DeleteBuffer(id uint32)      { d.rec("DeleteBuffer") }
func (d *fakeDevice) BindArrayBuffer(id uint32)   { d.rec("BindArrayBuffer") }
func (d *fakeDevice) BindElementBuffer(id uint32) { d.rec("BindElementBuffer") }
func (d *fakeDevice) SetupVertexAttribs()         { d.rec("SetupVertexAttribs") }

func (d *fakeDevice) BufferVertices(vertices []media.Vertex, usage media.BufferUsage) {
	d.rec("BufferVertices")
	d.lastVerts = append(d.lastVerts[:0], vertices...)
}

func (d *fakeDevice) BufferSubVertices(offset int, vertices []media.Vertex) {
	d.rec("BufferSubVertices")
}

func (d *fakeDevice) BufferIndices(indices []uint32, usage media.BufferUsage) {
	d.rec("BufferIndices")
}

func (d *fakeDevice) DrawArrays(p media.PrimitiveType, first, count int32) {
	d.rec("DrawArrays")
	d.drawArrays = append(d.drawArrays, p)
}

func (d *fakeDevice) DrawElements(p media.PrimitiveType, count int32, indexOffset int) {
	d.rec("DrawElements")
	d.drawIndexed = append(d.drawIndexed, count)
}

func (d *fakeDevice) CreateTexture(width, height int, pixels []byte, params media.TextureParams) (uint32, error) {
	d.rec("CreateTexture")
	id := d.gen()
	buf := make([]byte, width*height*4)
	copy(buf, pixels)
	d.textures[id] = buf
	return id, nil
}

func (d *fakeDevice) UpdateTexture(id uint32, x, y, width, height int, pixels []byte) {
	d.rec("UpdateTexture")
}

func (d *fakeDevice) SetTextureParams(id uint32, params media.TextureParams) {
	d.rec("SetTextureParams")
}

func (d *fakeDevice) ReadTexture(id uint32, width, height int) []byte {
	d.rec("ReadTexture")
	return d.textures[id]
}

func (d *fakeDevice) DeleteTexture(id uint32) {
	d.rec("DeleteTexture")
	delete(d.textures, id)
}

func (d *fakeDevice) ActiveTexture(unit uint32) { d.rec("ActiveTexture") }
func (d *fakeDevice) BindTexture(id uint32)     { d.rec("BindTexture") }
func (d *fakeDevice) MaxTextureSize() int       { return 4096 }

func (d *fakeDevice) GenFramebuffer() uint32      { d.rec("GenFramebuffer"); return d.gen() }
func (d *fakeDevice) DeleteFramebuffer(id uint32) { d.rec("DeleteFramebuffer") }

func (d *fakeDevice) BindFramebuffer(id uint32) {
	d.rec("BindFramebuffer")
	d.boundFBO = id
}

func (d *fakeDevice) FramebufferTexture(texture uint32, width, height int) error {
	d.rec("FramebufferTexture")
	return nil
}

func (d *fakeDevice) Flush() { d.rec("Flush") }

func (d *fakeDevice) CreateProgram(vertexSource, fragmentSource string) (uint32, error) {
	d.rec("CreateProgram")
	if d.failProgram {
		return 0, media.ErrUnsupported
	}
	return d.gen(), nil
}

func (d *fakeDevice) DeleteProgram(id uint32) { d.rec("DeleteProgram") }
func (d *fakeDevice) UseProgram(id uint32)    { d.rec("UseProgram") }

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	switch name {
	case media.UniformMVPMatrix:
		return 0
	case media.UniformTexture:
		return 1
	}
	return -1
}

func (d *fakeDevice) Uniform1i(location int32, v int32)            { d.rec("Uniform1i") }
func (d *fakeDevice) Uniform1f(location int32, v float32)          { d.rec("Uniform1f") }
func (d *fakeDevice) Uniform2f(location int32, x, y float32)       { d.rec("Uniform2f") }
func (d *fakeDevice) Uniform4f(location int32, x, y, z, w float32) { d.rec("Uniform4f") }
func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4)  { d.rec("UniformMatrix4") }
func (d *fakeDevice) Error() error                                 { return nil }

func (d *fakeDevice) reset() { clear(d.calls); d.drawArrays = nil; d.drawIndexed = nil }

// fakeSurface is a fixed size surface that keeps one context current.
type fakeSurface struct {
	gc   *media.GraphicsContext
	ctx  media.ContextID
	size media.Vec2u

	activations int
}

func newFakeSurface(gc *media.GraphicsContext, w, h uint32) *fakeSurface {
	ctx, err := gc.RegisterContext()
	if err != nil {
		panic(err)
	}
	return &fakeSurface{gc: gc, ctx: ctx, size: media.Vec2u{X: w, Y: h}}
}

func (s *fakeSurface) Size() media.Vec2u { return s.size }
func (s *fakeSurface) IsSRGB() bool      { return false }

func (s *fakeSurface) Activate(active bool) bool {
	s.activations++
	if active {
		s.gc.SetActiveContext(s.ctx)
	}
	return true
}

// fakePlatform queues native events handed to it by tests. Like SDL, it
// leaves a new window's context current.
type fakePlatform struct {
	queue     []media.NativeEvent
	windows   []*fakeWindow
	nextID    uint32
	joysticks *fakeJoysticks
	sensors   *fakeSensors
	clip      string
	current   *fakeWindow

	terminated bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{joysticks: &fakeJoysticks{}, sensors: &fakeSensors{}}
}

func (p *fakePlatform) CreateWindow(cfg media.NativeWindowConfig) (media.NativeWindow, error) {
	p.nextID++
	w := &fakeWindow{p: p, id: p.nextID, cfg: cfg, size: cfg.Size, focus: true}
	p.windows = append(p.windows, w)
	p.current = w
	return w, nil
}

func (p *fakePlatform) PollNativeEvents(dst []media.NativeEvent) []media.NativeEvent {
	dst = append(dst, p.queue...)
	p.queue = p.queue[:0]
	return dst
}

func (p *fakePlatform) push(evs ...media.NativeEvent) { p.queue = append(p.queue, evs...) }

func (p *fakePlatform) Joysticks() media.JoystickBackend { return p.joysticks }
func (p *fakePlatform) Sensors() media.SensorBackend     { return p.sensors }
func (p *fakePlatform) GetText() string                  { return p.clip }
func (p *fakePlatform) SetText(text string)              { p.clip = text }
func (p *fakePlatform) Terminate()                       { p.terminated = true }

type fakeWindow struct {
	p     *fakePlatform
	id    uint32
	cfg   media.NativeWindowConfig
	size  media.Vec2u
	pos   media.Vec2i
	focus bool

	minSize, maxSize media.Vec2u
	swaps            int
	swapInterval     int
	swapOffContext   int // SetSwapInterval calls made with another context current
	destroyed        bool
}

func (w *fakeWindow) ID() uint32                  { return w.id }
func (w *fakeWindow) Size() media.Vec2u           { return w.size }
func (w *fakeWindow) SetSize(size media.Vec2u)    { w.size = size }
func (w *fakeWindow) Position() media.Vec2i       { return w.pos }
func (w *fakeWindow) SetPosition(pos media.Vec2i) { w.pos = pos }

func (w *fakeWindow) SetSizeLimits(minimum, maximum media.Vec2u) {
	w.minSize, w.maxSize = minimum, maximum
}

func (w *fakeWindow) SetTitle(title string)              { w.cfg.Title = title }
func (w *fakeWindow) SetIcon(icon image.Image)           {}
func (w *fakeWindow) SetVisible(visible bool)            { w.cfg.Hidden = !visible }
func (w *fakeWindow) SetMouseCursorVisible(visible bool) {}
func (w *fakeWindow) SetMouseCursorGrabbed(grabbed bool) {}
func (w *fakeWindow) RequestFocus()                      { w.focus = true }
func (w *fakeWindow) HasFocus() bool                     { return w.focus }

func (w *fakeWindow) MakeContextCurrent(current bool) error {
	if current {
		w.p.current = w
	} else if w.p.current == w {
		w.p.current = nil
	}
	return nil
}

func (w *fakeWindow) SetSwapInterval(interval int) {
	if w.p.current != w {
		w.swapOffContext++
	}
	w.swapInterval = interval
}

func (w *fakeWindow) SwapBuffers() { w.swaps++ }
func (w *fakeWindow) IsSRGB() bool { return false }
func (w *fakeWindow) Destroy()     { w.destroyed = true }

// fakeJoysticks serves states set by tests.
type fakeJoysticks struct {
	states [media.JoystickCount]media.JoystickState
	caps   [media.JoystickCount]media.JoystickCapabilities
	opened [media.JoystickCount]int
}

func (j *fakeJoysticks) IsConnected(index int) bool { return j.states[index].Connected }
func (j *fakeJoysticks) Open(index int) bool        { j.opened[index]++; return j.states[index].Connected }
func (j *fakeJoysticks) Close(index int)            {}

func (j *fakeJoysticks) Capabilities(index int) media.JoystickCapabilities { return j.caps[index] }

func (j *fakeJoysticks) Identification(index int) media.JoystickIdentification {
	return media.JoystickIdentification{Name: "pad", VendorID: 0x45e, ProductID: 0x28e}
}

func (j *fakeJoysticks) Update(index int) media.JoystickState { return j.states[index] }

// fakeSensors has an accelerometer only.
type fakeSensors struct {
	value   media.Vec3f
	enabled bool
	opened  int
	closed  int
}

func (s *fakeSensors) IsAvailable(t media.SensorType) bool { return t == media.SensorAccelerometer }

func (s *fakeSensors) Open(t media.SensorType) bool {
	if t != media.SensorAccelerometer {
		return false
	}
	s.opened++
	return true
}

func (s *fakeSensors) Close(t media.SensorType)                    { s.closed++ }
func (s *fakeSensors) SetEnabled(t media.SensorType, enabled bool) { s.enabled = enabled }
func (s *fakeSensors) Update(t media.SensorType) media.Vec3f       { return s.value }
