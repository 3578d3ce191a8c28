package media

// Surface is what a RenderTarget draws into: a window's default
// framebuffer or an off-screen framebuffer object.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() Vec2u

	// IsSRGB reports whether writes should be sRGB encoded.
	IsSRGB() bool

	// Activate makes the surface the destination of GL calls on the
	// calling thread, or releases it. It must keep the GraphicsContext's
	// active context id up to date.
	Activate(active bool) bool
}

// AutoBatchMode selects whether consecutive draws with equal RenderStates
// are merged into one draw call.
type AutoBatchMode uint8

const (
	// AutoBatchDisabled draws every call immediately.
	AutoBatchDisabled AutoBatchMode = iota
	// AutoBatchCPU accumulates geometry in memory and uploads it on flush.
	AutoBatchCPU
)

// DefaultAutoBatchVertexThreshold is the batch size that forces a flush.
const DefaultAutoBatchVertexThreshold = 32768

// DrawStatistics counts the work submitted since the last Clear.
type DrawStatistics struct {
	DrawCalls int
	Vertices  int
}

// statesCache is the GL state this target last applied. When enable is
// false every field is considered stale.
type statesCache struct {
	enable      bool
	glStatesSet bool
	viewChanged bool

	scissorEnabled bool
	stencilEnabled bool

	lastBlendMode   BlendMode
	lastStencilMode StencilMode
	lastTextureID   uint64
	lastProgramID   uint32

	lastVaoGroup   uint32
	lastVaoContext ContextID

	lastRenderStatesTransform Transform
	lastViewTransform         Transform
}

// RenderTarget issues cached 2D draw calls to a Surface.
//
// All methods must be called from the thread the surface's GL context is
// used on.
type RenderTarget struct {
	gc      *GraphicsContext
	surface Surface
	id      RenderTargetID

	view        View
	defaultView View

	cache      statesCache
	lastStates RenderStates
	groups     map[ContextID]*vaoGroup

	autoBatch          AutoBatchMode
	autoBatchThreshold int
	batch              DrawableBatch
	scratch            DrawableBatch
	quadIndices        []uint32

	stats DrawStatistics

	// flipY renders with the scene's top at framebuffer row 0, so that an
	// off-screen result samples upright.
	flipY bool
}

// NewRenderTarget creates a target drawing into s. Window and texture
// targets are built with NewRenderWindow and NewRenderTexture, this is for
// surfaces managed by the caller.
func NewRenderTarget(gc *GraphicsContext, s Surface, opts ...RenderTargetOption) *RenderTarget {
	rt := &RenderTarget{
		gc:                 gc,
		surface:            s,
		id:                 gc.NextRenderTargetID(),
		groups:             make(map[ContextID]*vaoGroup),
		autoBatchThreshold: DefaultAutoBatchVertexThreshold,
	}
	rt.defaultView = NewView(FloatRect{Size: s.Size().ToVec2f()})
	rt.view = rt.defaultView
	rt.cache.viewChanged = true
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// ID returns the target id used for context tracking.
func (rt *RenderTarget) ID() RenderTargetID { return rt.id }

// GraphicsContext returns the session this target draws through.
func (rt *RenderTarget) GraphicsContext() *GraphicsContext { return rt.gc }

// Size returns the surface size in pixels.
func (rt *RenderTarget) Size() Vec2u { return rt.surface.Size() }

// IsSRGB reports whether the surface is sRGB encoded.
func (rt *RenderTarget) IsSRGB() bool { return rt.surface.IsSRGB() }

// SetActive activates or deactivates the target for rendering on the
// calling thread. Activating an already active target does nothing and
// returns true.
func (rt *RenderTarget) SetActive(active bool) bool {
	if active {
		if rt.isActive() {
			return true
		}
		if !rt.surface.Activate(true) {
			return false
		}
		return rt.setActive(true)
	}
	ok := rt.setActive(false)
	return rt.surface.Activate(false) && ok
}

// isActive reports whether this target is the active one of the current
// context.
func (rt *RenderTarget) isActive() bool {
	ctx := rt.gc.ActiveContextID()
	return ctx != invalidID && ctx < MaxContexts && rt.gc.activeTarget(ctx) == rt.id
}

func (rt *RenderTarget) setActive(active bool) bool {
	ctx := rt.gc.ActiveContextID()
	if ctx == invalidID || ctx >= MaxContexts {
		return !active
	}

	loaded := rt.gc.activeTarget(ctx)
	if isActive := loaded == rt.id; isActive == active {
		return true
	}

	if !active {
		rt.gc.storeActiveTarget(ctx, invalidID)
		rt.cache.enable = false
		return true
	}

	// First activation, a different target was active on this context, or
	// this target moved to another context.
	rt.gc.storeActiveTarget(ctx, rt.id)
	if loaded == invalidID {
		rt.cache.glStatesSet = false
	}
	rt.cache.enable = false
	return true
}

// ResetGLStates forgets the cached GL state and reapplies defaults. Call
// it after issuing GL commands directly.
func (rt *RenderTarget) ResetGLStates() {
	rt.Flush()
	rt.resetGLStates()
}

func (rt *RenderTarget) resetGLStates() {
	if !rt.SetActive(true) {
		Logger().Error("Failed to activate render target in resetGLStates", "target", rt.id)
		return
	}
	dev := rt.gc.Device()

	dev.ActiveTexture(0)
	dev.Disable(CapCullFace)
	dev.Disable(CapStencilTest)
	dev.Disable(CapDepthTest)
	dev.Disable(CapScissorTest)
	dev.Enable(CapBlend)
	dev.ColorMask(true, true, true, true)

	rt.cache.scissorEnabled = false
	rt.cache.stencilEnabled = false
	rt.cache.lastVaoGroup = 0
	rt.cache.glStatesSet = true

	rt.applyBlendMode(BlendAlpha)
	rt.applyStencilMode(DefaultStencilMode)
	rt.unapplyTexture()

	dev.UseProgram(0)
	rt.cache.lastProgramID = 0

	dev.BindArrayBuffer(0)

	rt.cache.viewChanged = true
	rt.cache.enable = true
}

// prepare activates the target before a clear.
func (rt *RenderTarget) prepare() bool {
	if !rt.SetActive(true) {
		Logger().Error("Failed to activate render target", "target", rt.id)
		return false
	}
	rt.stats = DrawStatistics{}
	rt.unapplyTexture()
	if !rt.cache.enable || rt.cache.viewChanged {
		rt.applyView()
	}
	return true
}

// Clear fills the surface with color and resets the draw statistics.
func (rt *RenderTarget) Clear(color Color) {
	rt.Flush()
	if !rt.prepare() {
		return
	}
	dev := rt.gc.Device()
	dev.ClearColor(color)
	dev.Clear(ClearColorBuffer)
}

// ClearStencil fills the stencil buffer with value.
func (rt *RenderTarget) ClearStencil(value uint32) {
	rt.Flush()
	if !rt.prepare() {
		return
	}
	dev := rt.gc.Device()
	dev.ClearStencil(int32(value))
	dev.Clear(ClearStencilBuffer)
}

// ClearColorAndStencil clears both buffers in one call.
func (rt *RenderTarget) ClearColorAndStencil(color Color, stencil uint32) {
	rt.Flush()
	if !rt.prepare() {
		return
	}
	dev := rt.gc.Device()
	dev.ClearColor(color)
	dev.ClearStencil(int32(stencil))
	dev.Clear(ClearColorBuffer | ClearStencilBuffer)
}

// SetView changes the camera. Pending batched geometry is drawn with the
// previous view first.
func (rt *RenderTarget) SetView(v View) {
	if v == rt.view {
		return
	}
	rt.Flush()
	rt.view = v
	rt.cache.viewChanged = true
}

// View returns the current view.
func (rt *RenderTarget) View() View { return rt.view }

// DefaultView returns the view covering the whole surface with unit
// pixels.
func (rt *RenderTarget) DefaultView() View { return rt.defaultView }

// Viewport returns the pixel rectangle view renders into, measured from
// the top-left corner.
func (rt *RenderTarget) Viewport(v View) IntRect {
	return roundedRect(rt.surface.Size(), v.Viewport)
}

// Scissor returns the pixel rectangle outside of which view discards
// fragments.
func (rt *RenderTarget) Scissor(v View) IntRect {
	return roundedRect(rt.surface.Size(), v.Scissor)
}

// MapPixelToCoords converts a pixel position to scene coordinates using
// the current view.
func (rt *RenderTarget) MapPixelToCoords(p Vec2i) Vec2f {
	return rt.MapPixelToCoordsView(p, rt.view)
}

// MapPixelToCoordsView converts a pixel position to scene coordinates.
func (rt *RenderTarget) MapPixelToCoordsView(p Vec2i, v View) Vec2f {
	vp := rt.Viewport(v).ToFloatRect()
	normalized := Vec2f{X: -1, Y: 1}.Add(
		Vec2f{X: 2, Y: -2}.CwiseMul(p.ToVec2f().Sub(vp.Position)).CwiseDiv(vp.Size))
	return v.InverseTransform().TransformPoint(normalized)
}

// MapCoordsToPixel converts scene coordinates to a pixel position using
// the current view.
func (rt *RenderTarget) MapCoordsToPixel(p Vec2f) Vec2i {
	return rt.MapCoordsToPixelView(p, rt.view)
}

// MapCoordsToPixelView converts scene coordinates to a pixel position.
func (rt *RenderTarget) MapCoordsToPixelView(p Vec2f, v View) Vec2i {
	n := v.Transform().TransformPoint(p)
	vp := rt.Viewport(v).ToFloatRect()
	return n.CwiseMul(Vec2f{X: 1, Y: -1}).
		Add(Vec2f{X: 1, Y: 1}).
		CwiseMul(Vec2f{X: 0.5, Y: 0.5}).
		CwiseMul(vp.Size).
		Add(vp.Position).
		ToVec2i()
}

// SetAutoBatchMode switches batching. Pending geometry is flushed.
func (rt *RenderTarget) SetAutoBatchMode(m AutoBatchMode) {
	rt.Flush()
	rt.autoBatch = m
}

// AutoBatchMode returns the batching mode.
func (rt *RenderTarget) AutoBatchMode() AutoBatchMode { return rt.autoBatch }

// SetAutoBatchVertexThreshold sets the batch size that forces a flush.
// Non-positive values restore the default.
func (rt *RenderTarget) SetAutoBatchVertexThreshold(n int) {
	rt.Flush()
	if n <= 0 {
		n = DefaultAutoBatchVertexThreshold
	}
	rt.autoBatchThreshold = n
}

// CurrentDrawStatistics returns the counters since the last Clear.
func (rt *RenderTarget) CurrentDrawStatistics() DrawStatistics { return rt.stats }

// ResetDrawStatistics zeroes the counters. Clear does this implicitly.
func (rt *RenderTarget) ResetDrawStatistics() { rt.stats = DrawStatistics{} }

// Flush draws any batched geometry and returns the statistics so far.
func (rt *RenderTarget) Flush() DrawStatistics {
	if rt.autoBatch != AutoBatchDisabled && !rt.batch.IsEmpty() {
		rt.drawIndexedImmediate(rt.batch.Vertices(), rt.batch.Indices(), Triangles, rt.lastStates)
	}
	rt.batch.Clear()
	return rt.stats
}

func (rt *RenderTarget) flushIfNeeded(states RenderStates) {
	if rt.batch.VertexCount() >= rt.autoBatchThreshold || rt.lastStates != states {
		rt.Flush()
		rt.lastStates = states
	}
}

// Draw draws d. A nil Texture in states is filled in from the drawable
// where it carries one.
func (rt *RenderTarget) Draw(d Drawable, states RenderStates) {
	switch v := d.(type) {
	case *Sprite:
		rt.drawSprite(v, states)
	case *Shape:
		rt.drawShape(v, states)
	case *Text:
		rt.drawText(v, states)
	case VertexArray:
		rt.DrawVertices(v.Vertices, v.Primitive, states)
	case *VertexBuffer:
		rt.DrawVertexBuffer(v, 0, v.VertexCount(), states)
	case *DrawableBatch:
		rt.DrawBatch(v, states)
	}
}

func (rt *RenderTarget) drawSprite(s *Sprite, states RenderStates) {
	if s.Texture != nil {
		states.Texture = s.Texture
	}
	if rt.autoBatch != AutoBatchDisabled {
		rt.flushIfNeeded(states)
		rt.batch.AddSprite(s)
		return
	}
	quad := s.Vertices()
	rt.DrawVertices(quad[:], TriangleStrip, states)
}

func (rt *RenderTarget) drawShape(s *Shape, states RenderStates) {
	if s.Texture() != nil {
		states.Texture = s.Texture()
	}
	if rt.autoBatch != AutoBatchDisabled {
		rt.flushIfNeeded(states)
		rt.batch.AddShape(s)
		return
	}
	states.Transform = states.Transform.Combine(s.Transform())
	rt.drawImmediate(s.FillVertices(), TriangleFan, states)
	if s.OutlineThickness() != 0 {
		rt.drawImmediate(s.OutlineVertices(), TriangleStrip, states)
	}
}

func (rt *RenderTarget) drawText(t *Text, states RenderStates) {
	if t.Font() != nil {
		states.Texture = t.Font().Texture()
	}
	if rt.autoBatch != AutoBatchDisabled {
		rt.flushIfNeeded(states)
		rt.batch.AddText(t)
		return
	}
	rt.scratch.Clear()
	rt.scratch.AddText(t)
	rt.drawIndexedImmediate(rt.scratch.Vertices(), rt.scratch.Indices(), Triangles, states)
}

// DrawBatch draws a prepared batch in one call.
func (rt *RenderTarget) DrawBatch(b *DrawableBatch, states RenderStates) {
	rt.Flush()
	rt.drawIndexedImmediate(b.Vertices(), b.Indices(), Triangles, states)
}

// DrawVertices draws a vertex list. Triangle topologies join the auto
// batch when batching is on.
func (rt *RenderTarget) DrawVertices(vs []Vertex, p PrimitiveType, states RenderStates) {
	if rt.autoBatch != AutoBatchDisabled && isBatchable(p) {
		rt.flushIfNeeded(states)
		rt.batch.AddVertices(IdentityTransform, vs, p)
		return
	}
	rt.Flush()
	rt.drawImmediate(vs, p, states)
}

// DrawIndexedVertices draws vertices selected by a 32-bit index list. The
// draw is skipped when an index is past the end of vs.
func (rt *RenderTarget) DrawIndexedVertices(vs []Vertex, indices []uint32, p PrimitiveType, states RenderStates) {
	if !indicesInRange(indices, len(vs)) {
		warnOnce("index-range", "Vertex index out of range, skipping draw", "vertices", len(vs))
		return
	}
	if rt.autoBatch != AutoBatchDisabled && isBatchable(p) {
		rt.flushIfNeeded(states)
		rt.batch.AddIndexedVertices(vs, indices, p)
		return
	}
	rt.Flush()
	rt.drawIndexedImmediate(vs, indices, p, states)
}

// DrawQuads draws groups of four vertices in top-left, top-right,
// bottom-left, bottom-right order as two triangles each.
func (rt *RenderTarget) DrawQuads(vs []Vertex, states RenderStates) {
	quads := len(vs) / 4
	rt.DrawIndexedVertices(vs[:quads*4], rt.quadIndexList(quads), Triangles, states)
}

func (rt *RenderTarget) quadIndexList(quads int) []uint32 {
	for q := uint32(len(rt.quadIndices) / 6); q < uint32(quads); q++ {
		s := q * 4
		rt.quadIndices = append(rt.quadIndices, s, s+1, s+2, s+1, s+2, s+3)
	}
	return rt.quadIndices[:quads*6]
}

// DrawVertexBuffer draws count vertices of vb starting at first. count is
// clamped to the buffer.
func (rt *RenderTarget) DrawVertexBuffer(vb *VertexBuffer, first, count int, states RenderStates) {
	rt.cache.lastVaoGroup = 0

	if rt.autoBatch != AutoBatchDisabled {
		rt.Flush()
	}
	if first < 0 || first > vb.VertexCount() {
		return
	}
	count = min(count, vb.VertexCount()-first)
	if count <= 0 || vb.NativeHandle() == 0 || !rt.activateForDraw() {
		return
	}

	group, ok := rt.setupDraw(states)
	if !ok {
		return
	}
	dev := rt.gc.Device()

	vb.Bind()
	dev.SetupVertexAttribs()
	rt.drawArrays(vb.PrimitiveType(), first, count)
	dev.BindArrayBuffer(0)

	// Restore the attribute pointers of the streaming buffer.
	rt.bindGroup(group)

	rt.cleanupDraw(states)
}

func isBatchable(p PrimitiveType) bool {
	return p == Triangles || p == TriangleStrip || p == TriangleFan
}

func (rt *RenderTarget) activateForDraw() bool {
	if rt.SetActive(true) {
		return true
	}
	Logger().Error("Failed to activate render target for drawing", "target", rt.id)
	return false
}

func (rt *RenderTarget) drawImmediate(vs []Vertex, p PrimitiveType, states RenderStates) {
	if len(vs) == 0 || !rt.activateForDraw() {
		return
	}
	if _, ok := rt.setupDraw(states); !ok {
		return
	}
	rt.gc.Device().BufferVertices(vs, UsageStream)
	rt.drawArrays(p, 0, len(vs))
	rt.cleanupDraw(states)
}

func (rt *RenderTarget) drawIndexedImmediate(vs []Vertex, indices []uint32, p PrimitiveType, states RenderStates) {
	if len(vs) == 0 || len(indices) == 0 || !rt.activateForDraw() {
		return
	}
	if _, ok := rt.setupDraw(states); !ok {
		return
	}
	dev := rt.gc.Device()
	dev.BufferVertices(vs, UsageStream)
	dev.BufferIndices(indices, UsageStream)

	rt.stats.DrawCalls++
	rt.stats.Vertices += len(indices)
	dev.DrawElements(p, int32(len(indices)), 0)

	rt.cleanupDraw(states)
}

func (rt *RenderTarget) drawArrays(p PrimitiveType, first, count int) {
	rt.stats.DrawCalls++
	rt.stats.Vertices += count
	rt.gc.Device().DrawArrays(p, int32(first), int32(count))
}

// currentGroup returns the streaming VAO group for the active context.
// Vertex array objects are not shared between contexts.
func (rt *RenderTarget) currentGroup() *vaoGroup {
	ctx := rt.gc.ActiveContextID()
	g, ok := rt.groups[ctx]
	if !ok {
		ng := newVAOGroup(rt.gc)
		g = &ng
		rt.groups[ctx] = g
	}
	return g
}

func (rt *RenderTarget) bindGroup(g *vaoGroup) {
	g.bind()
	rt.cache.lastVaoGroup = g.id
	rt.cache.lastVaoContext = rt.gc.ActiveContextID()
}

// setupDraw applies every state in states that differs from the cache.
func (rt *RenderTarget) setupDraw(states RenderStates) (*vaoGroup, bool) {
	dev := rt.gc.Device()

	if !rt.cache.enable {
		if rt.surface.IsSRGB() {
			dev.Enable(CapFramebufferSRGB)
		} else {
			dev.Disable(CapFramebufferSRGB)
		}
	}

	if !rt.cache.glStatesSet {
		rt.resetGLStates()
	}

	group := rt.currentGroup()
	mustRebind := rt.cache.lastVaoGroup == 0 ||
		rt.cache.lastVaoGroup != group.id ||
		rt.cache.lastVaoContext != rt.gc.ActiveContextID()
	if !rt.cache.enable || mustRebind {
		rt.bindGroup(group)
	} else {
		// A vertex buffer update may have left another buffer bound.
		group.vbo.Bind()
	}

	shader := states.Shader
	if shader == nil {
		s, err := rt.gc.BuiltinShader()
		if err != nil {
			warnOnce("builtin-shader", "Built-in shader unavailable, skipping draws", "err", err)
			return nil, false
		}
		shader = s
	}
	shaderChanged := !rt.cache.enable || rt.cache.lastProgramID != shader.NativeHandle()
	if shaderChanged {
		shader.Bind()
		rt.cache.lastProgramID = shader.NativeHandle()
	} else if shader.dirty() {
		shader.flushUniforms()
	}

	viewChanged := !rt.cache.enable || rt.cache.viewChanged
	if viewChanged {
		rt.applyView()
	}

	rt.setupDrawMVP(shader, states.Transform, viewChanged, shaderChanged)

	if !rt.cache.enable || states.BlendMode != rt.cache.lastBlendMode {
		rt.applyBlendMode(states.BlendMode)
	}

	if !rt.cache.enable || states.StencilMode != rt.cache.lastStencilMode {
		rt.applyStencilMode(states.StencilMode)
	}
	if states.StencilMode.StencilOnly {
		dev.ColorMask(false, false, false, false)
	}

	if !rt.setupDrawTexture(states) {
		return nil, false
	}

	rt.lastStates = states
	return group, true
}

func (rt *RenderTarget) setupDrawMVP(shader *Shader, transform Transform, viewChanged, shaderChanged bool) {
	if !shaderChanged && rt.cache.enable && !viewChanged && transform == rt.cache.lastRenderStatesTransform {
		return
	}
	rt.cache.lastRenderStatesTransform = transform
	if shader.mvpLocation < 0 {
		return
	}
	mvp := rt.cache.lastViewTransform.Combine(transform)
	rt.gc.Device().UniformMatrix4(shader.mvpLocation, mvp.Matrix())
}

func (rt *RenderTarget) setupDrawTexture(states RenderStates) bool {
	tex := states.Texture
	if tex == nil {
		t, err := rt.gc.WhiteDot()
		if err != nil {
			warnOnce("white-dot", "White texture unavailable, skipping draws", "err", err)
			return false
		}
		tex = t
	}

	// Textures backing a render texture are always rebound so writes from
	// other contexts become visible.
	if !rt.cache.enable || tex.fboAttachment || tex.cacheID != rt.cache.lastTextureID {
		tex.Bind()
		rt.cache.lastTextureID = tex.cacheID
	}
	return true
}

func (rt *RenderTarget) cleanupDraw(states RenderStates) {
	if states.Texture != nil && states.Texture.fboAttachment {
		rt.unapplyTexture()
	}
	if states.StencilMode.StencilOnly {
		rt.gc.Device().ColorMask(true, true, true, true)
	}
	if verbose() {
		if err := rt.gc.Device().Error(); err != nil {
			Logger().Error("GL error after draw", "target", rt.id, "err", err)
		}
	}
	rt.cache.enable = true
}

func (rt *RenderTarget) applyView() {
	dev := rt.gc.Device()
	size := rt.surface.Size()

	// GL measures from the bottom-left corner.
	glY := func(r IntRect) int32 {
		if rt.flipY {
			return r.Position.Y
		}
		return int32(size.Y) - (r.Position.Y + r.Size.Y)
	}
	vp := rt.Viewport(rt.view)
	dev.Viewport(vp.Position.X, glY(vp), vp.Size.X, vp.Size.Y)

	if rt.view.Scissor == fullRect {
		if !rt.cache.enable || rt.cache.scissorEnabled {
			dev.Disable(CapScissorTest)
			rt.cache.scissorEnabled = false
		}
	} else {
		sc := rt.Scissor(rt.view)
		dev.Scissor(sc.Position.X, glY(sc), sc.Size.X, sc.Size.Y)
		if !rt.cache.enable || !rt.cache.scissorEnabled {
			dev.Enable(CapScissorTest)
			rt.cache.scissorEnabled = true
		}
	}

	rt.cache.lastViewTransform = rt.view.Transform()
	if rt.flipY {
		rt.cache.lastViewTransform = IdentityTransform.Scale(Vec2f{X: 1, Y: -1}, Vec2f{}).Combine(rt.cache.lastViewTransform)
	}
	rt.cache.viewChanged = false
}

func (rt *RenderTarget) applyBlendMode(m BlendMode) {
	dev := rt.gc.Device()
	applied := m
	if m.usesMinMax() && !dev.SupportsBlendMinMax() {
		warnOnce("blend-minmax", "Min and max blend equations are not supported, using add instead")
		applied.ColorEquation = downgradeEquation(m.ColorEquation)
		applied.AlphaEquation = downgradeEquation(m.AlphaEquation)
	}
	dev.BlendFuncSeparate(applied.ColorSrcFactor, applied.ColorDstFactor, applied.AlphaSrcFactor, applied.AlphaDstFactor)
	dev.BlendEquationSeparate(applied.ColorEquation, applied.AlphaEquation)
	rt.cache.lastBlendMode = m
}

func downgradeEquation(e BlendEquation) BlendEquation {
	if e == BlendEquationMin || e == BlendEquationMax {
		return BlendEquationAdd
	}
	return e
}

func (rt *RenderTarget) applyStencilMode(m StencilMode) {
	dev := rt.gc.Device()
	rt.cache.lastStencilMode = m

	if m == DefaultStencilMode {
		if !rt.cache.enable || rt.cache.stencilEnabled {
			dev.Disable(CapStencilTest)
			dev.ColorMask(true, true, true, true)
			rt.cache.stencilEnabled = false
		}
		return
	}

	if !rt.cache.enable || !rt.cache.stencilEnabled {
		dev.Enable(CapStencilTest)
	}
	dev.StencilOp(StencilKeep, m.UpdateOperation, m.UpdateOperation)
	dev.StencilFunc(m.Comparison, int32(m.Reference), m.Mask)
	rt.cache.stencilEnabled = true
}

func (rt *RenderTarget) unapplyTexture() {
	rt.gc.Device().BindTexture(0)
	rt.cache.lastTextureID = 0
}

// setDefaultView is called by owners when the surface is resized. A view
// that still matches the old default follows the new size.
func (rt *RenderTarget) setDefaultView(size Vec2u) {
	followsDefault := rt.view == rt.defaultView
	rt.defaultView = NewView(FloatRect{Size: size.ToVec2f()})
	if followsDefault {
		rt.SetView(rt.defaultView)
	} else {
		rt.cache.viewChanged = true
	}
}

// Destroy releases the streaming buffers. The target's context must be
// current.
func (rt *RenderTarget) Destroy() {
	rt.Flush()
	for ctx, g := range rt.groups {
		g.destroy()
		delete(rt.groups, ctx)
	}
	if ctx := rt.gc.ActiveContextID(); ctx != invalidID && ctx < MaxContexts && rt.gc.activeTarget(ctx) == rt.id {
		rt.gc.storeActiveTarget(ctx, invalidID)
	}
}
