package media

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ContextID identifies a GL context registered with a GraphicsContext.
// Zero is never a valid id.
type ContextID uint32

// RenderTargetID identifies a render target. Zero is never a valid id.
type RenderTargetID uint32

const (
	invalidID = 0

	// MaxContexts bounds the number of GL contexts tracked at once.
	MaxContexts = 256
)

// GraphicsContext is the session shared by every render target that draws
// through one Device. It records which render target was last active in
// each GL context so that targets can tell when their cached state is
// stale, and it owns the built-in shader and white texture used by draws
// that do not supply their own.
type GraphicsContext struct {
	dev     Device
	devOnce sync.Once
	devErr  error

	// activeTargets[ctx] is the id of the render target last activated on
	// GL context ctx.
	activeTargets [MaxContexts]atomic.Uint32
	activeContext atomic.Uint32

	mu       sync.Mutex
	usedIDs  [MaxContexts]bool
	closed   bool
	builtin  *Shader
	whiteDot *Texture

	builtinVS, builtinFS string

	nextTargetID  atomic.Uint32
	nextTextureID atomic.Uint64
	nextGroupID   atomic.Uint32
}

// GraphicsOption configures a GraphicsContext.
type GraphicsOption func(*GraphicsContext)

// WithBuiltinShaderSource replaces the GLSL of the default shader, for
// devices that need a different dialect.
func WithBuiltinShaderSource(vertex, fragment string) GraphicsOption {
	return func(gc *GraphicsContext) {
		gc.builtinVS = vertex
		gc.builtinFS = fragment
	}
}

// NewGraphicsContext creates a session on dev.
func NewGraphicsContext(dev Device, opts ...GraphicsOption) *GraphicsContext {
	gc := &GraphicsContext{
		dev:       dev,
		builtinVS: DefaultVertexShader,
		builtinFS: DefaultFragmentShader,
	}
	gc.usedIDs[invalidID] = true
	for _, opt := range opts {
		opt(gc)
	}
	return gc
}

// Device returns the device draws are issued to.
func (gc *GraphicsContext) Device() Device {
	return gc.dev
}

// initDevice runs the device's Init once. A context must be current.
func (gc *GraphicsContext) initDevice() error {
	gc.devOnce.Do(func() {
		if di, ok := gc.dev.(DeviceInitializer); ok {
			gc.devErr = di.Init()
		}
	})
	return gc.devErr
}

// RegisterContext reserves an id for a new GL context. The id is released
// with UnregisterContext.
func (gc *GraphicsContext) RegisterContext() (ContextID, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	for i := 1; i < MaxContexts; i++ {
		if !gc.usedIDs[i] {
			gc.usedIDs[i] = true
			gc.activeTargets[i].Store(invalidID)
			return ContextID(i), nil
		}
	}
	return 0, ErrNoContextSlots
}

// UnregisterContext releases id. If it was the active context, no context
// is active afterwards.
func (gc *GraphicsContext) UnregisterContext(id ContextID) {
	if id == invalidID || id >= MaxContexts {
		return
	}
	gc.mu.Lock()
	gc.usedIDs[id] = false
	gc.mu.Unlock()

	gc.activeTargets[id].Store(invalidID)
	gc.activeContext.CompareAndSwap(uint32(id), invalidID)
}

// SetActiveContext records id as the context current on the rendering
// thread. Pass 0 when no context is current.
func (gc *GraphicsContext) SetActiveContext(id ContextID) {
	gc.activeContext.Store(uint32(id))
}

// ActiveContextID returns the context current on the rendering thread, 0
// if none.
func (gc *GraphicsContext) ActiveContextID() ContextID {
	return ContextID(gc.activeContext.Load())
}

// NextRenderTargetID returns a fresh render target id.
func (gc *GraphicsContext) NextRenderTargetID() RenderTargetID {
	return RenderTargetID(gc.nextTargetID.Add(1))
}

// NextTextureCacheID returns an id that is never reused, so a texture
// allocated at a recycled GL name still invalidates the cache.
func (gc *GraphicsContext) NextTextureCacheID() uint64 {
	return gc.nextTextureID.Add(1)
}

func (gc *GraphicsContext) nextVAOGroupID() uint32 {
	return gc.nextGroupID.Add(1)
}

// activeTarget returns the target last activated on ctx.
func (gc *GraphicsContext) activeTarget(ctx ContextID) RenderTargetID {
	return RenderTargetID(gc.activeTargets[ctx].Load())
}

func (gc *GraphicsContext) storeActiveTarget(ctx ContextID, id RenderTargetID) {
	gc.activeTargets[ctx].Store(uint32(id))
}

// BuiltinShader returns the shader used when RenderStates.Shader is nil.
// It is compiled on first use, so a context must be current.
func (gc *GraphicsContext) BuiltinShader() (*Shader, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if gc.builtin != nil {
		return gc.builtin, nil
	}
	s, err := NewShader(gc, gc.builtinVS, gc.builtinFS)
	if err != nil {
		return nil, fmt.Errorf("builtin shader: %w", err)
	}
	gc.builtin = s
	return s, nil
}

// WhiteDot returns the 1x1 opaque white texture sampled by untextured
// draws.
func (gc *GraphicsContext) WhiteDot() (*Texture, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if gc.whiteDot != nil {
		return gc.whiteDot, nil
	}
	t, err := NewTextureFromPixels(gc, 1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		return nil, fmt.Errorf("white dot texture: %w", err)
	}
	gc.whiteDot = t
	return t, nil
}

// Close releases the built-in resources.
func (gc *GraphicsContext) Close() {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if gc.closed {
		return
	}
	gc.closed = true
	if gc.builtin != nil {
		gc.builtin.Destroy()
		gc.builtin = nil
	}
	if gc.whiteDot != nil {
		gc.whiteDot.Destroy()
		gc.whiteDot = nil
	}
}
