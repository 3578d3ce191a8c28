package media

import "fmt"

// textureSurface is a framebuffer object with a texture attached. FBOs are
// not shared between GL contexts, so one is created per context the
// texture is drawn from.
type textureSurface struct {
	gc   *GraphicsContext
	tex  *Texture
	fbos map[ContextID]uint32
}

func (s *textureSurface) Size() Vec2u  { return s.tex.Size() }
func (s *textureSurface) IsSRGB() bool { return s.tex.params.SRGB }

func (s *textureSurface) Activate(active bool) bool {
	ctx := s.gc.ActiveContextID()
	if ctx == invalidID {
		return !active
	}
	dev := s.gc.Device()
	if !active {
		dev.BindFramebuffer(0)
		return true
	}
	fbo, ok := s.fbos[ctx]
	if !ok {
		var err error
		if fbo, err = s.create(); err != nil {
			Logger().Error("Failed to create render texture framebuffer", "context", ctx, "error", err)
			return false
		}
		s.fbos[ctx] = fbo
	}
	dev.BindFramebuffer(fbo)
	return true
}

func (s *textureSurface) create() (uint32, error) {
	dev := s.gc.Device()
	fbo := dev.GenFramebuffer()
	if fbo == 0 {
		return 0, ErrUnsupported
	}
	dev.BindFramebuffer(fbo)
	size := s.tex.Size()
	if err := dev.FramebufferTexture(s.tex.id, int(size.X), int(size.Y)); err != nil {
		dev.BindFramebuffer(0)
		dev.DeleteFramebuffer(fbo)
		return 0, err
	}
	return fbo, nil
}

// RenderTexture is an off-screen render target whose result is a Texture.
type RenderTexture struct {
	*RenderTarget

	surface *textureSurface
}

// NewRenderTexture creates a width x height render texture. A context
// must be current.
func NewRenderTexture(gc *GraphicsContext, width, height int, opts ...RenderTargetOption) (*RenderTexture, error) {
	if gc.ActiveContextID() == invalidID {
		return nil, fmt.Errorf("create render texture: %w", ErrContextUnavailable)
	}
	tex, err := NewTexture(gc, width, height)
	if err != nil {
		return nil, fmt.Errorf("create render texture: %w", err)
	}
	tex.fboAttachment = true

	surface := &textureSurface{gc: gc, tex: tex, fbos: make(map[ContextID]uint32)}
	fbo, err := surface.create()
	if err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("create render texture %dx%d: %w", width, height, err)
	}
	surface.fbos[gc.ActiveContextID()] = fbo
	gc.Device().BindFramebuffer(0)

	rt := NewRenderTarget(gc, surface, opts...)
	rt.flipY = true
	return &RenderTexture{RenderTarget: rt, surface: surface}, nil
}

// Texture returns the texture drawn into. It stays owned by the render
// texture.
func (r *RenderTexture) Texture() *Texture { return r.surface.tex }

// SetSmooth toggles linear filtering of the result texture.
func (r *RenderTexture) SetSmooth(smooth bool) { r.surface.tex.SetSmooth(smooth) }

// Display submits pending draws so the texture can be sampled.
func (r *RenderTexture) Display() {
	if r.SetActive(true) {
		r.Flush()
		r.gc.Device().Flush()
	}
}

// Destroy releases the framebuffer of the current context and the
// texture. Framebuffers created on other contexts are released with
// their context.
func (r *RenderTexture) Destroy() {
	r.RenderTarget.Destroy()
	dev := r.gc.Device()
	if fbo, ok := r.surface.fbos[r.gc.ActiveContextID()]; ok {
		dev.BindFramebuffer(0)
		dev.DeleteFramebuffer(fbo)
	}
	clear(r.surface.fbos)
	r.surface.tex.Destroy()
}
