package media

// windowSurface is the default framebuffer of a window.
type windowSurface struct {
	gc  *GraphicsContext
	w   *Window
	ctx ContextID
}

func (s *windowSurface) Size() Vec2u  { return s.w.Size() }
func (s *windowSurface) IsSRGB() bool { return s.w.native.IsSRGB() }

func (s *windowSurface) Activate(active bool) bool {
	if !s.w.SetActive(active) {
		return false
	}
	if active {
		if err := s.gc.initDevice(); err != nil {
			Logger().Error("Failed to initialize the graphics device", "error", err)
			return false
		}
		s.gc.SetActiveContext(s.ctx)
		s.gc.Device().BindFramebuffer(0)
	} else if s.gc.ActiveContextID() == s.ctx {
		s.gc.SetActiveContext(invalidID)
	}
	return true
}

// RenderWindow is a Window that can be drawn into.
//
//	rw, err := media.NewRenderWindow(wc, gc, media.WithTitle("demo"), media.WithSize(800, 600))
//	if err != nil {
//	    return err
//	}
//	defer rw.Close()
//	for rw.IsOpen() {
//	    rw.PollAndHandleEvents(func(ev media.Event) {
//	        if media.EventIs[media.EventClosed](ev) {
//	            rw.Close()
//	        }
//	    })
//	    rw.Clear(media.ColorBlack)
//	    rw.Draw(sprite, media.DefaultRenderStates())
//	    rw.Display()
//	}
type RenderWindow struct {
	*Window
	*RenderTarget

	surface *windowSurface
}

// NewRenderWindow opens a window and makes its context current.
func NewRenderWindow(wc *WindowContext, gc *GraphicsContext, opts ...WindowOption) (*RenderWindow, error) {
	cfg := defaultWindowConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, err := wc.createWindow(cfg)
	if err != nil {
		return nil, err
	}
	ctx, err := gc.RegisterContext()
	if err != nil {
		w.Close()
		return nil, err
	}

	surface := &windowSurface{gc: gc, w: w, ctx: ctx}
	rw := &RenderWindow{
		Window:       w,
		RenderTarget: NewRenderTarget(gc, surface, cfg.renderTarget...),
		surface:      surface,
	}
	w.resized = rw.RenderTarget.setDefaultView
	w.closing = rw.release

	if !rw.SetActive(true) {
		Logger().Error("Failed to activate the render window", "window", w.ID())
	}
	return rw, nil
}

// ID returns the native window id. The render target id is
// rw.RenderTarget.ID().
func (rw *RenderWindow) ID() uint32 { return rw.Window.ID() }

// ContextID returns the id the window's GL context is registered under.
func (rw *RenderWindow) ContextID() ContextID { return rw.surface.ctx }

// Size returns the client area size in pixels.
func (rw *RenderWindow) Size() Vec2u { return rw.Window.Size() }

// SetActive activates the window's context and its render target.
func (rw *RenderWindow) SetActive(active bool) bool {
	return rw.RenderTarget.SetActive(active)
}

// Display submits pending batched draws and presents the frame.
func (rw *RenderWindow) Display() {
	if !rw.IsOpen() {
		return
	}
	if rw.SetActive(true) {
		rw.Flush()
	}
	rw.Window.Display()
}

// Close releases the GPU resources of the window, then the window.
// WindowContext.Close does the same for render windows still open.
func (rw *RenderWindow) Close() { rw.Window.Close() }

func (rw *RenderWindow) release() {
	if rw.SetActive(true) {
		rw.Destroy()
	}
	rw.RenderTarget.gc.UnregisterContext(rw.surface.ctx)
}
