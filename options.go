package media

// windowConfig collects WindowOption values before the native window is
// created.
type windowConfig struct {
	native            NativeWindowConfig
	keyRepeat         bool
	verticalSync      bool
	framerateLimit    uint
	joystickThreshold float32
	minimumSize       Vec2u
	maximumSize       Vec2u
	renderTarget      []RenderTargetOption
}

func defaultWindowConfig() windowConfig {
	s := DefaultWindowSettings()
	c := windowConfig{joystickThreshold: DefaultJoystickThreshold}
	WithSettings(s)(&c)
	return c
}

// WindowOption configures a window at creation.
type WindowOption func(*windowConfig)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(c *windowConfig) { c.native.Title = title }
}

// WithSize sets the client area size in pixels.
func WithSize(width, height uint32) WindowOption {
	return func(c *windowConfig) { c.native.Size = Vec2u{X: width, Y: height} }
}

// WithStyle sets the window decorations.
func WithStyle(style WindowStyle) WindowOption {
	return func(c *windowConfig) {
		c.native.Titlebar = style&StyleTitlebar != 0
		c.native.Resizable = style&StyleResize != 0
		c.native.Closable = style&StyleClose != 0
	}
}

// WithFullscreen opens the window fullscreen. Only one fullscreen window
// may exist; later ones fall back to windowed mode.
func WithFullscreen(fullscreen bool) WindowOption {
	return func(c *windowConfig) { c.native.Fullscreen = fullscreen }
}

// WithHidden creates the window invisible.
func WithHidden() WindowOption {
	return func(c *windowConfig) { c.native.Hidden = true }
}

// WithContextSettings sets the requested GL context attributes.
func WithContextSettings(s ContextSettings) WindowOption {
	return func(c *windowConfig) { c.native.Context = s }
}

// WithKeyRepeat enables repeated EventKeyPressed while a key is held.
func WithKeyRepeat(enabled bool) WindowOption {
	return func(c *windowConfig) { c.keyRepeat = enabled }
}

// WithVerticalSync synchronizes Display with the monitor refresh.
func WithVerticalSync(enabled bool) WindowOption {
	return func(c *windowConfig) { c.verticalSync = enabled }
}

// WithFramerateLimit caps Display to fps frames per second. Zero removes
// the cap.
func WithFramerateLimit(fps uint) WindowOption {
	return func(c *windowConfig) { c.framerateLimit = fps }
}

// WithJoystickThreshold sets the minimum axis change that is reported.
func WithJoystickThreshold(threshold float32) WindowOption {
	return func(c *windowConfig) { c.joystickThreshold = threshold }
}

// WithSizeLimits bounds interactive resizes. A zero component leaves that
// bound unset.
func WithSizeLimits(minimum, maximum Vec2u) WindowOption {
	return func(c *windowConfig) {
		c.minimumSize = minimum
		c.maximumSize = maximum
	}
}

// WithRenderTargetOptions forwards options to the RenderTarget of a
// RenderWindow. Plain windows ignore them.
func WithRenderTargetOptions(opts ...RenderTargetOption) WindowOption {
	return func(c *windowConfig) { c.renderTarget = append(c.renderTarget, opts...) }
}

// WithSettings applies persisted settings, as loaded by LoadSettings.
func WithSettings(s WindowSettings) WindowOption {
	return func(c *windowConfig) {
		c.native.Title = s.Title
		c.native.Size = s.Size()
		c.native.Fullscreen = s.Fullscreen
		c.native.Resizable = s.Resizable
		c.native.Closable = s.Closable
		c.native.Titlebar = s.Titlebar
		c.native.Context = s.Context
		c.keyRepeat = s.KeyRepeat
		c.verticalSync = s.VerticalSync
		c.framerateLimit = s.FramerateLimit
	}
}

// RenderTargetOption configures a RenderTarget.
type RenderTargetOption func(*RenderTarget)

// WithAutoBatch sets the initial auto batch mode.
func WithAutoBatch(mode AutoBatchMode) RenderTargetOption {
	return func(rt *RenderTarget) { rt.autoBatch = mode }
}

// WithAutoBatchThreshold sets the vertex count that forces a batch flush.
func WithAutoBatchThreshold(vertices int) RenderTargetOption {
	return func(rt *RenderTarget) { rt.SetAutoBatchVertexThreshold(vertices) }
}
