package media

import (
	"fmt"
	"slices"
)

// WindowContext owns the state shared by every window of a Platform: the
// native event pump, the joystick and sensor managers, touch tracking and
// the clipboard. Create one per process with NewWindowContext and pass it
// explicitly.
//
// A WindowContext and its windows must be used from a single goroutine,
// usually the main one.
type WindowContext struct {
	platform  Platform
	clipboard ClipboardProvider

	joysticks *JoystickManager
	sensors   *SensorManager
	touches   *touchPool

	windows    []*Window // creation order
	fullscreen *Window
	current    *Window // context current on the calling thread, nil if none

	native []NativeEvent
	closed bool
}

// NewWindowContext starts a session on p.
func NewWindowContext(p Platform) *WindowContext {
	return &WindowContext{
		platform:  p,
		clipboard: p,
		joysticks: NewJoystickManager(p.Joysticks()),
		sensors:   NewSensorManager(p.Sensors()),
		touches:   newTouchPool(),
	}
}

// Platform returns the platform the context drives.
func (wc *WindowContext) Platform() Platform { return wc.platform }

// Joysticks returns the shared joystick manager.
func (wc *WindowContext) Joysticks() *JoystickManager { return wc.joysticks }

// Sensors returns the shared sensor manager.
func (wc *WindowContext) Sensors() *SensorManager { return wc.sensors }

// ActiveTouches returns the number of fingers currently down.
func (wc *WindowContext) ActiveTouches() int { return wc.touches.active() }

// TouchPosition returns the last position of the finger with pooled index
// finger, relative to the window it touches.
func (wc *WindowContext) TouchPosition(finger int) (Vec2i, bool) {
	for _, info := range wc.touches.fingers {
		if info.Index == finger {
			return info.Position, true
		}
	}
	return Vec2i{}, false
}

// Windows returns the open windows in creation order.
func (wc *WindowContext) Windows() []*Window {
	return slices.Clone(wc.windows)
}

// CreateWindow opens a window.
func (wc *WindowContext) CreateWindow(opts ...WindowOption) (*Window, error) {
	cfg := defaultWindowConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return wc.createWindow(cfg)
}

func (wc *WindowContext) createWindow(cfg windowConfig) (*Window, error) {
	if wc.closed {
		return nil, fmt.Errorf("create window: %w", ErrContextUnavailable)
	}
	if cfg.native.Size.X == 0 || cfg.native.Size.Y == 0 {
		return nil, fmt.Errorf("create window %dx%d: %w", cfg.native.Size.X, cfg.native.Size.Y, ErrInvalidSize)
	}

	if cfg.native.Fullscreen && wc.fullscreen != nil {
		Logger().Warn("Creating two fullscreen windows is not allowed, switching to windowed mode")
		cfg.native.Fullscreen = false
	}
	if cfg.native.Closable || cfg.native.Resizable {
		cfg.native.Titlebar = true
	}

	native, err := wc.platform.CreateWindow(cfg.native)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", cfg.native.Title, err)
	}
	wc.restoreCurrent(native)

	w := newWindow(wc, native, cfg)
	wc.windows = append(wc.windows, w)
	if cfg.native.Fullscreen {
		wc.fullscreen = w
	}
	Logger().Debug("window created", "id", native.ID(), "title", cfg.native.Title,
		"size", cfg.native.Size, "fullscreen", cfg.native.Fullscreen)
	return w, nil
}

// removeWindow forgets w after it was closed.
func (wc *WindowContext) removeWindow(w *Window) {
	wc.windows = slices.DeleteFunc(wc.windows, func(o *Window) bool { return o == w })
	if wc.fullscreen == w {
		wc.fullscreen = nil
	}
	if wc.current == w {
		wc.current = nil
	}
	wc.touches.releaseWindow(w.id)
}

// restoreCurrent makes the tracked context current again after a call
// that may have switched to the context of native.
func (wc *WindowContext) restoreCurrent(native NativeWindow) {
	var err error
	if wc.current != nil {
		err = wc.current.native.MakeContextCurrent(true)
	} else {
		err = native.MakeContextCurrent(false)
	}
	if err != nil {
		Logger().Error("Failed to restore the current context", "error", err)
	}
}

// windowByID finds the target of a native event. Id 0 is the first
// window.
func (wc *WindowContext) windowByID(id uint32) *Window {
	if id == 0 {
		if len(wc.windows) == 0 {
			return nil
		}
		return wc.windows[0]
	}
	for _, w := range wc.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// pumpNativeEvents drains the platform queue into the window queues.
// Events for unknown windows are dropped.
func (wc *WindowContext) pumpNativeEvents() {
	wc.native = wc.platform.PollNativeEvents(wc.native[:0])
	for i := range wc.native {
		ev := &wc.native[i]
		if w := wc.windowByID(ev.WindowID); w != nil {
			w.processNativeEvent(ev)
		}
	}
	clear(wc.native)
}

// Close closes every window, releases the sensors and terminates the
// platform.
func (wc *WindowContext) Close() {
	if wc.closed {
		return
	}
	for len(wc.windows) > 0 {
		wc.windows[len(wc.windows)-1].Close()
	}
	wc.sensors.Close()
	wc.platform.Terminate()
	wc.closed = true
}
