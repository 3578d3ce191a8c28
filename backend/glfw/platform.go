// Package glfw implements media.Platform on top of GLFW 3.3.
//
// GLFW must be driven from the main OS thread:
//
//	func init() { runtime.LockOSThread() }
package glfw

import (
	"fmt"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/media"
)

// Platform is a GLFW session. Create it with New.
type Platform struct {
	queue     []media.NativeEvent
	windows   map[*glfw3.Window]*Window
	nextID    uint32
	shared    *glfw3.Window
	joysticks *joysticks
}

var _ media.Platform = (*Platform)(nil)

// New initializes GLFW.
func New() (*Platform, error) {
	if err := glfw3.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}
	media.Logger().Debug("GLFW initialized", "version", glfw3.GetVersionString())
	return &Platform{
		windows:   make(map[*glfw3.Window]*Window),
		joysticks: &joysticks{},
	}, nil
}

// CreateWindow opens a window. GL objects are shared with the first
// window created.
func (p *Platform) CreateWindow(cfg media.NativeWindowConfig) (media.NativeWindow, error) {
	glfw3.DefaultWindowHints()
	ctx := cfg.Context
	glfw3.WindowHint(glfw3.ContextVersionMajor, int(ctx.MajorVersion))
	glfw3.WindowHint(glfw3.ContextVersionMinor, int(ctx.MinorVersion))
	if ctx.Core {
		glfw3.WindowHint(glfw3.OpenGLProfile, glfw3.OpenGLCoreProfile)
		glfw3.WindowHint(glfw3.OpenGLForwardCompatible, glfw3.True)
	}
	glfw3.WindowHint(glfw3.OpenGLDebugContext, hint(ctx.Debug))
	glfw3.WindowHint(glfw3.DepthBits, int(ctx.DepthBits))
	glfw3.WindowHint(glfw3.StencilBits, int(ctx.StencilBits))
	glfw3.WindowHint(glfw3.Samples, int(ctx.AntiAliasingLevel))
	glfw3.WindowHint(glfw3.SRGBCapable, hint(ctx.SRGBCapable))
	glfw3.WindowHint(glfw3.Resizable, hint(cfg.Resizable))
	glfw3.WindowHint(glfw3.Decorated, hint(cfg.Titlebar))
	glfw3.WindowHint(glfw3.Visible, hint(!cfg.Hidden))

	var monitor *glfw3.Monitor
	if cfg.Fullscreen {
		monitor = glfw3.GetPrimaryMonitor()
	}
	win, err := glfw3.CreateWindow(int(cfg.Size.X), int(cfg.Size.Y), cfg.Title, monitor, p.shared)
	if err != nil {
		return nil, fmt.Errorf("creating glfw window: %w", err)
	}
	if p.shared == nil {
		p.shared = win
	}

	p.nextID++
	w := &Window{
		p:          p,
		win:        win,
		id:         p.nextID,
		srgb:       ctx.SRGBCapable,
		cursorShow: true,
	}
	p.windows[win] = w
	w.setupCallbacks()
	return w, nil
}

func hint(b bool) int {
	if b {
		return glfw3.True
	}
	return glfw3.False
}

func (p *Platform) push(ev media.NativeEvent) { p.queue = append(p.queue, ev) }

// PollNativeEvents runs the GLFW callbacks and returns what they queued.
func (p *Platform) PollNativeEvents(dst []media.NativeEvent) []media.NativeEvent {
	glfw3.PollEvents()
	dst = append(dst, p.queue...)
	clear(p.queue)
	p.queue = p.queue[:0]
	return dst
}

func (p *Platform) Joysticks() media.JoystickBackend { return p.joysticks }

// Sensors returns nil: GLFW has no motion sensor support.
func (p *Platform) Sensors() media.SensorBackend { return nil }

func (p *Platform) GetText() string     { return glfw3.GetClipboardString() }
func (p *Platform) SetText(text string) { glfw3.SetClipboardString(text) }

// Terminate destroys the remaining windows and shuts GLFW down.
func (p *Platform) Terminate() {
	for _, w := range p.windows {
		w.Destroy()
	}
	glfw3.Terminate()
}
