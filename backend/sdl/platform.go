// Package sdl implements media.Platform on top of SDL2, including touch,
// text input and motion sensors.
package sdl

import (
	"fmt"

	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/media"
)

// touchMouseID marks mouse events SDL synthesizes from touches.
const touchMouseID = ^uint32(0)

// Platform is an SDL2 session. Create it with New.
type Platform struct {
	windows   map[uint32]*Window
	joysticks *joysticks
	sensors   *sensors
}

var _ media.Platform = (*Platform)(nil)

// New initializes the SDL video, joystick and sensor subsystems.
func New() (*Platform, error) {
	if err := sdl2.Init(sdl2.INIT_VIDEO | sdl2.INIT_JOYSTICK | sdl2.INIT_SENSOR); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}
	v := sdl2.Version{}
	sdl2.GetVersion(&v)
	media.Logger().Debug("SDL initialized", "version", fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch))

	return &Platform{
		windows:   make(map[uint32]*Window),
		joysticks: &joysticks{},
		sensors:   newSensors(),
	}, nil
}

// CreateWindow opens a window with its own GL context. Contexts share
// objects with the context current at creation time.
func (p *Platform) CreateWindow(cfg media.NativeWindowConfig) (media.NativeWindow, error) {
	ctx := cfg.Context
	sdl2.GLSetAttribute(sdl2.GL_CONTEXT_MAJOR_VERSION, int(ctx.MajorVersion))
	sdl2.GLSetAttribute(sdl2.GL_CONTEXT_MINOR_VERSION, int(ctx.MinorVersion))
	if ctx.Core {
		sdl2.GLSetAttribute(sdl2.GL_CONTEXT_PROFILE_MASK, sdl2.GL_CONTEXT_PROFILE_CORE)
	} else {
		sdl2.GLSetAttribute(sdl2.GL_CONTEXT_PROFILE_MASK, sdl2.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
	flags := 0
	if ctx.Debug {
		flags |= sdl2.GL_CONTEXT_DEBUG_FLAG
	}
	if ctx.Core {
		flags |= sdl2.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
	}
	sdl2.GLSetAttribute(sdl2.GL_CONTEXT_FLAGS, flags)
	sdl2.GLSetAttribute(sdl2.GL_DOUBLEBUFFER, 1)
	sdl2.GLSetAttribute(sdl2.GL_DEPTH_SIZE, int(ctx.DepthBits))
	sdl2.GLSetAttribute(sdl2.GL_STENCIL_SIZE, int(ctx.StencilBits))
	if ctx.AntiAliasingLevel > 0 {
		sdl2.GLSetAttribute(sdl2.GL_MULTISAMPLEBUFFERS, 1)
		sdl2.GLSetAttribute(sdl2.GL_MULTISAMPLESAMPLES, int(ctx.AntiAliasingLevel))
	} else {
		sdl2.GLSetAttribute(sdl2.GL_MULTISAMPLEBUFFERS, 0)
		sdl2.GLSetAttribute(sdl2.GL_MULTISAMPLESAMPLES, 0)
	}
	sdl2.GLSetAttribute(sdl2.GL_FRAMEBUFFER_SRGB_CAPABLE, boolAttr(ctx.SRGBCapable))
	sdl2.GLSetAttribute(sdl2.GL_SHARE_WITH_CURRENT_CONTEXT, 1)

	winFlags := uint32(sdl2.WINDOW_OPENGL)
	if cfg.Hidden {
		winFlags |= sdl2.WINDOW_HIDDEN
	} else {
		winFlags |= sdl2.WINDOW_SHOWN
	}
	if cfg.Resizable {
		winFlags |= sdl2.WINDOW_RESIZABLE
	}
	if !cfg.Titlebar {
		winFlags |= sdl2.WINDOW_BORDERLESS
	}
	if cfg.Fullscreen {
		winFlags |= sdl2.WINDOW_FULLSCREEN
	}

	win, err := sdl2.CreateWindow(cfg.Title, sdl2.WINDOWPOS_CENTERED, sdl2.WINDOWPOS_CENTERED,
		int32(cfg.Size.X), int32(cfg.Size.Y), winFlags)
	if err != nil {
		return nil, fmt.Errorf("creating sdl window: %w", err)
	}
	glctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("creating gl context: %w", err)
	}
	id, err := win.GetID()
	if err != nil {
		sdl2.GLDeleteContext(glctx)
		win.Destroy()
		return nil, fmt.Errorf("reading window id: %w", err)
	}

	w := &Window{p: p, win: win, ctx: glctx, id: id, srgb: ctx.SRGBCapable}
	p.windows[id] = w
	return w, nil
}

func boolAttr(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PollNativeEvents drains the SDL event queue.
func (p *Platform) PollNativeEvents(dst []media.NativeEvent) []media.NativeEvent {
	for ev := sdl2.PollEvent(); ev != nil; ev = sdl2.PollEvent() {
		dst = p.translate(dst, ev)
	}
	return dst
}

func (p *Platform) translate(dst []media.NativeEvent, ev sdl2.Event) []media.NativeEvent {
	switch e := ev.(type) {
	case *sdl2.WindowEvent:
		nev := media.NativeEvent{WindowID: e.WindowID}
		switch e.Event {
		case sdl2.WINDOWEVENT_CLOSE:
			nev.Kind = media.NativeCloseRequested
		case sdl2.WINDOWEVENT_SIZE_CHANGED:
			nev.Kind = media.NativeResized
			nev.Size = media.Vec2u{X: uint32(e.Data1), Y: uint32(e.Data2)}
		case sdl2.WINDOWEVENT_FOCUS_GAINED:
			nev.Kind = media.NativeFocusGained
		case sdl2.WINDOWEVENT_FOCUS_LOST:
			nev.Kind = media.NativeFocusLost
		case sdl2.WINDOWEVENT_ENTER:
			nev.Kind = media.NativeMouseEntered
		case sdl2.WINDOWEVENT_LEAVE:
			nev.Kind = media.NativeMouseLeft
		default:
			return dst
		}
		return append(dst, nev)

	case *sdl2.KeyboardEvent:
		kind := media.NativeKeyDown
		if e.Type == sdl2.KEYUP {
			kind = media.NativeKeyUp
		}
		mod := sdl2.Keymod(e.Keysym.Mod)
		return append(dst, media.NativeEvent{
			Kind:     kind,
			WindowID: e.WindowID,
			Key:      translateKey(e.Keysym.Sym),
			Scancode: translateScancode(e.Keysym.Scancode),
			Repeat:   e.Repeat != 0,
			Alt:      mod&sdl2.KMOD_ALT != 0,
			Control:  mod&sdl2.KMOD_CTRL != 0,
			Shift:    mod&sdl2.KMOD_SHIFT != 0,
			System:   mod&sdl2.KMOD_GUI != 0,
		})

	case *sdl2.TextInputEvent:
		return append(dst, media.NativeEvent{Kind: media.NativeTextInput, WindowID: e.WindowID, Text: e.GetText()})

	case *sdl2.MouseMotionEvent:
		return append(dst, media.NativeEvent{
			Kind:     media.NativeMouseMotion,
			WindowID: e.WindowID,
			Position: media.Vec2i{X: e.X, Y: e.Y},
			Delta:    media.Vec2i{X: e.XRel, Y: e.YRel},
		})

	case *sdl2.MouseButtonEvent:
		// Touch input is reported through the finger events.
		if e.Which == touchMouseID {
			return dst
		}
		b, ok := translateButton(e.Button)
		if !ok {
			return dst
		}
		kind := media.NativeMouseButtonDown
		if e.Type == sdl2.MOUSEBUTTONUP {
			kind = media.NativeMouseButtonUp
		}
		return append(dst, media.NativeEvent{Kind: kind, WindowID: e.WindowID, Button: b, Position: media.Vec2i{X: e.X, Y: e.Y}})

	case *sdl2.MouseWheelEvent:
		x, y, _ := sdl2.GetMouseState()
		pos := media.Vec2i{X: x, Y: y}
		dx, dy := e.X, e.Y
		if e.Direction == sdl2.MOUSEWHEEL_FLIPPED {
			dx, dy = -dx, -dy
		}
		if dy != 0 {
			dst = append(dst, media.NativeEvent{Kind: media.NativeMouseWheel, WindowID: e.WindowID,
				Wheel: media.MouseWheelVertical, WheelDelta: float32(dy), Position: pos})
		}
		if dx != 0 {
			dst = append(dst, media.NativeEvent{Kind: media.NativeMouseWheel, WindowID: e.WindowID,
				Wheel: media.MouseWheelHorizontal, WheelDelta: float32(dx), Position: pos})
		}
		return dst

	case *sdl2.TouchFingerEvent:
		nev := media.NativeEvent{
			// Finger events carry no window in SDL 2.0.x, they go to the
			// first window.
			FingerID:  int64(e.FingerID),
			FingerPos: media.Vec2f{X: e.X, Y: e.Y},
			Pressure:  e.Pressure,
		}
		switch e.Type {
		case sdl2.FINGERDOWN:
			nev.Kind = media.NativeFingerDown
		case sdl2.FINGERUP:
			nev.Kind = media.NativeFingerUp
		case sdl2.FINGERMOTION:
			nev.Kind = media.NativeFingerMotion
		default:
			return dst
		}
		return append(dst, nev)
	}
	return dst
}

func (p *Platform) Joysticks() media.JoystickBackend { return p.joysticks }
func (p *Platform) Sensors() media.SensorBackend     { return p.sensors }

func (p *Platform) GetText() string {
	text, err := sdl2.GetClipboardText()
	if err != nil {
		media.Logger().Warn("Failed to read the clipboard", "error", err)
		return ""
	}
	return text
}

func (p *Platform) SetText(text string) {
	if err := sdl2.SetClipboardText(text); err != nil {
		media.Logger().Warn("Failed to write the clipboard", "error", err)
	}
}

// Terminate destroys the remaining windows, closes joysticks and quits
// SDL.
func (p *Platform) Terminate() {
	for _, w := range p.windows {
		w.Destroy()
	}
	p.joysticks.closeAll()
	p.sensors.closeAll()
	sdl2.Quit()
}
