package glfw

import (
	"image"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/media"
)

// Window is a GLFW window and its GL context.
type Window struct {
	p   *Platform
	win *glfw3.Window
	id  uint32

	srgb       bool
	cursorShow bool
	cursorGrab bool
}

var _ media.NativeWindow = (*Window)(nil)

func (w *Window) setupCallbacks() {
	w.win.SetCloseCallback(w.closeCallback)
	w.win.SetSizeCallback(w.sizeCallback)
	w.win.SetFocusCallback(w.focusCallback)
	w.win.SetCursorEnterCallback(w.cursorEnterCallback)
	w.win.SetKeyCallback(w.keyCallback)
	w.win.SetCharCallback(w.charCallback)
	w.win.SetMouseButtonCallback(w.mouseButtonCallback)
	w.win.SetScrollCallback(w.scrollCallback)
	w.win.SetCursorPosCallback(w.cursorPosCallback)
}

func (w *Window) push(ev media.NativeEvent) {
	ev.WindowID = w.id
	w.p.push(ev)
}

func (w *Window) closeCallback(win *glfw3.Window) {
	// Closing is up to the application.
	win.SetShouldClose(false)
	w.push(media.NativeEvent{Kind: media.NativeCloseRequested})
}

func (w *Window) sizeCallback(win *glfw3.Window, width, height int) {
	w.push(media.NativeEvent{Kind: media.NativeResized, Size: media.Vec2u{X: uint32(width), Y: uint32(height)}})
}

func (w *Window) focusCallback(win *glfw3.Window, focused bool) {
	kind := media.NativeFocusLost
	if focused {
		kind = media.NativeFocusGained
	}
	w.push(media.NativeEvent{Kind: kind})
}

func (w *Window) cursorEnterCallback(win *glfw3.Window, entered bool) {
	kind := media.NativeMouseLeft
	if entered {
		kind = media.NativeMouseEntered
	}
	w.push(media.NativeEvent{Kind: kind})
}

func (w *Window) keyCallback(win *glfw3.Window, key glfw3.Key, scancode int, action glfw3.Action, mods glfw3.ModifierKey) {
	code, scan := translateKey(key)
	ev := media.NativeEvent{
		Kind:     media.NativeKeyDown,
		Key:      code,
		Scancode: scan,
		Repeat:   action == glfw3.Repeat,
		Alt:      mods&glfw3.ModAlt != 0,
		Control:  mods&glfw3.ModControl != 0,
		Shift:    mods&glfw3.ModShift != 0,
		System:   mods&glfw3.ModSuper != 0,
	}
	if action == glfw3.Release {
		ev.Kind = media.NativeKeyUp
	}
	w.push(ev)
}

func (w *Window) charCallback(win *glfw3.Window, char rune) {
	w.push(media.NativeEvent{Kind: media.NativeTextInput, Text: string(char)})
}

func (w *Window) cursorPos() media.Vec2i {
	x, y := w.win.GetCursorPos()
	return media.Vec2i{X: int32(x), Y: int32(y)}
}

func (w *Window) mouseButtonCallback(win *glfw3.Window, button glfw3.MouseButton, action glfw3.Action, mods glfw3.ModifierKey) {
	b, ok := translateButton(button)
	if !ok {
		return
	}
	kind := media.NativeMouseButtonDown
	if action == glfw3.Release {
		kind = media.NativeMouseButtonUp
	}
	w.push(media.NativeEvent{Kind: kind, Button: b, Position: w.cursorPos()})
}

func (w *Window) scrollCallback(win *glfw3.Window, xoff, yoff float64) {
	pos := w.cursorPos()
	if yoff != 0 {
		w.push(media.NativeEvent{Kind: media.NativeMouseWheel, Wheel: media.MouseWheelVertical, WheelDelta: float32(yoff), Position: pos})
	}
	if xoff != 0 {
		w.push(media.NativeEvent{Kind: media.NativeMouseWheel, Wheel: media.MouseWheelHorizontal, WheelDelta: float32(xoff), Position: pos})
	}
}

func (w *Window) cursorPosCallback(win *glfw3.Window, xpos, ypos float64) {
	w.push(media.NativeEvent{Kind: media.NativeMouseMotion, Position: media.Vec2i{X: int32(xpos), Y: int32(ypos)}})
}

func (w *Window) ID() uint32 { return w.id }

func (w *Window) Size() media.Vec2u {
	width, height := w.win.GetSize()
	return media.Vec2u{X: uint32(width), Y: uint32(height)}
}

func (w *Window) SetSize(size media.Vec2u) { w.win.SetSize(int(size.X), int(size.Y)) }

func (w *Window) Position() media.Vec2i {
	x, y := w.win.GetPos()
	return media.Vec2i{X: int32(x), Y: int32(y)}
}

func (w *Window) SetPosition(pos media.Vec2i) { w.win.SetPos(int(pos.X), int(pos.Y)) }

func (w *Window) SetSizeLimits(minimum, maximum media.Vec2u) {
	w.win.SetSizeLimits(limit(minimum.X), limit(minimum.Y), limit(maximum.X), limit(maximum.Y))
}

func limit(v uint32) int {
	if v == 0 {
		return glfw3.DontCare
	}
	return int(v)
}

func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

func (w *Window) SetIcon(icon image.Image) {
	if icon == nil {
		w.win.SetIcon(nil)
		return
	}
	w.win.SetIcon([]image.Image{icon})
}

func (w *Window) SetVisible(visible bool) {
	if visible {
		w.win.Show()
	} else {
		w.win.Hide()
	}
}

func (w *Window) SetMouseCursorVisible(visible bool) {
	w.cursorShow = visible
	w.applyCursorMode()
}

// SetMouseCursorGrabbed locks the cursor to the window. GLFW 3.3 can
// only confine a hidden cursor.
func (w *Window) SetMouseCursorGrabbed(grabbed bool) {
	w.cursorGrab = grabbed
	w.applyCursorMode()
}

func (w *Window) applyCursorMode() {
	mode := glfw3.CursorNormal
	switch {
	case w.cursorGrab:
		mode = glfw3.CursorDisabled
	case !w.cursorShow:
		mode = glfw3.CursorHidden
	}
	w.win.SetInputMode(glfw3.CursorMode, mode)
}

func (w *Window) RequestFocus()  { w.win.Focus() }
func (w *Window) HasFocus() bool { return w.win.GetAttrib(glfw3.Focused) == glfw3.True }

func (w *Window) MakeContextCurrent(current bool) error {
	if current {
		w.win.MakeContextCurrent()
	} else if glfw3.GetCurrentContext() == w.win {
		glfw3.DetachCurrentContext()
	}
	return nil
}

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// SetSwapInterval applies to the current context, which must be the
// window's.
func (w *Window) SetSwapInterval(interval int) { glfw3.SwapInterval(interval) }

func (w *Window) IsSRGB() bool { return w.srgb }

func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	delete(w.p.windows, w.win)
	if w.p.shared == w.win {
		w.p.shared = nil
	}
	w.win.Destroy()
	w.win = nil
}
