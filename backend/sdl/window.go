package sdl

import (
	"image"
	"unsafe"

	sdl2 "github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/go-theft-auto/media"
)

// Window is an SDL window and its GL context.
type Window struct {
	p    *Platform
	win  *sdl2.Window
	ctx  sdl2.GLContext
	id   uint32
	srgb bool
}

var _ media.NativeWindow = (*Window)(nil)

func (w *Window) ID() uint32 { return w.id }

func (w *Window) Size() media.Vec2u {
	width, height := w.win.GetSize()
	return media.Vec2u{X: uint32(width), Y: uint32(height)}
}

func (w *Window) SetSize(size media.Vec2u) { w.win.SetSize(int32(size.X), int32(size.Y)) }

func (w *Window) Position() media.Vec2i {
	x, y := w.win.GetPosition()
	return media.Vec2i{X: x, Y: y}
}

func (w *Window) SetPosition(pos media.Vec2i) { w.win.SetPosition(pos.X, pos.Y) }

// SetSizeLimits sets the bounds SDL enforces on user resizes. SDL has no
// "unset" value, so a zero maximum becomes a very large one.
func (w *Window) SetSizeLimits(minimum, maximum media.Vec2u) {
	w.win.SetMinimumSize(int32(minimum.X), int32(minimum.Y))
	mx, my := int32(maximum.X), int32(maximum.Y)
	if mx == 0 {
		mx = 1 << 16
	}
	if my == 0 {
		my = 1 << 16
	}
	w.win.SetMaximumSize(mx, my)
}

func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

func (w *Window) SetIcon(icon image.Image) {
	if icon == nil {
		return
	}
	b := icon.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), icon, b.Min, draw.Src)
	surface, err := sdl2.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&rgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(rgba.Stride), sdl2.PIXELFORMAT_ABGR8888)
	if err != nil {
		media.Logger().Error("Failed to set the window icon", "window", w.id, "error", err)
		return
	}
	defer surface.Free()
	w.win.SetIcon(surface)
}

func (w *Window) SetVisible(visible bool) {
	if visible {
		w.win.Show()
	} else {
		w.win.Hide()
	}
}

// SetMouseCursorVisible toggles the cursor. SDL cursors are global, not
// per window.
func (w *Window) SetMouseCursorVisible(visible bool) {
	toggle := sdl2.DISABLE
	if visible {
		toggle = sdl2.ENABLE
	}
	if _, err := sdl2.ShowCursor(toggle); err != nil {
		media.Logger().Warn("Failed to change cursor visibility", "error", err)
	}
}

func (w *Window) SetMouseCursorGrabbed(grabbed bool) { w.win.SetGrab(grabbed) }
func (w *Window) RequestFocus()                      { w.win.Raise() }
func (w *Window) HasFocus() bool                     { return w.win.GetFlags()&sdl2.WINDOW_INPUT_FOCUS != 0 }

func (w *Window) MakeContextCurrent(current bool) error {
	if current {
		return w.win.GLMakeCurrent(w.ctx)
	}
	return w.win.GLMakeCurrent(nil)
}

func (w *Window) SwapBuffers() { w.win.GLSwap() }

// SetSwapInterval applies to the current context, which must be the
// window's.
func (w *Window) SetSwapInterval(interval int) {
	if err := sdl2.GLSetSwapInterval(interval); err != nil {
		media.Logger().Warn("Failed to set swap interval", "interval", interval, "error", err)
	}
}

func (w *Window) IsSRGB() bool { return w.srgb }

func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	delete(w.p.windows, w.id)
	sdl2.GLDeleteContext(w.ctx)
	if err := w.win.Destroy(); err != nil {
		media.Logger().Warn("Failed to destroy window", "window", w.id, "error", err)
	}
	w.win = nil
}
