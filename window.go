package media

import (
	"context"
	"image"
	"time"
)

// waitPollInterval is the sleep between drain passes of a blocking wait.
// Joysticks have to be polled, so waits cannot block in the OS.
const waitPollInterval = 10 * time.Millisecond

// eventQueue is a FIFO of translated events.
type eventQueue struct {
	items []Event
	head  int
}

func (q *eventQueue) push(ev Event) { q.items = append(q.items, ev) }

func (q *eventQueue) empty() bool { return q.head == len(q.items) }

func (q *eventQueue) pop() (Event, bool) {
	if q.empty() {
		return nil, false
	}
	ev := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return ev, true
}

// Window is an OS window with its own event queue.
type Window struct {
	wc     *WindowContext
	native NativeWindow
	id     uint32
	open   bool

	events eventQueue

	keyRepeat bool

	joystickThreshold float32
	joystickStates    [JoystickCount]JoystickState
	joystickConnected [JoystickCount]bool
	previousAxes      [JoystickCount][JoystickAxisCount]float32

	sensorValues [SensorCount]Vec3f

	minimumSize Vec2u
	maximumSize Vec2u

	framerateLimit uint
	lastDisplay    time.Time

	// resized is called when an EventResized is handed out.
	resized func(size Vec2u)
	// closing runs in Close while the window is still open.
	closing func()
}

func newWindow(wc *WindowContext, native NativeWindow, cfg windowConfig) *Window {
	w := &Window{
		wc:                wc,
		native:            native,
		id:                native.ID(),
		open:              true,
		keyRepeat:         cfg.keyRepeat,
		joystickThreshold: cfg.joystickThreshold,
		framerateLimit:    cfg.framerateLimit,
		minimumSize:       cfg.minimumSize,
		maximumSize:       cfg.maximumSize,
	}

	// Joysticks already plugged in are not reported as new connections.
	wc.joysticks.Update()
	for i := range JoystickCount {
		w.joystickStates[i] = wc.joysticks.State(i)
		w.joystickConnected[i] = wc.joysticks.IsConnected(i)
	}

	if w.minimumSize != (Vec2u{}) || w.maximumSize != (Vec2u{}) {
		native.SetSizeLimits(w.minimumSize, w.maximumSize)
	}
	w.setSwapInterval(swapInterval(cfg.verticalSync))
	return w
}

// setSwapInterval applies interval to the window's context and leaves the
// tracked current context as it was.
func (w *Window) setSwapInterval(interval int) {
	if w.wc.current != w {
		if err := w.native.MakeContextCurrent(true); err != nil {
			Logger().Error("Failed to activate the window's context", "window", w.id, "error", err)
			return
		}
		defer w.wc.restoreCurrent(w.native)
	}
	w.native.SetSwapInterval(interval)
}

func swapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

// ID returns the native window id.
func (w *Window) ID() uint32 { return w.id }

// Native returns the platform window.
func (w *Window) Native() NativeWindow { return w.native }

// IsOpen reports whether Close has not been called.
func (w *Window) IsOpen() bool { return w.open }

// Close destroys the native window. Pending events are discarded and
// later calls on the window do nothing.
func (w *Window) Close() {
	if !w.open {
		return
	}
	if w.closing != nil {
		w.closing()
	}
	w.open = false
	w.events = eventQueue{}
	w.wc.removeWindow(w)
	w.native.Destroy()
}

// PollEvent returns the next pending event without blocking. The second
// result is false when there is none.
func (w *Window) PollEvent() (Event, bool) {
	if !w.open {
		return nil, false
	}
	if w.events.empty() {
		w.populateEventQueue()
	}
	return w.popEvent()
}

// WaitEvent blocks until an event is available or timeout elapses. A zero
// timeout waits forever.
func (w *Window) WaitEvent(timeout time.Duration) (Event, bool) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return w.WaitEventContext(ctx)
}

// WaitEventContext blocks until an event is available or ctx is done.
func (w *Window) WaitEventContext(ctx context.Context) (Event, bool) {
	if !w.open {
		return nil, false
	}
	if w.events.empty() {
		w.populateEventQueue()
	}
	if !w.events.empty() {
		return w.popEvent()
	}

	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()
	for w.open && w.events.empty() {
		select {
		case <-ctx.Done():
			return nil, false
		case <-ticker.C:
			w.populateEventQueue()
		}
	}
	return w.popEvent()
}

// PollAndHandleEvents calls handler for every pending event and returns
// how many there were.
func (w *Window) PollAndHandleEvents(handler func(Event)) int {
	n := 0
	for {
		ev, ok := w.PollEvent()
		if !ok {
			return n
		}
		handler(ev)
		n++
	}
}

func (w *Window) pushEvent(ev Event) { w.events.push(ev) }

func (w *Window) popEvent() (Event, bool) {
	ev, ok := w.events.pop()
	if r, isResize := ev.(EventResized); isResize && w.resized != nil {
		w.resized(r.Size)
	}
	return ev, ok
}

// populateEventQueue runs one drain pass.
func (w *Window) populateEventQueue() {
	w.processJoystickEvents()
	w.processSensorEvents()
	w.wc.pumpNativeEvents()
}

func (w *Window) processJoystickEvents() {
	jm := w.wc.joysticks
	jm.Update()

	for i := range JoystickCount {
		previous := w.joystickStates[i]
		w.joystickStates[i] = jm.State(i)

		wasConnected := w.joystickConnected[i]
		connected := jm.IsConnected(i)
		w.joystickConnected[i] = connected

		if wasConnected != connected {
			if connected {
				w.pushEvent(EventJoystickConnected{JoystickID: i})
				w.previousAxes[i] = [JoystickAxisCount]float32{}
			} else {
				w.pushEvent(EventJoystickDisconnected{JoystickID: i})
			}
		}
		if !connected {
			continue
		}

		caps := jm.Capabilities(i)
		for axis := range JoystickAxis(JoystickAxisCount) {
			if !caps.Axes[axis] {
				continue
			}
			prev := w.previousAxes[i][axis]
			curr := w.joystickStates[i].Axes[axis]
			if abs32(curr-prev) >= w.joystickThreshold {
				w.pushEvent(EventJoystickMoved{JoystickID: i, Axis: axis, Position: curr})
				w.previousAxes[i][axis] = curr
			}
		}

		for b := range caps.ButtonCount {
			was, is := previous.Buttons[b], w.joystickStates[i].Buttons[b]
			if was == is {
				continue
			}
			if is {
				w.pushEvent(EventJoystickButtonPressed{JoystickID: i, Button: b})
			} else {
				w.pushEvent(EventJoystickButtonReleased{JoystickID: i, Button: b})
			}
		}
	}
}

func (w *Window) processSensorEvents() {
	sm := w.wc.sensors
	sm.Update()

	for t := range SensorType(SensorCount) {
		if !sm.IsEnabled(t) {
			continue
		}
		previous := w.sensorValues[t]
		w.sensorValues[t] = sm.Value(t)
		if w.sensorValues[t] != previous {
			w.pushEvent(EventSensorChanged{Type: t, Value: w.sensorValues[t]})
		}
	}
}

// processNativeEvent translates one platform event into zero or more
// window events.
func (w *Window) processNativeEvent(ev *NativeEvent) {
	switch ev.Kind {
	case NativeCloseRequested:
		w.pushEvent(EventClosed{})

	case NativeResized:
		w.pushEvent(EventResized{Size: ev.Size})

	case NativeMouseEntered:
		w.pushEvent(EventMouseEntered{})

	case NativeMouseLeft:
		w.pushEvent(EventMouseLeft{})

	case NativeFocusGained:
		w.pushEvent(EventFocusGained{})

	case NativeFocusLost:
		w.pushEvent(EventFocusLost{})

	case NativeKeyDown:
		if ev.Repeat && !w.keyRepeat {
			return
		}
		w.pushEvent(EventKeyPressed{keyEventOf(ev)})

	case NativeKeyUp:
		w.pushEvent(EventKeyReleased{keyEventOf(ev)})

	case NativeTextInput:
		for _, r := range ev.Text {
			if r != 0 {
				w.pushEvent(EventTextEntered{Unicode: r})
			}
		}

	case NativeMouseMotion:
		w.pushEvent(EventMouseMoved{Position: ev.Position})
		if ev.Delta != (Vec2i{}) {
			w.pushEvent(EventMouseMovedRaw{Delta: ev.Delta})
		}

	case NativeMouseButtonDown:
		w.pushEvent(EventMouseButtonPressed{Button: ev.Button, Position: ev.Position})

	case NativeMouseButtonUp:
		w.pushEvent(EventMouseButtonReleased{Button: ev.Button, Position: ev.Position})

	case NativeMouseWheel:
		w.pushEvent(EventMouseWheelScrolled{Wheel: ev.Wheel, Delta: ev.WheelDelta, Position: ev.Position})

	case NativeFingerDown:
		pos := w.touchPosition(ev.FingerPos)
		info, ok := w.wc.touches.begin(ev.FingerID, pos, w.id)
		if !ok {
			Logger().Error("No available touch index", "finger", ev.FingerID)
			return
		}
		w.pushEvent(EventTouchBegan{TouchEvent{Finger: info.Index, Position: pos, Pressure: ev.Pressure}})

	case NativeFingerMotion:
		pos := w.touchPosition(ev.FingerPos)
		info, ok := w.wc.touches.move(ev.FingerID, pos)
		if !ok {
			return
		}
		w.pushEvent(EventTouchMoved{TouchEvent{Finger: info.Index, Position: pos, Pressure: ev.Pressure}})

	case NativeFingerUp, NativeFingerCanceled:
		pos := w.touchPosition(ev.FingerPos)
		info, ok := w.wc.touches.end(ev.FingerID)
		if !ok {
			return
		}
		w.pushEvent(EventTouchEnded{TouchEvent{Finger: info.Index, Position: pos, Pressure: ev.Pressure}})
	}
}

func keyEventOf(ev *NativeEvent) KeyEvent {
	return KeyEvent{
		Code:     ev.Key,
		Scancode: ev.Scancode,
		Alt:      ev.Alt,
		Control:  ev.Control,
		Shift:    ev.Shift,
		System:   ev.System,
	}
}

// touchPosition converts a normalized finger position to window pixels.
func (w *Window) touchPosition(normalized Vec2f) Vec2i {
	return normalized.CwiseMul(w.native.Size().ToVec2f()).ToVec2i()
}

// Size returns the client area size in pixels.
func (w *Window) Size() Vec2u { return w.native.Size() }

// SetSize resizes the client area, clamped to the size limits.
func (w *Window) SetSize(size Vec2u) {
	w.native.SetSize(w.clampSize(size))
}

func (w *Window) clampSize(size Vec2u) Vec2u {
	if w.minimumSize.X != 0 {
		size.X = max(size.X, w.minimumSize.X)
	}
	if w.minimumSize.Y != 0 {
		size.Y = max(size.Y, w.minimumSize.Y)
	}
	if w.maximumSize.X != 0 {
		size.X = min(size.X, w.maximumSize.X)
	}
	if w.maximumSize.Y != 0 {
		size.Y = min(size.Y, w.maximumSize.Y)
	}
	return size
}

func (w *Window) applySizeLimits() {
	w.native.SetSizeLimits(w.minimumSize, w.maximumSize)
	if size := w.Size(); w.clampSize(size) != size {
		w.native.SetSize(w.clampSize(size))
	}
}

// MinimumSize returns the lower resize bound, zero when unset.
func (w *Window) MinimumSize() Vec2u { return w.minimumSize }

// MaximumSize returns the upper resize bound, zero when unset.
func (w *Window) MaximumSize() Vec2u { return w.maximumSize }

// SetMinimumSize sets the lower resize bound. A zero size removes it.
func (w *Window) SetMinimumSize(size Vec2u) {
	w.minimumSize = size
	w.applySizeLimits()
}

// SetMaximumSize sets the upper resize bound. A zero size removes it.
func (w *Window) SetMaximumSize(size Vec2u) {
	w.maximumSize = size
	w.applySizeLimits()
}

// Position returns the window position on the desktop.
func (w *Window) Position() Vec2i { return w.native.Position() }

// SetPosition moves the window on the desktop.
func (w *Window) SetPosition(pos Vec2i) { w.native.SetPosition(pos) }

// SetTitle changes the title bar text.
func (w *Window) SetTitle(title string) { w.native.SetTitle(title) }

// SetIcon sets the window icon. A nil icon restores the default.
func (w *Window) SetIcon(icon image.Image) { w.native.SetIcon(icon) }

// SetVisible shows or hides the window.
func (w *Window) SetVisible(visible bool) { w.native.SetVisible(visible) }

// SetMouseCursorVisible shows or hides the cursor over the window.
func (w *Window) SetMouseCursorVisible(visible bool) { w.native.SetMouseCursorVisible(visible) }

// SetMouseCursorGrabbed confines the cursor to the window.
func (w *Window) SetMouseCursorGrabbed(grabbed bool) { w.native.SetMouseCursorGrabbed(grabbed) }

// RequestFocus asks the OS to give the window input focus.
func (w *Window) RequestFocus() { w.native.RequestFocus() }

// HasFocus reports whether the window has input focus.
func (w *Window) HasFocus() bool { return w.native.HasFocus() }

// SetVerticalSyncEnabled syncs Display to the monitor refresh. The context
// that was current before the call stays current.
func (w *Window) SetVerticalSyncEnabled(enabled bool) { w.setSwapInterval(swapInterval(enabled)) }

// SetKeyRepeatEnabled controls whether auto repeated key downs are
// reported. It is off by default.
func (w *Window) SetKeyRepeatEnabled(enabled bool) { w.keyRepeat = enabled }

// KeyRepeatEnabled reports whether auto repeated key downs are reported.
func (w *Window) KeyRepeatEnabled() bool { return w.keyRepeat }

// SetJoystickThreshold sets the minimum axis change that is reported.
func (w *Window) SetJoystickThreshold(threshold float32) { w.joystickThreshold = threshold }

// SetFramerateLimit caps Display to fps frames per second. Zero removes
// the cap.
func (w *Window) SetFramerateLimit(fps uint) { w.framerateLimit = fps }

// SetActive makes the window's GL context current, or releases it.
func (w *Window) SetActive(active bool) bool {
	if !w.open {
		return false
	}
	if err := w.native.MakeContextCurrent(active); err != nil {
		Logger().Error("Failed to activate the window's context", "window", w.id, "error", err)
		return false
	}
	if active {
		w.wc.current = w
	} else if w.wc.current == w {
		w.wc.current = nil
	}
	return true
}

// Display swaps the back buffer, then sleeps for the rest of the frame
// when a framerate limit is set.
func (w *Window) Display() {
	if !w.open {
		return
	}
	w.native.SwapBuffers()
	if w.framerateLimit == 0 {
		return
	}
	frame := time.Second / time.Duration(w.framerateLimit)
	if elapsed := time.Since(w.lastDisplay); elapsed < frame {
		time.Sleep(frame - elapsed)
	}
	w.lastDisplay = time.Now()
}
