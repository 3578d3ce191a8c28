package media_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-theft-auto/media"
)

func newTestWindow(t *testing.T, opts ...media.WindowOption) (*fakePlatform, *media.WindowContext, *media.Window) {
	t.Helper()
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	w, err := wc.CreateWindow(opts...)
	if err != nil {
		t.Fatalf("CreateWindow returned error: %v", err)
	}
	return p, wc, w
}

func drain(w *media.Window) []media.Event {
	var evs []media.Event
	w.PollAndHandleEvents(func(ev media.Event) { evs = append(evs, ev) })
	return evs
}

func TestPollEventEmpty(t *testing.T) {
	_, _, w := newTestWindow(t)

	if ev, ok := w.PollEvent(); ok {
		t.Fatalf("expected no event, got %#v", ev)
	}
}

func TestCreateWindowZeroSize(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)

	_, err := wc.CreateWindow(media.WithSize(0, 600))
	if !errors.Is(err, media.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if len(p.windows) != 0 {
		t.Errorf("expected no native window, got %d", len(p.windows))
	}
}

func TestCloseRequestedEvent(t *testing.T) {
	p, _, w := newTestWindow(t)
	p.push(media.NativeEvent{Kind: media.NativeCloseRequested, WindowID: w.ID()})

	ev, ok := w.PollEvent()
	if !ok || !media.EventIs[media.EventClosed](ev) {
		t.Fatalf("expected EventClosed, got %#v", ev)
	}
	if !w.IsOpen() {
		t.Error("a close request must not close the window by itself")
	}
}

func TestKeyRepeatDropped(t *testing.T) {
	p, _, w := newTestWindow(t, media.WithKeyRepeat(false))
	p.push(
		media.NativeEvent{Kind: media.NativeKeyDown, WindowID: w.ID(), Key: media.KeyA, Scancode: media.ScanA},
		media.NativeEvent{Kind: media.NativeKeyDown, WindowID: w.ID(), Key: media.KeyA, Scancode: media.ScanA, Repeat: true},
		media.NativeEvent{Kind: media.NativeKeyUp, WindowID: w.ID(), Key: media.KeyA, Scancode: media.ScanA},
	)

	evs := drain(w)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	pressed, ok := media.EventAs[media.EventKeyPressed](evs[0])
	if !ok || pressed.Code != media.KeyA || pressed.Scancode != media.ScanA {
		t.Errorf("expected KeyA pressed, got %#v", evs[0])
	}
	if !media.EventIs[media.EventKeyReleased](evs[1]) {
		t.Errorf("expected key released, got %#v", evs[1])
	}
}

func TestKeyRepeatEnabled(t *testing.T) {
	p, _, w := newTestWindow(t, media.WithKeyRepeat(true))
	p.push(
		media.NativeEvent{Kind: media.NativeKeyDown, WindowID: w.ID(), Key: media.KeyB},
		media.NativeEvent{Kind: media.NativeKeyDown, WindowID: w.ID(), Key: media.KeyB, Repeat: true},
	)

	if n := len(drain(w)); n != 2 {
		t.Errorf("expected 2 key presses, got %d", n)
	}
}

func TestTextInputSplitsRunes(t *testing.T) {
	p, _, w := newTestWindow(t)
	p.push(media.NativeEvent{Kind: media.NativeTextInput, WindowID: w.ID(), Text: "hé€"})

	evs := drain(w)
	want := []rune{'h', 'é', '€'}
	if len(evs) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(evs))
	}
	for i, ev := range evs {
		te, ok := media.EventAs[media.EventTextEntered](ev)
		if !ok || te.Unicode != want[i] {
			t.Errorf("event %d: expected %q, got %#v", i, want[i], ev)
		}
	}
}

func TestMouseMotionRawDelta(t *testing.T) {
	p, _, w := newTestWindow(t)
	p.push(
		media.NativeEvent{Kind: media.NativeMouseMotion, WindowID: w.ID(), Position: media.Vec2i{X: 10, Y: 20}},
		media.NativeEvent{Kind: media.NativeMouseMotion, WindowID: w.ID(), Position: media.Vec2i{X: 12, Y: 21}, Delta: media.Vec2i{X: 2, Y: 1}},
	)

	evs := drain(w)
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	raw, ok := media.EventAs[media.EventMouseMovedRaw](evs[2])
	if !ok || raw.Delta != (media.Vec2i{X: 2, Y: 1}) {
		t.Errorf("expected raw delta (2, 1), got %#v", evs[2])
	}
}

func TestEventRouting(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	first, _ := wc.CreateWindow()
	second, _ := wc.CreateWindow()

	p.push(
		media.NativeEvent{Kind: media.NativeFocusLost, WindowID: second.ID()},
		media.NativeEvent{Kind: media.NativeFocusGained, WindowID: 0},
		media.NativeEvent{Kind: media.NativeFocusGained, WindowID: 99},
	)

	// Either window's poll drains the shared native queue.
	evs := drain(first)
	if len(evs) != 1 || !media.EventIs[media.EventFocusGained](evs[0]) {
		t.Fatalf("expected one focus gained on the first window, got %#v", evs)
	}
	evs = drain(second)
	if len(evs) != 1 || !media.EventIs[media.EventFocusLost](evs[0]) {
		t.Fatalf("expected one focus lost on the second window, got %#v", evs)
	}
}

func TestTouchPoolFull(t *testing.T) {
	p, wc, w := newTestWindow(t, media.WithSize(100, 200))
	for i := range media.TouchSlots + 1 {
		p.push(media.NativeEvent{
			Kind:      media.NativeFingerDown,
			WindowID:  w.ID(),
			FingerID:  int64(1000 + i),
			FingerPos: media.Vec2f{X: 0.5, Y: 0.25},
		})
	}

	evs := drain(w)
	if len(evs) != media.TouchSlots {
		t.Fatalf("expected %d touch events, got %d", media.TouchSlots, len(evs))
	}
	last, ok := media.EventAs[media.EventTouchBegan](evs[len(evs)-1])
	if !ok || last.Finger != media.TouchSlots-1 {
		t.Errorf("expected finger %d, got %#v", media.TouchSlots-1, evs[len(evs)-1])
	}
	if last.Position != (media.Vec2i{X: 50, Y: 50}) {
		t.Errorf("expected position (50, 50), got %v", last.Position)
	}
	if wc.ActiveTouches() != media.TouchSlots {
		t.Errorf("expected %d active touches, got %d", media.TouchSlots, wc.ActiveTouches())
	}
}

func TestTouchIndexReuse(t *testing.T) {
	p, wc, w := newTestWindow(t)
	p.push(
		media.NativeEvent{Kind: media.NativeFingerDown, WindowID: w.ID(), FingerID: 7},
		media.NativeEvent{Kind: media.NativeFingerDown, WindowID: w.ID(), FingerID: 8},
		media.NativeEvent{Kind: media.NativeFingerCanceled, WindowID: w.ID(), FingerID: 7},
		media.NativeEvent{Kind: media.NativeFingerDown, WindowID: w.ID(), FingerID: 9},
	)

	evs := drain(w)
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d", len(evs))
	}
	if !media.EventIs[media.EventTouchEnded](evs[2]) {
		t.Errorf("expected a cancel to end the touch, got %#v", evs[2])
	}
	began, _ := media.EventAs[media.EventTouchBegan](evs[3])
	if began.Finger != 0 {
		t.Errorf("expected the freed index 0, got %d", began.Finger)
	}
	if wc.ActiveTouches() != 2 {
		t.Errorf("expected 2 active touches, got %d", wc.ActiveTouches())
	}
}

func TestJoystickThreshold(t *testing.T) {
	p := newFakePlatform()
	p.joysticks.states[0].Connected = true
	p.joysticks.caps[0].Axes[media.JoystickX] = true
	wc := media.NewWindowContext(p)
	w, err := wc.CreateWindow()
	if err != nil {
		t.Fatal(err)
	}

	var moves []media.EventJoystickMoved
	for _, x := range []float32{0, 0.05, 0.15} {
		p.joysticks.states[0].Axes[media.JoystickX] = x
		for _, ev := range drain(w) {
			if m, ok := media.EventAs[media.EventJoystickMoved](ev); ok {
				moves = append(moves, m)
			}
		}
	}

	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d", len(moves))
	}
	if moves[0].Position != 0.15 || moves[0].Axis != media.JoystickX {
		t.Errorf("expected X at 0.15, got %#v", moves[0])
	}
}

func TestJoystickConnectAndButtons(t *testing.T) {
	p, wc, w := newTestWindow(t)

	p.joysticks.states[2].Connected = true
	p.joysticks.caps[2].ButtonCount = 4
	evs := drain(w)
	if len(evs) != 1 || !media.EventIs[media.EventJoystickConnected](evs[0]) {
		t.Fatalf("expected joystick connected, got %#v", evs)
	}
	if got := wc.Joysticks().Identification(2).VendorID; got != 0x45e {
		t.Errorf("expected vendor 0x45e, got %#x", got)
	}

	p.joysticks.states[2].Buttons[3] = true
	evs = drain(w)
	pressed, ok := media.EventAs[media.EventJoystickButtonPressed](evs[0])
	if len(evs) != 1 || !ok || pressed.JoystickID != 2 || pressed.Button != 3 {
		t.Fatalf("expected button 3 pressed on joystick 2, got %#v", evs)
	}

	p.joysticks.states[2] = media.JoystickState{}
	evs = drain(w)
	if len(evs) != 1 || !media.EventIs[media.EventJoystickDisconnected](evs[0]) {
		t.Fatalf("expected joystick disconnected, got %#v", evs)
	}
}

func TestSensorChanged(t *testing.T) {
	p, wc, w := newTestWindow(t)

	// Disabled sensors are not reported.
	p.sensors.value = media.Vec3f{X: 1}
	if n := len(drain(w)); n != 0 {
		t.Fatalf("expected no events, got %d", n)
	}

	wc.Sensors().SetEnabled(media.SensorAccelerometer, true)
	evs := drain(w)
	sc, ok := media.EventAs[media.EventSensorChanged](evs[0])
	if len(evs) != 1 || !ok || sc.Value.X != 1 {
		t.Fatalf("expected one sensor change, got %#v", evs)
	}
	if n := len(drain(w)); n != 0 {
		t.Errorf("expected no event for an unchanged value, got %d", n)
	}
}

func TestWaitEventTimeout(t *testing.T) {
	_, _, w := newTestWindow(t)

	start := time.Now()
	if _, ok := w.WaitEvent(30 * time.Millisecond); ok {
		t.Fatal("expected timeout")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected to wait at least 30ms, waited %v", elapsed)
	}
}

func TestWaitEventReturnsQueued(t *testing.T) {
	p, _, w := newTestWindow(t)
	p.push(media.NativeEvent{Kind: media.NativeMouseEntered, WindowID: w.ID()})

	ev, ok := w.WaitEvent(time.Second)
	if !ok || !media.EventIs[media.EventMouseEntered](ev) {
		t.Fatalf("expected mouse entered, got %#v", ev)
	}
}

func TestFullscreenDowngrade(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)

	if _, err := wc.CreateWindow(media.WithFullscreen(true)); err != nil {
		t.Fatal(err)
	}
	second, err := wc.CreateWindow(media.WithFullscreen(true))
	if err != nil {
		t.Fatal(err)
	}
	if !p.windows[0].cfg.Fullscreen {
		t.Error("expected the first window to be fullscreen")
	}
	if p.windows[1].cfg.Fullscreen {
		t.Error("expected the second window to fall back to windowed mode")
	}

	// Closing the fullscreen window frees the slot.
	wc.Windows()[0].Close()
	second.Close()
	if _, err := wc.CreateWindow(media.WithFullscreen(true)); err != nil {
		t.Fatal(err)
	}
	if !p.windows[2].cfg.Fullscreen {
		t.Error("expected fullscreen to be available again")
	}
}

func TestStyleImpliesTitlebar(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	if _, err := wc.CreateWindow(media.WithStyle(media.StyleClose)); err != nil {
		t.Fatal(err)
	}
	if !p.windows[0].cfg.Titlebar {
		t.Error("expected a closable window to get a titlebar")
	}
}

func TestSizeLimits(t *testing.T) {
	_, _, w := newTestWindow(t, media.WithSize(300, 300))

	w.SetMinimumSize(media.Vec2u{X: 200, Y: 200})
	w.SetMaximumSize(media.Vec2u{X: 400, Y: 400})
	w.SetSize(media.Vec2u{X: 100, Y: 500})

	if got := w.Size(); got != (media.Vec2u{X: 200, Y: 400}) {
		t.Errorf("expected 200x400, got %v", got)
	}
	native := w.Native().(*fakeWindow)
	if native.minSize != (media.Vec2u{X: 200, Y: 200}) || native.maxSize != (media.Vec2u{X: 400, Y: 400}) {
		t.Errorf("expected limits on the native window, got %v %v", native.minSize, native.maxSize)
	}
}

func TestWindowCloseDiscardsEvents(t *testing.T) {
	p, wc, w := newTestWindow(t)
	p.push(media.NativeEvent{Kind: media.NativeFingerDown, WindowID: w.ID(), FingerID: 1})
	drain(w)

	p.push(media.NativeEvent{Kind: media.NativeMouseLeft, WindowID: w.ID()})
	w.Close()

	if _, ok := w.PollEvent(); ok {
		t.Error("expected no events after Close")
	}
	if !p.windows[0].destroyed {
		t.Error("expected the native window to be destroyed")
	}
	if wc.ActiveTouches() != 0 {
		t.Errorf("expected touches of the closed window to be released, got %d", wc.ActiveTouches())
	}
	if len(wc.Windows()) != 0 {
		t.Errorf("expected no open windows, got %d", len(wc.Windows()))
	}
}

func TestWindowContextClose(t *testing.T) {
	p := newFakePlatform()
	wc := media.NewWindowContext(p)
	w, _ := wc.CreateWindow()

	wc.Close()
	if w.IsOpen() {
		t.Error("expected windows to be closed")
	}
	if !p.terminated {
		t.Error("expected the platform to be terminated")
	}
	if p.sensors.closed == 0 {
		t.Error("expected sensors to be closed")
	}
	if _, err := wc.CreateWindow(); !errors.Is(err, media.ErrContextUnavailable) {
		t.Errorf("expected ErrContextUnavailable, got %v", err)
	}
}

func TestFramerateLimit(t *testing.T) {
	_, _, w := newTestWindow(t, media.WithFramerateLimit(50))

	start := time.Now()
	for range 3 {
		w.Display()
	}
	// The first frame is free, the next two wait 20ms each.
	if elapsed := time.Since(start); elapsed < 35*time.Millisecond {
		t.Errorf("expected frames to be paced, 3 took %v", elapsed)
	}
	if swaps := w.Native().(*fakeWindow).swaps; swaps != 3 {
		t.Errorf("expected 3 swaps, got %d", swaps)
	}
}
