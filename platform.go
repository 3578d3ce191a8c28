package media

import "image"

// NativeEventKind tags a NativeEvent.
type NativeEventKind uint8

const (
	NativeCloseRequested NativeEventKind = iota
	NativeResized
	NativeFocusGained
	NativeFocusLost
	NativeMouseEntered
	NativeMouseLeft
	NativeKeyDown
	NativeKeyUp
	NativeTextInput
	NativeMouseMotion
	NativeMouseButtonDown
	NativeMouseButtonUp
	NativeMouseWheel
	NativeFingerDown
	NativeFingerUp
	NativeFingerMotion
	NativeFingerCanceled
)

// NativeEvent is an OS event as reported by a Platform, before window
// translation. Only the fields of its Kind are set.
type NativeEvent struct {
	Kind NativeEventKind

	// WindowID is NativeWindow.ID of the target window. Zero routes the
	// event to the first open window.
	WindowID uint32

	// NativeResized
	Size Vec2u

	// NativeKeyDown, NativeKeyUp. Repeat is set on auto repeat key downs.
	Key      Key
	Scancode Scancode
	Repeat   bool
	Alt      bool
	Control  bool
	Shift    bool
	System   bool

	// NativeTextInput, UTF-8.
	Text string

	// Mouse kinds. Delta is the relative motion for NativeMouseMotion, or
	// zero when the platform does not report it.
	Position   Vec2i
	Delta      Vec2i
	Button     MouseButton
	Wheel      MouseWheel
	WheelDelta float32

	// Finger kinds. FingerPos is normalized to [0, 1] over the window.
	FingerID  int64
	FingerPos Vec2f
	Pressure  float32
}

// WindowStyle is a bit set of window decorations.
type WindowStyle uint8

const (
	StyleTitlebar WindowStyle = 1 << iota
	StyleResize
	StyleClose
	StyleNone    WindowStyle = 0
	StyleDefault             = StyleTitlebar | StyleResize | StyleClose
)

// NativeWindowConfig is what a Platform needs to open a window.
type NativeWindowConfig struct {
	Title      string
	Size       Vec2u
	Fullscreen bool
	Titlebar   bool
	Resizable  bool
	Closable   bool
	Hidden     bool
	Context    ContextSettings
}

// Platform is the OS collaborator: window creation, the native event
// queue, and the joystick, sensor and clipboard services. backend/glfw and
// backend/sdl implement it.
type Platform interface {
	// CreateWindow opens a window with its own GL context. The new context
	// may be left current on the calling thread.
	CreateWindow(cfg NativeWindowConfig) (NativeWindow, error)

	// PollNativeEvents appends every pending OS event to dst and returns
	// it. It must not block.
	PollNativeEvents(dst []NativeEvent) []NativeEvent

	// Joysticks and Sensors may return nil when unsupported.
	Joysticks() JoystickBackend
	Sensors() SensorBackend

	ClipboardProvider

	Terminate()
}

// NativeWindow is an OS window with a GL context.
type NativeWindow interface {
	// ID is nonzero and unique among open windows.
	ID() uint32

	Size() Vec2u
	SetSize(size Vec2u)
	Position() Vec2i
	SetPosition(pos Vec2i)
	// SetSizeLimits constrains interactive resizes. A zero component
	// leaves that bound unset.
	SetSizeLimits(minimum, maximum Vec2u)

	SetTitle(title string)
	SetIcon(icon image.Image)
	SetVisible(visible bool)
	SetMouseCursorVisible(visible bool)
	SetMouseCursorGrabbed(grabbed bool)
	RequestFocus()
	HasFocus() bool

	// MakeContextCurrent makes the window's GL context current on the
	// calling thread, or releases it when current is false.
	MakeContextCurrent(current bool) error
	SwapBuffers()
	// SetSwapInterval sets the swap interval of the current context, which
	// the caller has made the window's.
	SetSwapInterval(interval int)
	IsSRGB() bool

	Destroy()
}

// JoystickBackend reads joysticks by slot index in [0, JoystickCount).
type JoystickBackend interface {
	IsConnected(index int) bool
	Open(index int) bool
	Close(index int)
	Capabilities(index int) JoystickCapabilities
	Identification(index int) JoystickIdentification
	// Update samples the joystick. A state with Connected false means the
	// device went away.
	Update(index int) JoystickState
}

// SensorBackend reads motion sensors.
type SensorBackend interface {
	IsAvailable(t SensorType) bool
	Open(t SensorType) bool
	Close(t SensorType)
	SetEnabled(t SensorType, enabled bool)
	Update(t SensorType) Vec3f
}
