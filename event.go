package media

// Event is a window event returned by Window.PollEvent and
// Window.WaitEvent. The set of variants is closed; switch on the concrete
// type or use EventAs.
//
//	for {
//	    ev, ok := win.PollEvent()
//	    if !ok {
//	        break
//	    }
//	    switch e := ev.(type) {
//	    case EventClosed:
//	        win.Close()
//	    case EventKeyPressed:
//	        if e.Code == KeyEscape {
//	            win.Close()
//	        }
//	    }
//	}
type Event interface {
	event()
}

// EventAs returns ev as the variant T.
func EventAs[T Event](ev Event) (T, bool) {
	t, ok := ev.(T)
	return t, ok
}

// EventIs reports whether ev is the variant T.
func EventIs[T Event](ev Event) bool {
	_, ok := ev.(T)
	return ok
}

// EventClosed is sent when the user asked to close the window.
type EventClosed struct{}

// EventResized is sent after the window was resized. Size is the new
// client area size in pixels.
type EventResized struct {
	Size Vec2u
}

// EventFocusLost is sent when the window loses keyboard focus.
type EventFocusLost struct{}

// EventFocusGained is sent when the window gains keyboard focus.
type EventFocusGained struct{}

// EventTextEntered carries one typed character.
type EventTextEntered struct {
	Unicode rune
}

// KeyEvent is the payload shared by key presses and releases.
type KeyEvent struct {
	Code     Key      // Layout dependent key
	Scancode Scancode // Physical key
	Alt      bool
	Control  bool
	Shift    bool
	System   bool
}

// EventKeyPressed is sent when a key goes down, and again on auto repeat
// when key repeat is enabled for the window.
type EventKeyPressed struct {
	KeyEvent
}

// EventKeyReleased is sent when a key goes up.
type EventKeyReleased struct {
	KeyEvent
}

// EventMouseWheelScrolled carries a wheel delta. Position is the cursor
// position relative to the window.
type EventMouseWheelScrolled struct {
	Wheel    MouseWheel
	Delta    float32
	Position Vec2i
}

// EventMouseButtonPressed is sent when a mouse button goes down.
type EventMouseButtonPressed struct {
	Button   MouseButton
	Position Vec2i
}

// EventMouseButtonReleased is sent when a mouse button goes up.
type EventMouseButtonReleased struct {
	Button   MouseButton
	Position Vec2i
}

// EventMouseMoved carries the cursor position relative to the window.
type EventMouseMoved struct {
	Position Vec2i
}

// EventMouseMovedRaw carries unaccelerated relative motion. It is sent
// alongside EventMouseMoved by platforms that report it.
type EventMouseMovedRaw struct {
	Delta Vec2i
}

// EventMouseEntered is sent when the cursor enters the window.
type EventMouseEntered struct{}

// EventMouseLeft is sent when the cursor leaves the window.
type EventMouseLeft struct{}

// EventJoystickButtonPressed is sent when a joystick button goes down.
type EventJoystickButtonPressed struct {
	JoystickID int
	Button     int
}

// EventJoystickButtonReleased is sent when a joystick button goes up.
type EventJoystickButtonReleased struct {
	JoystickID int
	Button     int
}

// EventJoystickMoved is sent when an axis moved by at least the window's
// joystick threshold. Position is in [-100, 100].
type EventJoystickMoved struct {
	JoystickID int
	Axis       JoystickAxis
	Position   float32
}

// EventJoystickConnected is sent when a joystick is plugged in.
type EventJoystickConnected struct {
	JoystickID int
}

// EventJoystickDisconnected is sent when a joystick is removed.
type EventJoystickDisconnected struct {
	JoystickID int
}

// TouchEvent is the payload shared by the touch variants. Finger is the
// pooled touch index, not the native finger id.
type TouchEvent struct {
	Finger   int
	Position Vec2i
	Pressure float32
}

// EventTouchBegan is sent when a finger touches the screen.
type EventTouchBegan struct {
	TouchEvent
}

// EventTouchMoved is sent when a touching finger moves.
type EventTouchMoved struct {
	TouchEvent
}

// EventTouchEnded is sent when a finger is lifted.
type EventTouchEnded struct {
	TouchEvent
}

// EventSensorChanged is sent when an enabled sensor reports a new value.
type EventSensorChanged struct {
	Type  SensorType
	Value Vec3f
}

func (EventClosed) event()                 {}
func (EventResized) event()                {}
func (EventFocusLost) event()              {}
func (EventFocusGained) event()            {}
func (EventTextEntered) event()            {}
func (EventKeyPressed) event()             {}
func (EventKeyReleased) event()            {}
func (EventMouseWheelScrolled) event()     {}
func (EventMouseButtonPressed) event()     {}
func (EventMouseButtonReleased) event()    {}
func (EventMouseMoved) event()             {}
func (EventMouseMovedRaw) event()          {}
func (EventMouseEntered) event()           {}
func (EventMouseLeft) event()              {}
func (EventJoystickButtonPressed) event()  {}
func (EventJoystickButtonReleased) event() {}
func (EventJoystickMoved) event()          {}
func (EventJoystickConnected) event()      {}
func (EventJoystickDisconnected) event()   {}
func (EventTouchBegan) event()             {}
func (EventTouchMoved) event()             {}
func (EventTouchEnded) event()             {}
func (EventSensorChanged) event()          {}
