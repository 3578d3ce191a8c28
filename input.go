package media

import "strconv"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonExtra1
	MouseButtonExtra2
	MouseButtonCount
)

// MouseWheel selects the wheel of a scroll event.
type MouseWheel int

const (
	MouseWheelVertical MouseWheel = iota
	MouseWheelHorizontal
)

// Key is a layout dependent keyboard key: KeyQ is the key that types
// 'q', wherever it sits on the keyboard.
type Key int

const (
	KeyUnknown Key = iota - 1
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyEscape
	KeyLControl
	KeyLShift
	KeyLAlt
	KeyLSystem
	KeyRControl
	KeyRShift
	KeyRAlt
	KeyRSystem
	KeyMenu
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyComma
	KeyPeriod
	KeyApostrophe
	KeySlash
	KeyBackslash
	KeyGrave
	KeyEqual
	KeyHyphen
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyPause
	KeyCapsLock
	KeyPrintScreen
	KeyScrollLock
	KeyNumLock
	KeyNumpadEnter
	KeyNumpadPeriod
	KeyCount
)

// Scancode is a physical key position. Values are USB HID usage ids
// (keyboard page), which SDL uses directly.
type Scancode uint16

const (
	ScanUnknown Scancode = 0

	ScanA Scancode = 4 + iota - 1
	ScanB
	ScanC
	ScanD
	ScanE
	ScanF
	ScanG
	ScanH
	ScanI
	ScanJ
	ScanK
	ScanL
	ScanM
	ScanN
	ScanO
	ScanP
	ScanQ
	ScanR
	ScanS
	ScanT
	ScanU
	ScanV
	ScanW
	ScanX
	ScanY
	ScanZ
	ScanNum1
	ScanNum2
	ScanNum3
	ScanNum4
	ScanNum5
	ScanNum6
	ScanNum7
	ScanNum8
	ScanNum9
	ScanNum0
	ScanEnter
	ScanEscape
	ScanBackspace
	ScanTab
	ScanSpace
	ScanHyphen
	ScanEqual
	ScanLBracket
	ScanRBracket
	ScanBackslash
	ScanNonUsHash
	ScanSemicolon
	ScanApostrophe
	ScanGrave
	ScanComma
	ScanPeriod
	ScanSlash
	ScanCapsLock
	ScanF1
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
	ScanPrintScreen
	ScanScrollLock
	ScanPause
	ScanInsert
	ScanHome
	ScanPageUp
	ScanDelete
	ScanEnd
	ScanPageDown
	ScanRight
	ScanLeft
	ScanDown
	ScanUp
	ScanNumLock
	ScanNumpadDivide
	ScanNumpadMultiply
	ScanNumpadMinus
	ScanNumpadPlus
	ScanNumpadEnter
	ScanNumpad1
	ScanNumpad2
	ScanNumpad3
	ScanNumpad4
	ScanNumpad5
	ScanNumpad6
	ScanNumpad7
	ScanNumpad8
	ScanNumpad9
	ScanNumpad0
	ScanNumpadPeriod
	ScanNonUsBackslash
	ScanApplication
	ScanPower
	ScanNumpadEqual
	ScanF13
	ScanF14
	ScanF15
)

const (
	ScanLControl Scancode = 224 + iota
	ScanLShift
	ScanLAlt
	ScanLSystem
	ScanRControl
	ScanRShift
	ScanRAlt
	ScanRSystem
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame. Feed it every event
// with HandleEvent and call Reset at the start of each frame.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Modifiers from the last key event
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	// Touches by finger index
	touchDown [TouchSlots]bool
	touchPos  [TouchSlots]Vec2i

	Focused bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
		Focused:    true,
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// HandleEvent folds ev into the state. Events that carry no input are
// ignored.
func (s *InputState) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case EventKeyPressed:
		s.setModifiers(e.KeyEvent)
		s.SetKey(e.Code, true)
	case EventKeyReleased:
		s.setModifiers(e.KeyEvent)
		s.SetKey(e.Code, false)
	case EventTextEntered:
		s.AddInputChar(e.Unicode)
	case EventMouseMoved:
		s.SetMousePos(float32(e.Position.X), float32(e.Position.Y))
	case EventMouseButtonPressed:
		s.SetMousePos(float32(e.Position.X), float32(e.Position.Y))
		s.SetMouseButton(e.Button, true)
	case EventMouseButtonReleased:
		s.SetMousePos(float32(e.Position.X), float32(e.Position.Y))
		s.SetMouseButton(e.Button, false)
	case EventMouseWheelScrolled:
		if e.Wheel == MouseWheelHorizontal {
			s.MouseWheelX += e.Delta
		} else {
			s.MouseWheelY += e.Delta
		}
	case EventTouchBegan:
		s.setTouch(e.TouchEvent, true)
	case EventTouchMoved:
		s.setTouch(e.TouchEvent, true)
	case EventTouchEnded:
		s.setTouch(e.TouchEvent, false)
	case EventFocusLost:
		// Keys released while unfocused never report, so drop held state.
		s.Focused = false
		for key := Key(0); key < KeyCount; key++ {
			s.SetKey(key, false)
		}
		for b := MouseButton(0); b < MouseButtonCount; b++ {
			s.SetMouseButton(b, false)
		}
	case EventFocusGained:
		s.Focused = true
	}
}

func (s *InputState) setModifiers(e KeyEvent) {
	s.ModCtrl = e.Control
	s.ModShift = e.Shift
	s.ModAlt = e.Alt
	s.ModSuper = e.System
}

func (s *InputState) setTouch(e TouchEvent, down bool) {
	if e.Finger < 0 || e.Finger >= TouchSlots {
		return
	}
	s.touchDown[e.Finger] = down
	s.touchPos[e.Finger] = e.Position
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on fresh press
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on release
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every KeyRepeatInterval.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger if we just crossed an interval boundary this frame.
	// Approximate, assumes ~60fps for the previous frame.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

// TouchDown reports whether the finger index is touching and where.
func (s *InputState) TouchDown(finger int) (Vec2i, bool) {
	if finger < 0 || finger >= TouchSlots {
		return Vec2i{}, false
	}
	return s.touchPos[finger], s.touchDown[finger]
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars clears all typed characters for this frame, so that a
// shortcut key is not also typed into a text field.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}

var keyNames = map[Key]string{
	KeyUnknown:      "--",
	KeyEscape:       "Esc",
	KeyLControl:     "LCtrl",
	KeyLShift:       "LShift",
	KeyLAlt:         "LAlt",
	KeyLSystem:      "LSuper",
	KeyRControl:     "RCtrl",
	KeyRShift:       "RShift",
	KeyRAlt:         "RAlt",
	KeyRSystem:      "RSuper",
	KeyMenu:         "Menu",
	KeyLBracket:     "[",
	KeyRBracket:     "]",
	KeySemicolon:    ";",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeyApostrophe:   "'",
	KeySlash:        "/",
	KeyBackslash:    "\\",
	KeyGrave:        "`",
	KeyEqual:        "=",
	KeyHyphen:       "-",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyEnd:          "End",
	KeyHome:         "Home",
	KeyInsert:       "Ins",
	KeyDelete:       "Del",
	KeyAdd:          "Num+",
	KeySubtract:     "Num-",
	KeyMultiply:     "Num*",
	KeyDivide:       "Num/",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyPause:        "Pause",
	KeyCapsLock:     "CapsLock",
	KeyPrintScreen:  "PrtSc",
	KeyScrollLock:   "ScrLk",
	KeyNumLock:      "NumLk",
	KeyNumpadEnter:  "NumEnter",
	KeyNumpadPeriod: "Num.",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyNum0 && k <= KeyNum9:
		return string(rune('0' + int(k-KeyNum0)))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return "Num" + strconv.Itoa(int(k-KeyNumpad0))
	case k >= KeyF1 && k <= KeyF15:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}
