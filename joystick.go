package media

const (
	JoystickCount       = 8  // Maximum number of joysticks
	JoystickButtonCount = 32 // Maximum buttons per joystick
	JoystickAxisCount   = 8  // Maximum axes per joystick
)

// DefaultJoystickThreshold is the minimum axis change that produces an
// EventJoystickMoved. Axis positions are in [-100, 100].
const DefaultJoystickThreshold float32 = 0.1

// JoystickAxis names a joystick axis.
type JoystickAxis int

const (
	JoystickX JoystickAxis = iota
	JoystickY
	JoystickZ
	JoystickR
	JoystickU
	JoystickV
	JoystickPovX
	JoystickPovY
)

var joystickAxisNames = [JoystickAxisCount]string{"X", "Y", "Z", "R", "U", "V", "PovX", "PovY"}

func (a JoystickAxis) String() string {
	if a < 0 || a >= JoystickAxisCount {
		return "?"
	}
	return joystickAxisNames[a]
}

// JoystickState is one sample of a joystick.
type JoystickState struct {
	Connected bool
	Axes      [JoystickAxisCount]float32
	Buttons   [JoystickButtonCount]bool
}

// JoystickCapabilities lists what a joystick reports.
type JoystickCapabilities struct {
	ButtonCount int
	Axes        [JoystickAxisCount]bool
}

// JoystickIdentification names a joystick device.
type JoystickIdentification struct {
	Name      string
	VendorID  uint
	ProductID uint
}

type joystickSlot struct {
	open  bool
	caps  JoystickCapabilities
	ident JoystickIdentification
	state JoystickState
}

// JoystickManager keeps the last sampled state of every joystick slot.
// A nil backend behaves as if nothing is ever connected.
type JoystickManager struct {
	backend JoystickBackend
	slots   [JoystickCount]joystickSlot
}

// NewJoystickManager returns a manager reading from backend.
func NewJoystickManager(backend JoystickBackend) *JoystickManager {
	return &JoystickManager{backend: backend}
}

// Update samples every slot, opening newly connected joysticks and
// closing the ones that went away.
func (m *JoystickManager) Update() {
	if m.backend == nil {
		return
	}
	for i := range m.slots {
		s := &m.slots[i]
		if s.open {
			s.state = m.backend.Update(i)
			if !s.state.Connected {
				m.backend.Close(i)
				Logger().Debug("joystick disconnected", "index", i, "name", s.ident.Name)
				*s = joystickSlot{}
			}
			continue
		}

		if !m.backend.IsConnected(i) || !m.backend.Open(i) {
			continue
		}
		s.open = true
		s.caps = m.backend.Capabilities(i)
		s.caps.ButtonCount = min(max(s.caps.ButtonCount, 0), JoystickButtonCount)
		s.ident = m.backend.Identification(i)
		s.state = m.backend.Update(i)
		Logger().Debug("joystick connected", "index", i, "name", s.ident.Name,
			"buttons", s.caps.ButtonCount)
	}
}

func (m *JoystickManager) slot(i int) *joystickSlot {
	if i < 0 || i >= JoystickCount {
		return nil
	}
	return &m.slots[i]
}

// IsConnected reports whether joystick i was connected at the last Update.
func (m *JoystickManager) IsConnected(i int) bool {
	s := m.slot(i)
	return s != nil && s.state.Connected
}

// State returns the last sample of joystick i.
func (m *JoystickManager) State(i int) JoystickState {
	if s := m.slot(i); s != nil {
		return s.state
	}
	return JoystickState{}
}

// Capabilities returns the capabilities of joystick i.
func (m *JoystickManager) Capabilities(i int) JoystickCapabilities {
	if s := m.slot(i); s != nil {
		return s.caps
	}
	return JoystickCapabilities{}
}

// Identification returns the identification of joystick i.
func (m *JoystickManager) Identification(i int) JoystickIdentification {
	if s := m.slot(i); s != nil {
		return s.ident
	}
	return JoystickIdentification{}
}

// ButtonCount returns the number of buttons of joystick i.
func (m *JoystickManager) ButtonCount(i int) int {
	return m.Capabilities(i).ButtonCount
}

// HasAxis reports whether joystick i has axis.
func (m *JoystickManager) HasAxis(i int, axis JoystickAxis) bool {
	if axis < 0 || axis >= JoystickAxisCount {
		return false
	}
	return m.Capabilities(i).Axes[axis]
}

// AxisPosition returns the position of axis on joystick i, in [-100, 100].
func (m *JoystickManager) AxisPosition(i int, axis JoystickAxis) float32 {
	if axis < 0 || axis >= JoystickAxisCount {
		return 0
	}
	return m.State(i).Axes[axis]
}

// IsButtonPressed reports whether button b of joystick i is down.
func (m *JoystickManager) IsButtonPressed(i, b int) bool {
	if b < 0 || b >= JoystickButtonCount {
		return false
	}
	return m.State(i).Buttons[b]
}
