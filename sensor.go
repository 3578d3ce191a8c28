package media

// SensorType names a motion sensor.
type SensorType int

const (
	SensorAccelerometer    SensorType = iota // m/s^2
	SensorGyroscope                          // rad/s
	SensorMagnetometer                       // micro-teslas
	SensorGravity                            // m/s^2, without device acceleration
	SensorUserAcceleration                   // m/s^2, without gravity
	SensorOrientation                        // degrees
	SensorCount
)

var sensorNames = [SensorCount]string{
	"Accelerometer", "Gyroscope", "Magnetometer", "Gravity", "UserAcceleration", "Orientation",
}

func (t SensorType) String() string {
	if t < 0 || t >= SensorCount {
		return "?"
	}
	return sensorNames[t]
}

type sensorSlot struct {
	available bool
	enabled   bool
	value     Vec3f
}

// SensorManager keeps the last value of every sensor. Sensors start
// disabled. A nil backend reports no sensors.
type SensorManager struct {
	backend SensorBackend
	slots   [SensorCount]sensorSlot
}

// NewSensorManager opens every available sensor of backend.
func NewSensorManager(backend SensorBackend) *SensorManager {
	m := &SensorManager{backend: backend}
	if backend == nil {
		return m
	}
	for t := SensorType(0); t < SensorCount; t++ {
		if !backend.IsAvailable(t) {
			continue
		}
		if !backend.Open(t) {
			Logger().Warn("failed to open sensor", "type", t)
			continue
		}
		m.slots[t].available = true
	}
	return m
}

func (m *SensorManager) slot(t SensorType) *sensorSlot {
	if t < 0 || t >= SensorCount {
		return nil
	}
	return &m.slots[t]
}

// IsAvailable reports whether the device has sensor t.
func (m *SensorManager) IsAvailable(t SensorType) bool {
	s := m.slot(t)
	return s != nil && s.available
}

// SetEnabled turns sampling of sensor t on or off. Unavailable sensors
// are logged and ignored.
func (m *SensorManager) SetEnabled(t SensorType, enabled bool) {
	s := m.slot(t)
	if s == nil || !s.available {
		Logger().Warn("trying to enable a sensor that is not available", "type", t)
		return
	}
	s.enabled = enabled
	m.backend.SetEnabled(t, enabled)
}

// IsEnabled reports whether sensor t is sampled.
func (m *SensorManager) IsEnabled(t SensorType) bool {
	s := m.slot(t)
	return s != nil && s.enabled
}

// Value returns the last value of sensor t.
func (m *SensorManager) Value(t SensorType) Vec3f {
	if s := m.slot(t); s != nil {
		return s.value
	}
	return Vec3f{}
}

// Update samples every enabled sensor.
func (m *SensorManager) Update() {
	for t := SensorType(0); t < SensorCount; t++ {
		if s := &m.slots[t]; s.available && s.enabled {
			s.value = m.backend.Update(t)
		}
	}
}

// Close releases every opened sensor.
func (m *SensorManager) Close() {
	for t := SensorType(0); t < SensorCount; t++ {
		if m.slots[t].available {
			m.backend.Close(t)
		}
		m.slots[t] = sensorSlot{}
	}
}
