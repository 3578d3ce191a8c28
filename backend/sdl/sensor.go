package sdl

import (
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/media"
)

// sensors exposes the SDL accelerometer and gyroscope. SDL has no other
// sensor types.
type sensors struct {
	device  [media.SensorCount]int // SDL device index, -1 when absent
	open    [media.SensorCount]*sdl2.Sensor
	enabled [media.SensorCount]bool
	data    []float32
}

func newSensors() *sensors {
	s := &sensors{data: make([]float32, 3)}
	for i := range s.device {
		s.device[i] = -1
	}
	for i := range sdl2.NumSensors() {
		var t media.SensorType
		switch sdl2.SensorGetDeviceType(i) {
		case sdl2.SENSOR_ACCEL:
			t = media.SensorAccelerometer
		case sdl2.SENSOR_GYRO:
			t = media.SensorGyroscope
		default:
			continue
		}
		if s.device[t] < 0 {
			s.device[t] = i
		}
	}
	return s
}

func (s *sensors) IsAvailable(t media.SensorType) bool { return s.device[t] >= 0 }

func (s *sensors) Open(t media.SensorType) bool {
	if s.device[t] < 0 {
		return false
	}
	if s.open[t] == nil {
		s.open[t] = sdl2.SensorOpen(s.device[t])
	}
	return s.open[t] != nil
}

func (s *sensors) Close(t media.SensorType) {
	if s.open[t] != nil {
		s.open[t].Close()
		s.open[t] = nil
	}
}

func (s *sensors) closeAll() {
	for t := range media.SensorCount {
		s.Close(t)
	}
}

func (s *sensors) SetEnabled(t media.SensorType, enabled bool) { s.enabled[t] = enabled }

func (s *sensors) Update(t media.SensorType) media.Vec3f {
	sensor := s.open[t]
	if sensor == nil || !s.enabled[t] {
		return media.Vec3f{}
	}
	sdl2.SensorUpdate()
	if err := sensor.GetData(s.data); err != nil {
		media.Logger().Warn("Failed to read sensor", "sensor", t, "error", err)
		return media.Vec3f{}
	}
	return media.Vec3f{X: s.data[0], Y: s.data[1], Z: s.data[2]}
}
