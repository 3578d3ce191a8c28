package media_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/media"
)

func TestJoystickManagerNilBackend(t *testing.T) {
	m := media.NewJoystickManager(nil)
	m.Update()

	if m.IsConnected(0) {
		t.Error("expected nothing connected")
	}
	if m.IsConnected(-1) || m.IsConnected(media.JoystickCount) {
		t.Error("expected out of range slots to read as disconnected")
	}
}

func TestJoystickManagerClampsButtons(t *testing.T) {
	js := &fakeJoysticks{}
	js.states[1].Connected = true
	js.caps[1].ButtonCount = 200
	js.caps[1].Axes[media.JoystickPovX] = true
	js.states[1].Axes[media.JoystickPovX] = -100
	m := media.NewJoystickManager(js)

	m.Update()
	m.Update()
	if js.opened[1] != 1 {
		t.Errorf("expected one Open, got %d", js.opened[1])
	}
	if m.ButtonCount(1) != media.JoystickButtonCount {
		t.Errorf("expected %d buttons, got %d", media.JoystickButtonCount, m.ButtonCount(1))
	}
	if !m.HasAxis(1, media.JoystickPovX) || m.HasAxis(1, media.JoystickY) {
		t.Error("unexpected axis capabilities")
	}
	if m.AxisPosition(1, media.JoystickPovX) != -100 {
		t.Errorf("expected -100, got %v", m.AxisPosition(1, media.JoystickPovX))
	}
	if m.Identification(1).Name != "pad" {
		t.Errorf("expected the pad identification, got %+v", m.Identification(1))
	}

	js.states[1].Connected = false
	m.Update()
	if m.IsConnected(1) || m.ButtonCount(1) != 0 {
		t.Error("expected the slot to be cleared on disconnect")
	}
}

func TestSensorManager(t *testing.T) {
	s := &fakeSensors{value: media.Vec3f{Z: 9.8}}
	m := media.NewSensorManager(s)

	if !m.IsAvailable(media.SensorAccelerometer) || m.IsAvailable(media.SensorGyroscope) {
		t.Fatal("unexpected availability")
	}
	if s.opened != 1 {
		t.Errorf("expected 1 Open, got %d", s.opened)
	}

	m.Update()
	if m.Value(media.SensorAccelerometer) != (media.Vec3f{}) {
		t.Error("expected disabled sensors not to be sampled")
	}

	m.SetEnabled(media.SensorAccelerometer, true)
	m.SetEnabled(media.SensorGyroscope, true)
	m.Update()
	if !s.enabled || m.IsEnabled(media.SensorGyroscope) {
		t.Error("expected only the available sensor to be enabled")
	}
	if m.Value(media.SensorAccelerometer).Z != 9.8 {
		t.Errorf("expected 9.8, got %v", m.Value(media.SensorAccelerometer))
	}

	m.Close()
	if s.closed != 1 || m.IsAvailable(media.SensorAccelerometer) {
		t.Error("expected the sensor to be closed")
	}
}

func TestSensorManagerNilBackend(t *testing.T) {
	m := media.NewSensorManager(nil)
	m.SetEnabled(media.SensorGravity, true)
	m.Update()
	m.Close()

	if m.IsEnabled(media.SensorGravity) {
		t.Error("expected no sensors")
	}
}

func TestDeviceNames(t *testing.T) {
	if media.JoystickPovY.String() != "PovY" || media.JoystickAxis(99).String() != "?" {
		t.Error("unexpected joystick axis names")
	}
	if media.SensorOrientation.String() != "Orientation" || media.SensorCount.String() != "?" {
		t.Error("unexpected sensor names")
	}
	if media.TriangleFan.String() != "TriangleFan" {
		t.Error("unexpected primitive name")
	}
}

func TestLoggerRedirect(t *testing.T) {
	var buf bytes.Buffer
	media.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer media.SetLogger(nil)

	wc := media.NewWindowContext(newFakePlatform())
	wc.CreateWindow(media.WithFullscreen(true))
	wc.CreateWindow(media.WithFullscreen(true))

	if !strings.Contains(buf.String(), "fullscreen") {
		t.Errorf("expected a fullscreen warning, got %q", buf.String())
	}
}
