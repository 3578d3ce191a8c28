package media_test

import (
	"testing"

	"github.com/go-theft-auto/media"
)

func TestInputStateKeys(t *testing.T) {
	s := media.NewInputState()

	s.HandleEvent(media.EventKeyPressed{KeyEvent: media.KeyEvent{Code: media.KeyW, Shift: true}})
	if !s.KeyDown(media.KeyW) || !s.KeyPressed(media.KeyW) || !s.ModShift {
		t.Fatal("expected W pressed with shift")
	}

	s.Reset()
	if s.KeyPressed(media.KeyW) || !s.KeyDown(media.KeyW) {
		t.Error("expected W held but not newly pressed after Reset")
	}

	s.HandleEvent(media.EventKeyReleased{KeyEvent: media.KeyEvent{Code: media.KeyW}})
	if s.KeyDown(media.KeyW) || !s.KeyReleased(media.KeyW) || s.ModShift {
		t.Error("expected W released without shift")
	}
}

func TestInputStateMouse(t *testing.T) {
	s := media.NewInputState()

	s.HandleEvent(media.EventMouseButtonPressed{Button: media.MouseButtonRight, Position: media.Vec2i{X: 4, Y: 9}})
	s.HandleEvent(media.EventMouseWheelScrolled{Wheel: media.MouseWheelHorizontal, Delta: 2})
	s.HandleEvent(media.EventMouseWheelScrolled{Wheel: media.MouseWheelVertical, Delta: -1})

	if !s.MouseClicked(media.MouseButtonRight) || s.MouseX != 4 || s.MouseY != 9 {
		t.Errorf("expected a right click at (4, 9), got (%v, %v)", s.MouseX, s.MouseY)
	}
	if s.MouseWheelX != 2 || s.MouseWheelY != -1 {
		t.Errorf("expected wheel (2, -1), got (%v, %v)", s.MouseWheelX, s.MouseWheelY)
	}
	if s.MouseDown(media.MouseButtonCount) {
		t.Error("expected out of range buttons to read as up")
	}
}

func TestInputStateFocusLostReleases(t *testing.T) {
	s := media.NewInputState()
	s.HandleEvent(media.EventKeyPressed{KeyEvent: media.KeyEvent{Code: media.KeySpace}})
	s.HandleEvent(media.EventMouseButtonPressed{Button: media.MouseButtonLeft})

	s.HandleEvent(media.EventFocusLost{})
	if s.Focused || s.KeyDown(media.KeySpace) || s.MouseDown(media.MouseButtonLeft) {
		t.Error("expected held input to be released on focus loss")
	}
	s.HandleEvent(media.EventFocusGained{})
	if !s.Focused {
		t.Error("expected focus")
	}
}

func TestInputStateTouchAndText(t *testing.T) {
	s := media.NewInputState()
	s.HandleEvent(media.EventTouchBegan{TouchEvent: media.TouchEvent{Finger: 3, Position: media.Vec2i{X: 7, Y: 8}}})
	s.HandleEvent(media.EventTextEntered{Unicode: 'x'})

	if pos, down := s.TouchDown(3); !down || pos != (media.Vec2i{X: 7, Y: 8}) {
		t.Errorf("expected finger 3 down at (7, 8), got %v %v", pos, down)
	}
	if !s.HasInputChars() || s.InputChars[0] != 'x' {
		t.Errorf("expected 'x' typed, got %q", s.InputChars)
	}
	s.ConsumeInputChars()
	if s.HasInputChars() {
		t.Error("expected typed characters to be consumed")
	}

	s.HandleEvent(media.EventTouchEnded{TouchEvent: media.TouchEvent{Finger: 3}})
	if _, down := s.TouchDown(3); down {
		t.Error("expected finger 3 up")
	}
}

func TestKeyRepeated(t *testing.T) {
	s := media.NewInputState()
	s.SetKey(media.KeyBackspace, true)
	if !s.KeyRepeated(media.KeyBackspace) {
		t.Fatal("expected the initial press to trigger")
	}

	s.Reset()
	s.UpdateKeyRepeat(0.2)
	if s.KeyRepeated(media.KeyBackspace) {
		t.Error("expected no repeat before the delay")
	}
	s.UpdateKeyRepeat(media.KeyRepeatDelay - 0.2 + 0.035)
	if !s.KeyRepeated(media.KeyBackspace) {
		t.Error("expected a repeat after the delay")
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  media.Key
		want string
	}{
		{media.KeyA, "A"},
		{media.KeyZ, "Z"},
		{media.KeyNum7, "7"},
		{media.KeyNumpad3, "Num3"},
		{media.KeyF12, "F12"},
		{media.KeyEscape, "Esc"},
		{media.KeyUnknown, "--"},
	}
	for _, tt := range tests {
		if got := media.KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%d): expected %q, got %q", tt.key, tt.want, got)
		}
	}
}
