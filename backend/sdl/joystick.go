package sdl

import (
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/media"
)

// joysticks maps media slots to SDL device indices. Axis values are
// scaled from [-32768, 32767] to [-100, 100], and the first hat drives
// the POV axes.
type joysticks struct {
	open [media.JoystickCount]*sdl2.Joystick
}

func (j *joysticks) IsConnected(index int) bool {
	if js := j.open[index]; js != nil {
		return js.Attached()
	}
	return index < sdl2.NumJoysticks()
}

func (j *joysticks) Open(index int) bool {
	if j.open[index] != nil {
		return true
	}
	js := sdl2.JoystickOpen(index)
	if js == nil {
		return false
	}
	j.open[index] = js
	return true
}

func (j *joysticks) Close(index int) {
	if js := j.open[index]; js != nil {
		js.Close()
		j.open[index] = nil
	}
}

func (j *joysticks) closeAll() {
	for i := range j.open {
		j.Close(i)
	}
}

func (j *joysticks) Capabilities(index int) media.JoystickCapabilities {
	js := j.open[index]
	if js == nil {
		return media.JoystickCapabilities{}
	}
	caps := media.JoystickCapabilities{ButtonCount: js.NumButtons()}
	for i := range min(js.NumAxes(), int(media.JoystickPovX)) {
		caps.Axes[i] = true
	}
	if js.NumHats() > 0 {
		caps.Axes[media.JoystickPovX] = true
		caps.Axes[media.JoystickPovY] = true
	}
	return caps
}

func (j *joysticks) Identification(index int) media.JoystickIdentification {
	js := j.open[index]
	if js == nil {
		return media.JoystickIdentification{}
	}
	return media.JoystickIdentification{
		Name:      js.Name(),
		VendorID:  uint(sdl2.JoystickGetDeviceVendor(index)),
		ProductID: uint(sdl2.JoystickGetDeviceProduct(index)),
	}
}

func (j *joysticks) Update(index int) media.JoystickState {
	js := j.open[index]
	if js == nil {
		return media.JoystickState{}
	}
	sdl2.JoystickUpdate()
	if !js.Attached() {
		return media.JoystickState{}
	}

	state := media.JoystickState{Connected: true}
	for i := range min(js.NumAxes(), int(media.JoystickPovX)) {
		state.Axes[i] = float32(js.Axis(i)) * 100 / 32767
		state.Axes[i] = max(state.Axes[i], -100)
	}
	if js.NumHats() > 0 {
		hat := js.Hat(0)
		if hat&sdl2.HAT_LEFT != 0 {
			state.Axes[media.JoystickPovX] = -100
		} else if hat&sdl2.HAT_RIGHT != 0 {
			state.Axes[media.JoystickPovX] = 100
		}
		if hat&sdl2.HAT_UP != 0 {
			state.Axes[media.JoystickPovY] = 100
		} else if hat&sdl2.HAT_DOWN != 0 {
			state.Axes[media.JoystickPovY] = -100
		}
	}
	for i := range min(js.NumButtons(), media.JoystickButtonCount) {
		state.Buttons[i] = js.Button(i) != 0
	}
	return state
}
