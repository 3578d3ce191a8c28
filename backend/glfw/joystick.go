package glfw

import (
	"strconv"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/media"
)

// joysticks reads GLFW joysticks. Axis values are scaled from [-1, 1] to
// [-100, 100], and the first hat drives the POV axes.
type joysticks struct{}

func joystick(index int) glfw3.Joystick { return glfw3.Joystick1 + glfw3.Joystick(index) }

func (joysticks) IsConnected(index int) bool { return joystick(index).Present() }
func (joysticks) Open(index int) bool        { return joystick(index).Present() }
func (joysticks) Close(index int)            {}

func (joysticks) Capabilities(index int) media.JoystickCapabilities {
	js := joystick(index)
	caps := media.JoystickCapabilities{ButtonCount: len(js.GetButtons())}
	for i := range min(len(js.GetAxes()), int(media.JoystickPovX)) {
		caps.Axes[i] = true
	}
	if len(js.GetHats()) > 0 {
		caps.Axes[media.JoystickPovX] = true
		caps.Axes[media.JoystickPovY] = true
	}
	return caps
}

func (joysticks) Identification(index int) media.JoystickIdentification {
	js := joystick(index)
	ident := media.JoystickIdentification{Name: js.GetName()}
	ident.VendorID, ident.ProductID = parseGUID(js.GetGUID())
	return ident
}

// parseGUID extracts the USB vendor and product ids from an SDL style
// GUID, where both are little endian 16 bit words at bytes 4 and 8.
func parseGUID(guid string) (vendor, product uint) {
	if len(guid) < 20 {
		return 0, 0
	}
	word := func(s string) uint {
		v, err := strconv.ParseUint(s[2:4]+s[0:2], 16, 16)
		if err != nil {
			return 0
		}
		return uint(v)
	}
	return word(guid[8:12]), word(guid[16:20])
}

func (joysticks) Update(index int) media.JoystickState {
	js := joystick(index)
	if !js.Present() {
		return media.JoystickState{}
	}
	state := media.JoystickState{Connected: true}
	axes := js.GetAxes()
	for i := range min(len(axes), int(media.JoystickPovX)) {
		state.Axes[i] = axes[i] * 100
	}
	if hats := js.GetHats(); len(hats) > 0 {
		hat := hats[0]
		if hat&glfw3.HatLeft != 0 {
			state.Axes[media.JoystickPovX] = -100
		} else if hat&glfw3.HatRight != 0 {
			state.Axes[media.JoystickPovX] = 100
		}
		if hat&glfw3.HatUp != 0 {
			state.Axes[media.JoystickPovY] = 100
		} else if hat&glfw3.HatDown != 0 {
			state.Axes[media.JoystickPovY] = -100
		}
	}
	buttons := js.GetButtons()
	for i := range min(len(buttons), media.JoystickButtonCount) {
		state.Buttons[i] = buttons[i] == glfw3.Press
	}
	return state
}
