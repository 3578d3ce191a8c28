package sdl

import (
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/media"
)

var keyTable = map[sdl2.Keycode]media.Key{
	sdl2.K_ESCAPE:       media.KeyEscape,
	sdl2.K_LCTRL:        media.KeyLControl,
	sdl2.K_LSHIFT:       media.KeyLShift,
	sdl2.K_LALT:         media.KeyLAlt,
	sdl2.K_LGUI:         media.KeyLSystem,
	sdl2.K_RCTRL:        media.KeyRControl,
	sdl2.K_RSHIFT:       media.KeyRShift,
	sdl2.K_RALT:         media.KeyRAlt,
	sdl2.K_RGUI:         media.KeyRSystem,
	sdl2.K_APPLICATION:  media.KeyMenu,
	sdl2.K_LEFTBRACKET:  media.KeyLBracket,
	sdl2.K_RIGHTBRACKET: media.KeyRBracket,
	sdl2.K_SEMICOLON:    media.KeySemicolon,
	sdl2.K_COMMA:        media.KeyComma,
	sdl2.K_PERIOD:       media.KeyPeriod,
	sdl2.K_QUOTE:        media.KeyApostrophe,
	sdl2.K_SLASH:        media.KeySlash,
	sdl2.K_BACKSLASH:    media.KeyBackslash,
	sdl2.K_BACKQUOTE:    media.KeyGrave,
	sdl2.K_EQUALS:       media.KeyEqual,
	sdl2.K_MINUS:        media.KeyHyphen,
	sdl2.K_SPACE:        media.KeySpace,
	sdl2.K_RETURN:       media.KeyEnter,
	sdl2.K_BACKSPACE:    media.KeyBackspace,
	sdl2.K_TAB:          media.KeyTab,
	sdl2.K_PAGEUP:       media.KeyPageUp,
	sdl2.K_PAGEDOWN:     media.KeyPageDown,
	sdl2.K_END:          media.KeyEnd,
	sdl2.K_HOME:         media.KeyHome,
	sdl2.K_INSERT:       media.KeyInsert,
	sdl2.K_DELETE:       media.KeyDelete,
	sdl2.K_KP_PLUS:      media.KeyAdd,
	sdl2.K_KP_MINUS:     media.KeySubtract,
	sdl2.K_KP_MULTIPLY:  media.KeyMultiply,
	sdl2.K_KP_DIVIDE:    media.KeyDivide,
	sdl2.K_KP_ENTER:     media.KeyNumpadEnter,
	sdl2.K_KP_PERIOD:    media.KeyNumpadPeriod,
	sdl2.K_LEFT:         media.KeyLeft,
	sdl2.K_RIGHT:        media.KeyRight,
	sdl2.K_UP:           media.KeyUp,
	sdl2.K_DOWN:         media.KeyDown,
	sdl2.K_PAUSE:        media.KeyPause,
	sdl2.K_CAPSLOCK:     media.KeyCapsLock,
	sdl2.K_PRINTSCREEN:  media.KeyPrintScreen,
	sdl2.K_SCROLLLOCK:   media.KeyScrollLock,
	sdl2.K_NUMLOCKCLEAR: media.KeyNumLock,
}

// translateKey maps an SDL keycode to a media key. SDL scancodes are USB
// HID usage ids already and pass through unchanged.
func translateKey(sym sdl2.Keycode) media.Key {
	switch {
	case sym >= sdl2.K_a && sym <= sdl2.K_z:
		return media.KeyA + media.Key(sym-sdl2.K_a)
	case sym >= sdl2.K_0 && sym <= sdl2.K_9:
		return media.KeyNum0 + media.Key(sym-sdl2.K_0)
	case sym >= sdl2.K_KP_1 && sym <= sdl2.K_KP_9:
		return media.KeyNumpad1 + media.Key(sym-sdl2.K_KP_1)
	case sym == sdl2.K_KP_0:
		return media.KeyNumpad0
	case sym >= sdl2.K_F1 && sym <= sdl2.K_F12:
		return media.KeyF1 + media.Key(sym-sdl2.K_F1)
	case sym >= sdl2.K_F13 && sym <= sdl2.K_F15:
		return media.KeyF13 + media.Key(sym-sdl2.K_F13)
	}
	if k, ok := keyTable[sym]; ok {
		return k
	}
	return media.KeyUnknown
}

func translateScancode(sc sdl2.Scancode) media.Scancode {
	if sc > sdl2.SCANCODE_RGUI {
		return media.ScanUnknown
	}
	return media.Scancode(sc)
}

func translateButton(button uint8) (media.MouseButton, bool) {
	switch button {
	case sdl2.BUTTON_LEFT:
		return media.MouseButtonLeft, true
	case sdl2.BUTTON_RIGHT:
		return media.MouseButtonRight, true
	case sdl2.BUTTON_MIDDLE:
		return media.MouseButtonMiddle, true
	case sdl2.BUTTON_X1:
		return media.MouseButtonExtra1, true
	case sdl2.BUTTON_X2:
		return media.MouseButtonExtra2, true
	default:
		return 0, false
	}
}
