package glfw

import (
	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/media"
)

type keyMapping struct {
	key  media.Key
	scan media.Scancode
}

// keyTable covers the keys outside the contiguous letter, digit, keypad
// and function key ranges. Scancodes assume a US layout since GLFW only
// reports platform specific ones.
var keyTable = map[glfw3.Key]keyMapping{
	glfw3.KeyEscape:       {media.KeyEscape, media.ScanEscape},
	glfw3.KeyLeftControl:  {media.KeyLControl, media.ScanLControl},
	glfw3.KeyLeftShift:    {media.KeyLShift, media.ScanLShift},
	glfw3.KeyLeftAlt:      {media.KeyLAlt, media.ScanLAlt},
	glfw3.KeyLeftSuper:    {media.KeyLSystem, media.ScanLSystem},
	glfw3.KeyRightControl: {media.KeyRControl, media.ScanRControl},
	glfw3.KeyRightShift:   {media.KeyRShift, media.ScanRShift},
	glfw3.KeyRightAlt:     {media.KeyRAlt, media.ScanRAlt},
	glfw3.KeyRightSuper:   {media.KeyRSystem, media.ScanRSystem},
	glfw3.KeyMenu:         {media.KeyMenu, media.ScanApplication},
	glfw3.KeyLeftBracket:  {media.KeyLBracket, media.ScanLBracket},
	glfw3.KeyRightBracket: {media.KeyRBracket, media.ScanRBracket},
	glfw3.KeySemicolon:    {media.KeySemicolon, media.ScanSemicolon},
	glfw3.KeyComma:        {media.KeyComma, media.ScanComma},
	glfw3.KeyPeriod:       {media.KeyPeriod, media.ScanPeriod},
	glfw3.KeyApostrophe:   {media.KeyApostrophe, media.ScanApostrophe},
	glfw3.KeySlash:        {media.KeySlash, media.ScanSlash},
	glfw3.KeyBackslash:    {media.KeyBackslash, media.ScanBackslash},
	glfw3.KeyGraveAccent:  {media.KeyGrave, media.ScanGrave},
	glfw3.KeyEqual:        {media.KeyEqual, media.ScanEqual},
	glfw3.KeyMinus:        {media.KeyHyphen, media.ScanHyphen},
	glfw3.KeySpace:        {media.KeySpace, media.ScanSpace},
	glfw3.KeyEnter:        {media.KeyEnter, media.ScanEnter},
	glfw3.KeyBackspace:    {media.KeyBackspace, media.ScanBackspace},
	glfw3.KeyTab:          {media.KeyTab, media.ScanTab},
	glfw3.KeyPageUp:       {media.KeyPageUp, media.ScanPageUp},
	glfw3.KeyPageDown:     {media.KeyPageDown, media.ScanPageDown},
	glfw3.KeyEnd:          {media.KeyEnd, media.ScanEnd},
	glfw3.KeyHome:         {media.KeyHome, media.ScanHome},
	glfw3.KeyInsert:       {media.KeyInsert, media.ScanInsert},
	glfw3.KeyDelete:       {media.KeyDelete, media.ScanDelete},
	glfw3.KeyKPAdd:        {media.KeyAdd, media.ScanNumpadPlus},
	glfw3.KeyKPSubtract:   {media.KeySubtract, media.ScanNumpadMinus},
	glfw3.KeyKPMultiply:   {media.KeyMultiply, media.ScanNumpadMultiply},
	glfw3.KeyKPDivide:     {media.KeyDivide, media.ScanNumpadDivide},
	glfw3.KeyKPEnter:      {media.KeyNumpadEnter, media.ScanNumpadEnter},
	glfw3.KeyKPDecimal:    {media.KeyNumpadPeriod, media.ScanNumpadPeriod},
	glfw3.KeyKPEqual:      {media.KeyUnknown, media.ScanNumpadEqual},
	glfw3.KeyLeft:         {media.KeyLeft, media.ScanLeft},
	glfw3.KeyRight:        {media.KeyRight, media.ScanRight},
	glfw3.KeyUp:           {media.KeyUp, media.ScanUp},
	glfw3.KeyDown:         {media.KeyDown, media.ScanDown},
	glfw3.KeyPause:        {media.KeyPause, media.ScanPause},
	glfw3.KeyCapsLock:     {media.KeyCapsLock, media.ScanCapsLock},
	glfw3.KeyPrintScreen:  {media.KeyPrintScreen, media.ScanPrintScreen},
	glfw3.KeyScrollLock:   {media.KeyScrollLock, media.ScanScrollLock},
	glfw3.KeyNumLock:      {media.KeyNumLock, media.ScanNumLock},
}

// translateKey maps a GLFW key to a media key and its US layout scancode.
func translateKey(key glfw3.Key) (media.Key, media.Scancode) {
	switch {
	case key >= glfw3.KeyA && key <= glfw3.KeyZ:
		off := int(key - glfw3.KeyA)
		return media.KeyA + media.Key(off), media.ScanA + media.Scancode(off)
	case key >= glfw3.Key0 && key <= glfw3.Key9:
		off := int(key - glfw3.Key0)
		return media.KeyNum0 + media.Key(off), digitScancode(media.ScanNum1, media.ScanNum0, off)
	case key >= glfw3.KeyKP0 && key <= glfw3.KeyKP9:
		off := int(key - glfw3.KeyKP0)
		return media.KeyNumpad0 + media.Key(off), digitScancode(media.ScanNumpad1, media.ScanNumpad0, off)
	case key >= glfw3.KeyF1 && key <= glfw3.KeyF12:
		off := int(key - glfw3.KeyF1)
		return media.KeyF1 + media.Key(off), media.ScanF1 + media.Scancode(off)
	case key >= glfw3.KeyF13 && key <= glfw3.KeyF15:
		off := int(key - glfw3.KeyF13)
		return media.KeyF13 + media.Key(off), media.ScanF13 + media.Scancode(off)
	}
	if m, ok := keyTable[key]; ok {
		return m.key, m.scan
	}
	return media.KeyUnknown, media.ScanUnknown
}

// digitScancode handles the HID order of digit rows: 1 through 9, then 0.
func digitScancode(one, zero media.Scancode, digit int) media.Scancode {
	if digit == 0 {
		return zero
	}
	return one + media.Scancode(digit-1)
}

func translateButton(button glfw3.MouseButton) (media.MouseButton, bool) {
	switch button {
	case glfw3.MouseButtonLeft:
		return media.MouseButtonLeft, true
	case glfw3.MouseButtonRight:
		return media.MouseButtonRight, true
	case glfw3.MouseButtonMiddle:
		return media.MouseButtonMiddle, true
	case glfw3.MouseButton4:
		return media.MouseButtonExtra1, true
	case glfw3.MouseButton5:
		return media.MouseButtonExtra2, true
	default:
		return 0, false
	}
}
