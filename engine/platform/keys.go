package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/glpong/engine/core"
)

// translateKey maps a glfw key to the engine key code. Keys without an engine
// code map to KEYS_MAX_KEYS.
func translateKey(key glfw.Key) core.KeyCode {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return core.KEY_A + core.KeyCode(key-glfw.KeyA)
	case key >= glfw.KeyF1 && key <= glfw.KeyF24:
		return core.KEY_F1 + core.KeyCode(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return core.KEY_NUMPAD0 + core.KeyCode(key-glfw.KeyKP0)
	}

	switch key {
	case glfw.KeySpace:
		return core.KEY_SPACE
	case glfw.KeyEscape:
		return core.KEY_ESCAPE
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return core.KEY_ENTER
	case glfw.KeyTab:
		return core.KEY_TAB
	case glfw.KeyBackspace:
		return core.KEY_BACKSPACE
	case glfw.KeyInsert:
		return core.KEY_INSERT
	case glfw.KeyDelete:
		return core.KEY_DELETE
	case glfw.KeyHome:
		return core.KEY_HOME
	case glfw.KeyEnd:
		return core.KEY_END
	case glfw.KeyPageUp:
		return core.KEY_PRIOR
	case glfw.KeyPageDown:
		return core.KEY_NEXT
	case glfw.KeyLeft:
		return core.KEY_LEFT
	case glfw.KeyRight:
		return core.KEY_RIGHT
	case glfw.KeyUp:
		return core.KEY_UP
	case glfw.KeyDown:
		return core.KEY_DOWN
	case glfw.KeyLeftShift:
		return core.KEY_LSHIFT
	case glfw.KeyRightShift:
		return core.KEY_RSHIFT
	case glfw.KeyLeftControl:
		return core.KEY_LCONTROL
	case glfw.KeyRightControl:
		return core.KEY_RCONTROL
	case glfw.KeyLeftAlt:
		return core.KEY_LMENU
	case glfw.KeyRightAlt:
		return core.KEY_RMENU
	case glfw.KeyPause:
		return core.KEY_PAUSE
	case glfw.KeyCapsLock:
		return core.KEY_CAPITAL
	case glfw.KeyNumLock:
		return core.KEY_NUMLOCK
	case glfw.KeyScrollLock:
		return core.KEY_SCROLL
	case glfw.KeySemicolon:
		return core.KEY_SEMICOLON
	case glfw.KeyEqual:
		return core.KEY_PLUS
	case glfw.KeyComma:
		return core.KEY_COMMA
	case glfw.KeyMinus:
		return core.KEY_MINUS
	case glfw.KeyPeriod:
		return core.KEY_PERIOD
	case glfw.KeySlash:
		return core.KEY_SLASH
	case glfw.KeyGraveAccent:
		return core.KEY_GRAVE
	case glfw.KeyKPAdd:
		return core.KEY_ADD
	case glfw.KeyKPSubtract:
		return core.KEY_SUBTRACT
	case glfw.KeyKPMultiply:
		return core.KEY_MULTIPLY
	case glfw.KeyKPDivide:
		return core.KEY_DIVIDE
	case glfw.KeyKPDecimal:
		return core.KEY_DECIMAL
	case glfw.KeyKPEqual:
		return core.KEY_NUMPAD_EQUAL
	}
	return core.KEYS_MAX_KEYS
}
