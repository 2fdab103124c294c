package hook

import "github.com/dshills/gridmouse/internal/input/key"

// Virtual key codes reported in hook events. They follow the physical
// US layout, so grid combos stay on the same keys whatever the active
// keyboard layout is.
const (
	vcEscape       = 0x0001
	vcBackspace    = 0x000E
	vcTab          = 0x000F
	vcEnter        = 0x001C
	vcCtrlLeft     = 0x001D
	vcShiftLeft    = 0x002A
	vcShiftRight   = 0x0036
	vcAltLeft      = 0x0038
	vcSpace        = 0x0039
	vcCapsLock     = 0x003A
	vcNumLock      = 0x0045
	vcScrollLock   = 0x0046
	vcCtrlRight    = 0x0E1D
	vcAltRight     = 0x0E38
	vcMetaLeft     = 0x0E5B
	vcMetaRight    = 0x0E5C
	vcPrintScreen  = 0x0E37
	vcPause        = 0x0E45
	vcHome         = 0x0E47
	vcPageUp       = 0x0E49
	vcEnd          = 0x0E4F
	vcPageDown     = 0x0E51
	vcInsert       = 0x0E52
	vcDelete       = 0x0E53
	vcUp           = 0xE048
	vcLeft         = 0xE04B
	vcRight        = 0xE04D
	vcDown         = 0xE050
	vcF1           = 0x003B
	vcF11          = 0x0057
	vcF12          = 0x0058
	functionKeys10 = 10
)

var specialKeys = map[uint16]key.Key{
	vcEscape:      key.KeyEscape,
	vcBackspace:   key.KeyBackspace,
	vcTab:         key.KeyTab,
	vcEnter:       key.KeyEnter,
	vcCtrlLeft:    key.KeyCtrlLeft,
	vcCtrlRight:   key.KeyCtrlRight,
	vcShiftLeft:   key.KeyShiftLeft,
	vcShiftRight:  key.KeyShiftRight,
	vcAltLeft:     key.KeyAltLeft,
	vcAltRight:    key.KeyAltRight,
	vcMetaLeft:    key.KeyMetaLeft,
	vcMetaRight:   key.KeyMetaRight,
	vcSpace:       key.KeySpace,
	vcCapsLock:    key.KeyCapsLock,
	vcNumLock:     key.KeyNumLock,
	vcScrollLock:  key.KeyScrollLock,
	vcPrintScreen: key.KeyPrintScreen,
	vcPause:       key.KeyPause,
	vcHome:        key.KeyHome,
	vcEnd:         key.KeyEnd,
	vcPageUp:      key.KeyPageUp,
	vcPageDown:    key.KeyPageDown,
	vcInsert:      key.KeyInsert,
	vcDelete:      key.KeyDelete,
	vcUp:          key.KeyUp,
	vcDown:        key.KeyDown,
	vcLeft:        key.KeyLeft,
	vcRight:       key.KeyRight,
	vcF11:         key.KeyF11,
	vcF12:         key.KeyF12,
}

// printable maps the character keys to their unshifted US characters.
var printable = map[uint16]rune{
	0x0029: '`', 0x0002: '1', 0x0003: '2', 0x0004: '3', 0x0005: '4',
	0x0006: '5', 0x0007: '6', 0x0008: '7', 0x0009: '8', 0x000A: '9',
	0x000B: '0', 0x000C: '-', 0x000D: '=',
	0x0010: 'Q', 0x0011: 'W', 0x0012: 'E', 0x0013: 'R', 0x0014: 'T',
	0x0015: 'Y', 0x0016: 'U', 0x0017: 'I', 0x0018: 'O', 0x0019: 'P',
	0x001A: '[', 0x001B: ']', 0x002B: '\\',
	0x001E: 'A', 0x001F: 'S', 0x0020: 'D', 0x0021: 'F', 0x0022: 'G',
	0x0023: 'H', 0x0024: 'J', 0x0025: 'K', 0x0026: 'L', 0x0027: ';',
	0x0028: '\'',
	0x002C: 'Z', 0x002D: 'X', 0x002E: 'C', 0x002F: 'V', 0x0030: 'B',
	0x0031: 'N', 0x0032: 'M', 0x0033: ',', 0x0034: '.', 0x0035: '/',
}

// lookup resolves a virtual key code.
func lookup(code uint16) (key.Key, rune, bool) {
	if r, ok := printable[code]; ok {
		return key.KeyRune, r, true
	}
	if k, ok := specialKeys[code]; ok {
		return k, 0, true
	}
	if code >= vcF1 && code < vcF1+functionKeys10 {
		return key.KeyF1 + key.Key(code-vcF1), 0, true
	}
	return key.KeyNone, 0, false
}
