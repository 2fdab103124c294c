package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Other special keys
	KeySpace
	KeyPause
	KeyPrintScreen
	KeyScrollLock
	KeyNumLock
	KeyCapsLock

	// Modifier keys. The unsided variants are reported by sources that
	// cannot tell left from right.
	KeyShift
	KeyShiftLeft
	KeyShiftRight
	KeyCtrl
	KeyCtrlLeft
	KeyCtrlRight
	KeyAlt
	KeyAltLeft
	KeyAltRight
	KeyAltGr
	KeyMeta
	KeyMetaLeft
	KeyMetaRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:        "None",
	KeyEscape:      "Escape",
	KeyEnter:       "Enter",
	KeyTab:         "Tab",
	KeyBackspace:   "Backspace",
	KeyDelete:      "Delete",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeySpace:       "Space",
	KeyPause:       "Pause",
	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyNumLock:     "NumLock",
	KeyCapsLock:    "CapsLock",
	KeyShift:       "Shift",
	KeyShiftLeft:   "ShiftLeft",
	KeyShiftRight:  "ShiftRight",
	KeyCtrl:        "Ctrl",
	KeyCtrlLeft:    "CtrlLeft",
	KeyCtrlRight:   "CtrlRight",
	KeyAlt:         "Alt",
	KeyAltLeft:     "AltLeft",
	KeyAltRight:    "AltRight",
	KeyAltGr:       "AltGr",
	KeyMeta:        "Meta",
	KeyMetaLeft:    "MetaLeft",
	KeyMetaRight:   "MetaRight",
	KeyRune:        "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsModifier returns true for shift, control, alt and meta keys in any
// of their sided variants.
func (k Key) IsModifier() bool {
	return k >= KeyShift && k <= KeyMetaRight
}

// Modifier returns the modifier bit this key contributes while held.
func (k Key) Modifier() Modifier {
	switch k {
	case KeyShift, KeyShiftLeft, KeyShiftRight:
		return ModShift
	case KeyCtrl, KeyCtrlLeft, KeyCtrlRight:
		return ModCtrl
	case KeyAlt, KeyAltLeft, KeyAltRight, KeyAltGr:
		return ModAlt
	case KeyMeta, KeyMetaLeft, KeyMetaRight:
		return ModMeta
	default:
		return ModNone
	}
}

// keyNameMap maps key names (lowercase, separators removed) to Key values.
// It covers the spellings used by the OS hooks and the terminal backend.
var keyNameMap = map[string]Key{
	"none":        KeyNone,
	"escape":      KeyEscape,
	"esc":         KeyEscape,
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"cr":          KeyEnter,
	"tab":         KeyTab,
	"backspace":   KeyBackspace,
	"bs":          KeyBackspace,
	"delete":      KeyDelete,
	"del":         KeyDelete,
	"insert":      KeyInsert,
	"ins":         KeyInsert,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPageUp,
	"pgup":        KeyPageUp,
	"pagedown":    KeyPageDown,
	"pgdn":        KeyPageDown,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"f1":          KeyF1,
	"f2":          KeyF2,
	"f3":          KeyF3,
	"f4":          KeyF4,
	"f5":          KeyF5,
	"f6":          KeyF6,
	"f7":          KeyF7,
	"f8":          KeyF8,
	"f9":          KeyF9,
	"f10":         KeyF10,
	"f11":         KeyF11,
	"f12":         KeyF12,
	"space":       KeySpace,
	"pause":       KeyPause,
	"printscreen": KeyPrintScreen,
	"scrolllock":  KeyScrollLock,
	"numlock":     KeyNumLock,
	"capslock":    KeyCapsLock,

	"shift":      KeyShift,
	"leftshift":  KeyShiftLeft,
	"lshift":     KeyShiftLeft,
	"shiftl":     KeyShiftLeft,
	"shiftleft":  KeyShiftLeft,
	"rightshift": KeyShiftRight,
	"rshift":     KeyShiftRight,
	"shiftr":     KeyShiftRight,
	"shiftright": KeyShiftRight,

	"ctrl":         KeyCtrl,
	"control":      KeyCtrl,
	"leftctrl":     KeyCtrlLeft,
	"lctrl":        KeyCtrlLeft,
	"ctrll":        KeyCtrlLeft,
	"ctrlleft":     KeyCtrlLeft,
	"leftcontrol":  KeyCtrlLeft,
	"controlleft":  KeyCtrlLeft,
	"rightctrl":    KeyCtrlRight,
	"rctrl":        KeyCtrlRight,
	"ctrlr":        KeyCtrlRight,
	"ctrlright":    KeyCtrlRight,
	"rightcontrol": KeyCtrlRight,
	"controlright": KeyCtrlRight,

	"alt":      KeyAlt,
	"option":   KeyAlt,
	"leftalt":  KeyAltLeft,
	"lalt":     KeyAltLeft,
	"altl":     KeyAltLeft,
	"altleft":  KeyAltLeft,
	"rightalt": KeyAltRight,
	"ralt":     KeyAltRight,
	"altr":     KeyAltRight,
	"altright": KeyAltRight,
	"altgr":    KeyAltGr,

	"meta":      KeyMeta,
	"cmd":       KeyMeta,
	"command":   KeyMeta,
	"win":       KeyMeta,
	"windows":   KeyMeta,
	"super":     KeyMeta,
	"leftmeta":  KeyMetaLeft,
	"lcmd":      KeyMetaLeft,
	"leftwin":   KeyMetaLeft,
	"rightmeta": KeyMetaRight,
	"rcmd":      KeyMetaRight,
	"rightwin":  KeyMetaRight,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Spaces, underscores and hyphens inside the name are ignored, so
// "left shift", "Left_Shift" and "left-shift" are the same key.
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	if k, ok := keyNameMap[foldName(name)]; ok {
		return k
	}
	return KeyNone
}

func foldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name)
}
