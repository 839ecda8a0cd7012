package menubar

import "unicode"

// Code identifies a navigation key.
type Code int

const (
	KeyNone Code = iota
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyChar
)

var codeNames = map[Code]string{
	KeyRight:  "right",
	KeyLeft:   "left",
	KeyDown:   "down",
	KeyUp:     "up",
	KeyHome:   "home",
	KeyEnd:    "end",
	KeyEnter:  "enter",
	KeySpace:  "space",
	KeyEscape: "esc",
	KeyTab:    "tab",
}

// Key is a keyboard event delivered to the engine.
type Key struct {
	Code  Code
	Rune  rune
	Shift bool
	Alt   bool
	Ctrl  bool
	Meta  bool
}

// Press builds a key event for a navigation code.
func Press(code Code) Key {
	return Key{Code: code}
}

// Char builds a printable character event.
func Char(r rune) Key {
	return Key{Code: KeyChar, Rune: r, Shift: unicode.IsUpper(r)}
}

func (k Key) String() string {
	if k.Code == KeyChar {
		return string(k.Rune)
	}
	name, ok := codeNames[k.Code]
	if !ok {
		return "none"
	}
	if k.Shift {
		return "shift+" + name
	}
	return name
}

// printable reports whether the key may feed type-ahead: one printable,
// non-space character with no modifier other than shift.
func (k Key) printable() bool {
	if k.Code != KeyChar || k.Alt || k.Ctrl || k.Meta {
		return false
	}
	return unicode.IsPrint(k.Rune) && !unicode.IsSpace(k.Rune)
}
