package keymap

import "github.com/BurntSushi/xgb/xproto"

// Named X keysym values (X11/keysymdef.h), the subset a dwm-style config
// table actually binds (letters, digits, Return/Tab/Escape/space, the
// arrow/function keys). Kept as a lookup table rather than the full
// keysymdef set because the config layer only ever needs to name a key by
// its dwm-config.h symbol (XK_Return, XK_Tab, ...).
var byName = buildByName()

func buildByName() map[string]xproto.Keysym {
	m := map[string]xproto.Keysym{
		"Return": 0xff0d, "Tab": 0xff09, "Escape": 0xff1b, "space": 0x0020,
		"BackSpace": 0xff08, "Delete": 0xffff,
		"Left": 0xff51, "Up": 0xff52, "Right": 0xff53, "Down": 0xff54,
		"Home": 0xff50, "End": 0xff57, "Page_Up": 0xff55, "Page_Down": 0xff56,
		"comma": 0x002c, "period": 0x002e, "minus": 0x002d, "equal": 0x003d,
	}
	for c := byte('a'); c <= 'z'; c++ {
		m[string(c)] = xproto.Keysym(c)
	}
	for c := byte('0'); c <= '9'; c++ {
		m[string(c)] = xproto.Keysym(c)
	}
	for i := 1; i <= 12; i++ {
		m[fname(i)] = xproto.Keysym(0xffbe + i - 1)
	}
	return m
}

func fname(i int) string {
	digits := [...]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	return "F" + digits[i-1]
}

// Lookup resolves a symbolic key name (e.g. "Return", "j", "F1") to its X
// keysym, as used by config.KeySpec entries.
func Lookup(name string) (xproto.Keysym, bool) {
	s, ok := byName[name]
	return s, ok
}
