// Package keymap loads the X keyboard mapping and resolves symbolic key
// names to keysyms/keycodes. It is grounded in driusan-dewm's startup
// sequence (a [256][]xproto.Keysym built from GetKeyboardMapping) and in
// marwind's keysym.Keymap type referenced from its wm package
// (km, err := keysym.LoadKeyMapping(x11.X); wm.keymap = *km).
package keymap

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Keymap indexes the keysyms bound to each keycode (index = keycode).
type Keymap map[xproto.Keycode][]xproto.Keysym

// LoadKeyMapping queries the server's keycode range and keyboard mapping,
// building a Keymap indexable by keycode the way marwind's
// keysym.LoadKeyMapping does.
func LoadKeyMapping(conn *xgb.Conn) (Keymap, error) {
	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) < 1 {
		return nil, fmt.Errorf("keymap: no setup info")
	}
	lo, hi := setup.MinKeycode, setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(conn, lo, byte(int(hi)-int(lo)+1)).Reply()
	if err != nil {
		return nil, fmt.Errorf("keymap: GetKeyboardMapping failed: %w", err)
	}
	perKeycode := int(reply.KeysymsPerKeycode)
	km := make(Keymap, int(hi-lo)+1)
	for i := 0; int(lo)+i <= int(hi); i++ {
		code := xproto.Keycode(int(lo) + i)
		start := i * perKeycode
		end := start + perKeycode
		if end > len(reply.Keysyms) {
			end = len(reply.Keysyms)
		}
		syms := append([]xproto.Keysym(nil), reply.Keysyms[start:end]...)
		km[code] = syms
	}
	return km, nil
}

// Keysym looks up the primary (group 0, no-shift) keysym bound to code.
func (k Keymap) Keysym(code xproto.Keycode) xproto.Keysym {
	syms := k[code]
	if len(syms) == 0 {
		return 0
	}
	return syms[0]
}

// Keycodes returns every keycode that has sym as one of its bound keysyms,
// used when grabbing a key configured by symbolic name: a single keysym may
// be reachable via more than one physical keycode (e.g. a numpad alias).
func (k Keymap) Keycodes(sym xproto.Keysym) []xproto.Keycode {
	var codes []xproto.Keycode
	for code, syms := range k {
		for _, s := range syms {
			if s == sym {
				codes = append(codes, code)
				break
			}
		}
	}
	return codes
}
