package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/keymap"
)

const numLockKeysym xproto.Keysym = 0xff7f

// numLockMask is the modifier bit the server has Num_Lock bound to, 0 if
// none. Computed at startup and again on MappingNotify, mirroring dwm's
// updatenumlockmask.
var numLockMask uint16

// IgnoredModsMask returns the combination of Lock and Num_Lock that
// CLEANMASK strips from a KeyPress/ButtonPress state field before matching
// against the key/button tables.
func IgnoredModsMask() uint16 {
	return xproto.ModMaskLock | numLockMask
}

// CleanMask strips the lock modifiers from a raw event state field.
func CleanMask(state uint16) uint16 {
	return state &^ IgnoredModsMask() & (xproto.ModMaskShift | xproto.ModMaskControl |
		xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5)
}

// UpdateNumLockMask recomputes numLockMask from the server's current
// modifier mapping and keymap, matching dwm's updatenumlockmask().
func UpdateNumLockMask(km keymap.Keymap) error {
	reply, err := xproto.GetModifierMapping(X).Reply()
	if err != nil {
		return err
	}
	numLockMask = 0
	perMod := int(reply.KeycodesPerModifier)
	for mod := 0; mod < 8; mod++ {
		for i := 0; i < perMod; i++ {
			code := reply.Keycodes[mod*perMod+i]
			if code == 0 {
				continue
			}
			if km.Keysym(code) == numLockKeysym {
				numLockMask = 1 << uint(mod)
			}
		}
	}
	return nil
}

// GrabKey grabs a single keycode+modifier combination on the root window,
// also grabbing it combined with Lock/NumLock so the binding still fires
// regardless of lock-key state.
func GrabKey(keycode xproto.Keycode, modifiers uint16) error {
	for _, extra := range lockCombinations() {
		cookie := xproto.GrabKeyChecked(X, true, Root, modifiers|extra, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync)
		if err := cookie.Check(); err != nil {
			return err
		}
	}
	return nil
}

func lockCombinations() []uint16 {
	return []uint16{0, xproto.ModMaskLock, numLockMask, numLockMask | xproto.ModMaskLock}
}

// UngrabAllKeys releases every key grab on the root window, used before
// re-grabbing on MappingNotify.
func UngrabAllKeys() error {
	return xproto.UngrabKeyChecked(X, xproto.GrabAny, Root, xproto.ModMaskAny).Check()
}

// GrabPointer grabs the pointer for an interactive move/resize loop with
// the requested cursor shape.
func GrabPointer(cursor xproto.Cursor) error {
	_, err := xproto.GrabPointer(X, false, Root,
		uint16(xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
		xproto.GrabModeAsync, xproto.GrabModeAsync, Root, cursor, xproto.TimeCurrentTime).Reply()
	return err
}

// UngrabPointer releases a pointer grab started by GrabPointer.
func UngrabPointer() error {
	return xproto.UngrabPointerChecked(X, xproto.TimeCurrentTime).Check()
}
