package x11

import "github.com/BurntSushi/xgb/xproto"

// IsBenign reports whether err is one of the race-condition errors safe
// to ignore: BadWindow on a window that raced to destruction, BadMatch
// from SetInputFocus on an unviewable window, BadDrawable from drawing to
// a window that is already gone, and BadAccess from a grab conflicting
// with another WM's leftover grabs.
func IsBenign(err error) bool {
	switch err.(type) {
	case xproto.WindowError, *xproto.WindowError:
		return true
	case xproto.MatchError, *xproto.MatchError:
		return true
	case xproto.DrawableError, *xproto.DrawableError:
		return true
	case xproto.AccessError, *xproto.AccessError:
		return true
	default:
		return false
	}
}

// IsAccessError reports whether err is a BadAccess, the specific error
// becomeWM treats as "another window manager is already running".
func IsAccessError(err error) bool {
	switch err.(type) {
	case xproto.AccessError, *xproto.AccessError:
		return true
	default:
		return false
	}
}
