package x11

import "github.com/BurntSushi/xgb/xproto"

// NewWindowId allocates an X resource id for a window the WM will create
// itself (bar windows).
func NewWindowId() (xproto.Window, error) {
	return xproto.NewWindowId(X)
}

// CreateSimpleWindow creates an InputOutput window directly parented to
// root, override-redirect, selecting Exposure and ButtonPress events —
// used for bar windows. No background pixel is set.
func CreateSimpleWindow(win xproto.Window, x, y int32, w, h uint16) error {
	mask := uint32(xproto.CwOverrideRedirect | xproto.CwEventMask)
	values := []uint32{
		1,
		uint32(xproto.EventMaskExposure | xproto.EventMaskButtonPress),
	}
	return xproto.CreateWindowChecked(X, Screen.RootDepth, win, Root,
		int16(x), int16(y), w, h, 0, xproto.WindowClassInputOutput, Screen.RootVisual,
		mask, values).Check()
}

// CreateParentWindow creates a reparenting shell window: not
// override-redirect, background and border set to borderPixel, selecting
// substructure-redirect and substructure-notify events only.
func CreateParentWindow(x, y int32, w, h uint16, borderPixel uint32) (xproto.Window, error) {
	id, err := xproto.NewWindowId(X)
	if err != nil {
		return 0, err
	}
	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwOverrideRedirect | xproto.CwEventMask)
	values := []uint32{
		borderPixel,
		borderPixel,
		0,
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify),
	}
	err = xproto.CreateWindowChecked(X, Screen.RootDepth, id, Root,
		int16(x), int16(y), w, h, 0, xproto.WindowClassInputOutput, Screen.RootVisual,
		mask, values).Check()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ReparentWindow reparents win under parent at (0,0).
func ReparentWindow(win, parent xproto.Window) error {
	return xproto.ReparentWindowChecked(X, win, parent, 0, 0).Check()
}
