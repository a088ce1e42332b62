package x11

import "github.com/BurntSushi/xgb/xproto"

// WindowAttrs is the subset of XGetWindowAttributes the core inspects.
type WindowAttrs struct {
	OverrideRedirect bool
	Viewable         bool
}

// GetWindowAttrs fetches the override-redirect and viewability state of
// win, used by MapRequest/scan.
func GetWindowAttrs(win xproto.Window) (WindowAttrs, error) {
	reply, err := xproto.GetWindowAttributes(X, win).Reply()
	if err != nil {
		return WindowAttrs{}, err
	}
	return WindowAttrs{
		OverrideRedirect: reply.OverrideRedirect,
		Viewable:         reply.MapState == xproto.MapStateViewable,
	}, nil
}

// Geometry is the subset of XGetGeometry/GetWindowAttributes geometry
// fields needed to seed a newly managed client.
type Geometry struct {
	X, Y int16
	W, H uint16
	BorderWidth uint16
}

// GetGeometry fetches win's current geometry.
func GetGeometry(win xproto.Window) (Geometry, error) {
	reply, err := xproto.GetGeometry(X, xproto.Drawable(win)).Reply()
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{X: reply.X, Y: reply.Y, W: reply.Width, H: reply.Height, BorderWidth: reply.BorderWidth}, nil
}

// QueryTreeChildren returns the root's current child window list, used by
// scan() at startup.
func QueryTreeChildren(root xproto.Window) ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(X, root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// MapWindow/UnmapWindow/DestroyWindow are thin wrappers kept here so wm
// handlers never import xproto directly for basic lifecycle requests.
func MapWindow(win xproto.Window) error     { return xproto.MapWindowChecked(X, win).Check() }
func UnmapWindow(win xproto.Window) error   { return xproto.UnmapWindowChecked(X, win).Check() }
func DestroyWindow(win xproto.Window) error { return xproto.DestroyWindowChecked(X, win).Check() }

// KillClient forcibly terminates a connection to an unresponsive client,
// the fallback kill_client takes when WM_DELETE_WINDOW isn't supported.
func KillClient(win xproto.Window) error {
	return xproto.KillClientChecked(X, uint32(win)).Check()
}
