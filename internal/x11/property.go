package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// brokenTitle is the sentinel used when a text property fails to decode.
const brokenTitle = "broken"

// GetWindowTitle reads _NET_WM_NAME, falling back to WM_NAME.
func GetWindowTitle(win xproto.Window) (string, error) {
	if s, ok := getTextProperty(win, Atom("_NET_WM_NAME")); ok {
		return s, nil
	}
	if s, ok := getTextProperty(win, Atom("WM_NAME")); ok {
		return s, nil
	}
	return brokenTitle, nil
}

func getTextProperty(win xproto.Window, prop xproto.Atom) (string, bool) {
	reply, err := xproto.GetProperty(X, false, win, prop, xproto.GetPropertyTypeAny, 0, 1<<16).Reply()
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return "", false
	}
	return string(reply.Value), true
}

// SetWMName advertises the window manager's name on the root window via
// _NET_SUPPORTING_WM_CHECK + _NET_WM_NAME, matching marwind's SetWMName.
func SetWMName(name string) error {
	check, err := xproto.NewWindowId(X)
	if err != nil {
		return err
	}
	if err := xproto.CreateWindowChecked(X, Screen.RootDepth, check, Root,
		-1, -1, 1, 1, 0, xproto.WindowClassInputOutput, Screen.RootVisual, 0, nil).Check(); err != nil {
		return err
	}
	if err := changeProp32(check, Atom("_NET_SUPPORTING_WM_CHECK"), xproto.AtomWindow, uint32(check)); err != nil {
		return err
	}
	if err := changeProp8(check, Atom("_NET_WM_NAME"), Atom("UTF8_STRING"), []byte(name)); err != nil {
		return err
	}
	if err := changeProp32(Root, Atom("_NET_SUPPORTING_WM_CHECK"), xproto.AtomWindow, uint32(check)); err != nil {
		return err
	}
	return changeProp8(Root, Atom("_NET_WM_NAME"), Atom("UTF8_STRING"), []byte(name))
}

// SetSupported advertises the _NET_SUPPORTED atom list on the root window.
func SetSupported(names []string) error {
	atoms := make([]uint32, len(names))
	for i, n := range names {
		atoms[i] = uint32(Atom(n))
	}
	return changeProp32Many(Root, Atom("_NET_SUPPORTED"), xproto.AtomAtom, atoms)
}

// SetWMState32Atoms writes (or, given a nil/empty list, clears) a window
// property holding a list of atoms looked up by name, used for
// _NET_WM_STATE (fullscreen enter/exit).
func SetWMState32Atoms(win xproto.Window, prop string, atomNames []string) error {
	if len(atomNames) == 0 {
		return xproto.DeletePropertyChecked(X, win, Atom(prop)).Check()
	}
	atoms := make([]uint32, len(atomNames))
	for i, n := range atomNames {
		atoms[i] = uint32(Atom(n))
	}
	return changeProp32Many(win, Atom(prop), xproto.AtomAtom, atoms)
}

// SetActiveWindow writes _NET_ACTIVE_WINDOW on the root.
func SetActiveWindow(win xproto.Window) error {
	return changeProp32(Root, Atom("_NET_ACTIVE_WINDOW"), xproto.AtomWindow, uint32(win))
}

// DeleteActiveWindow removes _NET_ACTIVE_WINDOW, used by cleanup.
func DeleteActiveWindow() error {
	return xproto.DeletePropertyChecked(X, Root, Atom("_NET_ACTIVE_WINDOW")).Check()
}

// SetClientList overwrites _NET_CLIENT_LIST with the given window ids, in
// the order handed in; the whole list is rebuilt on each manage/unmanage,
// which is simpler and equally correct since the set changes infrequently
// relative to event volume.
func SetClientList(wins []xproto.Window) error {
	ids := make([]uint32, len(wins))
	for i, w := range wins {
		ids[i] = uint32(w)
	}
	return changeProp32Many(Root, Atom("_NET_CLIENT_LIST"), xproto.AtomWindow, ids)
}

// SetWMState writes the ICCCM WM_STATE property (state + icon window).
func SetWMState(win xproto.Window, state uint32) error {
	return changeProp32Many(win, Atom("WM_STATE"), Atom("WM_STATE"), []uint32{state, 0})
}

// GetTransientFor reads WM_TRANSIENT_FOR, returning (0, false) if unset.
func GetTransientFor(win xproto.Window) (xproto.Window, bool) {
	reply, err := xproto.GetProperty(X, false, win, xproto.AtomWmTransientFor, xproto.AtomWindow, 0, 1).Reply()
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return 0, false
	}
	return xproto.Window(le32(reply.Value)), true
}

// GetNetWMPID reads _NET_WM_PID for diagnostic logging only.
func GetNetWMPID(win xproto.Window) (uint32, bool) {
	reply, err := xproto.GetProperty(X, false, win, Atom("_NET_WM_PID"), xproto.AtomCardinal, 0, 1).Reply()
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return 0, false
	}
	return le32(reply.Value), true
}

// WindowTypeIsDialog reports whether _NET_WM_WINDOW_TYPE names the dialog
// (or notification) type.
func WindowTypeIsDialog(win xproto.Window) bool {
	reply, err := xproto.GetProperty(X, false, win, Atom("_NET_WM_WINDOW_TYPE"), xproto.AtomAtom, 0, 16).Reply()
	if err != nil || reply == nil {
		return false
	}
	dialog := Atom("_NET_WM_WINDOW_TYPE_DIALOG")
	notif := Atom("_NET_WM_WINDOW_TYPE_NOTIFICATION")
	for v := reply.Value; len(v) >= 4; v = v[4:] {
		a := xproto.Atom(le32(v))
		if a == dialog || a == notif {
			return true
		}
	}
	return false
}

// SupportsWMProtocol reports whether the window's WM_PROTOCOLS list
// contains the given atom (used for WM_DELETE_WINDOW and WM_TAKE_FOCUS).
func SupportsWMProtocol(win xproto.Window, proto xproto.Atom) bool {
	reply, err := xproto.GetProperty(X, false, win, Atom("WM_PROTOCOLS"), xproto.AtomAtom, 0, 64).Reply()
	if err != nil || reply == nil {
		return false
	}
	for v := reply.Value; len(v) >= 4; v = v[4:] {
		if xproto.Atom(le32(v)) == proto {
			return true
		}
	}
	return false
}

// SendClientMessageProtocol sends a WM_PROTOCOLS ClientMessage carrying a
// single protocol atom plus timestamp, used for WM_DELETE_WINDOW and
// WM_TAKE_FOCUS.
func SendClientMessageProtocol(win xproto.Window, proto xproto.Atom, timestamp xproto.Timestamp) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   Atom("WM_PROTOCOLS"),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(proto), uint32(timestamp), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(X, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// SendConfigureNotify issues a synthetic ConfigureNotify for the given
// geometry.
func SendConfigureNotify(win xproto.Window, x, y int16, w, h uint16, bw uint16) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            win,
		Window:           win,
		AboveSibling:     0,
		X:                x,
		Y:                y,
		Width:            w,
		Height:           h,
		BorderWidth:      bw,
		OverrideRedirect: false,
	}
	return xproto.SendEventChecked(X, false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}

// ConfigureWindow is a thin wrapper over XConfigureWindow.
func ConfigureWindow(win xproto.Window, mask uint16, values []uint32) error {
	return xproto.ConfigureWindowChecked(X, win, mask, values).Check()
}

// RaiseWindow restacks win to the top.
func RaiseWindow(win xproto.Window) error {
	return ConfigureWindow(win, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// StackBelow restacks win directly below sibling.
func StackBelow(win, sibling xproto.Window) error {
	return ConfigureWindow(win, xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeBelow})
}

// SetBorderWidth updates the border-width component of a window's geometry.
func SetBorderWidth(win xproto.Window, bw uint32) error {
	return ConfigureWindow(win, xproto.ConfigWindowBorderWidth, []uint32{bw})
}

// SetBorderColor sets the pixel value used to paint win's border.
func SetBorderColor(win xproto.Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(X, win, xproto.CwBorderPixel, []uint32{pixel}).Check()
}

// SetInputFocus asserts input focus on win at the given timestamp, ignoring
// the BadMatch errors that can arise from an already-unviewable window.
func SetInputFocus(win xproto.Window, timestamp xproto.Timestamp) error {
	err := xproto.SetInputFocusChecked(X, xproto.InputFocusPointerRoot, win, timestamp).Check()
	switch err.(type) {
	case xproto.MatchError, *xproto.MatchError:
		return nil
	}
	return err
}

// SelectClientInput selects the event mask a managed client window needs.
func SelectClientInput(win xproto.Window) error {
	mask := uint32(xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
		xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify)
	return xproto.ChangeWindowAttributesChecked(X, win, xproto.CwEventMask, []uint32{mask}).Check()
}

// GrabButton grabs a button combination on win, with or without the
// ownership sync dwm uses to let clients still see the press in focused
// mode.
func GrabButton(win xproto.Window, button xproto.Button, modifiers uint16, ownerEvents bool, cursor xproto.Cursor) error {
	return xproto.GrabButtonChecked(X, ownerEvents, win,
		uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease),
		xproto.GrabModeAsync, xproto.GrabModeSync, Root, cursor, button, modifiers).Check()
}

// UngrabButtons releases every button grab on win.
func UngrabButtons(win xproto.Window) error {
	return xproto.UngrabButtonChecked(X, xproto.ButtonIndexAny, win, xproto.ModMaskAny).Check()
}

// WarpPointer moves the pointer to (x, y) in root coordinates.
func WarpPointer(x, y int32) error {
	return xproto.WarpPointerChecked(X, 0, Root, 0, 0, 0, 0, int16(x), int16(y)).Check()
}

// QueryPointer returns the current pointer position in root coordinates.
func QueryPointer() (x, y int32, win xproto.Window, err error) {
	reply, err := xproto.QueryPointer(X, Root).Reply()
	if err != nil {
		return 0, 0, 0, err
	}
	return int32(reply.RootX), int32(reply.RootY), reply.Child, nil
}

// GrabServer/UngrabServer bracket the server-grabbed sections around
// unmanage/kill_client teardown.
func GrabServer() error   { return xproto.GrabServerChecked(X).Check() }
func UngrabServer() error { return xproto.UngrabServerChecked(X).Check() }

func changeProp32(win xproto.Window, prop, typ xproto.Atom, value uint32) error {
	return changeProp32Many(win, prop, typ, []uint32{value})
}

func changeProp32Many(win xproto.Window, prop, typ xproto.Atom, values []uint32) error {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		putLE32(data[i*4:], v)
	}
	return xproto.ChangePropertyChecked(X, xproto.PropModeReplace, win, prop, typ, 32,
		uint32(len(values)), data).Check()
}

func changeProp8(win xproto.Window, prop, typ xproto.Atom, data []byte) error {
	return xproto.ChangePropertyChecked(X, xproto.PropModeReplace, win, prop, typ, 8,
		uint32(len(data)), data).Check()
}

func le32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
