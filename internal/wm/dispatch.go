package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/config"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/wmlog"
	"github.com/arortell/dwm/internal/x11"
)

// dispatch is the event table: a switch over the concrete event type.
func (wm *WM) dispatch(xev interface{}) {
	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		wm.handleKeyPress(e)
	case xproto.ButtonPressEvent:
		wm.handleButtonPress(e)
	case xproto.MapRequestEvent:
		wm.handleMapRequest(e)
	case xproto.UnmapNotifyEvent:
		wm.handleUnmapNotify(e)
	case xproto.DestroyNotifyEvent:
		wm.handleDestroyNotify(e)
	case xproto.ConfigureRequestEvent:
		wm.handleConfigureRequest(e)
	case xproto.ConfigureNotifyEvent:
		wm.handleConfigureNotify(e)
	case xproto.ClientMessageEvent:
		wm.handleClientMessage(e)
	case xproto.PropertyNotifyEvent:
		wm.handlePropertyNotify(e)
	case xproto.EnterNotifyEvent:
		wm.handleEnterNotify(e)
	case xproto.FocusInEvent:
		wm.handleFocusIn(e)
	case xproto.MotionNotifyEvent:
		wm.handleMotionNotify(e)
	case xproto.ExposeEvent:
		wm.handleExpose(e)
	case xproto.MappingNotifyEvent:
		wm.handleMappingNotify(e)
	}
}

func (wm *WM) handleKeyPress(e xproto.KeyPressEvent) {
	sym := wm.keymap.Keysym(e.Detail)
	if sym == 0 {
		return
	}
	clean := x11.CleanMask(e.State)
	for _, k := range wm.cfg.Keys {
		if k.Sym == sym && x11.CleanMask(k.Mod) == clean {
			wm.runCommand(k.Cmd, k.Arg)
			return
		}
	}
}

// handleButtonPress resolves the monitor and click zone, dispatches
// against the button table, and otherwise focuses the clicked client.
func (wm *WM) handleButtonPress(e xproto.ButtonPressEvent) {
	m := wm.monitorForEventWindow(e.Event, e.RootX, e.RootY)
	if m != nil && m != wm.selMon {
		wm.unfocus(wm.selMon.Selected, true)
		wm.selMon = m
		wm.focus(nil)
	}

	zone, tagArg := wm.classifyClick(e.Event, e.RootX)
	clean := x11.CleanMask(e.State)
	for _, b := range wm.cfg.Buttons {
		if b.Zone != zone || b.Button != e.Detail || x11.CleanMask(b.Mod) != clean {
			continue
		}
		arg := b.Arg
		if zone == config.ZoneTagBar && argTag(b.Arg) == 0 {
			arg = tagArg
		}
		wm.runCommand(b.Cmd, arg)
		return
	}

	if c := wm.findClient(e.Event); c != nil {
		wm.focus(c)
		wm.restack(c.Monitor)
	}
}

// monitorForEventWindow resolves the monitor a window belongs to (bar or
// client), falling back to a point lookup in root coordinates.
func (wm *WM) monitorForEventWindow(win xproto.Window, rx, ry int16) *model.Monitor {
	for m, b := range wm.bars {
		if b.win == win {
			return m
		}
	}
	if c := wm.findClient(win); c != nil {
		return c.Monitor
	}
	return wm.monitorAt(int32(rx), int32(ry))
}

// classifyClick maps a click's window + x-coordinate to a click zone:
// TagBar/LtSymbol/StatusText/WinTitle on the bar, ClientWin on a managed
// window, RootWin otherwise. For TagBar, it also returns the clicked
// tag's bitmask for buttons with a zero argument.
func (wm *WM) classifyClick(win xproto.Window, x int16) (config.ClickZone, model.TagMask) {
	for _, b := range wm.bars {
		if b.win != win {
			continue
		}
		zone, tagIdx := zoneAt(b, int32(x))
		var mask model.TagMask
		if zone == config.ZoneTagBar && tagIdx >= 0 && tagIdx < model.MaxTags {
			mask = 1 << uint(tagIdx)
		}
		return zone, mask
	}
	if wm.findClient(win) != nil {
		return config.ZoneClientWin, 0
	}
	return config.ZoneRootWin, 0
}

func (wm *WM) handleMapRequest(e xproto.MapRequestEvent) {
	attrs, err := x11.GetWindowAttrs(e.Window)
	if err != nil || attrs.OverrideRedirect {
		return
	}
	if wm.findClient(e.Window) != nil {
		return
	}
	wm.manage(e.Window)
}

// handleUnmapNotify unmanages a client on unmap. xgb's decoded event
// carries no usable send-event bit to distinguish a synthetic unmap from
// the client's own withdrawal, so both paths converge on the same
// unmanage(..., destroyed=false) dwm's non-FromConfigure branch takes.
func (wm *WM) handleUnmapNotify(e xproto.UnmapNotifyEvent) {
	c := wm.findClient(e.Window)
	if c == nil {
		return
	}
	wm.unmanage(c, false)
}

func (wm *WM) handleDestroyNotify(e xproto.DestroyNotifyEvent) {
	if c := wm.findClient(e.Window); c != nil {
		wm.unmanage(c, true)
	}
}

// handleConfigureRequest honors floating/null-arranger geometry requests
// directly; unmanaged windows get their request forwarded verbatim.
func (wm *WM) handleConfigureRequest(e xproto.ConfigureRequestEvent) {
	c := wm.findClient(e.Window)
	if c == nil {
		mask := e.ValueMask
		values := configureRequestValues(e)
		x11.ConfigureWindow(e.Window, mask, values)
		return
	}

	m := c.Monitor
	arrangerNil := m != nil && m.Lt[m.SelLt].Arrange == nil
	if c.IsFloating || arrangerNil {
		if e.ValueMask&xproto.ConfigWindowX != 0 {
			c.X = int32(e.X)
		}
		if e.ValueMask&xproto.ConfigWindowY != 0 {
			c.Y = int32(e.Y)
		}
		if e.ValueMask&xproto.ConfigWindowWidth != 0 {
			c.W = int32(e.Width)
		}
		if e.ValueMask&xproto.ConfigWindowHeight != 0 {
			c.H = int32(e.Height)
		}
		if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			c.BorderWidth = int32(e.BorderWidth)
		}
		if m != nil {
			if c.X+c.BorderedW() > m.ScreenArea.X+m.ScreenArea.W && c.IsFloating {
				c.X = m.ScreenArea.X + (m.ScreenArea.W-c.BorderedW())/2
			}
			if c.Y+c.BorderedH() > m.ScreenArea.Y+m.ScreenArea.H && c.IsFloating {
				c.Y = m.ScreenArea.Y + (m.ScreenArea.H-c.BorderedH())/2
			}
		}
		x11.ConfigureWindow(c.Window,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
			[]uint32{uint32(c.X), uint32(c.Y), uint32(c.W), uint32(c.H), uint32(c.BorderWidth)})
	}
	x11.SendConfigureNotify(c.Window, int16(c.X), int16(c.Y), uint16(c.W), uint16(c.H), uint16(c.BorderWidth))
}

func configureRequestValues(e xproto.ConfigureRequestEvent) []uint32 {
	var values []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(e.StackMode))
	}
	return values
}

// handleConfigureNotify re-reads screen geometry on a root ConfigureNotify
// and rebuilds topology if it changed.
func (wm *WM) handleConfigureNotify(e xproto.ConfigureNotifyEvent) {
	if e.Window != x11.Root {
		return
	}
	if err := wm.updateGeometry(); err != nil {
		wmlog.Log.WithError(err).Warn("wm: failed to rebuild monitor topology")
	}
}

// handleClientMessage implements the two named _NET_* ClientMessage
// contracts: _NET_WM_STATE fullscreen toggling and _NET_ACTIVE_WINDOW
// activation.
func (wm *WM) handleClientMessage(e xproto.ClientMessageEvent) {
	c := wm.findClient(e.Window)
	if c == nil {
		return
	}
	data := e.Data.Data32
	switch e.Type {
	case x11.Atom("_NET_WM_STATE"):
		if len(data) < 2 {
			return
		}
		fullscreenAtom := uint32(x11.Atom("_NET_WM_STATE_FULLSCREEN"))
		if data[1] == fullscreenAtom || (len(data) > 2 && data[2] == fullscreenAtom) {
			wm.toggleFullscreenState(c, data[0])
		}
	case x11.Atom("_NET_ACTIVE_WINDOW"):
		if !c.IsVisible() && c.Monitor != nil {
			c.Monitor.Tagset[c.Monitor.SelTags] = c.Tags
			wm.arrange(c.Monitor)
		}
		wm.pop(c)
	}
}

// pop detaches and reattaches c at the client-list head, focuses it, and
// re-arranges, the shared tail of _NET_ACTIVE_WINDOW and zoom.
func (wm *WM) pop(c *model.Client) {
	m := c.Monitor
	if m == nil {
		return
	}
	m.Detach(c)
	m.Attach(c)
	wm.focus(c)
	wm.arrange(m)
}

// handlePropertyNotify dispatches on the changed atom.
func (wm *WM) handlePropertyNotify(e xproto.PropertyNotifyEvent) {
	if e.Window == x11.Root && e.Atom == xproto.AtomWmName {
		if s, ok := wm.readStatusText(); ok {
			wm.statusTxt = s
		}
		wm.redrawAllBars()
		return
	}
	c := wm.findClient(e.Window)
	if c == nil {
		return
	}
	switch e.Atom {
	case xproto.AtomWmTransientFor:
		if win, ok := x11.GetTransientFor(c.Window); ok {
			if wm.findClient(win) != nil {
				c.IsFloating = true
				wm.arrange(c.Monitor)
			}
		}
	case xproto.AtomWmNormalHints:
		wm.updateSizeHints(c)
	case x11.Atom("WM_HINTS"):
		wm.updateWMHints(c)
		wm.redrawAllBars()
	case x11.Atom("_NET_WM_NAME"), xproto.AtomWmName:
		c.SetTitle(brokenTitleOr(c.Window))
		if c.Monitor != nil {
			wm.redrawBar(c.Monitor)
		}
	case x11.Atom("_NET_WM_WINDOW_TYPE"):
		if x11.WindowTypeIsDialog(c.Window) {
			c.IsFloating = true
			wm.arrange(c.Monitor)
		}
	}
}

func (wm *WM) readStatusText() (string, bool) {
	s, err := x11.GetWindowTitle(x11.Root)
	if err != nil {
		return "", false
	}
	return s, true
}

// handleEnterNotify implements focus-follows-mouse, ignoring inferior
// crossings and non-normal grab modes.
func (wm *WM) handleEnterNotify(e xproto.EnterNotifyEvent) {
	if e.Mode != xproto.NotifyModeNormal && e.Detail != xproto.NotifyDetailInferior {
		return
	}
	if e.Mode != xproto.NotifyModeNormal {
		return
	}
	if e.Detail == xproto.NotifyDetailInferior && e.Event != x11.Root {
		return
	}
	c := wm.findClient(e.Event)
	m := wm.selMon
	if c != nil {
		m = c.Monitor
	} else {
		m = wm.monitorAt(int32(e.RootX), int32(e.RootY))
	}
	if m != wm.selMon {
		wm.unfocus(wm.selMon.Selected, true)
		wm.selMon = m
	}
	if c == nil || c == wm.selMon.Selected {
		return
	}
	wm.focus(c)
}

// handleFocusIn re-asserts focus if the selected client lost it to
// another window, defending against self-refocusing clients.
func (wm *WM) handleFocusIn(e xproto.FocusInEvent) {
	if wm.selMon == nil || wm.selMon.Selected == nil {
		return
	}
	if e.Event != wm.selMon.Selected.Window {
		x11.SetInputFocus(wm.selMon.Selected.Window, xproto.TimeCurrentTime)
	}
}

// handleMotionNotify updates the selected monitor when the pointer
// crosses a monitor boundary on the root window.
func (wm *WM) handleMotionNotify(e xproto.MotionNotifyEvent) {
	if e.Event != x11.Root {
		return
	}
	m := wm.monitorAt(int32(e.RootX), int32(e.RootY))
	if m != nil && m != wm.selMon {
		wm.unfocus(wm.selMon.Selected, true)
		wm.selMon = m
		wm.focus(nil)
	}
}

// handleExpose redraws a monitor's bar once the final Expose in a
// sequence arrives.
func (wm *WM) handleExpose(e xproto.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	for m, b := range wm.bars {
		if b.win == e.Window {
			wm.redrawBar(m)
			return
		}
	}
}

// handleMappingNotify re-grabs keys after a keyboard remap.
func (wm *WM) handleMappingNotify(e xproto.MappingNotifyEvent) {
	if e.Request != xproto.MappingKeyboard && e.Request != xproto.MappingModifier {
		return
	}
	km, err := wm.reloadKeymap()
	if err != nil {
		return
	}
	wm.keymap = km
	x11.UpdateNumLockMask(wm.keymap)
	wm.grabKeys()
}
