package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/drawctx"
	"github.com/arortell/dwm/internal/geom"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/x11"
)

// focus sets the focused client. A nil argument means "recompute": the
// first visible client in the selected monitor's focus stack.
func (wm *WM) focus(c *model.Client) {
	if wm.selMon == nil {
		return
	}
	if c == nil || !c.IsVisible() {
		c = nil
		for _, cand := range wm.selMon.Stack() {
			if cand.IsVisible() {
				c = cand
				break
			}
		}
	}
	if c != nil && c.Monitor != wm.selMon {
		wm.selMon = c.Monitor
	}
	if wm.selMon.Selected != nil && wm.selMon.Selected != c {
		wm.unfocus(wm.selMon.Selected, false)
	}

	if c != nil {
		wm.selMon.DetachStack(c)
		wm.selMon.AttachStack(c)
		wm.grabButtons(c, true)
		wm.setClientBorder(c, true)
		wm.setFocusWindow(c)
	} else {
		x11.SetInputFocus(x11.Root, xproto.TimeCurrentTime)
		x11.DeleteActiveWindow()
	}
	wm.selMon.Selected = c
	wm.activeWin = windowOf(c)
	wm.redrawAllBars()
}

// unfocus removes visual focus from c, optionally also releasing input
// focus to the root window (used when the client is being unmanaged or
// the WM is losing focus to another monitor's client).
func (wm *WM) unfocus(c *model.Client, setFocus bool) {
	if c == nil {
		return
	}
	wm.grabButtons(c, false)
	wm.setClientBorder(c, false)
	if setFocus {
		x11.SetInputFocus(x11.Root, xproto.TimeCurrentTime)
		x11.DeleteActiveWindow()
	}
}

func (wm *WM) setClientBorder(c *model.Client, selected bool) {
	colors := wm.cfg.NormalColors
	if selected {
		colors = wm.cfg.SelectedColors
	}
	if c.IsUrgent {
		colors = wm.cfg.UrgentColors
	}
	pixel, err := drawctx.ParseColor(colors.Border)
	if err != nil {
		return
	}
	x11.SetBorderColor(c.Window, pixel)
}

// setFocusWindow clears urgency, asserts input focus (unless
// never_focus), always sends WM_TAKE_FOCUS, and updates
// _NET_ACTIVE_WINDOW.
func (wm *WM) setFocusWindow(c *model.Client) {
	if c.IsUrgent {
		c.IsUrgent = false
		x11.ClearWMHintsUrgency(c.Window)
	}
	if !c.NeverFocus {
		x11.SetInputFocus(c.Window, xproto.TimeCurrentTime)
	}
	x11.SendClientMessageProtocol(c.Window, x11.Atom("WM_TAKE_FOCUS"), xproto.TimeCurrentTime)
	x11.SetActiveWindow(c.Window)
}

func windowOf(c *model.Client) xproto.Window {
	if c == nil {
		return 0
	}
	return c.Window
}

// restack redraws the bar, raises the selected client if floating or
// under a null arranger, then stacks every visible tiled client below the
// bar in focus-stack order.
func (wm *WM) restack(m *model.Monitor) {
	wm.redrawBar(m)
	if m.Selected == nil {
		return
	}
	arrangerNil := m.Lt[m.SelLt].Arrange == nil
	if m.Selected.IsFloating || arrangerNil {
		x11.RaiseWindow(m.Selected.Window)
	}

	if b, ok := wm.bars[m]; ok && !arrangerNil {
		sibling := b.win
		for _, c := range m.Stack() {
			if !c.IsVisible() || c.IsFloating {
				continue
			}
			x11.StackBelow(c.Window, sibling)
			sibling = c.Window
		}
	}
	wm.drainEnterNotify()
}

// drainEnterNotify discards pending EnterNotify events generated as a
// side effect of restacking, explicitly drained before returning to the
// main loop.
func (wm *WM) drainEnterNotify() {
	for {
		ev, err := x11.X.PollForEvent()
		if err != nil || ev == nil {
			return
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); !ok {
			wm.dispatch(ev)
			return
		}
	}
}

// warpPointerToClient: after focus/restack, if the pointer sits outside
// the target's border-inclusive rectangle and off the bar, warp it to the
// client's center; with a nil client, warp to the monitor's work-area
// center.
func (wm *WM) warpPointerToClient(c *model.Client, m *model.Monitor) {
	px, py, _, err := x11.QueryPointer()
	if err != nil {
		return
	}
	if c == nil {
		if m == nil {
			return
		}
		cx := m.WorkArea.X + m.WorkArea.W/2
		cy := m.WorkArea.Y + m.WorkArea.H/2
		x11.WarpPointer(cx, cy)
		return
	}
	rect := geom.Rect{X: c.X, Y: c.Y, W: c.BorderedW(), H: c.BorderedH()}
	if rect.Contains(px, py) {
		return
	}
	if cm := c.Monitor; cm != nil && cm.ShowBar {
		if b, ok := wm.bars[cm]; ok {
			barRect := geom.Rect{X: cm.ScreenArea.X, Y: cm.BarY, W: cm.ScreenArea.W, H: b.height}
			if barRect.Contains(px, py) {
				return
			}
		}
	}
	cx := c.X + c.BorderedW()/2
	cy := c.Y + c.BorderedH()/2
	x11.WarpPointer(cx, cy)
}
