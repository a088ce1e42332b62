package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/drawctx"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/wmlog"
	"github.com/arortell/dwm/internal/x11"
)

// scan performs the two-pass startup walk: query the root's existing
// children and manage the ones that are already viewable and not
// override-redirect, transients last so their WM_TRANSIENT_FOR target is
// already managed.
func (wm *WM) scan() {
	wins, err := x11.QueryTreeChildren(x11.Root)
	if err != nil {
		wmlog.Log.WithError(err).Warn("wm: scan: QueryTree failed")
		return
	}

	var normal, transient []xproto.Window
	for _, win := range wins {
		attrs, err := x11.GetWindowAttrs(win)
		if err != nil || attrs.OverrideRedirect {
			continue
		}
		if _, ok := x11.GetTransientFor(win); ok {
			transient = append(transient, win)
			continue
		}
		if attrs.Viewable {
			normal = append(normal, win)
		}
	}
	for _, win := range normal {
		wm.manage(win)
	}
	for _, win := range transient {
		if attrs, err := x11.GetWindowAttrs(win); err == nil && attrs.Viewable {
			wm.manage(win)
		}
	}
}

// manage adopts win as a new client: reads its geometry, applies rules
// and monitor placement, clamps it onto its monitor's screen area, and
// maps it.
func (wm *WM) manage(win xproto.Window) {
	if wm.findClient(win) != nil {
		return
	}
	geomv, err := x11.GetGeometry(win)
	if err != nil {
		return
	}

	c := &model.Client{
		Window:      win,
		X:           int32(geomv.X),
		Y:           int32(geomv.Y),
		W:           int32(geomv.W),
		H:           int32(geomv.H),
		BorderWidth: int32(geomv.BorderWidth),
	}
	c.SetTitle(brokenTitleOr(win))

	target := wm.selMon
	if parentWin, ok := x11.GetTransientFor(win); ok {
		if parent := wm.findClient(parentWin); parent != nil {
			target = parent.Monitor
			c.Tags = parent.Tags
		}
	}
	if target == nil {
		target = wm.selMon
	}
	c.Monitor = target

	instance, class := x11.GetWMClass(win)
	monIdx := model.ApplyRules(c, class, instance, c.Title, wm.configRules(), target.CurrentTagset())
	if monIdx >= 0 {
		if m := wm.monitorByIndex(monIdx); m != nil {
			target = m
			c.Monitor = target
		}
	}

	if c.X+c.BorderedW() > target.ScreenArea.X+target.ScreenArea.W {
		c.X = target.ScreenArea.X + target.ScreenArea.W - c.BorderedW()
	}
	if c.Y+c.BorderedH() > target.ScreenArea.Y+target.ScreenArea.H {
		c.Y = target.ScreenArea.Y + target.ScreenArea.H - c.BorderedH()
	}
	if c.X < target.ScreenArea.X {
		c.X = target.ScreenArea.X
	}
	barH := wm.barHeight(target)
	if c.Y < target.ScreenArea.Y+barH {
		c.Y = target.ScreenArea.Y + barH
	}

	c.OldBorderWidth = int32(geomv.BorderWidth)
	c.BorderWidth = wm.cfg.BorderPx
	x11.SetBorderWidth(win, uint32(c.BorderWidth))
	normalPixel, _ := drawctx.ParseColor(wm.cfg.NormalColors.Border)
	x11.SetBorderColor(win, normalPixel)

	x11.SendConfigureNotify(win, int16(c.X), int16(c.Y), uint16(c.W), uint16(c.H), uint16(c.BorderWidth))
	wm.updateWindowType(c)
	wm.updateSizeHints(c)
	wm.updateWMHints(c)
	x11.SelectClientInput(win)
	wm.grabButtons(c, false)

	if !c.IsFloating {
		_, isTransient := x11.GetTransientFor(win)
		c.IsFloating = isTransient || c.IsFixed
	}
	if c.IsFloating {
		x11.RaiseWindow(win)
	}

	c.Monitor.Attach(c)
	c.Monitor.AttachStack(c)
	x11.SetClientList(wm.allClientWindows())

	x11.ConfigureWindow(win, xproto.ConfigWindowX, []uint32{uint32(c.Monitor.ScreenArea.X + c.Monitor.ScreenArea.W*2)})
	x11.SetWMState(win, wmStateNormal)
	if c.Monitor == wm.selMon {
		wm.unfocus(wm.selMon.Selected, false)
	}
	c.Monitor.Selected = c
	wm.arrange(c.Monitor)
	x11.MapWindow(win)
	wm.focus(nil)
}

// unmanage detaches c from its monitor and, unless the window was already
// destroyed, restores its original border width and WM_STATE before
// releasing it.
func (wm *WM) unmanage(c *model.Client, destroyed bool) {
	m := c.Monitor
	m.Detach(c)
	m.DetachStack(c)

	if !destroyed {
		x11.GrabServer()
		x11.SetBorderWidth(c.Window, uint32(c.OldBorderWidth))
		x11.UngrabButtons(c.Window)
		x11.SetWMState(c.Window, wmStateWithdrawn)
		x11.Sync()
		x11.UngrabServer()
	}

	c.Monitor = nil
	wm.focus(nil)
	x11.SetClientList(wm.allClientWindows())
	wm.arrange(m)
}

const (
	wmStateWithdrawn = 0
	wmStateNormal    = 1
	wmStateIconic    = 3
)

func brokenTitleOr(win xproto.Window) string {
	t, err := x11.GetWindowTitle(win)
	if err != nil || t == "" {
		return "broken"
	}
	return t
}

func (wm *WM) allClientWindows() []xproto.Window {
	var out []xproto.Window
	for _, m := range wm.monitors {
		for _, c := range m.Clients() {
			out = append(out, c.Window)
		}
	}
	return out
}

func (wm *WM) monitorByIndex(i int) *model.Monitor {
	for _, m := range wm.monitors {
		if m.Index == i {
			return m
		}
	}
	return nil
}

func (wm *WM) configRules() []model.Rule {
	rules := make([]model.Rule, len(wm.cfg.Rules))
	for i, r := range wm.cfg.Rules {
		rules[i] = model.Rule{
			Class: r.Class, Instance: r.Instance, Title: r.Title,
			Tags: model.TagMask(r.Tags), IsFloating: r.IsFloating, Monitor: r.Monitor,
		}
	}
	return rules
}

// updateWindowType forces floating for dialogs/notifications and for
// windows transient for an already-managed client.
func (wm *WM) updateWindowType(c *model.Client) {
	if win, ok := x11.GetTransientFor(c.Window); ok {
		if p := wm.findClient(win); p != nil {
			c.IsFloating = true
		}
	}
	if x11.WindowTypeIsDialog(c.Window) {
		c.IsFloating = true
	}
}

func (wm *WM) updateSizeHints(c *model.Client) {
	h, err := x11.GetSizeHints(c.Window)
	if err != nil {
		return
	}
	c.UpdateSizeHints(model.WireHints{
		BaseW: h.BaseW, BaseH: h.BaseH, IncW: h.IncW, IncH: h.IncH,
		MinW: h.MinW, MinH: h.MinH, MaxW: h.MaxW, MaxH: h.MaxH,
		MinAspect: h.MinAspect, MaxAspect: h.MaxAspect,
		HasAspect: h.HasAspect, HasMin: h.HasMin, HasMax: h.HasMax,
		HasBase: h.HasBase, HasInc: h.HasInc,
	})
}

// updateWMHints refreshes the urgency/input hint from WM_HINTS. For the
// currently selected client an urgency hint is not recorded: it is
// cleared from the window's WM_HINTS instead.
func (wm *WM) updateWMHints(c *model.Client) {
	h, err := x11.GetWMHints(c.Window)
	if err != nil {
		return
	}
	if wm.selMon != nil && c == wm.selMon.Selected && h.Urgent {
		h.Urgent = false
		x11.ClearWMHintsUrgency(c.Window)
	}
	c.IsUrgent = h.Urgent
	c.NeverFocus = h.HasInput && !h.Input
}

// grabButtons grabs the configured button table on c's window, either
// only with modifiers (focused) or also bare (unfocused).
func (wm *WM) grabButtons(c *model.Client, focused bool) {
	x11.UngrabButtons(c.Window)
	for _, b := range wm.cfg.Buttons {
		if !focused {
			x11.GrabButton(c.Window, b.Button, b.Mod, false, 0)
		} else if b.Mod != 0 {
			x11.GrabButton(c.Window, b.Button, b.Mod, false, 0)
		}
	}
	if !focused {
		x11.GrabButton(c.Window, xproto.ButtonIndexAny, xproto.ModMaskAny, false, 0)
	}
}
