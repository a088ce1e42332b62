package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/layout"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/x11"
)

// resize applies size hints, then (if the resulting geometry differs)
// calls resizeClient. It is the model.ResizeFunc every arranger and every
// interactive/command-driven resize call goes through.
func (wm *WM) resize(c *model.Client, x, y, w, h int32, interact bool) {
	m := c.Monitor
	if m == nil {
		return
	}
	arrangerNil := m.Lt[m.SelLt].Arrange == nil
	nx, ny, nw, nh, changed := c.ApplySizeHints(x, y, w, h, interact,
		wm.cfg.ResizeHints, c.IsFloating, arrangerNil, m.ScreenArea, m.WorkArea, wm.barHeight(m))
	if !changed {
		return
	}
	wm.resizeClient(c, nx, ny, nw, nh)
}

// resizeClient applies the window-gap policy to the proposed geometry,
// commits it to the client record, and pushes it to the server with a
// synthetic ConfigureNotify.
func (wm *WM) resizeClient(c *model.Client, x, y, w, h int32) {
	m := c.Monitor
	var gapOffset, gapIncr int32
	forceNoBorder := false

	arrangerNil := m != nil && m.Lt[m.SelLt].Arrange == nil
	switch {
	case c.IsFloating || arrangerNil:
		// no gap adjustment
	case m != nil && (m.Lt[m.SelLt].Symbol == layout.SymbolMonocle || len(m.VisibleTiled()) == 1):
		gapOffset = 0
		gapIncr = -2 * wm.cfg.BorderPx
		forceNoBorder = true
	default:
		gapOffset = wm.cfg.WindowGap
		gapIncr = 2 * wm.cfg.WindowGap
	}

	if forceNoBorder {
		c.BorderWidth = 0
	}

	c.SaveGeometry()
	c.X = x + gapOffset
	c.Y = y + gapOffset
	c.W = w - gapIncr
	c.H = h - gapIncr
	if c.W < 1 {
		c.W = 1
	}
	if c.H < 1 {
		c.H = 1
	}

	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth |
		xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth)
	values := []uint32{uint32(c.X), uint32(c.Y), uint32(c.W), uint32(c.H), uint32(c.BorderWidth)}
	if err := x11.ConfigureWindow(c.Window, mask, values); err != nil && !x11.IsBenign(err) {
		return
	}
	x11.SendConfigureNotify(c.Window, int16(c.X), int16(c.Y), uint16(c.W), uint16(c.H), uint16(c.BorderWidth))
	x11.Sync()
}

// barHeight returns the per-monitor bar height, falling back to the
// startup constant until a bar has actually been measured.
func (wm *WM) barHeight(m *model.Monitor) int32 {
	if b, ok := wm.bars[m]; ok && b.height > 0 {
		return b.height
	}
	return barHeightFallback
}
