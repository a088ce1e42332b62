package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/geom"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/x11"
)

// moveMouse grabs the pointer with the move cursor, tracks the delta from
// the grab origin, snaps to work-area edges, and auto-floats the client
// once the user has dragged past the snap threshold under a tiling
// arranger.
func (wm *WM) moveMouse(c *model.Client) {
	if c == nil || c.IsFullscreen {
		return
	}
	m := c.Monitor
	cursor, err := x11.CreateCursor(x11.GlyphMove)
	if err != nil {
		return
	}
	defer x11.FreeCursor(cursor)
	if err := x11.GrabPointer(cursor); err != nil {
		return
	}
	defer x11.UngrabPointer()

	ox, oy, _, err := x11.QueryPointer()
	if err != nil {
		return
	}
	origX, origY := c.X, c.Y
	wm.moveResizing = true
	defer func() { wm.moveResizing = false }()

	var lastTime xproto.Timestamp
	for {
		xev, xerr := x11.X.WaitForEvent()
		if xerr != nil || xev == nil {
			continue
		}
		switch e := xev.(type) {
		case xproto.MotionNotifyEvent:
			if e.Time-lastTime <= 16 {
				continue
			}
			lastTime = e.Time

			nx := origX + (int32(e.RootX) - ox)
			ny := origY + (int32(e.RootY) - oy)
			nx, ny = geom.Snap(nx, ny, c.BorderedW(), c.BorderedH(), m.WorkArea, wm.cfg.SnapPx)

			arrangerNil := m.Lt[m.SelLt].Arrange == nil
			if !c.IsFloating && !arrangerNil && (abs32(nx-origX) > wm.cfg.SnapPx || abs32(ny-origY) > wm.cfg.SnapPx) {
				c.IsFloating = true
				wm.arrange(m)
			}
			wm.resize(c, nx, ny, c.W, c.H, true)
		case xproto.ButtonReleaseEvent:
			wm.finishMoveResize(c)
			return
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		}
	}
}

// resizeMouse warps the pointer to the client's bottom-right, then
// derives w/h from the pointer delta.
func (wm *WM) resizeMouse(c *model.Client) {
	if c == nil || c.IsFullscreen {
		return
	}
	m := c.Monitor
	cursor, err := x11.CreateCursor(x11.GlyphResize)
	if err != nil {
		return
	}
	defer x11.FreeCursor(cursor)
	if err := x11.GrabPointer(cursor); err != nil {
		return
	}
	defer x11.UngrabPointer()

	ox, oy := c.X, c.Y
	cornerX := c.X + c.W + c.BorderWidth - 1
	cornerY := c.Y + c.H + c.BorderWidth - 1
	x11.WarpPointer(cornerX, cornerY)
	wm.moveResizing = true
	defer func() { wm.moveResizing = false }()

	var lastTime xproto.Timestamp
	for {
		xev, xerr := x11.X.WaitForEvent()
		if xerr != nil || xev == nil {
			continue
		}
		switch e := xev.(type) {
		case xproto.MotionNotifyEvent:
			if e.Time-lastTime <= 16 {
				continue
			}
			lastTime = e.Time

			nw := int32(e.RootX) - ox - 2*c.BorderWidth + 1
			nh := int32(e.RootY) - oy - 2*c.BorderWidth + 1
			if nw < 1 {
				nw = 1
			}
			if nh < 1 {
				nh = 1
			}

			arrangerNil := m.Lt[m.SelLt].Arrange == nil
			if !c.IsFloating && !arrangerNil && (abs32(nw-c.W) > wm.cfg.SnapPx || abs32(nh-c.H) > wm.cfg.SnapPx) {
				c.IsFloating = true
				wm.arrange(m)
			}
			wm.resize(c, c.X, c.Y, nw, nh, true)
		case xproto.ButtonReleaseEvent:
			x11.WarpPointer(c.X+c.W+c.BorderWidth-1, c.Y+c.H+c.BorderWidth-1)
			wm.finishMoveResize(c)
			return
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		}
	}
}

// finishMoveResize transfers the client to whichever monitor now contains
// most of its rectangle.
func (wm *WM) finishMoveResize(c *model.Client) {
	rect := geom.Rect{X: c.X, Y: c.Y, W: c.BorderedW(), H: c.BorderedH()}
	target := wm.monitorForRect(rect)
	if target != nil && target != c.Monitor {
		wm.sendMon(c, target)
		wm.selMon = target
	}
}

// sendMon transfers c across monitors: detach from both of the old
// monitor's lists, reattach to both of the new monitor's lists,
// re-arrange both.
func (wm *WM) sendMon(c *model.Client, to *model.Monitor) {
	from := c.Monitor
	if from == to {
		return
	}
	wm.unfocus(c, true)
	from.Detach(c)
	from.DetachStack(c)
	c.Monitor = to
	c.Tags = to.CurrentTagset()
	to.Attach(c)
	to.AttachStack(c)
	wm.arrange(from)
	wm.arrange(to)
	wm.focus(nil)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
