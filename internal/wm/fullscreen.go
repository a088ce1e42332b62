package wm

import (
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/x11"
)

// setFullscreen toggles a client between its normal geometry and a
// borderless, floating, screen-filling one.
func (wm *WM) setFullscreen(c *model.Client, fullscreen bool) {
	if fullscreen == c.IsFullscreen {
		return
	}
	if fullscreen {
		x11.SetWMState32Atoms(c.Window, "_NET_WM_STATE", []string{"_NET_WM_STATE_FULLSCREEN"})
		c.OldState = c.IsFloating
		c.OldBorderWidth = c.BorderWidth
		c.BorderWidth = 0
		c.IsFloating = true
		c.IsFullscreen = true
		wm.resizeClient(c, c.Monitor.ScreenArea.X, c.Monitor.ScreenArea.Y,
			c.Monitor.ScreenArea.W, c.Monitor.ScreenArea.H)
		x11.RaiseWindow(c.Window)
	} else {
		x11.SetWMState32Atoms(c.Window, "_NET_WM_STATE", nil)
		c.IsFloating = c.OldState
		c.BorderWidth = c.OldBorderWidth
		c.IsFullscreen = false
		wm.resizeClient(c, c.OldX, c.OldY, c.OldW, c.OldH)
		wm.arrange(c.Monitor)
	}
}

// toggleFullscreenState applies the ADD(0)/REMOVE(1)/TOGGLE(2) semantics
// of a _NET_WM_STATE ClientMessage naming _NET_WM_STATE_FULLSCREEN.
func (wm *WM) toggleFullscreenState(c *model.Client, action uint32) {
	switch action {
	case 0:
		wm.setFullscreen(c, true)
	case 1:
		wm.setFullscreen(c, false)
	case 2:
		wm.setFullscreen(c, !c.IsFullscreen)
	}
}
