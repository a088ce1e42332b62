package wm

import (
	"github.com/arortell/dwm/internal/geom"
	"github.com/arortell/dwm/internal/layout"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/wmlog"
	"github.com/arortell/dwm/internal/x11"
)

// updateGeometry queries Xinerama (falling back to one full-screen
// monitor when it is absent), rebuilds the monitor list, and — when
// anything changed — resizes/recreates bar windows and re-arranges every
// monitor.
func (wm *WM) updateGeometry() error {
	screens, err := wm.queryScreens()
	if err != nil {
		return err
	}

	monitors, dirty, selected := model.RebuildTopology(wm.monitors, screens, wm.newMonitor)
	wm.monitors = monitors
	kept := false
	for _, m := range monitors {
		if m == wm.selMon {
			kept = true
			break
		}
	}
	if !kept {
		wm.selMon = selected
	}

	if !dirty {
		return nil
	}
	wmlog.Log.WithField("monitors", len(wm.monitors)).Info("wm: monitor topology changed")
	for _, m := range wm.monitors {
		m.WorkArea = workArea(m.ScreenArea, m.ShowBar, int32(barHeightFallback))
		if err := wm.ensureBar(m); err != nil {
			wmlog.Log.WithError(err).Warn("wm: failed to create bar")
		}
		wm.arrange(m)
	}
	return nil
}

const barHeightFallback = 20

func workArea(screen geom.Rect, showBar bool, barH int32) geom.Rect {
	if !showBar {
		return screen
	}
	return geom.Rect{X: screen.X, Y: screen.Y + barH, W: screen.W, H: screen.H - barH}
}

func (wm *WM) queryScreens() ([]geom.Rect, error) {
	if !x11.HasXinerama() {
		return []geom.Rect{wm.screenRect()}, nil
	}
	infos, err := x11.QueryScreens()
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return []geom.Rect{wm.screenRect()}, nil
	}
	out := make([]geom.Rect, len(infos))
	for i, s := range infos {
		out[i] = geom.Rect{X: int32(s.XOrg), Y: int32(s.YOrg), W: int32(s.Width), H: int32(s.Height)}
	}
	return out, nil
}

// newMonitor constructs a Monitor seeded with config defaults and the
// compiled layout table, used as the RebuildTopology factory callback.
func (wm *WM) newMonitor(index int, screen geom.Rect) *model.Monitor {
	m := model.NewMonitor(index, screen)
	m.MFact = wm.cfg.MFactDefault
	m.NMaster = wm.cfg.NMasterDefault
	m.ShowBar = wm.cfg.ShowBar
	m.TopBar = wm.cfg.TopBar
	tbl := layout.Table()
	m.Lt[0] = tbl[0]
	m.Lt[1] = tbl[1]
	m.LtSymbol = m.Lt[0].Symbol
	return m
}

// arrange runs the monitor's layout and then restacks, the combination
// the ConfigureNotify/topology handlers always perform together.
func (wm *WM) arrange(m *model.Monitor) {
	m.Arrange(wm.resize)
	wm.restack(m)
}

// arrangeAll re-arranges every monitor. Nothing calls it: updateGeometry
// arranges each monitor in its own loop after a topology change.
func (wm *WM) arrangeAll() {
	for _, m := range wm.monitors {
		wm.arrange(m)
	}
}
