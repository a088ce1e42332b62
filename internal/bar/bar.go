// Package bar draws tag occupancy, the active layout symbol, the focused
// window's title, and the root status text through the Draw Adapter
// interface (internal/drawctx). It also hands back the click-zone
// rectangles the event dispatcher needs to classify a ButtonPress
// (TagBar, LtSymbol, StatusText, WinTitle).
package bar

import (
	"github.com/arortell/dwm/internal/config"
	"github.com/arortell/dwm/internal/drawctx"
	"github.com/arortell/dwm/internal/geom"
	"github.com/arortell/dwm/internal/model"
)

// Zones is the set of click-classification rectangles computed for one
// bar render, in root-window coordinates.
type Zones struct {
	Tags       []geom.Rect // one per tag, in TagNames order
	LtSymbol   geom.Rect
	Title      geom.Rect
	StatusText geom.Rect
}

// Height computes the bar's pixel height from the loaded font's metrics,
// the way dwm derives bh from drw->fonts->h + 2.
func Height(ctx drawctx.Context) (int32, error) {
	h, err := ctx.TextHeight()
	if err != nil {
		return 0, err
	}
	return h + 2, nil
}

// Layout computes the click zones for a bar spanning the monitor's full
// screen width at y, statusWidth wide status text flush right.
func Layout(ctx drawctx.Context, cfg *config.Config, screen geom.Rect, barY int32, barH int32,
	tagNames [9]string, ltSymbol, title, status string) (Zones, error) {

	var z Zones
	x := screen.X
	for _, name := range tagNames {
		if name == "" {
			continue
		}
		w, err := ctx.TextWidth(name)
		if err != nil {
			return z, err
		}
		w += 8
		z.Tags = append(z.Tags, geom.Rect{X: x, Y: barY, W: w, H: barH})
		x += w
	}

	ltw, err := ctx.TextWidth(ltSymbol)
	if err != nil {
		return z, err
	}
	ltw += 8
	z.LtSymbol = geom.Rect{X: x, Y: barY, W: ltw, H: barH}
	x += ltw

	statusW, err := ctx.TextWidth(status)
	if err != nil {
		return z, err
	}
	statusW += 8
	z.StatusText = geom.Rect{X: screen.X + screen.W - statusW, Y: barY, W: statusW, H: barH}

	titleW := screen.X + screen.W - statusW - x
	if titleW < 0 {
		titleW = 0
	}
	z.Title = geom.Rect{X: x, Y: barY, W: titleW, H: barH}
	return z, nil
}

// Draw paints one monitor's bar: occupied/urgent/selected tag cells, the
// layout symbol, the focused client's title, and the status text.
func Draw(ctx drawctx.Context, cfg *config.Config, m *model.Monitor,
	zones Zones, status string, schemes Schemes) error {

	occupied, urgent := tagState(m)
	cur := m.CurrentTagset()

	for i, rect := range zones.Tags {
		name := cfg.TagNames[i]
		scheme := schemes.Normal
		switch {
		case urgent&(1<<uint(i)) != 0:
			scheme = schemes.Urgent
		case cur&(model.TagMask(1)<<uint(i)) != 0:
			scheme = schemes.Selected
		}
		ctx.SetScheme(scheme)
		if _, err := ctx.Text(rect.X, rect.Y, rect.W, rect.H, name, occupied&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}

	ctx.SetScheme(schemes.Normal)
	if _, err := ctx.Text(zones.LtSymbol.X, zones.LtSymbol.Y, zones.LtSymbol.W, zones.LtSymbol.H, m.LtSymbol, false); err != nil {
		return err
	}

	title := ""
	if m.Selected != nil {
		title = m.Selected.Title
	}
	titleScheme := schemes.Normal
	if m.Selected != nil {
		titleScheme = schemes.Selected
	}
	ctx.SetScheme(titleScheme)
	if _, err := ctx.Text(zones.Title.X, zones.Title.Y, zones.Title.W, zones.Title.H, title, false); err != nil {
		return err
	}

	ctx.SetScheme(schemes.Normal)
	if _, err := ctx.Text(zones.StatusText.X, zones.StatusText.Y, zones.StatusText.W, zones.StatusText.H, status, false); err != nil {
		return err
	}
	return nil
}

// Schemes bundles the three color schemes a bar render needs.
type Schemes struct {
	Normal   drawctx.Scheme
	Selected drawctx.Scheme
	Urgent   drawctx.Scheme
}

// tagState computes, over every client on m (not just visible ones), which
// tag bits are occupied by at least one client and which are occupied by
// at least one urgent client.
func tagState(m *model.Monitor) (occupied, urgent uint32) {
	for _, c := range m.Clients() {
		for i := 0; i < model.MaxTags; i++ {
			bit := model.TagMask(1) << uint(i)
			if c.Tags&bit == 0 {
				continue
			}
			occupied |= 1 << uint(i)
			if c.IsUrgent {
				urgent |= 1 << uint(i)
			}
		}
	}
	return occupied, urgent
}

// ZoneAt classifies an x coordinate on the bar into a click zone. Returns
// (zone, tagIndex) where tagIndex is only meaningful for ZoneTagBar.
func ZoneAt(zones Zones, x int32) (zone config.ClickZone, tagIndex int) {
	for i, r := range zones.Tags {
		if x >= r.X && x < r.X+r.W {
			return config.ZoneTagBar, i
		}
	}
	if x >= zones.LtSymbol.X && x < zones.LtSymbol.X+zones.LtSymbol.W {
		return config.ZoneLtSymbol, -1
	}
	if x >= zones.StatusText.X && x < zones.StatusText.X+zones.StatusText.W {
		return config.ZoneStatusText, -1
	}
	return config.ZoneWinTitle, -1
}
