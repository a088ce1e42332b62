package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/bar"
	"github.com/arortell/dwm/internal/config"
	"github.com/arortell/dwm/internal/drawctx"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/x11"
)

// ensureBar creates (or resizes) monitor m's bar window and draw context.
func (wm *WM) ensureBar(m *model.Monitor) error {
	b, ok := wm.bars[m]
	screen := m.ScreenArea
	if !ok {
		win, err := x11.NewWindowId()
		if err != nil {
			return err
		}
		y := screen.Y
		if !m.TopBar {
			y = screen.Y + screen.H - barHeightFallback
		}
		if err := x11.CreateSimpleWindow(win, screen.X, y, uint16(screen.W), uint16(barHeightFallback)); err != nil {
			return err
		}
		ctx, err := drawctx.Create(win, uint32(screen.W), uint32(barHeightFallback))
		if err != nil {
			return err
		}
		if err := ctx.LoadFont(firstOr(wm.cfg.Fonts, "fixed")); err != nil {
			return err
		}
		if m.ShowBar {
			x11.MapWindow(win)
		}
		b = &barState{win: win, ctx: ctx}
		wm.bars[m] = b
	}

	h, err := bar.Height(b.ctx)
	if err != nil || h <= 0 {
		h = barHeightFallback
	}
	b.height = h
	m.WorkArea = workArea(screen, m.ShowBar, h)

	y := screen.Y
	if !m.TopBar {
		y = screen.Y + screen.H - h
	}
	m.BarY = y
	if err := x11.ConfigureWindow(b.win, xproto.ConfigWindowX|xproto.ConfigWindowY|
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(screen.X), uint32(y), uint32(screen.W), uint32(h)}); err != nil {
		return err
	}
	return b.ctx.Resize(uint32(screen.W), uint32(h))
}

func firstOr(names []string, fallback string) string {
	if len(names) > 0 {
		return names[0]
	}
	return fallback
}

// redrawBar recomputes click zones and repaints one monitor's bar.
func (wm *WM) redrawBar(m *model.Monitor) {
	b, ok := wm.bars[m]
	if !ok || !m.ShowBar {
		return
	}
	zones, err := bar.Layout(b.ctx, &wm.cfg, m.ScreenArea, 0, b.height, wm.cfg.TagNames, m.LtSymbol,
		selectedTitle(m), wm.statusTxt)
	if err != nil {
		return
	}
	b.zones = zones
	schemes := bar.Schemes{
		Normal:   colorsToScheme(wm.cfg.NormalColors),
		Selected: colorsToScheme(wm.cfg.SelectedColors),
		Urgent:   colorsToScheme(wm.cfg.UrgentColors),
	}
	if err := bar.Draw(b.ctx, &wm.cfg, m, zones, wm.statusTxt, schemes); err != nil {
		return
	}
	b.ctx.Map(b.win, 0, 0, m.ScreenArea.W, b.height)
}

// redrawAllBars repaints every monitor's bar: called on focus changes,
// WM_HINTS urgency changes, and a root WM_NAME update.
func (wm *WM) redrawAllBars() {
	for _, m := range wm.monitors {
		wm.redrawBar(m)
	}
}

func selectedTitle(m *model.Monitor) string {
	if m.Selected != nil {
		return m.Selected.Title
	}
	return ""
}

func colorsToScheme(c config.Colors) drawctx.Scheme {
	border, _ := drawctx.ParseColor(c.Border)
	bg, _ := drawctx.ParseColor(c.Background)
	fg, _ := drawctx.ParseColor(c.Foreground)
	return drawctx.Scheme{Border: border, Background: bg, Foreground: fg}
}

// zoneAt classifies an x coordinate on monitor m's bar, returning the
// config.ClickZone and (for ZoneTagBar) the tag index.
func zoneAt(b *barState, x int32) (config.ClickZone, int) {
	return bar.ZoneAt(b.zones, x)
}
