package model

import "github.com/arortell/dwm/internal/geom"

// DedupeScreens removes duplicate geometries, matching dwm's Xinerama
// screen-info dedupe in updategeom.
func DedupeScreens(screens []geom.Rect) []geom.Rect {
	var out []geom.Rect
	for _, s := range screens {
		dup := false
		for _, o := range out {
			if o == s {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// RebuildTopology grows or shrinks monitors to match the deduplicated
// screen list. On growth, newMonitor is invoked for each new index. On
// shrink, every orphaned monitor's clients are migrated onto monitors[0]
// (detach/attach on both lists, back-reference updated) before the
// monitor is dropped. Returns the new monitor slice, whether anything
// changed, and monitors[0] (nil when there are no monitors) as the
// selection for a caller whose selected monitor was dropped.
func RebuildTopology(monitors []*Monitor, screens []geom.Rect, newMonitor func(i int, screen geom.Rect) *Monitor) (out []*Monitor, dirty bool, selected *Monitor) {
	screens = DedupeScreens(screens)
	n := len(screens)

	for len(monitors) < n {
		monitors = append(monitors, newMonitor(len(monitors), screens[len(monitors)]))
		dirty = true
	}
	for len(monitors) > n && len(monitors) > 0 {
		last := monitors[len(monitors)-1]
		migrateClients(last, monitors[0])
		monitors = monitors[:len(monitors)-1]
		dirty = true
	}
	for i := 0; i < n && i < len(monitors); i++ {
		if monitors[i].ScreenArea != screens[i] {
			monitors[i].ScreenArea = screens[i]
			monitors[i].WorkArea = screens[i]
			dirty = true
		}
	}
	if len(monitors) == 0 {
		return monitors, dirty, nil
	}
	return monitors, dirty, monitors[0]
}

// migrateClients moves every client owned by from onto to, walking from's
// focus stack head first and prepending each client to both of to's
// lists, so the migrated clients end up at the head in reverse stack order.
func migrateClients(from, to *Monitor) {
	for c := from.stack; c != nil; {
		next := c.snext
		from.Detach(c)
		from.DetachStack(c)
		to.Attach(c)
		to.AttachStack(c)
		c.Monitor = to
		c = next
	}
	if to.Selected == nil {
		to.Selected = to.stack
	}
}
