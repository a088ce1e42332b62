// Package geom holds the pure rectangle arithmetic shared by the layout
// engine, the monitor-topology code, and the interactive move/resize loops:
// intersection area, point containment, and snap-to-edge math. None of it
// touches X — it is kept dependency-free so it can be unit tested without a
// display connection.
package geom

// Rect is an integer rectangle in root-window coordinates.
type Rect struct {
	X, Y int32
	W, H int32
}

// Contains reports whether the point (x, y) lies within r.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// IntersectArea returns the area of the overlap between r and other, 0 if
// they do not overlap. Used to pick "the monitor containing most of this
// client's rectangle" the way dwm's recttomon does.
func (r Rect) IntersectArea(other Rect) int64 {
	x1, y1 := max32(r.X, other.X), max32(r.Y, other.Y)
	x2, y2 := min32(r.X+r.W, other.X+other.W), min32(r.Y+r.H, other.Y+other.H)
	w, h := x2-x1, y2-y1
	if w <= 0 || h <= 0 {
		return 0
	}
	return int64(w) * int64(h)
}

// CenterX and CenterY return the rectangle's midpoint, used for pointer
// warps.
func (r Rect) CenterX() int32 { return r.X + r.W/2 }
func (r Rect) CenterY() int32 { return r.Y + r.H/2 }

// Clamp returns (x, y) moved so that a w x h rectangle placed there lies
// fully within r (best-effort: only translates, never shrinks).
func (r Rect) Clamp(x, y, w, h int32) (int32, int32) {
	if x+w > r.X+r.W {
		x = r.X + r.W - w
	}
	if y+h > r.Y+r.H {
		y = r.Y + r.H - h
	}
	if x < r.X {
		x = r.X
	}
	if y < r.Y {
		y = r.Y
	}
	return x, y
}

// Snap adjusts a single proposed coordinate pair towards the edges of
// bounds when within snap pixels, matching dwm's resizemouse/movemouse
// snapping behavior.
func Snap(x, y, w, h int32, bounds Rect, snap int32) (int32, int32) {
	if abs32(x-bounds.X) < snap {
		x = bounds.X
	} else if abs32((bounds.X+bounds.W)-(x+w)) < snap {
		x = bounds.X + bounds.W - w
	}
	if abs32(y-bounds.Y) < snap {
		y = bounds.Y
	} else if abs32((bounds.Y+bounds.H)-(y+h)) < snap {
		y = bounds.Y + bounds.H - h
	}
	return x, y
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
