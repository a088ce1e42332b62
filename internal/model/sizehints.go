package model

import "github.com/arortell/dwm/internal/geom"

// WireHints mirrors x11.SizeHints field-for-field so this package can
// consume a decoded WM_NORMAL_HINTS without importing the x11 transport
// package (model never imports internal/x11).
type WireHints struct {
	BaseW, BaseH int32
	IncW, IncH   int32
	MinW, MinH   int32
	MaxW, MaxH   int32
	MinAspect    float64
	MaxAspect    float64
	HasAspect    bool
	HasMin       bool
	HasMax       bool
	HasBase      bool
	HasInc       bool
}

// UpdateSizeHints stores decoded WM_NORMAL_HINTS fields and recomputes
// IsFixed (min == max on both axes).
func (c *Client) UpdateSizeHints(h WireHints) {
	if h.HasBase {
		c.BaseW, c.BaseH = h.BaseW, h.BaseH
	} else {
		c.BaseW, c.BaseH = 0, 0
	}
	if h.HasInc {
		c.IncW, c.IncH = h.IncW, h.IncH
	} else {
		c.IncW, c.IncH = 0, 0
	}
	if h.HasMax {
		c.MaxW, c.MaxH = h.MaxW, h.MaxH
	} else {
		c.MaxW, c.MaxH = 0, 0
	}
	if h.HasMin {
		c.MinW, c.MinH = h.MinW, h.MinH
	} else if h.HasBase {
		c.MinW, c.MinH = h.BaseW, h.BaseH
	} else {
		c.MinW, c.MinH = 0, 0
	}
	if h.HasAspect {
		c.MinAspect, c.MaxAspect = h.MinAspect, h.MaxAspect
	} else {
		c.MinAspect, c.MaxAspect = 0, 0
	}
	c.IsFixed = c.MaxW > 0 && c.MaxH > 0 && c.MaxW == c.MinW && c.MaxH == c.MinH
}

// ApplySizeHints clamps a proposed geometry to screen or work area,
// enforces a bar-height floor, and, when
// hint semantics apply (resizeHints, or floating, or no tiling arranger),
// re-derives the rectangle from base size / aspect ratio / increment.
// Returns the adjusted geometry and whether it differs from c's current
// geometry — callers resize only when changed is true.
func (c *Client) ApplySizeHints(x, y, w, h int32, interact, resizeHints, floating, arrangerNil bool,
	screen, work geom.Rect, barHeight int32) (nx, ny, nw, nh int32, changed bool) {

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if interact {
		if x > screen.X+screen.W {
			x = screen.X + screen.W - w
		}
		if y > screen.Y+screen.H {
			y = screen.Y + screen.H - h
		}
		if x+w+2*c.BorderWidth < screen.X {
			x = screen.X
		}
		if y+h+2*c.BorderWidth < screen.Y {
			y = screen.Y
		}
	} else {
		if x >= work.X+work.W {
			x = work.X + work.W - w
		}
		if y >= work.Y+work.H {
			y = work.Y + work.H - h
		}
		if x+w+2*c.BorderWidth <= work.X {
			x = work.X
		}
		if y+h+2*c.BorderWidth <= work.Y {
			y = work.Y
		}
	}

	if h < barHeight {
		h = barHeight
	}
	if w < barHeight {
		w = barHeight
	}

	if resizeHints || floating || arrangerNil {
		baseIsMin := c.BaseW == c.MinW && c.BaseH == c.MinH
		if !baseIsMin {
			w -= c.BaseW
			h -= c.BaseH
		}

		if c.MinAspect > 0 || c.MaxAspect > 0 {
			switch {
			case c.MaxAspect > 0 && float64(w)/float64(h) > c.MaxAspect:
				w = int32(float64(h) * c.MaxAspect)
			case c.MinAspect > 0 && float64(w)/float64(h) < c.MinAspect:
				h = int32(float64(w) / c.MinAspect)
			}
		}

		if baseIsMin {
			w -= c.BaseW
			h -= c.BaseH
		}

		if c.IncW > 0 {
			w -= w % c.IncW
		}
		if c.IncH > 0 {
			h -= h % c.IncH
		}

		w += c.BaseW
		h += c.BaseH

		if c.MinW > 0 && w < c.MinW {
			w = c.MinW
		}
		if c.MinH > 0 && h < c.MinH {
			h = c.MinH
		}
		if c.MaxW > 0 && w > c.MaxW {
			w = c.MaxW
		}
		if c.MaxH > 0 && h > c.MaxH {
			h = c.MaxH
		}
	}

	changed = x != c.X || y != c.Y || w != c.W || h != c.H
	return x, y, w, h, changed
}
