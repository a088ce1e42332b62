// Package layout implements the five tiling arrangers: tile, monocle,
// bstack, bstackhoriz, and the null (floating) layout. Each arranger
// consumes model.Monitor.VisibleTiled() and proposes rectangles through
// the model.ResizeFunc callback the wm package wires to its
// resize()/apply_size_hints pipeline; this package never issues X requests
// itself.
package layout

import "github.com/arortell/dwm/internal/model"

// Symbols match dwm's config.h layout array text exactly.
const (
	SymbolTile        = "[]="
	SymbolMonocle     = "[M]"
	SymbolBStack      = "TTT"
	SymbolBStackHoriz = "==="
	SymbolFloating    = "><>"
)

// Tile stacks up to NMaster clients vertically in a master column
// occupying MFact of the work width (or the full width when n <= NMaster),
// with the remainder stacked vertically in a second column.
func Tile(m *model.Monitor, resize model.ResizeFunc) {
	clients := m.VisibleTiled()
	n := len(clients)
	if n == 0 {
		return
	}
	area := m.WorkArea
	nmaster := m.NMaster
	if nmaster > n {
		nmaster = n
	}

	var masterW int32
	if n > nmaster {
		masterW = int32(float64(area.W) * m.MFact)
	} else {
		masterW = area.W
	}

	var my, ty int32
	for i, c := range clients {
		if i < nmaster {
			h := (area.H - my) / int32(nmaster-i)
			resize(c, area.X, area.Y+my, masterW-2*c.BorderWidth, h-2*c.BorderWidth, false)
			my += effectiveHeight(c, h)
		} else {
			h := (area.H - ty) / int32(n-i)
			resize(c, area.X+masterW, area.Y+ty, area.W-masterW-2*c.BorderWidth, h-2*c.BorderWidth, false)
			ty += effectiveHeight(c, h)
		}
	}
}

// Monocle places every visible client at the full work area and rewrites
// the layout symbol to "[n]".
func Monocle(m *model.Monitor, resize model.ResizeFunc) {
	clients := m.VisibleTiled()
	m.LtSymbol = monocleSymbol(len(clients))
	area := m.WorkArea
	for _, c := range clients {
		resize(c, area.X, area.Y, area.W-2*c.BorderWidth, area.H-2*c.BorderWidth, false)
	}
}

func monocleSymbol(n int) string {
	digits := [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	if n < 10 {
		return "[" + digits[n] + "]"
	}
	return "[n]"
}

// BStack lays masters across the top row (height MFact*workHeight when
// there is an overflow of stack clients) and divides the remaining
// clients across the bottom row by width.
func BStack(m *model.Monitor, resize model.ResizeFunc) {
	clients := m.VisibleTiled()
	n := len(clients)
	if n == 0 {
		return
	}
	area := m.WorkArea
	nmaster := m.NMaster
	if nmaster > n {
		nmaster = n
	}

	var masterH int32
	if n > nmaster {
		masterH = int32(float64(area.H) * m.MFact)
	} else {
		masterH = area.H
	}

	var mx, tx int32
	for i, c := range clients {
		if i < nmaster {
			w := (area.W - mx) / int32(nmaster-i)
			resize(c, area.X+mx, area.Y, w-2*c.BorderWidth, masterH-2*c.BorderWidth, false)
			mx += effectiveWidth(c, w)
		} else {
			w := (area.W - tx) / int32(n-i)
			resize(c, area.X+tx, area.Y+masterH, w-2*c.BorderWidth, area.H-masterH-2*c.BorderWidth, false)
			tx += effectiveWidth(c, w)
		}
	}
}

// BStackHoriz is bstack's sibling: masters across the top row, stack
// clients filling the bottom as horizontal rows divided by height instead
// of width.
func BStackHoriz(m *model.Monitor, resize model.ResizeFunc) {
	clients := m.VisibleTiled()
	n := len(clients)
	if n == 0 {
		return
	}
	area := m.WorkArea
	nmaster := m.NMaster
	if nmaster > n {
		nmaster = n
	}

	var masterH int32
	if n > nmaster {
		masterH = int32(float64(area.H) * m.MFact)
	} else {
		masterH = area.H
	}

	var mx, ty int32
	for i, c := range clients {
		if i < nmaster {
			w := (area.W - mx) / int32(nmaster-i)
			resize(c, area.X+mx, area.Y, w-2*c.BorderWidth, masterH-2*c.BorderWidth, false)
			mx += effectiveWidth(c, w)
		} else {
			h := (area.H - masterH - ty) / int32(n-i)
			resize(c, area.X, area.Y+masterH+ty, area.W-2*c.BorderWidth, h-2*c.BorderWidth, false)
			ty += effectiveHeight(c, h)
		}
	}
}

// effectiveHeight/effectiveWidth account for clients whose applied size
// hints grew the rectangle beyond what was proposed (e.g. a fixed aspect
// ratio); dwm's tilers advance the cursor by c->h/c->w post-resize rather
// than the proposed h/w so later siblings don't overlap.
func effectiveHeight(c *model.Client, proposed int32) int32 {
	if c.H+2*c.BorderWidth > proposed {
		return c.H + 2*c.BorderWidth
	}
	return proposed
}

func effectiveWidth(c *model.Client, proposed int32) int32 {
	if c.W+2*c.BorderWidth > proposed {
		return c.W + 2*c.BorderWidth
	}
	return proposed
}

// Table returns all five layouts in dwm's canonical order, including the
// trailing floating entry (a model.Layout with a nil Arrange field, since
// floating mode runs no tiling pass).
func Table() []model.Layout {
	return []model.Layout{
		{Symbol: SymbolTile, Arrange: Tile},
		{Symbol: SymbolMonocle, Arrange: Monocle},
		{Symbol: SymbolBStack, Arrange: BStack},
		{Symbol: SymbolBStackHoriz, Arrange: BStackHoriz},
		{Symbol: SymbolFloating, Arrange: nil},
	}
}
