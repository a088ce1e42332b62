package model

import "github.com/arortell/dwm/internal/geom"

// ResizeFunc is how an arranger proposes a new client rectangle; bound by
// the wm package to its resize()/apply_size_hints pipeline so this
// package stays free of X calls.
type ResizeFunc func(c *Client, x, y, w, h int32, interact bool)

// Layout pairs a status-bar symbol with an arranger. A nil Arrange means
// floating mode: no tiling pass runs.
type Layout struct {
	Symbol  string
	Arrange func(m *Monitor, resize ResizeFunc)
}

// Monitor is a physical output, or the whole screen with multi-head
// disabled.
type Monitor struct {
	Index int

	ScreenArea geom.Rect // x,y,w,h of the full output
	WorkArea   geom.Rect // ScreenArea minus the bar
	BarY       int32

	Tagset   [2]TagMask
	SelTags  int

	MFact   float64
	NMaster int

	ShowBar bool
	TopBar  bool

	Lt         [2]Layout
	SelLt      int
	LtSymbol   string

	BarWindow uint32 // xproto.Window, kept as uint32 to avoid an x11 import

	clients *Client // head of the creation-order list
	stack   *Client // head of the MRU focus stack

	Selected *Client
}

// NewMonitor constructs a Monitor with the given screen geometry and
// defaults from cfg-independent zero values; callers (wm.setup /
// topology rebuild) fill in MFact/NMaster/layouts/tag defaults.
func NewMonitor(index int, screen geom.Rect) *Monitor {
	m := &Monitor{
		Index:      index,
		ScreenArea: screen,
		WorkArea:   screen,
		Tagset:     [2]TagMask{1, 1},
		MFact:      0.55,
		NMaster:    1,
		ShowBar:    true,
		TopBar:     true,
	}
	return m
}

// CurrentTagset returns the active tagset bitmask.
func (m *Monitor) CurrentTagset() TagMask { return m.Tagset[m.SelTags] }

// Clients returns the creation-order client list as a slice snapshot. The
// underlying storage stays a singly-linked list; the slice is for callers
// that want to range without manual pointer-chasing.
func (m *Monitor) Clients() []*Client {
	var out []*Client
	for c := m.clients; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// Stack returns the MRU focus-stack snapshot.
func (m *Monitor) Stack() []*Client {
	var out []*Client
	for c := m.stack; c != nil; c = c.snext {
		out = append(out, c)
	}
	return out
}

// Attach prepends c to the monitor's client list.
func (m *Monitor) Attach(c *Client) {
	c.Monitor = m
	c.next = m.clients
	m.clients = c
}

// Detach splices c out of the monitor's client list.
func (m *Monitor) Detach(c *Client) {
	if m.clients == c {
		m.clients = c.next
		c.next = nil
		return
	}
	for p := m.clients; p != nil; p = p.next {
		if p.next == c {
			p.next = c.next
			c.next = nil
			return
		}
	}
}

// AttachStack prepends c to the monitor's MRU focus stack.
func (m *Monitor) AttachStack(c *Client) {
	c.snext = m.stack
	m.stack = c
}

// DetachStack splices c out of the focus stack and, if c was Selected,
// promotes the first visible successor (or nil) to Selected.
func (m *Monitor) DetachStack(c *Client) {
	if m.stack == c {
		m.stack = c.snext
	} else {
		for p := m.stack; p != nil; p = p.snext {
			if p.snext == c {
				p.snext = c.snext
				break
			}
		}
	}
	c.snext = nil

	if m.Selected == c {
		for s := m.stack; s != nil; s = s.snext {
			if s.IsVisible() {
				m.Selected = s
				return
			}
		}
		m.Selected = nil
	}
}

// NextTiled advances from c (inclusive) past floating or invisible
// clients, returning the first tileable client at or after c. Arrangers
// always iterate through this filter.
func NextTiled(c *Client) *Client {
	for c != nil && (c.IsFloating || !c.IsVisible()) {
		c = c.next
	}
	return c
}

// VisibleTiled returns every tiled, visible client on the monitor, in
// creation order, as the arrangers consume them.
func (m *Monitor) VisibleTiled() []*Client {
	var out []*Client
	for c := NextTiled(m.clients); c != nil; c = NextTiled(c.next) {
		out = append(out, c)
	}
	return out
}

// FirstTiled returns the first tiled, visible client in the monitor's
// creation-order list, or nil.
func (m *Monitor) FirstTiled() *Client {
	return NextTiled(m.clients)
}

// NextTiledAfter returns the first tiled, visible client strictly after
// c in the monitor's creation-order list, or nil. Used by zoom to find the
// next master-candidate without exposing the client list's internal
// linkage outside this package.
func (m *Monitor) NextTiledAfter(c *Client) *Client {
	if c == nil {
		return nil
	}
	return NextTiled(c.next)
}

// Arrange runs the monitor's currently selected layout, unless it is the
// null (floating-mode) arranger.
func (m *Monitor) Arrange(resize ResizeFunc) {
	lt := m.Lt[m.SelLt]
	if lt.Arrange != nil {
		lt.Arrange(m, resize)
	}
}
