// Package model holds the client/monitor/tag data structures and their
// attach/detach invariants. It issues no X requests and has no drawing
// dependencies (xgb/xproto is imported only for the window id type):
// everything here is plain data plus the list/bitmask arithmetic that the
// rest of the window manager mutates.
package model

import "github.com/BurntSushi/xgb/xproto"

// MaxTags bounds the tag bitmask width to fewer than 32 tags.
const MaxTags = 9

// TagMask is a bitmask over the MaxTags tags. All 1s means "all tags".
type TagMask uint32

// AllTags is the bitmask matching every tag.
const AllTags TagMask = (1 << MaxTags) - 1

// Client is one managed top-level X window.
type Client struct {
	Window xproto.Window
	Parent xproto.Window // reparented decoration window, 0 if none

	Title string // truncated to MaxTitleLen code units

	X, Y, W, H             int32
	OldX, OldY, OldW, OldH int32

	BaseW, BaseH int32
	IncW, IncH   int32
	MinW, MinH   int32
	MaxW, MaxH   int32
	MinAspect    float64
	MaxAspect    float64

	BorderWidth    int32
	OldBorderWidth int32

	Tags TagMask

	IsFixed      bool
	IsFloating   bool
	IsUrgent     bool
	NeverFocus   bool
	IsFullscreen bool

	// OldState is the pre-fullscreen IsFloating value, restored on exit.
	OldState bool

	Monitor *Monitor // weak back-reference; never followed after Unmanage

	next  *Client // client-list successor (creation order)
	snext *Client // focus-stack successor (MRU order)
}

// MaxTitleLen is the ICCCM-adjacent cap applied to title text.
const MaxTitleLen = 255

// SetTitle truncates and stores a window title.
func (c *Client) SetTitle(title string) {
	r := []rune(title)
	if len(r) > MaxTitleLen {
		r = r[:MaxTitleLen]
	}
	c.Title = string(r)
}

// IsVisible reports whether c is visible on its monitor's current tagset:
// (client.tags & monitor.tagset[seltags]) != 0.
func (c *Client) IsVisible() bool {
	if c.Monitor == nil {
		return false
	}
	return c.Tags&c.Monitor.CurrentTagset() != 0
}

// BorderedW/BorderedH return the full on-screen extent including both borders,
// used by geometry clamps that reason in border-inclusive terms.
func (c *Client) BorderedW() int32 { return c.W + 2*c.BorderWidth }
func (c *Client) BorderedH() int32 { return c.H + 2*c.BorderWidth }

// SaveGeometry snapshots the current geometry into the Old* fields, as
// resize_client does before committing a new rectangle.
func (c *Client) SaveGeometry() {
	c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
}
