// Package drawctx is the one concrete implementation this repo ships for
// the "Draw Adapter" collaborator interface (text/font/rectangle drawing,
// color allocation). The interface boundary is kept (internal/bar only
// ever talks to the Context interface) so an alternate font-rendering
// backend could be substituted without touching internal/bar; this
// implementation uses only core X protocol drawing requests (no
// Xft/fontconfig), the same "no X extension beyond what's strictly
// needed" posture marwind's own x11 package takes.
package drawctx

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/x11"
)

// Scheme is three allocated pixel values: border, background, foreground.
// Matches the Draw Adapter's set_scheme contract.
type Scheme struct {
	Border     uint32
	Background uint32
	Foreground uint32
}

// Context is the Draw Adapter boundary: text_width, draw_text, draw_rect,
// map, resize, set_scheme, free. internal/bar depends only on this
// interface.
type Context interface {
	Resize(w, h uint32) error
	Free()
	LoadFont(name string) error
	SetScheme(s Scheme)
	TextWidth(text string) (int32, error)
	TextHeight() (int32, error)
	Text(x, y, w, h int32, text string, invert bool) (int32, error)
	Rect(x, y, w, h int32, filled, invert bool) error
	Map(win xproto.Window, x, y, w, h int32)
}

// XContext is the core-protocol-only implementation: an off-screen pixmap
// the size of the bar, a graphics context, and a single core font.
type XContext struct {
	win      xproto.Window
	pixmap   xproto.Pixmap
	gc       xproto.Gcontext
	font     xproto.Font
	w, h     uint32
	scheme   Scheme
}

// Create allocates the pixmap/gc backing a bar window of size w x h,
// matching the Draw Adapter's create(display, screen, root, w, h)
// contract.
func Create(win xproto.Window, w, h uint32) (*XContext, error) {
	ctx := &XContext{win: win, w: w, h: h}
	if err := ctx.allocatePixmap(w, h); err != nil {
		return nil, err
	}
	gid, err := xproto.NewGcontextId(x11.X)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateGCChecked(x11.X, gid, xproto.Drawable(ctx.pixmap), 0, nil).Check(); err != nil {
		return nil, err
	}
	ctx.gc = gid
	return ctx, nil
}

func (c *XContext) allocatePixmap(w, h uint32) error {
	pid, err := xproto.NewPixmapId(x11.X)
	if err != nil {
		return err
	}
	if err := xproto.CreatePixmapChecked(x11.X, x11.Screen.RootDepth, pid,
		xproto.Drawable(x11.Root), uint16(w), uint16(h)).Check(); err != nil {
		return err
	}
	if c.pixmap != 0 {
		xproto.FreePixmapChecked(x11.X, c.pixmap).Check()
	}
	c.pixmap = pid
	c.w, c.h = w, h
	return nil
}

// Resize reallocates the backing pixmap for a new bar size.
func (c *XContext) Resize(w, h uint32) error {
	return c.allocatePixmap(w, h)
}

// Free releases the pixmap, gc, and font.
func (c *XContext) Free() {
	if c.gc != 0 {
		xproto.FreeGCChecked(x11.X, c.gc).Check()
	}
	if c.pixmap != 0 {
		xproto.FreePixmapChecked(x11.X, c.pixmap).Check()
	}
	if c.font != 0 {
		xproto.CloseFontChecked(x11.X, c.font).Check()
	}
}

// LoadFont opens a core X font by name. Only the first configured font is
// honored here: font fallback chains are the one piece of the Draw
// Adapter's surface this minimal implementation does not attempt, since
// core X fonts don't support fontconfig-style fallback the way Xft would.
func (c *XContext) LoadFont(name string) error {
	if name == "" {
		name = "fixed"
	}
	fid, err := xproto.NewFontId(x11.X)
	if err != nil {
		return err
	}
	if err := xproto.OpenFontChecked(x11.X, fid, uint16(len(name)), name).Check(); err != nil {
		// fall back to the guaranteed-present "fixed" font.
		fid2, err2 := xproto.NewFontId(x11.X)
		if err2 != nil {
			return err
		}
		if err3 := xproto.OpenFontChecked(x11.X, fid2, 5, "fixed").Check(); err3 != nil {
			return fmt.Errorf("drawctx: failed to open font %q or fallback: %w", name, err)
		}
		fid = fid2
	}
	c.font = fid
	return xproto.ChangeGCChecked(x11.X, c.gc, xproto.GcFont, []uint32{uint32(fid)}).Check()
}

// SetScheme selects the border/background/foreground pixels subsequent
// Rect/Text calls paint with.
func (c *XContext) SetScheme(s Scheme) {
	c.scheme = s
}

// TextWidth queries the pixel width a string would occupy in the current
// font.
func (c *XContext) TextWidth(text string) (int32, error) {
	reply, err := xproto.QueryTextExtents(x11.X, xproto.Fontable(c.font), uint32(len(text)), toChar2b(text)).Reply()
	if err != nil {
		return 0, err
	}
	return int32(reply.OverallWidth), nil
}

// TextHeight returns the font's ascent+descent, used to size the bar.
func (c *XContext) TextHeight() (int32, error) {
	reply, err := xproto.QueryFont(x11.X, xproto.Fontable(c.font)).Reply()
	if err != nil {
		return 0, err
	}
	return int32(reply.FontAscent) + int32(reply.FontDescent), nil
}

// Rect fills or outlines a rectangle with the scheme's background (or
// foreground, when invert is set), matching the Draw Adapter's
// rect(x,y,w,h,filled,empty,invert) contract.
func (c *XContext) Rect(x, y, w, h int32, filled, invert bool) error {
	pixel := c.scheme.Background
	if invert {
		pixel = c.scheme.Foreground
	}
	if err := xproto.ChangeGCChecked(x11.X, c.gc, xproto.GcForeground, []uint32{pixel}).Check(); err != nil {
		return err
	}
	rect := xproto.Rectangle{X: int16(x), Y: int16(y), Width: uint16(w), Height: uint16(h)}
	if filled {
		return xproto.PolyFillRectangleChecked(x11.X, xproto.Drawable(c.pixmap), c.gc, []xproto.Rectangle{rect}).Check()
	}
	return xproto.PolyRectangleChecked(x11.X, xproto.Drawable(c.pixmap), c.gc, []xproto.Rectangle{rect}).Check()
}

// Text draws text left-aligned within (x,y,w,h), background-filling the
// cell first, and returns the pixel width consumed.
func (c *XContext) Text(x, y, w, h int32, text string, invert bool) (int32, error) {
	bg, fg := c.scheme.Background, c.scheme.Foreground
	if invert {
		bg, fg = fg, bg
	}
	if err := c.Rect(x, y, w, h, true, invert); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	if err := xproto.ChangeGCChecked(x11.X, c.gc, xproto.GcForeground|xproto.GcBackground,
		[]uint32{fg, bg}).Check(); err != nil {
		return 0, err
	}
	baseline := y + h - h/4
	if err := xproto.ImageText8Checked(x11.X, byte(len(text)), xproto.Drawable(c.pixmap), c.gc,
		int16(x+2), int16(baseline), text).Check(); err != nil {
		return 0, err
	}
	return c.TextWidth(text)
}

// Map blits the drawn pixmap region onto the real bar window, matching the
// Draw Adapter's map(window, x, y, w, h) contract.
func (c *XContext) Map(win xproto.Window, x, y, w, h int32) {
	xproto.CopyAreaChecked(x11.X, xproto.Drawable(c.pixmap), xproto.Drawable(win), c.gc,
		int16(x), int16(y), int16(x), int16(y), uint16(w), uint16(h)).Check()
}

func toChar2b(s string) []xproto.Char2b {
	out := make([]xproto.Char2b, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = xproto.Char2b{Byte1: 0, Byte2: s[i]}
	}
	return out
}

// ParseColor turns a "#rrggbb" hex string into a TrueColor pixel value,
// standing in for the Draw Adapter's color_create: this assumes a
// 24/32-bit TrueColor visual, which is what virtually every modern X
// server exposes as its default, and is the one simplification documented
// in DESIGN.md since full visual-aware color allocation (XAllocColor
// against an arbitrary colormap) needs Xlib/XCB color management this
// repo's minimal core-protocol Draw Adapter doesn't carry.
func ParseColor(hex string) (uint32, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, fmt.Errorf("drawctx: invalid color %q, want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("drawctx: invalid color %q: %w", hex, err)
	}
	return uint32(v), nil
}
