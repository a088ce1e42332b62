package x11

import "github.com/BurntSushi/xgb/xproto"

// Standard glyph indices from the X core "cursor" font (X11/cursorfont.h).
const (
	GlyphNormal = 68  // XC_left_ptr
	GlyphResize = 120 // XC_sizing
	GlyphMove   = 52  // XC_fleur
)

var cursorFont xproto.Font

// CreateCursor builds a cursor from the core cursor font, opening the font
// on first use. Mirrors the classic Xlib XCreateFontCursor dwm relies on
// for its normal/resize/move cursor trio.
func CreateCursor(glyph uint16) (xproto.Cursor, error) {
	if cursorFont == 0 {
		fid, err := xproto.NewFontId(X)
		if err != nil {
			return 0, err
		}
		if err := xproto.OpenFontChecked(X, fid, uint16(len("cursor")), "cursor").Check(); err != nil {
			return 0, err
		}
		cursorFont = fid
	}
	cid, err := xproto.NewCursorId(X)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateGlyphCursorChecked(X, cid, cursorFont, cursorFont, glyph, glyph+1,
		0, 0, 0, 0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, err
	}
	return cid, nil
}

// FreeCursor releases a cursor created by CreateCursor.
func FreeCursor(c xproto.Cursor) error {
	return xproto.FreeCursorChecked(X, c).Check()
}
