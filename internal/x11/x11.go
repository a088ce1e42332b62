// Package x11 is the thin transport boundary between the window manager
// core and the X server: connection lifecycle, the atom table, property
// get/set, and window configuration requests. A package-level *xgb.Conn
// and *xproto.ScreenInfo back small Atom/GetWindowTitle/SetWMName helpers
// covering the full atom table EWMH/ICCCM requires.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/wmlog"
)

// X is the process-wide X connection. Created once by CreateConnection,
// closed once on shutdown.
var X *xgb.Conn

// Screen is the root screen of the connection's default screen.
var Screen *xproto.ScreenInfo

// Root is a shorthand for Screen.Root.
var Root xproto.Window

var atomCache = map[string]xproto.Atom{}

// CreateConnection opens the X connection. It must be called before Init.
func CreateConnection() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("x11: failed to connect to X server: %w", err)
	}
	X = conn
	return nil
}

// InitConnection finishes connection setup: resolves the default screen and
// primes the well-known atom table.
func InitConnection() error {
	setup := xproto.Setup(X)
	if setup == nil || len(setup.Roots) < 1 {
		return fmt.Errorf("x11: could not parse X setup info")
	}
	Screen = &setup.Roots[0]
	Root = Screen.Root
	for _, name := range wellKnownAtoms {
		if _, err := internAtom(name); err != nil {
			return fmt.Errorf("x11: failed to intern atom %s: %w", name, err)
		}
	}
	return nil
}

// Close releases the X connection.
func Close() {
	if X != nil {
		X.Close()
	}
}

// Atom returns the cached atom id for name, interning it on first use.
func Atom(name string) xproto.Atom {
	if a, ok := atomCache[name]; ok {
		return a
	}
	a, err := internAtom(name)
	if err != nil {
		wmlog.Log.WithError(err).WithField("atom", name).Error("x11: failed to intern atom")
		return xproto.AtomNone
	}
	return a
}

func internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	atomCache[name] = reply.Atom
	return reply.Atom, nil
}

// HasXinerama reports whether the Xinerama extension is present and active.
func HasXinerama() bool {
	if err := xinerama.Init(X); err != nil {
		return false
	}
	reply, err := xinerama.IsActive(X).Reply()
	return err == nil && reply.State != 0
}

// QueryScreens returns the Xinerama screen list; deduplication by geometry
// is left to the caller (internal/model topology code).
func QueryScreens() ([]xinerama.ScreenInfo, error) {
	reply, err := xinerama.QueryScreens(X).Reply()
	if err != nil {
		return nil, err
	}
	return reply.ScreenInfo, nil
}

// Sync flushes the request queue and blocks until the server has processed
// every previously submitted request. Used after ConfigureWindow batches.
func Sync() {
	xproto.GetInputFocus(X).Reply()
}
