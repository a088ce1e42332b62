// Package wm is the window manager core: the event dispatch loop and
// state machine, manage/unmanage, focus/restack, fullscreen transitions,
// monitor topology, interactive move/resize, and the command primitives
// bound to keys and buttons. A single struct owns all mutable state;
// New()/Init()/Run()/Close() stage the X connection up and tear it down,
// and a blocking WaitForEvent loop dispatches by event type.
package wm

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/bar"
	"github.com/arortell/dwm/internal/config"
	"github.com/arortell/dwm/internal/drawctx"
	"github.com/arortell/dwm/internal/geom"
	"github.com/arortell/dwm/internal/keymap"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/wmlog"
	"github.com/arortell/dwm/internal/x11"
)

// barState is the per-monitor bar window plus its draw context and last
// computed click zones, kept alongside the model.Monitor it belongs to.
type barState struct {
	win    xproto.Window
	ctx    drawctx.Context
	zones  bar.Zones
	height int32
}

// WM is the single process-wide context record Design Notes §9 calls for:
// the X connection lives in internal/x11's package globals, but every
// other piece of mutable state — monitor list, selection, key bindings,
// running flag — is captured here and threaded explicitly into handlers.
type WM struct {
	cfg config.Config

	monitors  []*model.Monitor
	selMon    *model.Monitor
	bars      map[*model.Monitor]*barState
	statusTxt string

	keymap  keymap.Keymap
	actions map[config.Command]func(any)

	running   bool
	activeWin xproto.Window

	moveResizing bool
}

// New validates nothing yet (X isn't connected), mirroring marwind's New:
// it only opens the connection.
func New(cfg config.Config) (*WM, error) {
	if err := x11.CreateConnection(); err != nil {
		return nil, fmt.Errorf("wm: failed to create connection: %w", err)
	}
	return &WM{cfg: cfg, bars: map[*model.Monitor]*barState{}}, nil
}

// Init brings up the WM: screen/atom setup, becomeWM, keymap load, key
// grabs, monitor topology, bar windows, and the initial scan of existing
// top-level windows.
func (wm *WM) Init() error {
	if err := x11.InitConnection(); err != nil {
		return fmt.Errorf("wm: failed to init connection: %w", err)
	}
	if err := wm.becomeWM(); err != nil {
		if x11.IsAccessError(err) {
			return fmt.Errorf("wm: could not become WM, another WM is probably already running")
		}
		return fmt.Errorf("wm: could not become WM: %w", err)
	}

	km, err := keymap.LoadKeyMapping(x11.X)
	if err != nil {
		return fmt.Errorf("wm: failed to load key mapping: %w", err)
	}
	wm.keymap = km
	if err := x11.UpdateNumLockMask(km); err != nil {
		wmlog.Log.WithError(err).Warn("wm: failed to compute numlock mask")
	}

	wm.actions = wm.initActions()
	if err := wm.grabKeys(); err != nil {
		return fmt.Errorf("wm: failed to grab keys: %w", err)
	}

	if err := wm.updateGeometry(); err != nil {
		return fmt.Errorf("wm: failed to build monitor topology: %w", err)
	}

	supported := []string{
		"_NET_ACTIVE_WINDOW", "_NET_WM_NAME", "_NET_WM_STATE", "_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_WINDOW_TYPE", "_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_NOTIFICATION",
		"_NET_CLIENT_LIST",
	}
	if err := x11.SetSupported(supported); err != nil {
		wmlog.Log.WithError(err).Warn("wm: failed to advertise _NET_SUPPORTED")
	}
	if err := x11.SetWMName("dwm"); err != nil {
		wmlog.Log.WithError(err).Warn("wm: failed to set WM name")
	}

	wm.installSignalHandlers()
	wm.scan()
	wm.running = true
	return nil
}

// Run is the blocking event pump: the sole source of execution. It
// terminates when the running flag is cleared by the quit action.
func (wm *WM) Run() error {
	for wm.running {
		xev, xerr := x11.X.WaitForEvent()
		if xerr != nil {
			if !x11.IsBenign(xerr) {
				wmlog.Log.WithError(xerr).Error("wm: X error")
			}
			continue
		}
		if xev == nil {
			continue
		}
		wm.dispatch(xev)
	}
	return nil
}

// Close tears down every managed client and X resource.
func (wm *WM) Close() {
	for _, m := range wm.monitors {
		for _, c := range append([]*model.Client(nil), m.Stack()...) {
			wm.unmanage(c, false)
		}
	}
	for _, b := range wm.bars {
		b.ctx.Free()
		x11.DestroyWindow(b.win)
	}
	x11.DeleteActiveWindow()
	x11.UngrabAllKeys()
	x11.Close()
}

// becomeWM selects the substructure-redirect mask on the root window; a
// BadAccess here means another window manager already owns it.
func (wm *WM) becomeWM() error {
	mask := []uint32{
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
			xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion |
			xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
			xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange),
	}
	return xproto.ChangeWindowAttributesChecked(x11.X, x11.Root, xproto.CwEventMask, mask).Check()
}

// grabKeys releases every prior key grab and regrabs the full key table,
// used both at startup and on MappingNotify.
func (wm *WM) grabKeys() error {
	if err := x11.UngrabAllKeys(); err != nil && !x11.IsBenign(err) {
		return err
	}
	for _, k := range wm.cfg.Keys {
		codes := wm.keymap.Keycodes(k.Sym)
		for _, code := range codes {
			if err := x11.GrabKey(code, k.Mod); err != nil {
				return err
			}
		}
	}
	return nil
}

// installSignalHandlers reaps spawned children: a SIGCHLD handler that
// reaps zombies with waitpid(-1, NULL, WNOHANG).
func (wm *WM) installSignalHandlers() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCHLD)
	go func() {
		for range ch {
			for {
				var status syscall.WaitStatus
				pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
				if pid <= 0 || err != nil {
					break
				}
			}
		}
	}()
}

// reloadKeymap re-queries the server's keyboard mapping, used on
// MappingNotify.
func (wm *WM) reloadKeymap() (keymap.Keymap, error) {
	return keymap.LoadKeyMapping(x11.X)
}

func (wm *WM) screenRect() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: int32(x11.Screen.WidthInPixels), H: int32(x11.Screen.HeightInPixels)}
}

// findClient locates the managed client for win across every monitor.
func (wm *WM) findClient(win xproto.Window) *model.Client {
	for _, m := range wm.monitors {
		for _, c := range m.Clients() {
			if c.Window == win || c.Parent == win {
				return c
			}
		}
	}
	return nil
}

// monitorAt returns the monitor whose screen area contains (x, y),
// falling back to selMon, per dwm's recttomon/postomon.
func (wm *WM) monitorAt(x, y int32) *model.Monitor {
	for _, m := range wm.monitors {
		if m.ScreenArea.Contains(x, y) {
			return m
		}
	}
	return wm.selMon
}

// monitorForRect returns the monitor with the largest intersection area
// with r, dwm's recttomon.
func (wm *WM) monitorForRect(r geom.Rect) *model.Monitor {
	best := wm.selMon
	var bestArea int64
	for _, m := range wm.monitors {
		if a := m.ScreenArea.IntersectArea(r); a > bestArea {
			bestArea = a
			best = m
		}
	}
	return best
}
