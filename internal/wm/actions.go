package wm

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/arortell/dwm/internal/config"
	"github.com/arortell/dwm/internal/layout"
	"github.com/arortell/dwm/internal/model"
	"github.com/arortell/dwm/internal/wmlog"
	"github.com/arortell/dwm/internal/x11"
)

// initActions builds the command table every key/button binding is
// resolved against, closing each entry over the live *WM.
func (wm *WM) initActions() map[config.Command]func(any) {
	return map[config.Command]func(any){
		config.CmdView:           wm.actView,
		config.CmdToggleView:     wm.actToggleView,
		config.CmdTag:            wm.actTag,
		config.CmdToggleTag:      wm.actToggleTag,
		config.CmdFocusStack:     wm.actFocusStack,
		config.CmdFocusMon:       wm.actFocusMon,
		config.CmdTagMon:         wm.actTagMon,
		config.CmdSetLayout:      wm.actSetLayout,
		config.CmdSetMFact:       wm.actSetMFact,
		config.CmdZoom:           wm.actZoom,
		config.CmdKillClient:     wm.actKillClient,
		config.CmdToggleBar:      wm.actToggleBar,
		config.CmdToggleFloating: wm.actToggleFloating,
		config.CmdToggleFullscr:  wm.actToggleFullscreen,
		config.CmdSpawn:          wm.actSpawn,
		config.CmdQuit:           wm.actQuit,
		config.CmdMoveMouse:      wm.actMoveMouse,
		config.CmdResizeMouse:    wm.actResizeMouse,
		config.CmdIncNMaster:     wm.actIncNMaster,
	}
}

// runCommand resolves cmd against the action table and invokes it with
// arg, the sole entry point key/button handlers use.
func (wm *WM) runCommand(cmd config.Command, arg any) {
	if fn, ok := wm.actions[cmd]; ok {
		fn(arg)
	}
}

func argTag(arg any) model.TagMask {
	switch v := arg.(type) {
	case uint32:
		return model.TagMask(v) & model.AllTags
	case model.TagMask:
		return v & model.AllTags
	}
	return 0
}

func argInt(arg any) int {
	if v, ok := arg.(int); ok {
		return v
	}
	return 0
}

func argFloat(arg any) float64 {
	if v, ok := arg.(float64); ok {
		return v
	}
	return 0
}

// actView flips to the other tagset buffer, optionally installing mask as
// its value (dwm's "Tab" binding passes 0 to mean "just flip to whatever
// was there before").
func (wm *WM) actView(arg any) {
	mask := argTag(arg)
	m := wm.selMon
	if mask == m.Tagset[m.SelTags] {
		return
	}
	m.SelTags ^= 1
	if mask != 0 {
		m.Tagset[m.SelTags] = mask
	}
	wm.focus(nil)
	wm.arrange(m)
}

func (wm *WM) actToggleView(arg any) {
	mask := argTag(arg)
	m := wm.selMon
	newTags := m.Tagset[m.SelTags] ^ mask
	if newTags == 0 {
		return
	}
	m.Tagset[m.SelTags] = newTags
	wm.focus(nil)
	wm.arrange(m)
}

func (wm *WM) actTag(arg any) {
	mask := argTag(arg)
	c := wm.selMon.Selected
	if c == nil || mask == 0 {
		return
	}
	c.Tags = mask
	wm.focus(nil)
	wm.arrange(wm.selMon)
}

func (wm *WM) actToggleTag(arg any) {
	mask := argTag(arg)
	c := wm.selMon.Selected
	if c == nil {
		return
	}
	newTags := c.Tags ^ mask
	if newTags == 0 {
		return
	}
	c.Tags = newTags
	wm.focus(nil)
	wm.arrange(wm.selMon)
}

// actFocusStack cycles focus among visible clients in creation-list
// order, wrapping around.
func (wm *WM) actFocusStack(arg any) {
	dir := argInt(arg)
	m := wm.selMon
	visible := make([]*model.Client, 0, len(m.Clients()))
	for _, c := range m.Clients() {
		if c.IsVisible() {
			visible = append(visible, c)
		}
	}
	if len(visible) < 1 || m.Selected == nil {
		return
	}
	idx := -1
	for i, c := range visible {
		if c == m.Selected {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := (idx + dir) % len(visible)
	if next < 0 {
		next += len(visible)
	}
	wm.focus(visible[next])
	wm.restack(m)
}

// dirtomon resolves the monitor at a relative offset in the global
// monitor list, wrapping around (dwm's dirtomon).
func (wm *WM) dirtomon(dir int) *model.Monitor {
	if len(wm.monitors) < 2 {
		return wm.selMon
	}
	idx := 0
	for i, m := range wm.monitors {
		if m == wm.selMon {
			idx = i
			break
		}
	}
	idx = (idx + dir) % len(wm.monitors)
	if idx < 0 {
		idx += len(wm.monitors)
	}
	return wm.monitors[idx]
}

func (wm *WM) actFocusMon(arg any) {
	target := wm.dirtomon(argInt(arg))
	if target == wm.selMon {
		return
	}
	wm.unfocus(wm.selMon.Selected, true)
	wm.selMon = target
	wm.focus(nil)
}

func (wm *WM) actTagMon(arg any) {
	c := wm.selMon.Selected
	if c == nil {
		return
	}
	target := wm.dirtomon(argInt(arg))
	wm.sendMon(c, target)
}

// actSetLayout: a non-int arg flips sellt; an int index installs
// layout.Table()[index] into the inactive slot.
func (wm *WM) actSetLayout(arg any) {
	m := wm.selMon
	idx, ok := arg.(int)
	if !ok {
		m.SelLt ^= 1
	} else {
		tbl := layout.Table()
		if idx < 0 || idx >= len(tbl) {
			return
		}
		m.SelLt ^= 1
		m.Lt[m.SelLt] = tbl[idx]
	}
	m.LtSymbol = m.Lt[m.SelLt].Symbol
	if m.Selected != nil {
		wm.arrange(m)
	} else {
		wm.redrawBar(m)
	}
}

// actSetMFact: df < 1.0 is a relative delta added to the current mfact;
// df >= 1.0 carries an absolute value offset by 1.0 (so passing 1.0+x
// installs mfact=x). Result is clamped to [0.1, 0.9].
func (wm *WM) actSetMFact(arg any) {
	m := wm.selMon
	if m.Lt[m.SelLt].Arrange == nil {
		return
	}
	df := argFloat(arg)
	var f float64
	if df < 1.0 {
		f = df + m.MFact
	} else {
		f = df - 1.0
	}
	if f < 0.1 || f > 0.9 {
		return
	}
	m.MFact = f
	wm.arrange(m)
}

// actZoom promotes the current master-candidate to the head of the
// client list, then focuses and re-arranges.
func (wm *WM) actZoom(any) {
	m := wm.selMon
	c := m.Selected
	if c == nil || c.IsFloating {
		return
	}
	if c == m.FirstTiled() {
		next := m.NextTiledAfter(c)
		if next == nil {
			return
		}
		c = next
	}
	wm.pop(c)
}

func (wm *WM) actKillClient(any) {
	c := wm.selMon.Selected
	if c == nil {
		return
	}
	if x11.SupportsWMProtocol(c.Window, x11.Atom("WM_DELETE_WINDOW")) {
		x11.SendClientMessageProtocol(c.Window, x11.Atom("WM_DELETE_WINDOW"), 0)
	} else {
		x11.GrabServer()
		x11.KillClient(c.Window)
		x11.Sync()
		x11.UngrabServer()
	}
}

func (wm *WM) actToggleBar(any) {
	m := wm.selMon
	m.ShowBar = !m.ShowBar
	wm.ensureBar(m)
	if b, ok := wm.bars[m]; ok {
		if m.ShowBar {
			x11.MapWindow(b.win)
		} else {
			x11.UnmapWindow(b.win)
		}
	}
	wm.arrange(m)
}

func (wm *WM) actToggleFloating(any) {
	c := wm.selMon.Selected
	if c == nil || c.IsFullscreen {
		return
	}
	c.IsFloating = !c.IsFloating
	if c.IsFloating {
		wm.resize(c, c.X, c.Y, c.W, c.H, false)
	}
	wm.arrange(c.Monitor)
}

func (wm *WM) actToggleFullscreen(any) {
	c := wm.selMon.Selected
	if c == nil {
		return
	}
	wm.setFullscreen(c, !c.IsFullscreen)
}

// actSpawn forks and execs a command vector, injecting the selected
// monitor's index when the command is the configured launcher.
func (wm *WM) actSpawn(arg any) {
	cmdline := wm.cfg.LauncherCmd
	usingLauncher := true
	if v, ok := arg.([]string); ok && len(v) > 0 {
		cmdline = v
		usingLauncher = false
	}
	if len(cmdline) == 0 {
		return
	}
	args := append([]string(nil), cmdline[1:]...)
	if usingLauncher {
		args = append(args, fmt.Sprint(wm.selMon.Index))
	}
	cmd := exec.Command(cmdline[0], args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		wmlog.Log.WithError(err).WithField("cmd", cmdline).Warn("wm: spawn failed")
	}
}

func (wm *WM) actQuit(any) {
	wm.running = false
}

func (wm *WM) actMoveMouse(any) {
	wm.moveMouse(wm.selMon.Selected)
}

func (wm *WM) actResizeMouse(any) {
	wm.resizeMouse(wm.selMon.Selected)
}

func (wm *WM) actIncNMaster(arg any) {
	m := wm.selMon
	n := m.NMaster + argInt(arg)
	if n < 0 {
		n = 0
	}
	m.NMaster = n
	wm.arrange(m)
}
