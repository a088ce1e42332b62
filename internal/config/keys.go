package config

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/arortell/dwm/internal/keymap"
)

const shiftMask = xproto.ModMaskShift

func sym(name string) xproto.Keysym {
	s, ok := keymap.Lookup(name)
	if !ok {
		return 0
	}
	return s
}

// DefaultKeys builds dwm's canonical keybinding table against modkey,
// transliterated from config.h's keys[] array: modkey+j/k to cycle focus,
// modkey+1..9 to view a tag, modkey+shift+1..9 to tag, modkey+h/l to
// adjust mfact, modkey+Return to zoom, modkey+shift+c to kill, etc.
func DefaultKeys(modkey uint16) []KeySpec {
	keys := []KeySpec{
		{Mod: modkey, Sym: sym("j"), Cmd: CmdFocusStack, Arg: 1},
		{Mod: modkey, Sym: sym("k"), Cmd: CmdFocusStack, Arg: -1},
		{Mod: modkey, Sym: sym("i"), Cmd: CmdIncNMaster, Arg: 1},
		{Mod: modkey, Sym: sym("d"), Cmd: CmdIncNMaster, Arg: -1},
		{Mod: modkey, Sym: sym("h"), Cmd: CmdSetMFact, Arg: -0.05},
		{Mod: modkey, Sym: sym("l"), Cmd: CmdSetMFact, Arg: 0.05},
		{Mod: modkey, Sym: sym("Return"), Cmd: CmdZoom, Arg: nil},
		{Mod: modkey, Sym: sym("Tab"), Cmd: CmdView, Arg: uint32(0)},
		{Mod: modkey | shiftMask, Sym: sym("c"), Cmd: CmdKillClient, Arg: nil},
		{Mod: modkey, Sym: sym("t"), Cmd: CmdSetLayout, Arg: 0},
		{Mod: modkey, Sym: sym("m"), Cmd: CmdSetLayout, Arg: 1},
		{Mod: modkey, Sym: sym("b"), Cmd: CmdSetLayout, Arg: 2},
		{Mod: modkey, Sym: sym("v"), Cmd: CmdSetLayout, Arg: 3},
		{Mod: modkey, Sym: sym("space"), Cmd: CmdSetLayout, Arg: nil},
		{Mod: modkey | shiftMask, Sym: sym("space"), Cmd: CmdToggleFloating, Arg: nil},
		{Mod: modkey, Sym: sym("f"), Cmd: CmdToggleFullscr, Arg: nil},
		{Mod: modkey, Sym: sym("0"), Cmd: CmdView, Arg: ^uint32(0)},
		{Mod: modkey | shiftMask, Sym: sym("0"), Cmd: CmdTag, Arg: ^uint32(0)},
		{Mod: modkey, Sym: sym("comma"), Cmd: CmdFocusMon, Arg: -1},
		{Mod: modkey, Sym: sym("period"), Cmd: CmdFocusMon, Arg: 1},
		{Mod: modkey | shiftMask, Sym: sym("comma"), Cmd: CmdTagMon, Arg: -1},
		{Mod: modkey | shiftMask, Sym: sym("period"), Cmd: CmdTagMon, Arg: 1},
		{Mod: modkey | shiftMask, Sym: sym("b"), Cmd: CmdToggleBar, Arg: nil},
		{Mod: modkey, Sym: sym("p"), Cmd: CmdSpawn, Arg: nil},
		{Mod: modkey | shiftMask, Sym: sym("q"), Cmd: CmdQuit, Arg: nil},
	}
	for i := 0; i < 9; i++ {
		tag := uint32(1) << uint(i)
		keys = append(keys,
			KeySpec{Mod: modkey, Sym: sym(string(rune('1' + i))), Cmd: CmdView, Arg: tag},
			KeySpec{Mod: modkey | shiftMask, Sym: sym(string(rune('1' + i))), Cmd: CmdTag, Arg: tag},
			KeySpec{Mod: modkey | xproto.ModMaskControl, Sym: sym(string(rune('1' + i))), Cmd: CmdToggleView, Arg: tag},
			KeySpec{Mod: modkey | xproto.ModMaskControl | shiftMask, Sym: sym(string(rune('1' + i))), Cmd: CmdToggleTag, Arg: tag},
		)
	}
	return keys
}

// DefaultButtons builds dwm's canonical button table: modkey+button1 on a
// client window to move, modkey+button3 to resize, plain clicks on the
// tag bar to view/toggle a tag. Click-to-focus is not a table entry:
// handleButtonPress focuses the clicked client when no binding matches.
func DefaultButtons(modkey uint16) []ButtonSpec {
	return []ButtonSpec{
		{Zone: ZoneClientWin, Button: xproto.ButtonIndex1, Mod: modkey, Cmd: CmdMoveMouse, Arg: nil},
		{Zone: ZoneClientWin, Button: xproto.ButtonIndex3, Mod: modkey, Cmd: CmdResizeMouse, Arg: nil},
		{Zone: ZoneTagBar, Button: xproto.ButtonIndex1, Mod: 0, Cmd: CmdView, Arg: uint32(0)},
		{Zone: ZoneTagBar, Button: xproto.ButtonIndex3, Mod: 0, Cmd: CmdToggleView, Arg: uint32(0)},
		{Zone: ZoneTagBar, Button: xproto.ButtonIndex1, Mod: shiftMask, Cmd: CmdTag, Arg: uint32(0)},
		{Zone: ZoneTagBar, Button: xproto.ButtonIndex3, Mod: shiftMask, Cmd: CmdToggleTag, Arg: uint32(0)},
		{Zone: ZoneLtSymbol, Button: xproto.ButtonIndex1, Mod: 0, Cmd: CmdSetLayout, Arg: nil},
		{Zone: ZoneWinTitle, Button: xproto.ButtonIndex2, Mod: 0, Cmd: CmdZoom, Arg: nil},
	}
}
