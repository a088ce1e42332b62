// Package config is the read-only configuration record: fonts, colors,
// gaps, the rule/key/button tables, and the layout order. The core never
// mutates it. Plain scalar fields can be overlaid from a TOML file
// (BurntSushi/toml); the key/button/rule tables stay compiled Go literals
// because they bind command identifiers that only the wm package can turn
// into closures over the live *WM, the same reason marwind's own key
// table is built by initActions(wm) in the wm package rather than loaded
// as data.
package config

import "github.com/BurntSushi/xgb/xproto"

// ClickZone classifies where a ButtonPress landed.
type ClickZone int

const (
	ZoneRootWin ClickZone = iota
	ZoneClientWin
	ZoneTagBar
	ZoneLtSymbol
	ZoneStatusText
	ZoneWinTitle
)

// Command identifies one of the bindable primitives. The wm package's
// action table maps each of these to a bound closure.
type Command string

const (
	CmdView           Command = "view"
	CmdToggleView     Command = "toggleview"
	CmdTag            Command = "tag"
	CmdToggleTag      Command = "toggletag"
	CmdFocusStack     Command = "focusstack"
	CmdFocusMon       Command = "focusmon"
	CmdTagMon         Command = "tagmon"
	CmdSetLayout      Command = "setlayout"
	CmdSetMFact       Command = "setmfact"
	CmdZoom           Command = "zoom"
	CmdKillClient     Command = "killclient"
	CmdToggleBar      Command = "togglebar"
	CmdToggleFloating Command = "togglefloating"
	CmdToggleFullscr  Command = "togglefullscreen"
	CmdSpawn          Command = "spawn"
	CmdQuit           Command = "quit"
	CmdMoveMouse      Command = "movemouse"
	CmdResizeMouse    Command = "resizemouse"
	CmdIncNMaster     Command = "incnmaster"
)

// KeySpec is one row of the compiled key table.
type KeySpec struct {
	Mod uint16
	Sym xproto.Keysym
	Cmd Command
	Arg any
}

// ButtonSpec is one row of the compiled button table.
type ButtonSpec struct {
	Zone   ClickZone
	Button xproto.Button
	Mod    uint16
	Cmd    Command
	Arg    any
}

// Colors names the "#rrggbb" color strings used for a
// border/background/foreground scheme; drawctx.ParseColor turns them into
// pixel values.
type Colors struct {
	Border     string
	Background string
	Foreground string
}

// Config is the read-only record carrying the window manager's tuning.
type Config struct {
	Fonts []string

	BorderPx  int32
	SnapPx    int32
	WindowGap int32

	ShowBar bool
	TopBar  bool

	TagNames [9]string

	MFactDefault   float64
	NMasterDefault int
	ResizeHints    bool

	ModKey uint16

	NormalColors   Colors
	SelectedColors Colors
	UrgentColors   Colors

	Rules []Rule

	Keys    []KeySpec
	Buttons []ButtonSpec

	LauncherCmd []string // the command substituted with the monitor number
}

// Rule mirrors model.Rule; kept as a separate type here so config has no
// compile-time dependency on model, matching the "config doesn't know
// about the live model" boundary. The wm package's (*WM).configRules
// converts.
type Rule struct {
	Class      string
	Instance   string
	Title      string
	Tags       uint32
	IsFloating bool
	Monitor    int
}

// Default returns dwm's canonical tuning, transliterated from config.h
// defaults, as the baseline the TOML overlay (Load) patches scalar fields
// of.
func Default() Config {
	const modkey = xproto.ModMask4 // Mod4Mask / the "super" key, dwm's default modkey
	return Config{
		Fonts:          []string{"monospace:size=10"},
		BorderPx:       1,
		SnapPx:         32,
		WindowGap:      0,
		ShowBar:        true,
		TopBar:         true,
		TagNames:       [9]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		MFactDefault:   0.55,
		NMasterDefault: 1,
		ResizeHints:    true,
		ModKey:         modkey,
		NormalColors:   Colors{Border: "#444444", Background: "#222222", Foreground: "#bbbbbb"},
		SelectedColors: Colors{Border: "#005577", Background: "#005577", Foreground: "#eeeeee"},
		UrgentColors:   Colors{Border: "#ff0000", Background: "#ff0000", Foreground: "#ffffff"},
		LauncherCmd:    []string{"dmenu_run"},
		Rules:          DefaultRules(),
		Keys:           DefaultKeys(modkey),
		Buttons:        DefaultButtons(modkey),
	}
}
