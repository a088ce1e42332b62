package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// overlayFile is the scalar-only patch format: every field is optional,
// absent fields leave the compiled default untouched. Grounded in
// noisetorch's config.go (BurntSushi/toml DecodeFile into a plain struct,
// a $XDG_CONFIG_HOME-relative path). Unlike noisetorch, Load never creates
// the file when it is missing.
type overlayFile struct {
	Fonts          []string `toml:"fonts"`
	BorderPx       *int32   `toml:"borderpx"`
	SnapPx         *int32   `toml:"snap"`
	WindowGap      *int32   `toml:"gap"`
	ShowBar        *bool    `toml:"showbar"`
	TopBar         *bool    `toml:"topbar"`
	TagNames       []string `toml:"tags"`
	MFact          *float64 `toml:"mfact"`
	NMaster        *int     `toml:"nmaster"`
	ResizeHints    *bool    `toml:"resizehints"`
	NormalBorder   *string  `toml:"normal_border"`
	NormalBg       *string  `toml:"normal_bg"`
	NormalFg       *string  `toml:"normal_fg"`
	SelectedBorder *string  `toml:"selected_border"`
	SelectedBg     *string  `toml:"selected_bg"`
	SelectedFg     *string  `toml:"selected_fg"`
}

// Dir returns the config directory, $XDG_CONFIG_HOME/dwm or ~/.config/dwm.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dwm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dwm"
	}
	return filepath.Join(home, ".config", "dwm")
}

// FilePath is the TOML overlay's on-disk location.
func FilePath() string {
	return filepath.Join(Dir(), "dwm.toml")
}

// Load starts from Default() and overlays scalar fields found in the TOML
// file at FilePath(), if it exists. A missing file is not an error (dwm
// itself runs fine with no config.h override beyond its compiled
// defaults); a malformed file is, since at that point the user asked for
// an override we can't honor.
func Load() (Config, error) {
	cfg := Default()
	path := FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	var overlay overlayFile
	if _, err := toml.DecodeFile(path, &overlay); err != nil {
		return cfg, err
	}
	applyOverlay(&cfg, overlay)
	return cfg, nil
}

func applyOverlay(cfg *Config, o overlayFile) {
	if len(o.Fonts) > 0 {
		cfg.Fonts = o.Fonts
	}
	if o.BorderPx != nil {
		cfg.BorderPx = *o.BorderPx
	}
	if o.SnapPx != nil {
		cfg.SnapPx = *o.SnapPx
	}
	if o.WindowGap != nil {
		cfg.WindowGap = *o.WindowGap
	}
	if o.ShowBar != nil {
		cfg.ShowBar = *o.ShowBar
	}
	if o.TopBar != nil {
		cfg.TopBar = *o.TopBar
	}
	if len(o.TagNames) > 0 {
		for i := 0; i < len(o.TagNames) && i < len(cfg.TagNames); i++ {
			cfg.TagNames[i] = o.TagNames[i]
		}
	}
	if o.MFact != nil {
		cfg.MFactDefault = *o.MFact
	}
	if o.NMaster != nil {
		cfg.NMasterDefault = *o.NMaster
	}
	if o.ResizeHints != nil {
		cfg.ResizeHints = *o.ResizeHints
	}
	if o.NormalBorder != nil {
		cfg.NormalColors.Border = *o.NormalBorder
	}
	if o.NormalBg != nil {
		cfg.NormalColors.Background = *o.NormalBg
	}
	if o.NormalFg != nil {
		cfg.NormalColors.Foreground = *o.NormalFg
	}
	if o.SelectedBorder != nil {
		cfg.SelectedColors.Border = *o.SelectedBorder
	}
	if o.SelectedBg != nil {
		cfg.SelectedColors.Background = *o.SelectedBg
	}
	if o.SelectedFg != nil {
		cfg.SelectedColors.Foreground = *o.SelectedFg
	}
}
