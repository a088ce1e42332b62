// Command dwm is the entrypoint: parse the -v flag, load configuration,
// bring up the window manager, and run its event loop to completion.
package main

import (
	"fmt"
	"os"

	"github.com/arortell/dwm/internal/config"
	"github.com/arortell/dwm/internal/wm"
	"github.com/arortell/dwm/internal/wmlog"
)

const version = "1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v":
			fmt.Fprintf(os.Stderr, "dwm-%s\n", version)
			os.Exit(1)
		default:
			fmt.Fprintln(os.Stderr, "usage: dwm [-v]")
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		wmlog.Log.WithError(err).Fatal("dwm: failed to load configuration")
	}

	w, err := wm.New(cfg)
	if err != nil {
		wmlog.Log.WithError(err).Fatal("dwm: failed to create window manager")
	}
	if err := w.Init(); err != nil {
		wmlog.Log.WithError(err).Fatal("dwm: failed to initialize window manager")
	}
	defer w.Close()

	if err := w.Run(); err != nil {
		wmlog.Log.WithError(err).Fatal("dwm: event loop exited with error")
	}
}
