package x11

// wellKnownAtoms is the EWMH/ICCCM atom set the core supports, interned
// eagerly at startup the way dwm's own setup() does.
var wellKnownAtoms = []string{
	"WM_PROTOCOLS",
	"WM_DELETE_WINDOW",
	"WM_STATE",
	"WM_TAKE_FOCUS",
	"WM_NAME",
	"WM_CLASS",
	"WM_TRANSIENT_FOR",
	"WM_NORMAL_HINTS",
	"WM_HINTS",

	"_NET_SUPPORTED",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_NOTIFICATION",
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_PID",

	"UTF8_STRING",
}
