package x11

import "github.com/BurntSushi/xgb/xproto"

// ICCCM WM_NORMAL_HINTS flag bits (Xutil.h).
const (
	hintUSPosition  = 1 << 0
	hintUSSize      = 1 << 1
	hintPPosition   = 1 << 2
	hintPSize       = 1 << 3
	hintPMinSize    = 1 << 4
	hintPMaxSize    = 1 << 5
	hintPResizeInc  = 1 << 6
	hintPAspect     = 1 << 7
	hintPBaseSize   = 1 << 8
	hintPWinGravity = 1 << 9
)

// ICCCM WM_HINTS flag bits.
const (
	wmHintInput        = 1 << 0
	wmHintState        = 1 << 1
	wmHintXUrgency     = 1 << 8
)

// SizeHints is the decoded wire form of WM_NORMAL_HINTS. model.Client
// converts it into its own basew/h, incw/h, minw/h, maxw/h, mina/maxa
// fields.
type SizeHints struct {
	BaseW, BaseH   int32
	IncW, IncH     int32
	MinW, MinH     int32
	MaxW, MaxH     int32
	MinAspect      float64
	MaxAspect      float64
	HasAspect      bool
	HasMin         bool
	HasMax         bool
	HasBase        bool
	HasInc         bool
}

// GetSizeHints reads WM_NORMAL_HINTS, returning a zero SizeHints (no flags
// set) when absent, mirroring dwm's updatesizehints behavior of leaving
// defaults in place on a failed XGetWMNormalHints.
func GetSizeHints(win xproto.Window) (SizeHints, error) {
	reply, err := xproto.GetProperty(X, false, win, Atom("WM_NORMAL_HINTS"), Atom("WM_NORMAL_HINTS"), 0, 18).Reply()
	var h SizeHints
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return h, nil
	}
	v := reply.Value
	word := func(i int) int32 {
		off := i * 4
		if off+4 > len(v) {
			return 0
		}
		return int32(le32(v[off:]))
	}
	flags := uint32(word(0))
	// words 1..4 are the obsolete x,y,width,height pad fields.
	if flags&hintPMinSize != 0 {
		h.MinW, h.MinH = word(5), word(6)
		h.HasMin = true
	}
	if flags&hintPMaxSize != 0 {
		h.MaxW, h.MaxH = word(7), word(8)
		h.HasMax = true
	}
	if flags&hintPResizeInc != 0 {
		h.IncW, h.IncH = word(9), word(10)
		h.HasInc = true
	}
	if flags&hintPAspect != 0 {
		minNum, minDen := word(11), word(12)
		maxNum, maxDen := word(13), word(14)
		if minDen != 0 && maxDen != 0 {
			h.MinAspect = float64(minNum) / float64(minDen)
			h.MaxAspect = float64(maxNum) / float64(maxDen)
			h.HasAspect = true
		}
	}
	if flags&hintPBaseSize != 0 {
		h.BaseW, h.BaseH = word(15), word(16)
		h.HasBase = true
	}
	return h, nil
}

// WMHints is the decoded subset of WM_HINTS the core cares about.
type WMHints struct {
	Urgent bool
	Input  bool
	HasInput bool
}

// GetWMHints reads WM_HINTS, used to refresh urgency/input on
// PropertyNotify.
func GetWMHints(win xproto.Window) (WMHints, error) {
	reply, err := xproto.GetProperty(X, false, win, Atom("WM_HINTS"), Atom("WM_HINTS"), 0, 9).Reply()
	var h WMHints
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return h, nil
	}
	v := reply.Value
	flags := le32(v)
	h.Urgent = flags&wmHintXUrgency != 0
	if flags&wmHintInput != 0 && len(v) >= 8 {
		h.Input = le32(v[4:]) != 0
		h.HasInput = true
	}
	return h, nil
}

// ClearWMHintsUrgency rewrites WM_HINTS without the urgency bit: focusing
// a client clears its urgency flag.
func ClearWMHintsUrgency(win xproto.Window) error {
	reply, err := xproto.GetProperty(X, false, win, Atom("WM_HINTS"), Atom("WM_HINTS"), 0, 9).Reply()
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return nil
	}
	v := append([]byte(nil), reply.Value...)
	if len(v) < 4 {
		return nil
	}
	flags := le32(v)
	flags &^= wmHintXUrgency
	putLE32(v, flags)
	return xproto.ChangePropertyChecked(X, xproto.PropModeReplace, win, Atom("WM_HINTS"), Atom("WM_HINTS"), 32,
		uint32(len(v)/4), v).Check()
}

// GetWMClass reads WM_CLASS, returning (instance, class).
func GetWMClass(win xproto.Window) (instance, class string) {
	reply, err := xproto.GetProperty(X, false, win, xproto.AtomWmClass, xproto.AtomString, 0, 1<<14).Reply()
	if err != nil || reply == nil || reply.ValueLen == 0 {
		return "", ""
	}
	parts := splitNUL(reply.Value)
	if len(parts) > 0 {
		instance = parts[0]
	}
	if len(parts) > 1 {
		class = parts[1]
	}
	return instance, class
}

func splitNUL(b []byte) []string {
	var out []string
	start := 0
	for i, c := range b {
		if c == 0 {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, string(b[start:]))
	}
	return out
}
