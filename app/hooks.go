package app

import (
	"sort"
	"strings"

	"github.com/bvisness/keycast/app/core"
	hook "github.com/robotn/gohook"
)

// gohook names the uiohook kinds confusingly: KeyHold is the key press,
// MouseHold the button press and MouseDown the button release.
const (
	hookKeyPress     = hook.KeyHold
	hookKeyRelease   = hook.KeyUp
	hookButtonPress  = hook.MouseHold
	hookButtonUp     = hook.MouseDown
	hookPointerMove  = hook.MouseMove
	hookPointerDrag  = hook.MouseDrag
	hookWheelRotated = hook.MouseWheel
)

// hookKeyNames maps gohook key names to the symbolic codes the presenter uses.
var hookKeyNames = map[string]string{
	"backspace": "KEY_BACKSPACE",
	"delete":    "KEY_DELETE",
	"enter":     "KEY_RETURN",
	"return":    "KEY_RETURN",
	"tab":       "KEY_TAB",
	"esc":       "KEY_ESCAPE",
	"escape":    "KEY_ESCAPE",
	"space":     "KEY_SPACE",
	"insert":    "KEY_INSERT",
	"home":      "KEY_HOME",
	"end":       "KEY_END",
	"pageup":    "KEY_PRIOR",
	"pagedown":  "KEY_PAGE_DOWN",
	"up":        "KEY_UP",
	"down":      "KEY_DOWN",
	"left":      "KEY_LEFT",
	"right":     "KEY_RIGHT",
	"menu":      "KEY_MENU",
	"num_lock":  "KEY_NUM_LOCK",
	"numlock":   "KEY_NUM_LOCK",

	"ctrl":      "KEY_CONTROL_L",
	"lctrl":     "KEY_CONTROL_L",
	"rctrl":     "KEY_CONTROL_R",
	"alt":       "KEY_ALT_L",
	"lalt":      "KEY_ALT_L",
	"ralt":      "KEY_ISO_LEVEL3_SHIFT",
	"shift":     "KEY_SHIFT_L",
	"lshift":    "KEY_SHIFT_L",
	"rshift":    "KEY_SHIFT_R",
	"capslock":  "KEY_CAPS_LOCK",
	"caps_lock": "KEY_CAPS_LOCK",
	"cmd":       "KEY_SUPER_L",
	"command":   "KEY_SUPER_L",
	"lcmd":      "KEY_SUPER_L",
	"rcmd":      "KEY_SUPER_R",

	"-":  "KEY_MINUS",
	"=":  "KEY_EQUAL",
	";":  "KEY_SEMICOLON",
	":":  "KEY_COLON",
	",":  "KEY_COMMA",
	"*":  "KEY_ASTERISK",
	"$":  "KEY_DOLLAR",
	"!":  "KEY_EXCLAM",
	"<":  "KEY_LESS",
	"&":  "KEY_AMPERSAND",
	"(":  "KEY_PARENLEFT",
	")":  "KEY_PARENRIGHT",
	"_":  "KEY_UNDERSCORE",
	"\"": "KEY_QUOTEDBL",
	"'":  "KEY_QUOTERIGHT",
	"²":  "KEY_TWOSUPERIOR",
	"é":  "KEY_EACUTE",
	"è":  "KEY_EGRAVE",
	"ç":  "KEY_CCEDILLA",
	"à":  "KEY_AGRAVE",
	"ù":  "KEY_UGRAVE",
}

// hookKeycodeNames is gohook's keycode table reversed. Names the presenter
// knows win over aliases of the same code.
var hookKeycodeNames = func() map[uint16]string {
	names := make([]string, 0, len(hook.Keycode))
	for name := range hook.Keycode {
		names = append(names, name)
	}
	sort.Strings(names)

	res := make(map[uint16]string, len(names))
	for _, name := range names {
		code := hook.Keycode[name]
		if prev, ok := res[code]; ok {
			if _, known := hookKeyNames[prev]; known {
				continue
			}
		}
		res[code] = name
	}
	return res
}()

// KeyCode returns the symbolic code for a gohook key event.
func KeyCode(ev hook.Event) string {
	name, ok := hookKeycodeNames[ev.Keycode]
	if !ok {
		name = hook.RawcodetoKeychar(ev.Rawcode)
	}
	name = strings.ToLower(name)
	if code, ok := hookKeyNames[name]; ok {
		return code
	}
	if name == "" {
		return "KEY_UNKNOWN"
	}
	return "KEY_" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			return r
		default:
			return '_'
		}
	}, name)
}

// Rect is a screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translator turns gohook events into presenter events. It remembers whether
// the current left press started on the icon window.
type Translator struct {
	// Icon returns the icon window bounds. Nil disables icon events.
	Icon func() Rect

	iconPressed bool
}

func (t *Translator) Translate(ev hook.Event) []core.InputEvent {
	x, y := float64(ev.X), float64(ev.Y)
	switch ev.Kind {
	case hookPointerMove, hookPointerDrag:
		return []core.InputEvent{core.Motion{X: x, Y: y}}

	case hookKeyPress, hookKeyRelease:
		return []core.InputEvent{core.Key{Code: KeyCode(ev), Pressed: ev.Kind == hookKeyPress}}

	case hookButtonPress, hookButtonUp:
		btn, ok := hookButton(ev.Button)
		if !ok {
			hookLogger.Debugf("ignoring button %d", ev.Button)
			return nil
		}
		pressed := ev.Kind == hookButtonPress
		res := []core.InputEvent{core.Button{Code: btn, Pressed: pressed}}
		if btn != core.ButtonLeft || t.Icon == nil {
			return res
		}
		if pressed {
			icon := t.Icon()
			if icon.Contains(x, y) {
				t.iconPressed = true
				res = append(res, core.IconButton{Code: btn, Pressed: true, RelX: x - icon.X, RelY: y - icon.Y})
			}
		} else if t.iconPressed {
			t.iconPressed = false
			icon := t.Icon()
			res = append(res, core.IconButton{Code: btn, RelX: x - icon.X, RelY: y - icon.Y})
		}
		return res

	case hookWheelRotated:
		switch {
		case ev.Rotation < 0:
			return []core.InputEvent{core.Wheel{Direction: core.WheelForward}}
		case ev.Rotation > 0:
			return []core.InputEvent{core.Wheel{Direction: core.WheelBackward}}
		}
		return nil
	}
	return nil
}

func hookButton(b uint16) (core.MouseButton, bool) {
	switch b {
	case hook.MouseMap["left"]:
		return core.ButtonLeft, true
	case hook.MouseMap["center"]:
		return core.ButtonMiddle, true
	case hook.MouseMap["right"]:
		return core.ButtonRight, true
	}
	return 0, false
}

// HookSource is a core.Source fed by global input hooks. The hook goroutine
// only forwards raw events; translation happens in TryNext, on the goroutine
// driving the presenter.
type HookSource struct {
	Translator

	raw     chan hook.Event
	pending []core.InputEvent
}

// StartHookSource installs the global hooks. buffer bounds how many raw events
// may wait between ticks; overflow is dropped.
func StartHookSource(icon func() Rect, buffer int) *HookSource {
	s := &HookSource{
		Translator: Translator{Icon: icon},
		raw:        make(chan hook.Event, buffer),
	}
	evChan := hook.Start()
	go s.pump(evChan)
	return s
}

func (s *HookSource) pump(evChan chan hook.Event) {
	for ev := range evChan {
		select {
		case s.raw <- ev:
		default:
			hookLogger.Warnf("event buffer full, dropping kind=%d", ev.Kind)
		}
	}
	close(s.raw)
}

func (s *HookSource) TryNext() (core.InputEvent, bool) {
	for len(s.pending) == 0 {
		select {
		case ev, ok := <-s.raw:
			if !ok {
				return nil, false
			}
			s.pending = s.Translate(ev)
		default:
			return nil, false
		}
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, true
}

func (s *HookSource) Close() {
	hook.End()
}
