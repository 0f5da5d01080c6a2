package core

import (
	"context"
	"errors"
	"time"

	"github.com/kataras/golog"
)

var logger = golog.Child("[presenter]")

// ErrTerminated is returned by Run after the icon quit gesture.
var ErrTerminated = errors.New("presenter: terminated by icon click")

// Config is fixed at startup.
type Config struct {
	// Distance is the standoff between the pointer and the overlay edge.
	Distance float64
	// Timeout is how long key badges and mouse glyphs stay visible.
	Timeout time.Duration
	// ClickWindow is the longest gap between presses of a multi-click.
	ClickWindow time.Duration
	// WheelFlash is the synthetic press length recorded for a wheel notch.
	WheelFlash time.Duration
	// IdlePause is how long the driver waits when no event is pending.
	IdlePause time.Duration
	// Smoothing is the motion filter decay factor.
	Smoothing float64
	// ShowAllKeys shows plain letter keys even without a modifier.
	ShowAllKeys bool
	// KeyFilter, when set, can veto a key badge. modifiers is the number of
	// visible modifier badges.
	KeyFilter func(code string, modifiers int) bool

	// Now defaults to time.Now.
	Now func() time.Time
	// Pointer returns the initial pointer position.
	Pointer func() (x, y float64)
}

func DefaultConfig() Config {
	return Config{
		Distance:    10,
		Timeout:     250 * time.Millisecond,
		ClickWindow: 200 * time.Millisecond,
		WheelFlash:  100 * time.Millisecond,
		IdlePause:   20 * time.Millisecond,
		Smoothing:   DefaultSmoothing,
		ShowAllKeys: true,
	}
}

// Presenter owns all overlay state. It is driven from a single goroutine.
type Presenter struct {
	cfg     Config
	source  Source
	display Display

	Motion MotionFilter
	Drag   DragState
	Clicks ClickHistory

	Mouse     Timer
	Key       Timer
	Modifiers map[Element]*ModifierBadge

	placedW, placedH float64
	terminated       bool
}

func NewPresenter(cfg Config, source Source, display Display) *Presenter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Smoothing <= 0 || cfg.Smoothing >= 1 {
		cfg.Smoothing = DefaultSmoothing
	}
	var x, y float64
	if cfg.Pointer != nil {
		x, y = cfg.Pointer()
	}

	p := &Presenter{
		cfg:       cfg,
		source:    source,
		display:   display,
		Motion:    NewMotionFilter(cfg.Smoothing, x, y),
		Mouse:     Timer{Element: ElementMouse},
		Key:       Timer{Element: ElementKey},
		Modifiers: make(map[Element]*ModifierBadge, len(Modifiers)),
	}
	for _, m := range Modifiers {
		p.Modifiers[m] = &ModifierBadge{Timer: Timer{Element: m}}
	}
	return p
}

func (p *Presenter) Config() Config {
	return p.cfg
}

func (p *Presenter) Terminated() bool {
	return p.terminated
}

// Tick runs one cycle: it handles at most one event, or sweeps expired
// glyphs when there is none. It returns how long to wait before the next
// tick; zero means more work may be pending.
func (p *Presenter) Tick() time.Duration {
	now := p.cfg.Now()
	if ev, ok := p.source.TryNext(); ok {
		p.Handle(ev, now)
		return 0
	}
	p.Sweep(now)
	return p.cfg.IdlePause
}

// Drain runs up to limit ticks, stopping at the first one that would pause.
// It reports whether the presenter terminated.
func (p *Presenter) Drain(limit int) bool {
	for i := 0; i < limit && !p.terminated; i++ {
		if p.Tick() > 0 {
			break
		}
	}
	return p.terminated
}

// Run ticks until ctx is done or the quit gesture is seen.
func (p *Presenter) Run(ctx context.Context) error {
	for {
		delay := p.Tick()
		if p.terminated {
			return ErrTerminated
		}
		if delay == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Handle dispatches one event received at now.
func (p *Presenter) Handle(ev InputEvent, now time.Time) {
	switch ev := ev.(type) {
	case Motion:
		p.handleMotion(ev)
	case Key:
		p.handleKey(ev, now)
	case Button:
		p.handleButton(ev, now)
	case Wheel:
		p.handleWheel(ev, now)
	case IconButton:
		p.handleIcon(ev)
	default:
		logger.Debugf("unhandled event %#v", ev)
	}
}

// Sweep hides elements whose time is up.
func (p *Presenter) Sweep(now time.Time) {
	changed := false
	if p.Mouse.Due(now) && !p.Clicks.Down() {
		changed = p.Mouse.Hide(p.display)
		p.Clicks.Clear()
	}
	if p.Key.Due(now) {
		changed = p.Key.Hide(p.display) || changed
	}
	if !p.Key.Active {
		for _, m := range Modifiers {
			changed = p.Modifiers[m].Sweep(p.display) || changed
		}
	}
	if changed {
		p.replaceIfResized()
	}
}

func (p *Presenter) handleMotion(ev Motion) {
	if p.Drag.Active() {
		p.Motion.Track(ev.X, ev.Y)
		x, y := p.Drag.Move(ev.X, ev.Y)
		p.display.Emit(MoveWindow{Window: WindowIcon, X: x, Y: y})
		return
	}
	p.Motion.Update(ev.X, ev.Y)
	p.place()
}

func (p *Presenter) place() {
	w, h := p.display.OverlaySize()
	p.placedW, p.placedH = w, h
	x, y := Place(p.Motion.RX, p.Motion.RY, p.Motion.LastX, p.Motion.LastY, w, h, p.cfg.Distance)
	p.display.Emit(MoveWindow{Window: WindowOverlay, X: x, Y: y})
}

// replaceIfResized keeps the overlay clear of the pointer after its content
// changed size.
func (p *Presenter) replaceIfResized() {
	w, h := p.display.OverlaySize()
	if w != p.placedW || h != p.placedH {
		p.place()
	}
}

func (p *Presenter) visibleModifiers() int {
	n := 0
	for _, m := range p.Modifiers {
		if m.Visible() {
			n++
		}
	}
	return n
}

func (p *Presenter) handleKey(ev Key, now time.Time) {
	if m, ok := ModifierFor(ev.Code); ok {
		if ev.Pressed {
			p.Modifiers[m].Press(p.display)
			p.replaceIfResized()
		} else {
			p.Modifiers[m].Release()
		}
		return
	}

	if !ev.Pressed {
		return
	}
	g, ok := p.keyGlyph(ev.Code)
	if !ok {
		return
	}
	if p.cfg.KeyFilter != nil && !p.cfg.KeyFilter(ev.Code, p.visibleModifiers()) {
		return
	}
	p.Key.Show(p.display, g, now, p.cfg.Timeout)
	p.replaceIfResized()
}

// keyGlyph resolves the badge for a non-modifier key. Letters are only shown
// as part of a shortcut unless every key is shown.
func (p *Presenter) keyGlyph(code string) (Glyph, bool) {
	if letter, ok := Letter(code); ok {
		if p.cfg.ShowAllKeys || p.visibleModifiers() > 0 {
			return Glyph{Asset: KeyTemplate, Label: letter}, true
		}
		return Glyph{}, false
	}
	if g, ok := NamedGlyph(code); ok {
		return g, true
	}
	if hint := Suggest(code); hint != "" {
		logger.Infof("unrecognized key %s (closest: %s)", code, hint)
	} else {
		logger.Infof("unrecognized key %s", code)
	}
	return Glyph{}, false
}

func (p *Presenter) handleButton(ev Button, now time.Time) {
	if ev.Code < ButtonLeft || ev.Code > ButtonRight {
		logger.Infof("unrecognized button %s", ev.Code)
		return
	}
	if !ev.Pressed {
		p.Clicks.Release(now)
		return
	}

	var asset string
	switch ev.Code {
	case ButtonLeft:
		switch p.Clicks.Press(now, p.cfg.ClickWindow) {
		case 2:
			asset = "mouse-left-2"
		case 3:
			asset = "mouse-left-3"
		default:
			asset = "mouse-left-1"
		}
	case ButtonMiddle:
		p.Clicks.Single(now)
		asset = "mouse-middle-1"
	default:
		p.Clicks.Single(now)
		asset = "mouse-right-1"
	}
	p.showMouse(asset, now)
}

func (p *Presenter) handleWheel(ev Wheel, now time.Time) {
	var asset string
	switch ev.Direction {
	case WheelForward:
		asset = "mouse-fwd"
	case WheelBackward:
		asset = "mouse-bwd"
	default:
		logger.Infof("unrecognized wheel direction %d", ev.Direction)
		return
	}
	p.Clicks.Flash(now, p.cfg.WheelFlash)
	p.showMouse(asset, now)
}

func (p *Presenter) showMouse(asset string, now time.Time) {
	p.Mouse.Show(p.display, Glyph{Base: "mouse-on", Asset: asset}, now, p.cfg.Timeout)
	p.replaceIfResized()
}

func (p *Presenter) handleIcon(ev IconButton) {
	if ev.Code != ButtonLeft {
		return
	}
	if ev.Pressed {
		p.Drag.Press(ev.RelX, ev.RelY)
		return
	}
	if p.Drag.Release() {
		p.terminated = true
		p.display.Emit(Terminate{})
	}
}
