package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bvisness/keycast/app/core"
)

// VirtualClock is a clock that only moves when told to.
type VirtualClock struct {
	Start   time.Time
	Elapsed time.Duration
}

func (c *VirtualClock) Now() time.Time {
	return c.Start.Add(c.Elapsed)
}

func (c *VirtualClock) Advance(d time.Duration) {
	c.Elapsed += d
}

// ReplaySource delivers recorded events once the clock reaches their offset.
type ReplaySource struct {
	clock  *VirtualClock
	events []recordedEvent
}

func NewReplaySource(clock *VirtualClock, events []recordedEvent) *ReplaySource {
	return &ReplaySource{clock: clock, events: events}
}

func (s *ReplaySource) TryNext() (core.InputEvent, bool) {
	if len(s.events) == 0 || s.events[0].at > s.clock.Elapsed {
		return nil, false
	}
	ev := s.events[0].ev
	s.events = s.events[1:]
	return ev, true
}

// NextAt returns the offset of the next undelivered event.
func (s *ReplaySource) NextAt() (time.Duration, bool) {
	if len(s.events) == 0 {
		return 0, false
	}
	return s.events[0].at, true
}

func (s *ReplaySource) Done() bool {
	return len(s.events) == 0
}

// TextDisplay writes each command as a line prefixed with the clock time. It
// models the overlay as a row of fixed-size badges.
type TextDisplay struct {
	Out   io.Writer
	Clock *VirtualClock
	Badge float64

	shown map[core.Element]bool
}

func (d *TextDisplay) Emit(cmd core.Command) {
	if d.shown == nil {
		d.shown = make(map[core.Element]bool)
	}
	switch c := cmd.(type) {
	case core.ShowGlyph:
		d.shown[c.Element] = true
	case core.HideGlyph:
		delete(d.shown, c.Element)
	}
	fmt.Fprintf(d.Out, "%8.3f %s\n", d.Clock.Elapsed.Seconds(), cmd)
}

func (d *TextDisplay) OverlaySize() (float64, float64) {
	slots := len(d.shown)
	if !d.shown[core.ElementMouse] {
		// The resting mouse art always takes a slot.
		slots++
	}
	return d.Badge * float64(slots), d.Badge
}

// Replay runs a recorded session through a presenter on a virtual clock and
// writes the commands to out. Events are delivered at their recorded offsets.
// It runs until every event is consumed and every timed glyph has expired, or
// the quit gesture is seen.
func Replay(cfg core.Config, events []recordedEvent, out io.Writer) error {
	clock := &VirtualClock{Start: time.Unix(0, 0).UTC()}
	src := NewReplaySource(clock, events)
	disp := &TextDisplay{Out: out, Clock: clock, Badge: 48}

	cfg.Now = clock.Now
	if cfg.Pointer == nil {
		cfg.Pointer = func() (float64, float64) { return 0, 0 }
	}
	p := core.NewPresenter(cfg, src, disp)

	var settled time.Duration
	for {
		delay := p.Tick()
		if p.Terminated() {
			return core.ErrTerminated
		}
		if delay == 0 {
			continue
		}
		if at, ok := src.NextAt(); ok && at-clock.Elapsed < delay {
			delay = at - clock.Elapsed
		}
		if src.Done() && !p.Key.Active && !pendingModifiers(p) && (!p.Mouse.Active || p.Clicks.Down()) {
			// A button still held at the end of the session keeps the mouse
			// glyph up forever; it does not hold up the replay.
			settled += delay
			if settled > cfg.Timeout {
				return nil
			}
		} else {
			settled = 0
		}
		clock.Advance(delay)
	}
}

func pendingModifiers(p *core.Presenter) bool {
	for _, m := range p.Modifiers {
		if m.State == core.BadgePendingHide {
			return true
		}
	}
	return false
}

// HeadlessReplay is the `replay` command.
func HeadlessReplay(path string) {
	s, err := LoadSettings(GetSettingsPath())
	if err != nil {
		replayLogger.Warnf("using default settings: %v", err)
	}
	if err := SetupLogging(s.LogLevel); err != nil {
		replayLogger.Warn(err)
	}
	cfg, err := s.CoreConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	events, err := ReadSession(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	replayLogger.Infof("replaying %d events from %s", len(events), path)

	if err := Replay(cfg, events, os.Stdout); err != nil {
		replayLogger.Infof("replay stopped: %v", err)
	}
}
