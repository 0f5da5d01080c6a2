package core

import "fmt"

// InputEvent is one low-level input event. The concrete types are Motion, Key,
// Button, Wheel and IconButton.
type InputEvent interface {
	isInputEvent()
}

// Motion is an absolute pointer position on the screen.
type Motion struct {
	X, Y float64
}

// Key is a keyboard press or release. Code is a symbolic key name such as
// "KEY_A", "KEY_SHIFT_L" or "KEY_PAGE_DOWN".
type Key struct {
	Code    string
	Pressed bool
}

// Button is a pointer button press or release anywhere on the screen.
type Button struct {
	Code    MouseButton
	Pressed bool
}

// Wheel is one notch of the scroll wheel.
type Wheel struct {
	Direction WheelDirection
}

// IconButton is a pointer button press or release over the icon window.
// RelX and RelY are the pointer position relative to the icon window origin.
type IconButton struct {
	Code       MouseButton
	Pressed    bool
	RelX, RelY float64
}

func (Motion) isInputEvent()     {}
func (Key) isInputEvent()        {}
func (Button) isInputEvent()     {}
func (Wheel) isInputEvent()      {}
func (IconButton) isInputEvent() {}

type MouseButton int

const (
	ButtonLeft MouseButton = iota + 1
	ButtonMiddle
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "BTN_LEFT"
	case ButtonMiddle:
		return "BTN_MIDDLE"
	case ButtonRight:
		return "BTN_RIGHT"
	default:
		return fmt.Sprintf("BTN_%d", int(b))
	}
}

type WheelDirection int

const (
	WheelForward  WheelDirection = 1
	WheelBackward WheelDirection = -1
)

// Source supplies input events. TryNext must not block; it reports false when
// no event is available, including after the source has been closed.
type Source interface {
	TryNext() (InputEvent, bool)
}

// QueueSource is an in-memory Source, mostly useful for tests and replay.
type QueueSource struct {
	events []InputEvent
}

func (q *QueueSource) Push(evs ...InputEvent) {
	q.events = append(q.events, evs...)
}

func (q *QueueSource) Len() int {
	return len(q.events)
}

func (q *QueueSource) TryNext() (InputEvent, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}
