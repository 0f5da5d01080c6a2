package core

import "fmt"

// Element identifies one displayable slot in the overlay window.
type Element int

const (
	ElementMouse Element = iota
	ElementKey
	ElementAlt
	ElementAltGr
	ElementControl
	ElementShift
	ElementCapsLock
)

// Modifiers lists the modifier elements in display order.
var Modifiers = []Element{ElementAlt, ElementAltGr, ElementControl, ElementShift, ElementCapsLock}

func (e Element) String() string {
	switch e {
	case ElementMouse:
		return "mouse"
	case ElementKey:
		return "key"
	case ElementAlt:
		return "alt"
	case ElementAltGr:
		return "altgr"
	case ElementControl:
		return "ctrl"
	case ElementShift:
		return "shift"
	case ElementCapsLock:
		return "capslock"
	default:
		return fmt.Sprintf("element(%d)", int(e))
	}
}

// IsModifier reports whether e is one of the latched modifier badges.
func (e Element) IsModifier() bool {
	return e >= ElementAlt && e <= ElementCapsLock
}

type Window int

const (
	WindowOverlay Window = iota
	WindowIcon
)

func (w Window) String() string {
	if w == WindowIcon {
		return "icon"
	}
	return "overlay"
}

// Glyph names the art for a displayed element. The presenter never draws;
// renderers resolve Asset (and Base, for composites) against their own art.
type Glyph struct {
	// Asset is the catalogue name of the art, e.g. "backspace" or "mouse-left-2".
	Asset string
	// Label is substituted into parametric art such as the "key" template.
	Label string
	// Base, when set, is drawn underneath Asset.
	Base string
}

// FallbackGlyph is drawn for a recognized code whose art is unavailable.
var FallbackGlyph = Glyph{Asset: "dunno"}

func (g Glyph) String() string {
	s := g.Asset
	if g.Label != "" {
		s += "[" + g.Label + "]"
	}
	if g.Base != "" {
		s = g.Base + "+" + s
	}
	return s
}

// Command is an instruction for the rendering and window layer. The concrete
// types are ShowGlyph, HideGlyph, MoveWindow and Terminate.
type Command interface {
	fmt.Stringer
	isCommand()
}

type ShowGlyph struct {
	Element Element
	Glyph   Glyph
}

type HideGlyph struct {
	Element Element
}

type MoveWindow struct {
	Window Window
	X, Y   float64
}

type Terminate struct{}

func (ShowGlyph) isCommand()  {}
func (HideGlyph) isCommand()  {}
func (MoveWindow) isCommand() {}
func (Terminate) isCommand()  {}

func (c ShowGlyph) String() string  { return fmt.Sprintf("show %s %s", c.Element, c.Glyph) }
func (c HideGlyph) String() string  { return fmt.Sprintf("hide %s", c.Element) }
func (c MoveWindow) String() string { return fmt.Sprintf("move %s %.0f,%.0f", c.Window, c.X, c.Y) }
func (c Terminate) String() string  { return "terminate" }

// Display receives the presenter's commands. Commands are emitted
// synchronously, in order, from the tick that produced them.
type Display interface {
	Emit(cmd Command)
	// OverlaySize is the current size of the overlay window, which depends on
	// how many glyphs are shown.
	OverlaySize() (w, h float64)
}
