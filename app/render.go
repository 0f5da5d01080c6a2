package app

import (
	"github.com/bvisness/keycast/app/core"
	"github.com/bvisness/keycast/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// overlayOrder is the left-to-right order of the overlay slots.
var overlayOrder = append([]core.Element{core.ElementMouse, core.ElementKey}, core.Modifiers...)

type slot struct {
	Element core.Element
	Glyph   core.Glyph
	Rect    Rect
}

// layoutOverlay lays out the visible glyphs in a row starting at the origin.
// The mouse slot is always present; it shows the resting art when hidden.
// measure returns the width of a label at the skin's font size.
func layoutOverlay(skin Skin, shown map[core.Element]core.Glyph, measure func(string) float64) ([]slot, float64, float64) {
	var slots []slot
	x := 0.0
	h := util.Max(skin.BadgeSize, skin.MouseH)
	for _, e := range overlayOrder {
		g, ok := shown[e]
		if !ok && e != core.ElementMouse {
			continue
		}
		if !ok {
			g = core.Glyph{Asset: "mouse-off"}
		}

		var w float64
		if e == core.ElementMouse {
			w = skin.MouseW
		} else {
			w = util.Max(skin.BadgeSize, measure(BadgeLabel(g))+2*skin.Padding)
		}
		if len(slots) > 0 {
			x += skin.Spacing
		}
		sh := util.Tern(e == core.ElementMouse, skin.MouseH, skin.BadgeSize)
		slots = append(slots, slot{Element: e, Glyph: g, Rect: Rect{X: x, Y: (h - sh) / 2, W: w, H: sh}})
		x += w
	}
	return slots, x, h
}

// Renderer draws the overlay and icon windows inside one transparent,
// screen-sized raylib window and executes the presenter's commands.
type Renderer struct {
	skin    Skin
	measure func(string) float64

	overlayX, overlayY float64
	icon               Rect
	shown              map[core.Element]core.Glyph
	quit               bool
}

func NewRenderer(skin Skin, iconX, iconY float64, measure func(string) float64) *Renderer {
	return &Renderer{
		skin:    skin,
		measure: measure,
		icon:    Rect{X: iconX, Y: iconY, W: skin.MouseW, H: skin.MouseH},
		shown:   make(map[core.Element]core.Glyph),
	}
}

// RaylibMeasure measures labels with raylib's default font.
func RaylibMeasure(fontSize float64) func(string) float64 {
	return func(s string) float64 {
		return float64(rl.MeasureText(s, int32(fontSize)))
	}
}

func (r *Renderer) Emit(cmd core.Command) {
	switch c := cmd.(type) {
	case core.ShowGlyph:
		g := c.Glyph
		if !core.HasArt(g.Asset) {
			renderLogger.Debugf("no art for %s, using fallback", g.Asset)
			g = core.FallbackGlyph
		}
		r.shown[c.Element] = g
	case core.HideGlyph:
		delete(r.shown, c.Element)
	case core.MoveWindow:
		if c.Window == core.WindowIcon {
			r.icon.X, r.icon.Y = c.X, c.Y
		} else {
			r.overlayX, r.overlayY = c.X, c.Y
		}
	case core.Terminate:
		r.quit = true
	}
}

func (r *Renderer) OverlaySize() (float64, float64) {
	_, w, h := layoutOverlay(r.skin, r.shown, r.measure)
	return w, h
}

func (r *Renderer) IconRect() Rect {
	return r.icon
}

func (r *Renderer) Quit() bool {
	return r.quit
}

// Draw renders both windows. Call between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw() {
	r.drawMouse(r.icon, core.Glyph{Asset: "mouse-off"})

	slots, _, _ := layoutOverlay(r.skin, r.shown, r.measure)
	for _, s := range slots {
		rect := s.Rect
		rect.X += r.overlayX
		rect.Y += r.overlayY
		if s.Element == core.ElementMouse {
			r.drawMouse(rect, s.Glyph)
		} else {
			r.drawBadge(rect, s.Glyph)
		}
	}
}

func rlRect(r Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (r *Renderer) drawBadge(rect Rect, g core.Glyph) {
	rr := rlRect(rect)
	roundness := float32(util.Clamp(2*r.skin.Radius/util.Min(rect.W, rect.H), 0, 1))
	rl.DrawRectangleRounded(rr, roundness, 8, r.skin.Fill)
	rl.DrawRectangleRoundedLinesEx(rr, roundness, 8, float32(r.skin.StrokeWidth), r.skin.Stroke)

	label := BadgeLabel(g)
	fontSize := int32(r.skin.FontSize)
	tw := float64(rl.MeasureText(label, fontSize))
	tx := rect.X + (rect.W-tw)/2
	ty := rect.Y + (rect.H-r.skin.FontSize)/2
	rl.DrawText(label, int32(tx), int32(ty), fontSize, r.skin.Text)
}

// drawMouse draws the pointer art: a body with three button zones, one of
// them lit for clicks, or a wheel arrow for scrolling.
func (r *Renderer) drawMouse(rect Rect, g core.Glyph) {
	rr := rlRect(rect)
	roundness := float32(util.Clamp(2*r.skin.MouseRadius/util.Min(rect.W, rect.H), 0, 1))
	body := r.skin.Fill
	if g.Asset == "mouse-off" {
		body.A /= 2
	}
	rl.DrawRectangleRounded(rr, roundness, 8, body)
	rl.DrawRectangleRoundedLinesEx(rr, roundness, 8, float32(r.skin.StrokeWidth), r.skin.Stroke)

	zoneW := rect.W / 3
	zoneH := rect.H * 0.4
	lit := func(zone int, clicks int) {
		z := Rect{X: rect.X + float64(zone)*zoneW + 2, Y: rect.Y + 2, W: zoneW - 4, H: zoneH}
		rl.DrawRectangleRec(rlRect(z), r.skin.Accent)
		for i := 0; i < clicks; i++ {
			cx := int32(z.X + z.W/2)
			cy := int32(rect.Y + zoneH + 8 + float64(i)*7)
			rl.DrawCircle(cx, cy, 2.5, r.skin.Accent)
		}
	}

	switch g.Asset {
	case "mouse-left-1":
		lit(0, 1)
	case "mouse-left-2":
		lit(0, 2)
	case "mouse-left-3":
		lit(0, 3)
	case "mouse-middle-1":
		lit(1, 1)
	case "mouse-right-1":
		lit(2, 1)
	case "mouse-fwd", "mouse-bwd":
		cx := float32(rect.X + rect.W/2)
		top := float32(rect.Y + 4)
		bottom := float32(rect.Y + zoneH)
		a, b, c := rl.NewVector2(cx, top), rl.NewVector2(cx-5, bottom), rl.NewVector2(cx+5, bottom)
		if g.Asset == "mouse-bwd" {
			a, b, c = rl.NewVector2(cx, bottom), rl.NewVector2(cx+5, top), rl.NewVector2(cx-5, top)
		}
		rl.DrawTriangle(a, b, c, r.skin.Accent)
	}
}

var _ core.Display = (*Renderer)(nil)
