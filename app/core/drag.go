package core

// DragState tracks the icon window gesture: 0 is idle, 1 is armed (pressed on
// the icon, not moved yet) and 2 or more is dragging, counting motion ticks.
type DragState struct {
	Count int

	// AnchorX, AnchorY are the pointer offset from the icon origin at press.
	AnchorX, AnchorY float64
}

const (
	DragIdle     = 0
	DragArmed    = 1
	DragDragging = 2
)

func (d *DragState) Active() bool {
	return d.Count > DragIdle
}

func (d *DragState) Press(relX, relY float64) {
	d.AnchorX, d.AnchorY = relX, relY
	d.Count = DragArmed
}

// Move returns the new icon origin for a pointer at (x, y).
func (d *DragState) Move(x, y float64) (float64, float64) {
	d.Count++
	return x - d.AnchorX, y - d.AnchorY
}

// Release ends the gesture. It reports true when the icon was clicked without
// being dragged, which is the quit gesture.
func (d *DragState) Release() (quit bool) {
	quit = d.Count < DragDragging
	d.Count = DragIdle
	return quit
}
