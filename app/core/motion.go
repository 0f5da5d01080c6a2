package core

import "math"

// DefaultSmoothing is the decay factor of the motion low-pass filter.
const DefaultSmoothing = 63.0 / 64.0

// MotionFilter smooths pointer deltas into a unit direction vector.
type MotionFilter struct {
	// Smoothing is the weight kept from the previous cumulative value.
	Smoothing float64

	LastX, LastY float64
	CumX, CumY   float64
	RX, RY       float64
}

func NewMotionFilter(smoothing float64, x, y float64) MotionFilter {
	return MotionFilter{
		Smoothing: smoothing,
		LastX:     x,
		LastY:     y,
		CumX:      1,
		RX:        1,
	}
}

// Track records the pointer position without filtering, as during an icon drag.
func (f *MotionFilter) Track(x, y float64) {
	f.LastX, f.LastY = x, y
}

// Update feeds a new pointer position and returns the direction vector.
// The previous vector is kept while the cumulative motion is zero.
func (f *MotionFilter) Update(x, y float64) (rx, ry float64) {
	dx, dy := x-f.LastX, y-f.LastY
	f.LastX, f.LastY = x, y

	k := f.Smoothing
	f.CumX = dx*(1-k) + f.CumX*k
	f.CumY = dy*(1-k) + f.CumY*k

	if f.CumX == 0 && f.CumY == 0 {
		return f.RX, f.RY
	}
	r := math.Hypot(f.CumX, f.CumY)
	f.RX = f.CumX / r
	f.RY = f.CumY / r
	return f.RX, f.RY
}

// Place computes the overlay window origin for a pointer at (x, y), an
// overlay of size (w, h), the direction (rx, ry) and a standoff distance off.
// The overlay trails on the side opposite the motion and never covers the
// pointer. Both formulas agree where |ry/rx| == 1.
func Place(rx, ry, x, y, w, h, off float64) (px, py float64) {
	if rx != 0 && math.Abs(ry/rx) <= 1 {
		slope := ry / rx
		if rx >= 0 {
			return x - w - off, y - h/2 - (h/2+off)*slope
		}
		return x + off, y - h/2 + (h/2+off)*slope
	}

	// Mostly vertical. A vertical vector (rx == 0) lands here with invSlope 0,
	// centring the overlay above or below the pointer.
	invSlope := rx / ry
	if ry >= 0 {
		return x - w/2 - (w/2+off)*invSlope, y - h - off
	}
	return x - w/2 + (w/2+off)*invSlope, y + off
}
