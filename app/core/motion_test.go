package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotionFilterUnitVector(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewMotionFilter(DefaultSmoothing, 0, 0)

	x, y := 0.0, 0.0
	for i := 0; i < 2000; i++ {
		x += float64(rng.Intn(41) - 20)
		y += float64(rng.Intn(41) - 20)
		rx, ry := f.Update(x, y)
		if f.CumX != 0 || f.CumY != 0 {
			assert.InDelta(t, 1.0, rx*rx+ry*ry, 1e-9)
		}
	}
}

func TestMotionFilterHoldsVectorAtRest(t *testing.T) {
	f := NewMotionFilter(0.5, 0, 0)
	f.CumX, f.CumY = 0, 0
	f.RX, f.RY = 0, -1

	rx, ry := f.Update(0, 0)
	assert.Equal(t, 0.0, rx)
	assert.Equal(t, -1.0, ry)
}

func TestMotionFilterSmoothing(t *testing.T) {
	f := NewMotionFilter(DefaultSmoothing, 0, 0)
	f.Update(0, 32)

	assert.InDelta(t, 63.0/64, f.CumX, 1e-12)
	assert.InDelta(t, 0.5, f.CumY, 1e-12)
	assert.Equal(t, 32.0, f.LastY)
	assert.Greater(t, f.RX, f.RY, "one jump does not flip the direction")
}

func TestPlaceQuadrants(t *testing.T) {
	const x, y, w, h, off = 500.0, 400.0, 100.0, 40.0, 10.0

	px, py := Place(1, 0, x, y, w, h, off)
	assert.Equal(t, x-w-off, px, "moving right: left of the pointer")
	assert.Equal(t, y-h/2, py)

	px, py = Place(-1, 0, x, y, w, h, off)
	assert.Equal(t, x+off, px, "moving left: right of the pointer")
	assert.Equal(t, y-h/2, py)

	px, py = Place(0, 1, x, y, w, h, off)
	assert.Equal(t, x-w/2, px)
	assert.Equal(t, y-h-off, py, "moving down: above the pointer")

	px, py = Place(0, -1, x, y, w, h, off)
	assert.Equal(t, x-w/2, px)
	assert.Equal(t, y+off, py, "moving up: below the pointer")
}

func TestPlaceContinuousAtDiagonals(t *testing.T) {
	const x, y, w, h, off = 300.0, 200.0, 120.0, 48.0, 12.0
	const eps = 1e-7

	for _, quadrant := range [][2]float64{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		sx, sy := quadrant[0], quadrant[1]
		// Just inside the horizontal branch and just inside the vertical one.
		hx, hy := Place(sx*(1+eps), sy, x, y, w, h, off)
		vx, vy := Place(sx, sy*(1+eps), x, y, w, h, off)
		assert.InDelta(t, hx, vx, 1e-3, "x at diagonal %v", quadrant)
		assert.InDelta(t, hy, vy, 1e-3, "y at diagonal %v", quadrant)
	}
}

func TestPlaceNeverCoversPointer(t *testing.T) {
	const x, y, w, h, off = 640.0, 360.0, 150.0, 48.0, 10.0
	for deg := 0; deg < 360; deg += 3 {
		a := float64(deg) * math.Pi / 180
		px, py := Place(math.Cos(a), math.Sin(a), x, y, w, h, off)
		inside := x >= px && x <= px+w && y >= py && y <= py+h
		assert.False(t, inside, "angle %d covers the pointer", deg)
	}
}
