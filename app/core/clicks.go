package core

import "time"

// maxClickStamps bounds the history to one triple click: three presses and
// three releases.
const maxClickStamps = 6

// ClickHistory tracks press and release times of the current button gesture.
// An odd number of stamps means the button is down.
type ClickHistory struct {
	Stamps []time.Time
}

// Press classifies a left button press at now as the 1st, 2nd or 3rd click of
// a sequence and records it.
func (c *ClickHistory) Press(now time.Time, window time.Duration) int {
	switch {
	case len(c.Stamps) == 2 && now.Sub(c.Stamps[0]) < window:
		c.push(now)
		return 2
	case len(c.Stamps) == 4 && now.Sub(c.Stamps[2]) < window:
		c.push(now)
		return 3
	default:
		c.Reset(now)
		return 1
	}
}

// Single starts a new one-shot sequence, as for middle and right presses.
func (c *ClickHistory) Single(now time.Time) {
	c.Reset(now)
}

// Release records a button release.
func (c *ClickHistory) Release(now time.Time) {
	c.push(now)
}

// Flash sets a released two-stamp history so a wheel notch decays like a click.
func (c *ClickHistory) Flash(now time.Time, d time.Duration) {
	c.Stamps = append(c.Stamps[:0], now, now.Add(d))
}

func (c *ClickHistory) Reset(now time.Time) {
	c.Stamps = append(c.Stamps[:0], now)
}

func (c *ClickHistory) Clear() {
	c.Stamps = c.Stamps[:0]
}

func (c *ClickHistory) Empty() bool {
	return len(c.Stamps) == 0
}

// Down reports whether a press has no matching release yet.
func (c *ClickHistory) Down() bool {
	return len(c.Stamps)%2 == 1
}

func (c *ClickHistory) push(t time.Time) {
	if len(c.Stamps) >= maxClickStamps {
		c.Stamps = append(c.Stamps[:0], c.Stamps[len(c.Stamps)-maxClickStamps+1:]...)
	}
	c.Stamps = append(c.Stamps, t)
}
