package core

import "time"

// Timer is the timed visibility of one element. A zero ExpiresAt means the
// glyph persists until hidden explicitly.
type Timer struct {
	Element   Element
	Active    bool
	Glyph     Glyph
	ExpiresAt time.Time
}

// Show displays g until now+timeout, or indefinitely when timeout is zero.
func (t *Timer) Show(d Display, g Glyph, now time.Time, timeout time.Duration) {
	t.Active = true
	t.Glyph = g
	if timeout > 0 {
		t.ExpiresAt = now.Add(timeout)
	} else {
		t.ExpiresAt = time.Time{}
	}
	d.Emit(ShowGlyph{Element: t.Element, Glyph: g})
}

// Due reports whether an active timed glyph has reached its expiry.
func (t *Timer) Due(now time.Time) bool {
	return t.Active && !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// Hide hides the glyph. Hiding an inactive timer emits nothing.
func (t *Timer) Hide(d Display) bool {
	if !t.Active {
		return false
	}
	t.Active = false
	t.Glyph = Glyph{}
	t.ExpiresAt = time.Time{}
	d.Emit(HideGlyph{Element: t.Element})
	return true
}

type BadgeState int

const (
	BadgeHidden BadgeState = iota
	BadgeShown
	BadgePendingHide
)

// ModifierBadge is a latched modifier: shown on press, hidden on release only
// once no transient key badge is on screen.
type ModifierBadge struct {
	Timer
	State BadgeState
}

func (m *ModifierBadge) Press(d Display) {
	if m.State != BadgeShown {
		if !m.Active {
			m.Show(d, Glyph{Asset: m.Element.String()}, time.Time{}, 0)
		}
		m.State = BadgeShown
	}
}

func (m *ModifierBadge) Release() {
	if m.State == BadgeShown {
		m.State = BadgePendingHide
	}
}

// Visible reports whether the badge is on screen, including while a hide is
// pending.
func (m *ModifierBadge) Visible() bool {
	return m.State != BadgeHidden
}

// Sweep completes a pending hide.
func (m *ModifierBadge) Sweep(d Display) bool {
	if m.State != BadgePendingHide {
		return false
	}
	m.State = BadgeHidden
	return m.Hide(d)
}
