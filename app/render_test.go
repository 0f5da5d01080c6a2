package app

import (
	"testing"

	"github.com/bvisness/keycast/app/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedMeasure(s string) float64 {
	return 10 * float64(len(s))
}

func TestLayoutOverlayMouseOnly(t *testing.T) {
	slots, w, h := layoutOverlay(DefaultSkin(), nil, fixedMeasure)
	require.Len(t, slots, 1)
	assert.Equal(t, core.ElementMouse, slots[0].Element)
	assert.Equal(t, "mouse-off", slots[0].Glyph.Asset)
	assert.Equal(t, 32.0, w)
	assert.Equal(t, 46.0, h)
}

func TestLayoutOverlayOrderAndWidths(t *testing.T) {
	shown := map[core.Element]core.Glyph{
		core.ElementControl: {Asset: "ctrl"},
		core.ElementKey:     {Asset: core.KeyTemplate, Label: "C"},
	}
	slots, w, _ := layoutOverlay(DefaultSkin(), shown, fixedMeasure)
	require.Len(t, slots, 3)

	assert.Equal(t, core.ElementMouse, slots[0].Element)
	assert.Equal(t, core.ElementKey, slots[1].Element)
	assert.Equal(t, core.ElementControl, slots[2].Element)

	assert.Equal(t, Rect{X: 36, Y: 0, W: 46, H: 46}, slots[1].Rect, "short labels get a square badge")
	assert.Equal(t, Rect{X: 86, Y: 0, W: 56, H: 46}, slots[2].Rect, "long labels widen the badge")
	assert.Equal(t, 142.0, w)
}

func TestRendererEmit(t *testing.T) {
	r := NewRenderer(DefaultSkin(), 5, 6, fixedMeasure)
	assert.Equal(t, Rect{X: 5, Y: 6, W: 32, H: 46}, r.IconRect())

	w0, _ := r.OverlaySize()
	r.Emit(core.ShowGlyph{Element: core.ElementShift, Glyph: core.Glyph{Asset: "shift"}})
	w1, _ := r.OverlaySize()
	assert.Greater(t, w1, w0)

	r.Emit(core.ShowGlyph{Element: core.ElementKey, Glyph: core.Glyph{Asset: "no-such-art"}})
	assert.Equal(t, core.FallbackGlyph, r.shown[core.ElementKey])

	r.Emit(core.HideGlyph{Element: core.ElementShift})
	r.Emit(core.HideGlyph{Element: core.ElementKey})
	w2, _ := r.OverlaySize()
	assert.Equal(t, w0, w2)

	r.Emit(core.MoveWindow{Window: core.WindowIcon, X: 100, Y: 200})
	assert.Equal(t, Rect{X: 100, Y: 200, W: 32, H: 46}, r.IconRect())
	r.Emit(core.MoveWindow{Window: core.WindowOverlay, X: 7, Y: 8})
	assert.Equal(t, 7.0, r.overlayX)

	assert.False(t, r.Quit())
	r.Emit(core.Terminate{})
	assert.True(t, r.Quit())
}
