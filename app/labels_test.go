package app

import (
	"testing"

	"github.com/bvisness/keycast/app/core"
	"github.com/stretchr/testify/assert"
)

func TestBadgeLabel(t *testing.T) {
	cases := []struct {
		glyph core.Glyph
		want  string
	}{
		{core.Glyph{Asset: core.KeyTemplate, Label: "Q"}, "Q"},
		{core.Glyph{Asset: "pagedn"}, "PgDn"},
		{core.Glyph{Asset: "capslock"}, "Caps Lock"},
		{core.Glyph{Asset: "backspace"}, "Backspace"},
		{core.Glyph{Asset: "ctrl"}, "Ctrl"},
		{core.Glyph{Asset: "kp_enter"}, "KP Enter"},
		{core.Glyph{Asset: "f11"}, "F11"},
		{core.FallbackGlyph, "?"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BadgeLabel(c.glyph), c.glyph.String())
	}
}
