package app

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

//go:embed assets/skin.svg
var defaultSkin []byte

// Skin is the badge geometry and palette, read from an SVG description.
type Skin struct {
	BadgeSize   float64
	Radius      float64
	StrokeWidth float64
	FontSize    float64
	Padding     float64
	Spacing     float64
	MouseW      float64
	MouseH      float64
	MouseRadius float64

	Fill   color.RGBA
	Stroke color.RGBA
	Text   color.RGBA
	Accent color.RGBA
}

func DefaultSkin() Skin {
	s, err := LoadSkin(defaultSkin)
	if err != nil {
		panic(fmt.Errorf("embedded skin: %w", err))
	}
	return s
}

func LoadSkin(data []byte) (Skin, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return Skin{}, fmt.Errorf("parse skin: %w", err)
	}

	p := skinParser{doc: doc}
	s := Skin{
		BadgeSize:   p.num("badge", "height", 46),
		Radius:      p.num("badge", "rx", 8),
		StrokeWidth: p.num("badge", "stroke-width", 2),
		FontSize:    p.num("label", "font-size", 20),
		Padding:     p.num("layout", "data-padding", 8),
		Spacing:     p.num("layout", "data-spacing", 4),
		MouseW:      p.num("mouse", "width", 32),
		MouseH:      p.num("mouse", "height", 46),
		MouseRadius: p.num("mouse", "rx", 14),
		Fill:        p.color("badge", "fill", "fill-opacity", color.RGBA{30, 30, 40, 217}),
		Stroke:      p.color("badge", "stroke", "", color.RGBA{232, 232, 240, 255}),
		Text:        p.color("label", "fill", "", color.RGBA{244, 244, 248, 255}),
		Accent:      p.color("accent", "fill", "", color.RGBA{255, 159, 28, 255}),
	}
	if p.err != nil {
		return Skin{}, p.err
	}
	return s, nil
}

type skinParser struct {
	doc *xmlquery.Node
	err error
}

func (p *skinParser) attr(id, name string) string {
	n := xmlquery.FindOne(p.doc, fmt.Sprintf("//*[@id='%s']", id))
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.SelectAttr(name))
}

func (p *skinParser) num(id, name string, def float64) float64 {
	v := p.attr(id, name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("skin %s@%s: %w", id, name, err)
		}
		return def
	}
	return f
}

func (p *skinParser) color(id, name, opacityAttr string, def color.RGBA) color.RGBA {
	v := p.attr(id, name)
	if v == "" {
		return def
	}
	c, err := parseHexColor(v)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("skin %s@%s: %w", id, name, err)
		}
		return def
	}
	if opacityAttr != "" {
		c.A = uint8(p.num(id, opacityAttr, 1)*255 + 0.5)
	}
	return c
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
