package app

import (
	"strings"

	"github.com/bvisness/keycast/app/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Short labels for badges whose asset name does not read well.
var assetLabels = map[string]string{
	"esc":         "Esc",
	"inser":       "Ins",
	"delete":      "Del",
	"pageup":      "PgUp",
	"pagedn":      "PgDn",
	"left":        "<-",
	"right":       "->",
	"up":          "Up",
	"down":        "Down",
	"return":      "Enter",
	"space":       "Space",
	"numlock":     "Num",
	"superl":      "Super",
	"superr":      "Super",
	"altgr":       "AltGr",
	"capslock":    "Caps Lock",
	"kp_inser":    "KP Ins",
	"kp_pagedn":   "KP PgDn",
	"kp_pageup":   "KP PgUp",
	"kp_add":      "KP +",
	"kp_subtract": "KP -",
	"kp_multiply": "KP *",
	"kp_divide":   "KP /",
	"twosuperior": "²",
	"ampersand":   "&",
	"eacute":      "é",
	"quotedbl":    "\"",
	"quoteright":  "'",
	"parenleft":   "(",
	"minus":       "-",
	"egrave":      "è",
	"underscore":  "_",
	"ccedilla":    "ç",
	"agrave":      "à",
	"parenright":  ")",
	"equal":       "=",
	"dollar":      "$",
	"ugrave":      "ù",
	"asterisk":    "*",
	"less":        "<",
	"comma":       ",",
	"semicolon":   ";",
	"colon":       ":",
	"exclam":      "!",
	"dunno":       "?",
}

// BadgeLabel is the text drawn on a key or modifier badge.
func BadgeLabel(g core.Glyph) string {
	if g.Label != "" {
		return g.Label
	}
	if l, ok := assetLabels[g.Asset]; ok {
		return l
	}
	name := strings.ReplaceAll(g.Asset, "_", " ")
	if strings.HasPrefix(name, "kp ") {
		return "KP " + titleCaser.String(name[3:])
	}
	return titleCaser.String(name)
}
