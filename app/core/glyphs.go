package core

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// keyAssets maps named key codes to their pre-rendered badge art.
var keyAssets = map[string]string{
	"KEY_BACKSPACE": "backspace",
	"KEY_ESCAPE":    "esc",
	"KEY_TAB":       "tab",
	"KEY_SPACE":     "space",
	"KEY_RETURN":    "return",

	"KEY_INSERT":    "inser",
	"KEY_DELETE":    "delete",
	"KEY_HOME":      "home",
	"KEY_END":       "end",
	"KEY_PRIOR":     "pageup",
	"KEY_PAGE_DOWN": "pagedn",

	"KEY_LEFT":  "left",
	"KEY_UP":    "up",
	"KEY_RIGHT": "right",
	"KEY_DOWN":  "down",

	"KEY_KP_INSER":     "kp_inser",
	"KEY_KP_END":       "kp_end",
	"KEY_KP_DOWN":      "kp_down",
	"KEY_KP_PAGE_DOWN": "kp_pagedn",
	"KEY_KP_LEFT":      "kp_left",
	"KEY_KP_BEGIN":     "kp_begin",
	"KEY_KP_RIGHT":     "kp_right",
	"KEY_KP_HOME":      "kp_home",
	"KEY_KP_UP":        "kp_up",
	"KEY_KP_PRIOR":     "kp_pageup",
	"KEY_KP_DELETE":    "kp_delete",
	"KEY_KP_ENTER":     "kp_enter",
	"KEY_KP_ADD":       "kp_add",
	"KEY_KP_SUBTRACT":  "kp_subtract",
	"KEY_KP_MULTIPLY":  "kp_multiply",
	"KEY_KP_DIVIDE":    "kp_divide",
	"KEY_NUM_LOCK":     "numlock",

	// Punctuation, including the glyphs of a French AZERTY top row.
	"KEY_TWOSUPERIOR": "twosuperior",
	"KEY_AMPERSAND":   "ampersand",
	"KEY_EACUTE":      "eacute",
	"KEY_QUOTEDBL":    "quotedbl",
	"KEY_QUOTERIGHT":  "quoteright",
	"KEY_PARENLEFT":   "parenleft",
	"KEY_MINUS":       "minus",
	"KEY_EGRAVE":      "egrave",
	"KEY_UNDERSCORE":  "underscore",
	"KEY_CCEDILLA":    "ccedilla",
	"KEY_AGRAVE":      "agrave",
	"KEY_PARENRIGHT":  "parenright",
	"KEY_EQUAL":       "equal",
	"KEY_DOLLAR":      "dollar",
	"KEY_UGRAVE":      "ugrave",
	"KEY_ASTERISK":    "asterisk",
	"KEY_LESS":        "less",
	"KEY_COMMA":       "comma",
	"KEY_SEMICOLON":   "semicolon",
	"KEY_COLON":       "colon",
	"KEY_EXCLAM":      "exclam",
	"KEY_DUNNO":       "dunno",

	"KEY_SUPER_R": "superr",
	"KEY_SUPER_L": "superl",
	"KEY_MENU":    "menu",
}

// keyNames holds the catalogue codes, longest first, for prefix matching.
var keyNames = func() []string {
	names := make([]string, 0, len(keyAssets))
	for k := range keyAssets {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// KeyTemplate is the parametric badge used for letter keys.
const KeyTemplate = "key"

// ModifierFor classifies a key code as one of the latched modifiers.
func ModifierFor(code string) (Element, bool) {
	switch {
	case code == "KEY_ISO_LEVEL3_SHIFT" || strings.HasPrefix(code, "KEY_ALTGR"):
		return ElementAltGr, true
	case strings.HasPrefix(code, "KEY_ALT"):
		return ElementAlt, true
	case strings.HasPrefix(code, "KEY_CONTROL"), strings.HasPrefix(code, "KEY_CTRL"):
		return ElementControl, true
	case strings.HasPrefix(code, "KEY_SHIFT"):
		return ElementShift, true
	case strings.HasPrefix(code, "KEY_CAPS_LOCK"), code == "KEY_CAPSLOCK":
		return ElementCapsLock, true
	}
	return 0, false
}

// Letter returns the upper-case letter of a single-letter key code.
func Letter(code string) (string, bool) {
	if len(code) != 5 || !strings.HasPrefix(code, "KEY_") {
		return "", false
	}
	c := code[4]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return "", false
	}
	return string(c), true
}

// NamedGlyph resolves a key code against the catalogue of named keys. Codes
// carrying a suffix, such as "KEY_RETURN_KP", match their catalogue prefix.
func NamedGlyph(code string) (Glyph, bool) {
	if asset, ok := keyAssets[code]; ok {
		return Glyph{Asset: asset}, true
	}
	for _, name := range keyNames {
		if strings.HasPrefix(code, name) {
			return Glyph{Asset: keyAssets[name]}, true
		}
	}
	return Glyph{}, false
}

// Suggest returns the catalogue code closest to an unrecognized code, or ""
// when nothing is close.
func Suggest(code string) string {
	ranks := fuzzy.RankFindFold(code, keyNames)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", len(code)/2+1
	for _, name := range keyNames {
		if d := fuzzy.LevenshteinDistance(strings.ToUpper(code), name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

var otherAssets = map[string]bool{
	KeyTemplate: true,
	"mouse-on":  true, "mouse-off": true,
	"mouse-left-1": true, "mouse-left-2": true, "mouse-left-3": true,
	"mouse-middle-1": true, "mouse-right-1": true,
	"mouse-fwd": true, "mouse-bwd": true,
}

// HasArt reports whether asset is part of the glyph catalogue.
func HasArt(asset string) bool {
	for _, m := range Modifiers {
		if m.String() == asset {
			return true
		}
	}
	if otherAssets[asset] {
		return true
	}
	for _, a := range keyAssets {
		if a == asset {
			return true
		}
	}
	return false
}
