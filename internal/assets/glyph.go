package assets

import (
	"path/filepath"
	"strings"
)

var glyphs = map[string]string{
	"battery_0":         "[!   ]",
	"battery_1":         "[▌   ]",
	"battery_2":         "[██▌ ]",
	"battery_3":         "[████]",
	"batteryCharging_0": "[!  ]⚡",
	"batteryCharging_1": "[▌  ]⚡",
	"batteryCharging_2": "[█▌ ]⚡",
	"batteryCharging_3": "[███]⚡",
	"wifiStrength0":     "·",
	"wifiStrength1":     "▂",
	"wifiStrength2":     "▂▄",
	"wifiStrength3":     "▂▄▆█",
	"wait1":             "◐",
	"wait2":             "◓",
	"wait3":             "◑",
	"wait4":             "◒",
	"apps":              "▦",
	"library":           "☰",
	"settings":          "⚙",
	"power":             "⏻",
}

// glyphFor picks a stand-in for a missing icon file: a known glyph for the
// status tables, otherwise the initials of the file name.
func glyphFor(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if g, ok := glyphs[base]; ok {
		return g
	}
	if base == "" || base == "." {
		return "?"
	}
	var b strings.Builder
	b.WriteRune('[')
	upper := true
	for _, r := range base {
		if r == '_' || r == '-' || r == ' ' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		}
	}
	b.WriteRune(']')
	return b.String()
}
