package render

import (
	"fmt"
	"html/template"
	"strings"
)

// Funcs returns the helpers available to every page template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"pct":   FormatPct,
		"clock": FormatClock,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// FormatPct formats a fraction the way standings print it: .650, 1.000.
func FormatPct(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	return strings.TrimPrefix(s, "0")
}

// FormatClock formats a game clock as m:ss.
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
