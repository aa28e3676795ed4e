package tw

import (
	"regexp"
	"strconv"
	"strings"
)

// trailingAlpha matches the alpha component at the end of an rgba() value
var trailingAlpha = regexp.MustCompile(`[\d.]+\)$`)

// WithOpacity renders color at the given opacity percent using plain
// string rewriting, so recognised inputs keep their original text:
//
//	oklch(L C H) → oklch(L C H / 0.5)
//	#RRGGBB      → #RRGGBB / 50%
//	rgb(r,g,b)   → rgba(r,g,b, 0.5)
//	rgba(r,g,b,a)→ rgba(r,g,b,0.5)
//
// Anything else renders as "currentColor / 50%".
func WithOpacity(color string, opacity int) string {
	switch {
	case strings.HasPrefix(color, "oklch("):
		inner := strings.TrimSuffix(strings.TrimPrefix(color, "oklch("), ")")
		parts := strings.Fields(inner)
		if len(parts) < 3 {
			Logger().Debug("oklch value has fewer than three components", "color", color)
			return fallbackColor(opacity)
		}
		return "oklch(" + parts[0] + " " + parts[1] + " " + parts[2] + " / " + fraction(opacity) + ")"

	case strings.HasPrefix(color, "#"):
		return color + " / " + strconv.Itoa(opacity) + "%"

	case strings.HasPrefix(color, "rgb("):
		inner := strings.TrimSuffix(strings.TrimPrefix(color, "rgb("), ")")
		return "rgba(" + inner + ", " + fraction(opacity) + ")"

	case strings.HasPrefix(color, "rgba("):
		return trailingAlpha.ReplaceAllLiteralString(color, fraction(opacity)+")")
	}

	return fallbackColor(opacity)
}

// fallbackColor lets the element inherit its text colour.
func fallbackColor(opacity int) string {
	return "currentColor / " + strconv.Itoa(opacity) + "%"
}

// fraction formats a percent as the shortest decimal fraction: 50 → "0.5".
func fraction(opacity int) string {
	return strconv.FormatFloat(float64(opacity)/100, 'f', -1, 64)
}

// IsRecognizedColor reports whether color has one of the formats
// WithOpacity rewrites instead of falling back to currentColor.
func IsRecognizedColor(color string) bool {
	if strings.HasPrefix(color, "oklch(") {
		return len(strings.Fields(strings.TrimSuffix(strings.TrimPrefix(color, "oklch("), ")"))) >= 3
	}
	return strings.HasPrefix(color, "#") ||
		strings.HasPrefix(color, "rgb(") ||
		strings.HasPrefix(color, "rgba(")
}
