package tw

import (
	"strings"
)

// State represents the interaction state a class applies to
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
	StateDisabled
)

// pseudoClass returns the CSS pseudo-class for the state
func (s State) pseudoClass() string {
	switch s {
	case StateHover:
		return ":hover"
	case StateFocus:
		return ":focus"
	case StateActive:
		return ":active"
	case StateDisabled:
		return ":disabled"
	}
	return ""
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Raw            string // the class exactly as written
	State          State
	DarkMode       bool
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like bg-stripes-[#1da1f2]
}

// ArbitraryValue represents a use-time value in brackets
type ArbitraryValue struct {
	Property string // e.g. "bg-stripes"
	Value    string // e.g. "#1da1f2", "oklch(0.7 0.1 200)"
}

// Selector returns the CSS selector matching the class and its variants.
func (pc ParsedClass) Selector() string {
	sel := "." + escapeClass(pc.Raw) + pc.State.pseudoClass()
	if pc.DarkMode {
		sel = ".dark " + sel
	}
	return sel
}

// ParseClass splits a class into variant modifiers and base utility.
// It returns false when the class carries a variant stripes cannot express.
//
//	"hover:dark:bg-stripes-red" → ParsedClass{State: Hover, DarkMode: true, BaseClass: "bg-stripes-red"}
//	"bg-stripes-[#fff]"         → ParsedClass{ArbitraryValue: {Property: "bg-stripes", Value: "#fff"}}
func ParseClass(class string) (ParsedClass, bool) {
	parts := splitVariants(class)

	pc := ParsedClass{
		Raw:       class,
		State:     StateDefault,
		BaseClass: parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "active":
			pc.State = StateActive
		case "disabled":
			pc.State = StateDisabled
		case "dark":
			pc.DarkMode = true
		default:
			return pc, false
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc, pc.BaseClass != "" || pc.ArbitraryValue != nil
}

// splitVariants splits on ':' outside of brackets, so arbitrary values
// may contain colons.
func splitVariants(class string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, class[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, class[start:])
}

// extractArbitraryValue parses arbitrary value syntax. Underscores stand
// for spaces, as in class attributes values cannot contain whitespace.
// "bg-stripes-[oklch(0.7_0.1_200)]" → {Property: "bg-stripes", Value: "oklch(0.7 0.1 200)"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-")
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")

	return &ArbitraryValue{
		Property: property,
		Value:    strings.ReplaceAll(value, "_", " "),
	}
}

// escapeClass escapes a class name for use in a CSS selector. Non-ASCII
// runes are valid identifier characters and pass through.
func escapeClass(class string) string {
	var b strings.Builder
	for _, r := range class {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractCandidates scans markup or source text for class-like tokens
// containing prefix. Results keep first-seen order without duplicates.
func ExtractCandidates(content, prefix string) []string {
	tokens := strings.FieldsFunc(content, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '\'', '`', '<', '>', '=', '{', '}', ';':
			return true
		}
		return false
	})

	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		parts := splitVariants(tok)
		if !strings.HasPrefix(parts[len(parts)-1], prefix+"-") {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}
