package tw

import (
	"fmt"
	"io"
	"strings"
)

// Header is written at the top of every generated stylesheet.
const Header = "/* Code generated by stripes - DO NOT EDIT. */\n"

// WriteCSS renders rules as a stylesheet.
func WriteCSS(w io.Writer, rules []Rule) error {
	var b strings.Builder
	b.WriteString(Header)

	for _, rule := range rules {
		b.WriteString("\n")
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, prop := range rule.Declaration.Properties() {
			b.WriteString(fmt.Sprintf("  %s: %s;\n", prop.Name, prop.Value))
		}
		b.WriteString("}\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
