package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/agiangrant/stripes/tw"
)

// Severity grades a Finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is one problem found in a colour table. Findings never stop
// generation; they explain entries that will be skipped or degraded.
type Finding struct {
	Severity Severity
	Family   string
	Shade    string
	Value    string
	Message  string
}

func (f Finding) String() string {
	name := f.Family
	if f.Shade != "" {
		name += "." + f.Shade
	}
	if f.Value != "" {
		return fmt.Sprintf("%s: %s (%q)", name, f.Message, f.Value)
	}
	return fmt.Sprintf("%s: %s", name, f.Message)
}

// Check inspects table and reports entries that generate nothing,
// render as currentColor, or collide with another class name.
func Check(table tw.ColorTable) []Finding {
	var findings []Finding
	owners := make(map[string]string)

	claim := func(family, shade, key string) {
		label := family
		if shade != "" {
			label += "." + shade
		}
		if prev, ok := owners[key]; ok {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Family:   family,
				Shade:    shade,
				Message:  fmt.Sprintf("class %q also generated by %s and will be replaced", key, prev),
			})
		}
		owners[key] = label
	}

	for _, family := range table {
		switch entry := family.Entry.(type) {
		case tw.Single:
			findings = append(findings, checkValue(family.Name, "", string(entry))...)
			claim(family.Name, "", family.Name)

		case tw.Scale:
			if len(entry) == 0 {
				findings = append(findings, Finding{Severity: SeverityWarning, Family: family.Name, Message: "scale has no shades"})
			}
			for _, shade := range entry {
				findings = append(findings, checkValue(family.Name, shade.Key, shade.Value)...)
				if shade.Value == "" {
					continue
				}
				key := family.Name
				if shade.Key != tw.DefaultShade {
					key += "-" + shade.Key
				}
				claim(family.Name, shade.Key, key)
			}

		case tw.Invalid:
			findings = append(findings, Finding{
				Severity: SeverityError,
				Family:   family.Name,
				Message:  "not a colour or scale: " + entry.Reason,
			})
		}
	}

	return findings
}

func checkValue(family, shade, value string) []Finding {
	if value == "" {
		return []Finding{{Severity: SeverityWarning, Family: family, Shade: shade, Message: "empty colour is skipped"}}
	}
	if !tw.IsRecognizedColor(value) {
		return []Finding{{Severity: SeverityWarning, Family: family, Shade: shade, Value: value, Message: "unrecognised format renders as currentColor"}}
	}
	if strings.HasPrefix(value, "#") {
		if _, err := colorful.Hex(value); err != nil {
			return []Finding{{Severity: SeverityWarning, Family: family, Shade: shade, Value: value, Message: "malformed hex colour"}}
		}
	}
	return nil
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
