package tw

import (
	"sort"
)

// Host receives generated utilities. It mirrors the two callbacks a
// utility framework hands to plugins.
type Host interface {
	// AddUtilities registers static utilities.
	AddUtilities(utilities UtilityMap)
	// MatchUtilities registers fn as the handler for "<prefix>-[value]" classes.
	MatchUtilities(prefix string, fn func(value string) Declaration)
}

// Register generates the utilities for table and hands them to host,
// then registers GenerateForValue for arbitrary values under the
// configured prefix.
func Register(host Host, table ColorTable, opts Options) {
	cfg := opts.Resolve()
	host.AddUtilities(GenerateFromTable(table, opts))
	host.MatchUtilities(cfg.Prefix, func(value string) Declaration {
		return GenerateForValue(value, opts)
	})
}

// Rule is one resolved CSS rule.
type Rule struct {
	Class       string
	Selector    string
	Declaration Declaration
}

// Stylesheet is a Host that resolves class names into CSS rules.
// It is not safe for concurrent registration; resolve after registering.
type Stylesheet struct {
	utilities UtilityMap
	matchers  map[string]func(string) Declaration
}

// NewStylesheet returns an empty Stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		utilities: make(UtilityMap),
		matchers:  make(map[string]func(string) Declaration),
	}
}

// AddUtilities merges utilities into the stylesheet. Later registrations
// replace earlier ones with the same class name.
func (s *Stylesheet) AddUtilities(utilities UtilityMap) {
	for class, decl := range utilities {
		s.utilities[class] = decl
	}
}

// MatchUtilities registers fn for arbitrary values under prefix.
func (s *Stylesheet) MatchUtilities(prefix string, fn func(string) Declaration) {
	s.matchers[prefix] = fn
}

// Resolve returns the rule for one class. Unknown classes, unsupported
// variants and arbitrary values that produce no declarations report false.
func (s *Stylesheet) Resolve(class string) (Rule, bool) {
	parsed, ok := ParseClass(class)
	if !ok {
		return Rule{}, false
	}

	var decl Declaration
	if parsed.ArbitraryValue != nil {
		fn, ok := s.matchers[parsed.ArbitraryValue.Property]
		if !ok {
			return Rule{}, false
		}
		decl = fn(parsed.ArbitraryValue.Value)
	} else {
		decl, ok = s.utilities[parsed.BaseClass]
		if !ok {
			// Unknown class, silently ignore
			return Rule{}, false
		}
	}

	if decl.IsEmpty() {
		return Rule{}, false
	}
	return Rule{Class: class, Selector: parsed.Selector(), Declaration: decl}, true
}

// Rules resolves classes, dropping unknown and duplicate ones, and
// returns the rules sorted by selector.
func (s *Stylesheet) Rules(classes []string) []Rule {
	seen := make(map[string]bool, len(classes))
	var rules []Rule
	for _, class := range classes {
		if seen[class] {
			continue
		}
		seen[class] = true
		if rule, ok := s.Resolve(class); ok {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// All returns a rule for every static utility, sorted by selector.
func (s *Stylesheet) All() []Rule {
	rules := make([]Rule, 0, len(s.utilities))
	for class, decl := range s.utilities {
		rules = append(rules, Rule{Class: class, Selector: "." + escapeClass(class), Declaration: decl})
	}
	sortRules(rules)
	return rules
}

// Len returns the number of static utilities.
func (s *Stylesheet) Len() int {
	return len(s.utilities)
}

func sortRules(rules []Rule) {
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Selector < rules[j].Selector
	})
}
