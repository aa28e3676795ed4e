package tw

import (
	"sort"
	"strconv"
	"strings"
)

// ColorEntry is the classified value of one colour family in a theme.
// It is one of Single, Scale or Invalid.
type ColorEntry interface {
	isColorEntry()
}

// Single is a family with one colour value, e.g. black = "#000000".
type Single string

// Shade is one named variant within a Scale.
type Shade struct {
	Key   string // "500", "DEFAULT", ...
	Value string
}

// Scale is an ordered set of shades. Order defines shade adjacency
// for background chaining.
type Scale []Shade

// Invalid marks a family whose raw value could not be used.
type Invalid struct {
	Reason string
}

func (Single) isColorEntry()  {}
func (Scale) isColorEntry()   {}
func (Invalid) isColorEntry() {}

// DefaultShade is the shade key that maps to the bare family name.
const DefaultShade = "DEFAULT"

// Family is one named entry of a ColorTable.
type Family struct {
	Name  string
	Entry ColorEntry
}

// ColorTable is an ordered theme colour table.
type ColorTable []Family

// Set replaces the entry for name or appends it if not present.
func (t *ColorTable) Set(name string, entry ColorEntry) {
	for i := range *t {
		if (*t)[i].Name == name {
			(*t)[i].Entry = entry
			return
		}
	}
	*t = append(*t, Family{Name: name, Entry: entry})
}

// Lookup returns the entry for name.
func (t ColorTable) Lookup(name string) (ColorEntry, bool) {
	for _, f := range t {
		if f.Name == name {
			return f.Entry, true
		}
	}
	return nil, false
}

// Merge returns a copy of t with every family of other applied via Set.
func (t ColorTable) Merge(other ColorTable) ColorTable {
	out := make(ColorTable, len(t), len(t)+len(other))
	copy(out, t)
	for _, f := range other {
		out.Set(f.Name, f.Entry)
	}
	return out
}

// ClassifyValue converts a loosely typed theme value into a ColorEntry.
// Maps have no insertion order in Go, so their shades are ordered
// DEFAULT first, then numerically, then lexically.
func ClassifyValue(v any) ColorEntry {
	switch val := v.(type) {
	case string:
		return Single(val)
	case Single:
		return val
	case Scale:
		return val
	case []Shade:
		return Scale(val)
	case map[string]string:
		scale := make(Scale, 0, len(val))
		for k, c := range val {
			scale = append(scale, Shade{Key: k, Value: c})
		}
		sortShades(scale)
		return scale
	case map[string]any:
		scale := make(Scale, 0, len(val))
		for k, raw := range val {
			// Non-string shades are dropped here so the generator never sees them
			if c, ok := raw.(string); ok {
				scale = append(scale, Shade{Key: k, Value: c})
			}
		}
		sortShades(scale)
		return scale
	case nil:
		return Invalid{Reason: "missing value"}
	default:
		return Invalid{Reason: "unsupported value type"}
	}
}

// FromMap builds a ColorTable from a Go map, ordering families by name.
func FromMap(m map[string]any) ColorTable {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make(ColorTable, 0, len(names))
	for _, name := range names {
		table = append(table, Family{Name: name, Entry: ClassifyValue(m[name])})
	}
	return table
}

func sortShades(scale Scale) {
	sort.SliceStable(scale, func(i, j int) bool {
		return shadeLess(scale[i].Key, scale[j].Key)
	})
}

func shadeLess(a, b string) bool {
	if a == DefaultShade || b == DefaultShade {
		return a == DefaultShade && b != DefaultShade
	}
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return strings.Compare(a, b) < 0
}

// Options holds optional generator settings. Nil fields take defaults.
type Options struct {
	Size      *string
	Angle     *string
	Opacity   *int
	BgOpacity *int
	Prefix    *string
}

// Config is a fully resolved generator configuration.
type Config struct {
	Size      string // stripe tile size, e.g. "7.07px"
	Angle     string // gradient angle, e.g. "135deg"
	Opacity   int    // stripe opacity percent
	BgOpacity int    // fill opacity percent
	Prefix    string // class prefix, e.g. "bg-stripes"
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Size:      "7.07px",
		Angle:     "135deg",
		Opacity:   50,
		BgOpacity: 10,
		Prefix:    "bg-stripes",
	}
}

// Resolve merges o over the defaults. Opacities are clamped to 0-100.
func (o Options) Resolve() Config {
	cfg := DefaultConfig()
	if o.Size != nil && *o.Size != "" {
		cfg.Size = *o.Size
	}
	if o.Angle != nil && *o.Angle != "" {
		cfg.Angle = *o.Angle
	}
	if o.Opacity != nil {
		cfg.Opacity = clampPercent(*o.Opacity)
	}
	if o.BgOpacity != nil {
		cfg.BgOpacity = clampPercent(*o.BgOpacity)
	}
	if o.Prefix != nil && *o.Prefix != "" {
		cfg.Prefix = *o.Prefix
	}
	return cfg
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Declaration is the CSS declaration block of one stripes utility.
// The zero value is the empty record.
type Declaration struct {
	BackgroundColor string
	BackgroundImage string
	BackgroundSize  string
}

// IsEmpty reports whether d carries no declarations.
func (d Declaration) IsEmpty() bool {
	return d == Declaration{}
}

// Property is a single CSS property/value pair.
type Property struct {
	Name  string
	Value string
}

// Properties returns the non-empty declarations in CSS order.
func (d Declaration) Properties() []Property {
	var props []Property
	if d.BackgroundColor != "" {
		props = append(props, Property{"background-color", d.BackgroundColor})
	}
	if d.BackgroundImage != "" {
		props = append(props, Property{"background-image", d.BackgroundImage})
	}
	if d.BackgroundSize != "" {
		props = append(props, Property{"background-size", d.BackgroundSize})
	}
	return props
}

// UtilityMap maps generated class names to their declarations.
type UtilityMap map[string]Declaration
