package theme

import (
	"log/slog"

	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/agiangrant/stripes/tw"
)

// colorsPath is the table holding the theme palette.
var colorsPath = []string{"theme", "colors"}

// parseColors walks the TOML document expression by expression so that
// families and shades keep the order they were written in. Decoding into
// a Go map would lose that order, and shade order drives fill chaining.
func parseColors(data []byte) (tw.ColorTable, error) {
	p := unstable.Parser{}
	p.Reset(data)

	b := newTableBuilder()
	var current []string
	inArray := false

	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			current = keyParts(expr.Key())
			inArray = false
			if rest, ok := underColors(current); ok {
				b.table(rest)
			}

		case unstable.ArrayTable:
			current = keyParts(expr.Key())
			inArray = true
			if rest, ok := underColors(current); ok && len(rest) > 0 {
				b.invalid(rest[0], "array of tables")
			}

		case unstable.KeyValue:
			if inArray {
				continue
			}
			path := append(append([]string{}, current...), keyParts(expr.Key())...)
			if rest, ok := underColors(path); ok {
				b.value(rest, expr.Value())
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}

	return b.build(), nil
}

// underColors returns the part of path below [theme.colors].
func underColors(path []string) ([]string, bool) {
	if len(path) < len(colorsPath) {
		return nil, false
	}
	for i, part := range colorsPath {
		if path[i] != part {
			return nil, false
		}
	}
	return path[len(colorsPath):], true
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

type familyBuilder struct {
	entry  tw.ColorEntry
	shades tw.Scale
	scale  bool
}

// tableBuilder accumulates families in first-seen order.
type tableBuilder struct {
	order    []string
	families map[string]*familyBuilder
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{families: make(map[string]*familyBuilder)}
}

func (b *tableBuilder) family(name string) *familyBuilder {
	f, ok := b.families[name]
	if !ok {
		f = &familyBuilder{}
		b.families[name] = f
		b.order = append(b.order, name)
	}
	return f
}

// table handles a [theme.colors.<family>] header.
func (b *tableBuilder) table(rest []string) {
	if len(rest) == 1 {
		b.family(rest[0]).scale = true
	}
}

func (b *tableBuilder) invalid(name, reason string) {
	f := b.family(name)
	f.entry = tw.Invalid{Reason: reason}
	f.scale = false
}

// value records one key/value found below [theme.colors]. rest is the key
// path relative to that table.
func (b *tableBuilder) value(rest []string, node *unstable.Node) {
	switch len(rest) {
	case 0:
		// colors = { ... } written inline under [theme]
		if node.Kind == unstable.InlineTable {
			b.children(nil, node)
		}

	case 1:
		switch node.Kind {
		case unstable.String:
			f := b.family(rest[0])
			f.entry = tw.Single(string(node.Data))
			f.scale = false
		case unstable.InlineTable:
			b.family(rest[0]).scale = true
			b.children(rest, node)
		default:
			b.invalid(rest[0], node.Kind.String()+" value")
		}

	case 2:
		f := b.family(rest[0])
		if node.Kind != unstable.String {
			slog.Debug("dropping non-string shade", "family", rest[0], "shade", rest[1], "kind", node.Kind.String())
			f.scale = true
			return
		}
		f.scale = true
		f.shades = append(f.shades, tw.Shade{Key: rest[1], Value: string(node.Data)})

	default:
		slog.Debug("ignoring nested colour key", "path", rest)
	}
}

func (b *tableBuilder) children(prefix []string, node *unstable.Node) {
	it := node.Children()
	for it.Next() {
		child := it.Node()
		if child.Kind != unstable.KeyValue {
			continue
		}
		path := append(append([]string{}, prefix...), keyParts(child.Key())...)
		b.value(path, child.Value())
	}
}

func (b *tableBuilder) build() tw.ColorTable {
	table := make(tw.ColorTable, 0, len(b.order))
	for _, name := range b.order {
		f := b.families[name]
		entry := f.entry
		if f.scale {
			entry = f.shades
		}
		if entry == nil {
			entry = tw.Invalid{Reason: "missing value"}
		}
		table = append(table, tw.Family{Name: name, Entry: entry})
	}
	return table
}
