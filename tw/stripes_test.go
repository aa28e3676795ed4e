package tw

import (
	"reflect"
	"sort"
	"sync"
	"testing"
)

func ptr[T any](v T) *T {
	return &v
}

func stripeImage(angle, stripe string) string {
	return "linear-gradient(" + angle + ", " + stripe + " 10%, transparent 0, transparent 50%, " +
		stripe + " 0, " + stripe + " 60%, transparent 0, transparent)"
}

func keys(m UtilityMap) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestGenerateFromTable(t *testing.T) {
	table := ColorTable{
		{Name: "red", Entry: Single("#ff0000")},
		{Name: "blue", Entry: Scale{{"400", "#60a5fa"}, {"500", "#3b82f6"}}},
	}

	got := GenerateFromTable(table, Options{})

	wantKeys := []string{"bg-stripes-blue-400", "bg-stripes-blue-500", "bg-stripes-red"}
	if !reflect.DeepEqual(keys(got), wantKeys) {
		t.Fatalf("keys = %v, want %v", keys(got), wantKeys)
	}

	red := got["bg-stripes-red"]
	want := Declaration{
		BackgroundColor: "#ff0000 / 10%",
		BackgroundImage: stripeImage("135deg", "#ff0000 / 50%"),
		BackgroundSize:  "7.07px 7.07px",
	}
	if red != want {
		t.Errorf("red = %+v, want %+v", red, want)
	}

	if got := got["bg-stripes-blue-400"].BackgroundColor; got != "#60a5fa / 10%" {
		t.Errorf("blue-400 fills from itself: got %q", got)
	}

	blue500 := got["bg-stripes-blue-500"]
	if blue500.BackgroundColor != "#60a5fa / 10%" {
		t.Errorf("blue-500 should fill from previous shade, got %q", blue500.BackgroundColor)
	}
	if blue500.BackgroundImage != stripeImage("135deg", "#3b82f6 / 50%") {
		t.Errorf("blue-500 stripe should use its own colour, got %q", blue500.BackgroundImage)
	}
}

func TestGenerateFromTableDefaultShade(t *testing.T) {
	table := ColorTable{
		{Name: "gray", Entry: Scale{{DefaultShade, "#000000"}, {"100", "#111111"}}},
	}

	got := GenerateFromTable(table, Options{})

	wantKeys := []string{"bg-stripes-gray", "bg-stripes-gray-100"}
	if !reflect.DeepEqual(keys(got), wantKeys) {
		t.Fatalf("keys = %v, want %v", keys(got), wantKeys)
	}
	if _, ok := got["bg-stripes-gray-DEFAULT"]; ok {
		t.Error("DEFAULT shade must map to the bare family name")
	}
	if got := got["bg-stripes-gray-100"].BackgroundColor; got != "#000000 / 10%" {
		t.Errorf("gray-100 should fill from DEFAULT, got %q", got)
	}
}

func TestGenerateFromTableSkipsInvalid(t *testing.T) {
	table := FromMap(map[string]any{
		"a-missing": nil,
		"b-number":  42,
		"c-bool":    true,
		"d-green":   "#00ff00",
	})

	got := GenerateFromTable(table, Options{})

	if !reflect.DeepEqual(keys(got), []string{"bg-stripes-d-green"}) {
		t.Errorf("keys = %v, want only d-green", keys(got))
	}
}

func TestGenerateFromTableEmptyShade(t *testing.T) {
	table := ColorTable{
		{Name: "teal", Entry: Scale{{"100", "#ccfbf1"}, {"200", ""}, {"300", "#5eead4"}}},
	}

	got := GenerateFromTable(table, Options{})

	if _, ok := got["bg-stripes-teal-200"]; ok {
		t.Error("empty shade should not emit a utility")
	}
	// The empty shade does not advance the chain
	if got := got["bg-stripes-teal-300"].BackgroundColor; got != "#ccfbf1 / 10%" {
		t.Errorf("teal-300 fill = %q, want previous non-empty shade", got)
	}
}

func TestGenerateFromTableEmpty(t *testing.T) {
	if got := GenerateFromTable(nil, Options{}); len(got) != 0 {
		t.Errorf("nil table produced %d utilities", len(got))
	}
	if got := GenerateFromTable(ColorTable{}, Options{}); len(got) != 0 {
		t.Errorf("empty table produced %d utilities", len(got))
	}
}

func TestGenerateFromTableOptions(t *testing.T) {
	table := ColorTable{{Name: "brand", Entry: Single("rgb(10,20,30)")}}
	opts := Options{
		Size:      ptr("10px"),
		Angle:     ptr("45deg"),
		Opacity:   ptr(80),
		BgOpacity: ptr(0),
		Prefix:    ptr("stripes"),
	}

	got := GenerateFromTable(table, opts)

	decl, ok := got["stripes-brand"]
	if !ok {
		t.Fatalf("missing stripes-brand, got %v", keys(got))
	}
	want := Declaration{
		BackgroundColor: "rgba(10,20,30, 0)",
		BackgroundImage: stripeImage("45deg", "rgba(10,20,30, 0.8)"),
		BackgroundSize:  "10px 10px",
	}
	if decl != want {
		t.Errorf("decl = %+v, want %+v", decl, want)
	}
}

func TestGenerateFromTableIdempotent(t *testing.T) {
	table := DefaultPalette()
	first := GenerateFromTable(table, Options{})
	second := GenerateFromTable(table, Options{})
	if !reflect.DeepEqual(first, second) {
		t.Error("two passes over the same input differ")
	}
}

func TestGenerateFromTableConcurrent(t *testing.T) {
	table := DefaultPalette()
	want := GenerateFromTable(table, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := GenerateFromTable(table, Options{}); !reflect.DeepEqual(got, want) {
				t.Error("concurrent pass differs")
			}
		}()
	}
	wg.Wait()
}

func TestGenerateForValue(t *testing.T) {
	got := GenerateForValue("#3b82f6", Options{})
	want := Declaration{
		BackgroundColor: "#3b82f6 / 10%",
		BackgroundImage: stripeImage("135deg", "#3b82f6 / 50%"),
		BackgroundSize:  "7.07px 7.07px",
	}
	if got != want {
		t.Errorf("GenerateForValue = %+v, want %+v", got, want)
	}

	if got := GenerateForValue("", Options{}); !got.IsEmpty() {
		t.Errorf("empty value should give empty declaration, got %+v", got)
	}

	fallback := GenerateForValue("notacolor", Options{})
	if fallback.BackgroundColor != "currentColor / 10%" {
		t.Errorf("unrecognised value fill = %q", fallback.BackgroundColor)
	}
}

func TestOptionsResolve(t *testing.T) {
	if got := (Options{}).Resolve(); got != DefaultConfig() {
		t.Errorf("zero options = %+v, want defaults", got)
	}

	got := Options{Opacity: ptr(150), BgOpacity: ptr(-5), Size: ptr("")}.Resolve()
	if got.Opacity != 100 || got.BgOpacity != 0 {
		t.Errorf("opacities not clamped: %+v", got)
	}
	if got.Size != "7.07px" {
		t.Errorf("empty size should keep default, got %q", got.Size)
	}
}
