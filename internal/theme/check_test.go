package theme

import (
	"strings"
	"testing"

	"github.com/agiangrant/stripes/tw"
)

func TestCheck(t *testing.T) {
	table := tw.ColorTable{
		{Name: "ok", Entry: tw.Single("#0ea5e9")},
		{Name: "named", Entry: tw.Single("papayawhip")},
		{Name: "badhex", Entry: tw.Single("#ggg")},
		{Name: "broken", Entry: tw.Invalid{Reason: "integer value"}},
		{Name: "empty", Entry: tw.Scale{}},
		{Name: "teal", Entry: tw.Scale{{Key: "100", Value: ""}, {Key: "200", Value: "rgb(1,2,3)"}}},
	}

	findings := Check(table)

	messages := make(map[string]Finding)
	for _, f := range findings {
		messages[f.Family] = f
	}

	if _, ok := messages["ok"]; ok {
		t.Error("valid colour should have no findings")
	}
	if f := messages["named"]; !strings.Contains(f.Message, "currentColor") {
		t.Errorf("named = %+v", f)
	}
	if f := messages["badhex"]; f.Message != "malformed hex colour" {
		t.Errorf("badhex = %+v", f)
	}
	if f := messages["broken"]; f.Severity != SeverityError {
		t.Errorf("broken = %+v", f)
	}
	if f := messages["empty"]; f.Message != "scale has no shades" {
		t.Errorf("empty = %+v", f)
	}
	if f := messages["teal"]; f.Shade != "100" {
		t.Errorf("teal = %+v", f)
	}
	if !HasErrors(findings) {
		t.Error("HasErrors should report the invalid family")
	}
}

func TestCheckCollisions(t *testing.T) {
	table := tw.ColorTable{
		{Name: "blue-500", Entry: tw.Single("#0000ff")},
		{Name: "blue", Entry: tw.Scale{{Key: "500", Value: "#3b82f6"}}},
	}

	findings := Check(table)
	if len(findings) != 1 {
		t.Fatalf("findings = %v", findings)
	}
	if !strings.Contains(findings[0].String(), `"blue-500"`) {
		t.Errorf("finding = %s", findings[0])
	}
	if HasErrors(findings) {
		t.Error("collisions are warnings")
	}
}

func TestCheckDefaultPaletteClean(t *testing.T) {
	if findings := Check(tw.DefaultPalette()); len(findings) != 0 {
		t.Errorf("default palette findings: %v", findings)
	}
}

func TestFindingString(t *testing.T) {
	f := Finding{Family: "teal", Shade: "100", Value: "x", Message: "bad"}
	if got := f.String(); got != `teal.100: bad ("x")` {
		t.Errorf("String() = %q", got)
	}
}
