package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

type nested struct {
	X int `json:"x"`
}

type record struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Nested nested `json:"nested"`
}

func TestCSVString(t *testing.T) {
	got, err := CSVString([]record{{ID: "1", Name: "A,B", Nested: nested{X: 1}}}, Options{})
	if err != nil {
		t.Fatalf("CSVString() error: %v", err)
	}
	want := "id,name,nested.x\n1,\"A,B\",1\n"
	if got != want {
		t.Errorf("CSVString() = %q, want %q", got, want)
	}
}

func TestCSVStringEmpty(t *testing.T) {
	got, err := CSVString([]record{}, Options{})
	if err != nil || got != "" {
		t.Errorf("CSVString(empty) = %q, %v; want \"\", nil", got, err)
	}
}

func TestCSVFlattening(t *testing.T) {
	records := []map[string]any{
		{
			"id":    "w1",
			"tags":  []string{"a", "b"},
			"price": nil,
			"ok":    true,
			"stats": map[string]any{"damage": 12.5, "deep": map[string]any{"v": "x"}},
			"quote": `say "hi"`,
			"multi": "line\nbreak",
		},
	}

	got, err := CSVString(records, Options{})
	if err != nil {
		t.Fatalf("CSVString() error: %v", err)
	}

	lines := strings.SplitN(got, "\n", 2)
	// encoding/json sorts map keys.
	if lines[0] != "id,multi,ok,price,quote,stats.damage,stats.deep.v,tags" {
		t.Errorf("header = %q", lines[0])
	}
	wantRow := "w1,\"line\nbreak\",true,,\"say \"\"hi\"\"\",12.5,x,\"[\"\"a\"\",\"\"b\"\"]\"\n"
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestCSVDocumentOrder(t *testing.T) {
	type item struct {
		Zeta  string `json:"zeta"`
		Alpha string `json:"alpha"`
	}
	got, _ := CSVString([]item{{"z", "a"}}, Options{})
	if !strings.HasPrefix(got, "zeta,alpha\n") {
		t.Errorf("CSVString() = %q, want struct field order", got)
	}
}

func TestCSVHeadersOption(t *testing.T) {
	records := []record{
		{ID: "1", Name: "one", Nested: nested{X: 1}},
		{ID: "2", Name: "two", Nested: nested{X: 2}},
	}
	got, err := CSVString(records, Options{Headers: []string{"nested.x", "id", "missing"}})
	if err != nil {
		t.Fatalf("CSVString() error: %v", err)
	}
	want := "nested.x,id,missing\n1,1,\n2,2,\n"
	if got != want {
		t.Errorf("CSVString() = %q, want %q", got, want)
	}
}

func TestCSVItems(t *testing.T) {
	dmg := 40.0
	items := []arcraiders.Item{
		{ID: "anvil", Name: "Anvil", Type: arcraiders.TypeWeapon, WeaponStats: arcraiders.WeaponStats{Damage: &dmg}},
		{ID: "bandage", Name: "Bandage", Type: arcraiders.TypeConsumable},
	}
	got, err := CSVString(items, Options{})
	if err != nil {
		t.Fatalf("CSVString() error: %v", err)
	}
	want := "id,name,type,damage\nanvil,Anvil,weapon,40\nbandage,Bandage,consumable,\n"
	if got != want {
		t.Errorf("CSVString() = %q, want %q", got, want)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "items.csv")
	if err := ExportCSV([]record{{ID: "1", Name: "A,B", Nested: nested{X: 1}}}, path, Options{}); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "id,name,nested.x\n1,\"A,B\",1\n" {
		t.Errorf("file = %q", data)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	path := filepath.Join(dir, "items.csv")

	err := ExportCSV([]record{}, path, Options{})
	if !errs.Is(err, errs.ErrCodeExport) {
		t.Fatalf("ExportCSV(empty) error = %v, want EXPORT_ERROR", err)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Errorf("ExportCSV(empty) touched the filesystem: %v", statErr)
	}
}
