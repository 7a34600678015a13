package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

func TestJSONString(t *testing.T) {
	got, err := JSONString(map[string]any{"b": []int{1}, "a": "<x>"})
	if err != nil {
		t.Fatalf("JSONString() error: %v", err)
	}
	want := "{\n  \"a\": \"<x>\",\n  \"b\": [\n    1\n  ]\n}"
	if got != want {
		t.Errorf("JSONString() = %q, want %q", got, want)
	}
}

func TestJSONStringUnsupported(t *testing.T) {
	if _, err := JSONString(make(chan int)); !errs.Is(err, errs.ErrCodeExport) {
		t.Errorf("JSONString(chan) error = %v, want EXPORT_ERROR", err)
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "items.json")
	items := []arcraiders.Item{
		{ID: "a", Name: "Anvil", Rarity: arcraiders.RarityRare, Type: arcraiders.TypeWeapon},
		{ID: "b", Name: "Vest", Type: arcraiders.TypeArmor},
	}

	if err := ExportJSON(items, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"a\"") {
		t.Errorf("file not indented: %q", data[:20])
	}

	got, err := ImportJSON[[]arcraiders.Item](path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if len(got) != 2 || got[0].Rarity != arcraiders.RarityRare || !got[1].IsArmor() {
		t.Errorf("ImportJSON() = %+v", got)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON[[]arcraiders.Item](bytes.NewBufferString("{not json"))
	if !errs.Is(err, errs.ErrCodeParse) {
		t.Errorf("ReadJSON() error = %v, want PARSE_ERROR", err)
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON[[]arcraiders.Item](filepath.Join(t.TempDir(), "nope.json"))
	if !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("ImportJSON() error = %v, want INVALID_PATH", err)
	}
}
