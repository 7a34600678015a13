package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

// WriteJSON encodes v as indented JSON and writes it to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errs.Wrap(errs.ErrCodeExport, err, "encode json")
	}
	return nil
}

// JSONString returns v as indented JSON without a trailing newline.
func JSONString(v any) (string, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ExportJSON writes v as indented JSON to path, creating parent
// directories as needed.
func ExportJSON(v any, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, v); err != nil {
		f.Close()
		return err
	}
	return closeFile(f, path)
}

// ReadJSON decodes a JSON document from r into a value of type T.
// ReadJSON does not close r.
func ReadJSON[T any](r io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, errs.Wrap(errs.ErrCodeParse, err, "decode json")
	}
	return v, nil
}

// ImportJSON reads the JSON file at path into a value of type T.
func ImportJSON[T any](path string) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errs.Wrap(errs.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON[T](f)
}

func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errs.Wrap(errs.ErrCodeExport, err, "create directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeExport, err, "create %s", path)
	}
	return f, nil
}

func closeFile(f *os.File, path string) error {
	if err := f.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeExport, err, "write %s", path)
	}
	return nil
}
