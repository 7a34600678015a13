package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/tidwall/gjson"

	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

// Options configures CSV output.
type Options struct {
	// Headers selects and orders the columns. When empty, the flattened
	// keys of the first record are used.
	Headers []string
}

// row is one flattened record: its keys in document order and their
// field values.
type row struct {
	keys   []string
	values map[string]string
}

// WriteCSV writes records to w as CSV with a header line. Nothing is
// written for an empty slice.
func WriteCSV[T any](w io.Writer, records []T, opts Options) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]row, len(records))
	for i, rec := range records {
		r, err := flatten(rec)
		if err != nil {
			return err
		}
		rows[i] = r
	}

	headers := opts.Headers
	if len(headers) == 0 {
		headers = rows[0].keys
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errs.Wrap(errs.ErrCodeExport, err, "write csv header")
	}
	line := make([]string, len(headers))
	for _, r := range rows {
		for i, h := range headers {
			line[i] = r.values[h]
		}
		if err := cw.Write(line); err != nil {
			return errs.Wrap(errs.ErrCodeExport, err, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.Wrap(errs.ErrCodeExport, err, "write csv")
	}
	return nil
}

// CSVString returns records as CSV. It returns "" for an empty slice.
func CSVString[T any](records []T, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportCSV writes records as CSV to path, creating parent directories as
// needed. An empty slice is an error and no file is created.
func ExportCSV[T any](records []T, path string, opts Options) error {
	if len(records) == 0 {
		return errs.New(errs.ErrCodeExport, "cannot export an empty record set to CSV")
	}

	f, err := create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records, opts); err != nil {
		f.Close()
		return err
	}
	return closeFile(f, path)
}

func flatten(rec any) (row, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return row{}, errs.Wrap(errs.ErrCodeExport, err, "encode record")
	}

	r := row{values: make(map[string]string)}
	doc := gjson.ParseBytes(data)
	if doc.IsObject() {
		r.walk("", doc)
	}
	return r, nil
}

func (r *row) walk(prefix string, obj gjson.Result) {
	obj.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if prefix != "" {
			key = prefix + "." + key
		}
		if v.IsObject() {
			r.walk(key, v)
			return true
		}
		if _, seen := r.values[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.values[key] = scalar(v)
		return true
	})
}

// scalar renders a leaf value as a CSV field.
func scalar(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		// Numbers, booleans and arrays keep their JSON text.
		return v.Raw
	}
}
