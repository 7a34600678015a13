// Package export writes fetched records to JSON and CSV.
//
// # JSON
//
// [WriteJSON] and [ExportJSON] pretty-print any value with two-space
// indentation. [ReadJSON] and [ImportJSON] load a previously exported file
// back, so listings can be analyzed offline.
//
// # CSV
//
// [WriteCSV] flattens each record into one row. Records are first encoded
// as JSON, so the columns follow the record's json tags:
//
//   - Nested objects become dotted column names ("stats.damage")
//   - Arrays are kept whole as their JSON text in a single field
//   - null becomes an empty field
//
// Columns come from the first record in document order unless
// [Options.Headers] names them. Fields missing from a later record are
// written empty.
//
// [ExportCSV] refuses an empty record set with an EXPORT_ERROR before any
// file is created; [CSVString] returns "" for the same input.
package export
