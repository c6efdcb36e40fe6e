// Package topology turns joint declarations into the kinematic tree the
// scene compiler walks.
//
// Two front doors produce the same tree. FromDocument consumes a declarative
// scene document. ExtractSheet plus WireRecords consume the legacy
// spreadsheet grid: column A holds joint labels, column B parent/child role
// tags, column C field keys, column D the same-row field values.
package topology
