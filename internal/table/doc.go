// Package table extracts rectangular datasets from HTML documents.
//
// The table package turns one HTML table element, located by a CSS selector,
// into a Dataset: an ordered list of column names taken from the table's
// header row plus one row of verbatim cell text per table row. No trimming or
// numeric coercion happens here; downstream stages decide how to interpret
// cells. Extraction is a pure parse with no side effects.
package table
