// Package schema defines the canonical row shape shared by every content
// tab, the tab registry, and the header-alias configuration used when
// normalizing spreadsheet exports.
//
// All six content tables carry the same ten columns, so the column list and
// row type live here once and every consumer (importer, seed renderer,
// store, server) works against the same definition. Locale-sensitive
// literals (default category, Hebrew truthy tokens, Hebrew header aliases)
// are named constants in this package rather than being embedded in
// normalization logic.
package schema
