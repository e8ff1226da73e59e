// Package store owns access to the SQLite syllabus database: read-only
// queries for the serving layer, the categories lookup for the import
// pipeline, and the full rebuild from schema plus seed scripts.
package store
