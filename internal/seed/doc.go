// Package seed treats the seed script as a sequence of named blocks, one
// per table, delimited by marker comment lines. It renders a table's insert
// block from canonical rows and splices it into the document without
// touching a single byte outside the target block.
//
// Splicing is pure text manipulation; applying the result to disk is a
// separate, atomic step (WriteAtomic) so tests can verify the splice
// without a store engine.
package seed
