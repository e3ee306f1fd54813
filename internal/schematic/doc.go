// Package schematic parses engine schematics and answers adjacency queries on them.
//
// A schematic is a rectangular block of text made of digits, '.' placeholders and
// single-character symbols. Parse turns the text into an immutable Grid in which every
// cell of a multi-digit number carries the same value and the same NumberID, so a
// number can be resolved from any of the cells it spans and deduplicated by ID.
//
// The Grid is read-only after construction; all query methods are safe for
// concurrent use.
package schematic
