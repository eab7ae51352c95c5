// Package schema validates and normalizes the raw configuration tree of the
// web API SDK into typed endpoint definitions and one shared transport option
// set.
//
// The package is pure: it performs no I/O, keeps no state between calls and
// never modifies its input. Every problem found in a tree is reported as a
// [*ValidationError]; a single problem rejects the whole tree.
package schema
