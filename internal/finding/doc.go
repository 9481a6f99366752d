// Package finding defines the inconsistencies reported for a corpus run.
//
// A Finding is scoped to one document and carries a human-readable
// message. Checkers return findings as plain values; the caller merges them
// into a Collection, which owns deduplication and the final ordering used
// by reports.
//
// Finding identity is the pair (document, message). Two checkers emitting
// the same line for the same document collapse to one finding.
package finding
