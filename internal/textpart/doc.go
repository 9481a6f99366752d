// Package textpart checks the numbering of textparts in a document.
//
// A textpart is a subsection marked by a header such as
//
//	### textpart F12b: heading text
//
// whose label has the form <Type><Ordinal><Suffix>: one type tag from a
// small fixed set (T and F by default), a positive ordinal, and an optional
// lowercase sub-part letter. Identifiers order by ordinal, then suffix, with
// the bare ordinal sorting before "a".
//
// # Gap Detection
//
// Missing derives, from the identifiers observed for one type, the ones the
// numbering implies must exist:
//
//   - An identifier with no suffix, or with suffix "a", introduces its
//     ordinal. Every lower ordinal down to 2 must have at least one
//     identifier, suffixed or not; an ordinal with none is reported bare.
//   - An identifier with suffix c beyond "a" requires every letter from c
//     down to "a" at the same ordinal; each absent one is reported.
//   - Ordinal 1 is the base case. F1 and F1a are always considered present
//     and nothing at ordinal 1 is ever reported.
//
// The scan only looks below observed identifiers. It cannot notice trailing
// textparts that were never written, nor an ordinal whose bare form and all
// letters are absent when no higher identifier introduces it. This is a
// below-maximum completeness check, not a full one.
package textpart
