// Package footnote checks that inline footnote markers and footnote
// definitions of a document pair up.
//
// An inline marker is any "[^key]" in the document body. A definition is a
// "[^key]" at the start of the notes section or of a line in it, optionally
// followed by a colon and free text. A definition runs until the next blank
// line, so a marker on the line directly below a definition is part of that
// definition's text, not a new one.
package footnote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/roach88/bptcheck/internal/document"
	"github.com/roach88/bptcheck/internal/finding"
)

// Mode selects how inline markers are compared with definitions.
type Mode string

const (
	// ModeCount compares only the number of distinct keys. Equal counts
	// with different keys pass.
	ModeCount Mode = "count"
	// ModeKeys reports every key present on one side only.
	ModeKeys Mode = "keys"
)

// ValidModes lists the accepted Mode values.
var ValidModes = []string{string(ModeCount), string(ModeKeys)}

// ParseMode converts a flag or config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCount, ModeKeys:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid footnote mode %q: must be one of %v", s, ValidModes)
	}
}

var (
	inlineMarker  = regexp.MustCompile(`\[\^[0-9A-Za-z]+\]`)
	definedMarker = regexp.MustCompile(`(?:^|\n)(\[\^[0-9A-Za-z]+\])`)
)

// ExtractInline returns every inline marker in content, in order.
func ExtractInline(content string) []string {
	return inlineMarker.FindAllString(content, -1)
}

// ExtractDefined returns the marker of every definition in notes, in order.
func ExtractDefined(notes string) []string {
	var keys []string
	pos := 0
	for pos < len(notes) {
		m := definedMarker.FindStringSubmatchIndex(notes[pos:])
		if m == nil {
			break
		}
		keys = append(keys, notes[pos+m[2]:pos+m[3]])

		end := pos + m[1]
		blank := strings.Index(notes[end:], "\n\n")
		if blank < 0 {
			break
		}
		// Step over the first newline of the blank line so the next
		// definition can still match on the second.
		pos = end + blank + 1
	}
	return keys
}

// Compare checks the inline markers against the defined markers of doc.
// A repeated inline key, or failing that a repeated defined key, yields a
// single duplicate finding and no further comparison.
func Compare(doc string, inline, defined []string, mode Mode) []finding.Finding {
	if dups := duplicates(inline); len(dups) > 0 {
		return []finding.Finding{finding.New(doc, finding.KindDuplicate,
			"Duplicate inline footnotes: %s", strings.Join(dups, " "))}
	}
	if dups := duplicates(defined); len(dups) > 0 {
		return []finding.Finding{finding.New(doc, finding.KindDuplicate,
			"Duplicate defined footnotes: %s", strings.Join(dups, " "))}
	}

	if mode == ModeKeys {
		return compareKeys(doc, inline, defined)
	}

	switch {
	case len(inline) > len(defined):
		return []finding.Finding{finding.New(doc, finding.KindNoteMismatch,
			"%d defined note(s) missing", len(inline)-len(defined))}
	case len(defined) > len(inline):
		return []finding.Finding{finding.New(doc, finding.KindNoteMismatch,
			"%d inline note(s) missing", len(defined)-len(inline))}
	default:
		return nil
	}
}

func compareKeys(doc string, inline, defined []string) []finding.Finding {
	var out []finding.Finding
	definedSet := toSet(defined)
	for _, k := range inline {
		if !definedSet[k] {
			out = append(out, finding.New(doc, finding.KindNoteMismatch, "defined note %s missing", k))
		}
	}
	inlineSet := toSet(inline)
	for _, k := range defined {
		if !inlineSet[k] {
			out = append(out, finding.New(doc, finding.KindNoteMismatch, "inline note %s missing", k))
		}
	}
	return out
}

// Check runs Compare on the body and notes of a loaded document.
func Check(doc *document.Document, mode Mode) []finding.Finding {
	return Compare(doc.Path, ExtractInline(doc.Content), ExtractDefined(doc.Notes), mode)
}

// duplicates returns each key that occurs more than once, in order of its
// first repetition.
func duplicates(keys []string) []string {
	var dups []string
	seen := make(map[string]int, len(keys))
	for _, k := range keys {
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
