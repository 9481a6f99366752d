package textpart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTags is the type-tag set used by BPT documents.
const DefaultTags = "TF"

var remainderPattern = regexp.MustCompile(`^(\d+)([a-z]*)$`)

// Identifier is a parsed textpart label.
type Identifier struct {
	Type    byte
	Ordinal int
	// Suffix is the sub-part letter, or 0 when the label has none.
	Suffix byte
	// Extra holds any letters after Suffix. Only single-letter suffixes
	// take part in gap detection.
	Extra string
}

// String renders the identifier back to label form, e.g. "F12b".
func (id Identifier) String() string {
	var b strings.Builder
	b.WriteByte(id.Type)
	b.WriteString(strconv.Itoa(id.Ordinal))
	if id.Suffix != 0 {
		b.WriteByte(id.Suffix)
	}
	b.WriteString(id.Extra)
	return b.String()
}

// Less reports whether id sorts before other.
func (id Identifier) Less(other Identifier) bool {
	if id.Ordinal != other.Ordinal {
		return id.Ordinal < other.Ordinal
	}
	if id.Suffix != other.Suffix {
		return id.Suffix < other.Suffix
	}
	return id.Extra < other.Extra
}

// introduces reports whether id opens its ordinal, which makes every lower
// ordinal required.
func (id Identifier) introduces() bool {
	return id.Suffix == 0 || id.Suffix == 'a'
}

// MalformedIdentifierError reports a label outside the identifier grammar.
type MalformedIdentifierError struct {
	Label  string
	Reason string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed identifier %q: %s", e.Label, e.Reason)
}

// UnknownTag reports whether the label was rejected for its type tag.
func (e *MalformedIdentifierError) UnknownTag() bool {
	return e.Reason == reasonUnknownTag
}

const (
	reasonEmpty      = "empty label"
	reasonUnknownTag = "unknown type tag"
	reasonGrammar    = "expected digits optionally followed by lowercase letters"
	reasonOrdinal    = "ordinal must be a positive integer"
)

// Parse parses a label such as "F12b". The first byte must be one of tags.
func Parse(label, tags string) (Identifier, error) {
	if label == "" {
		return Identifier{}, &MalformedIdentifierError{Label: label, Reason: reasonEmpty}
	}
	typ := label[0]
	if strings.IndexByte(tags, typ) < 0 {
		return Identifier{}, &MalformedIdentifierError{Label: label, Reason: reasonUnknownTag}
	}

	m := remainderPattern.FindStringSubmatch(label[1:])
	if m == nil {
		return Identifier{}, &MalformedIdentifierError{Label: label, Reason: reasonGrammar}
	}
	ordinal, err := strconv.Atoi(m[1])
	if err != nil || ordinal < 1 {
		return Identifier{}, &MalformedIdentifierError{Label: label, Reason: reasonOrdinal}
	}

	id := Identifier{Type: typ, Ordinal: ordinal}
	if letters := m[2]; letters != "" {
		id.Suffix = letters[0]
		id.Extra = letters[1:]
	}
	return id, nil
}
