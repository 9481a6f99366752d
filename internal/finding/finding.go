package finding

import (
	"fmt"
	"sort"
)

// Kind classifies a finding.
type Kind string

const (
	// KindMalformed marks a label that does not fit the identifier grammar.
	KindMalformed Kind = "MalformedIdentifier"
	// KindDuplicate marks a key or identifier observed more than once.
	KindDuplicate Kind = "DuplicateIdentifier"
	// KindMissing marks an identifier implied by the numbering but absent.
	KindMissing Kind = "MissingIdentifier"
	// KindNoteMismatch marks inline and defined footnotes that do not pair up.
	KindNoteMismatch Kind = "NoteMismatch"
)

// Finding codes (E200-E299), one per kind.
const (
	CodeMalformed    = "E201"
	CodeDuplicate    = "E202"
	CodeMissing      = "E203"
	CodeNoteMismatch = "E204"
)

// Code returns the stable error code of the kind.
func (k Kind) Code() string {
	switch k {
	case KindMalformed:
		return CodeMalformed
	case KindDuplicate:
		return CodeDuplicate
	case KindMissing:
		return CodeMissing
	case KindNoteMismatch:
		return CodeNoteMismatch
	default:
		return "E200"
	}
}

// Finding is one reported inconsistency.
type Finding struct {
	Document string `json:"document"`
	Kind     Kind   `json:"kind"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// New creates a finding for doc with a formatted message.
func New(doc string, kind Kind, format string, args ...any) Finding {
	return Finding{
		Document: doc,
		Kind:     kind,
		Code:     kind.Code(),
		Message:  fmt.Sprintf(format, args...),
	}
}

// String renders the report line: "<document>, <message>".
func (f Finding) String() string {
	return f.Document + ", " + f.Message
}

type key struct {
	doc string
	msg string
}

// Collection accumulates findings for a batch.
// The zero value is ready to use.
type Collection struct {
	seen     map[key]struct{}
	findings []Finding
}

// Add appends findings, dropping any whose (document, message) pair has
// already been added.
func (c *Collection) Add(fs ...Finding) {
	if c.seen == nil {
		c.seen = make(map[key]struct{})
	}
	for _, f := range fs {
		k := key{doc: f.Document, msg: f.Message}
		if _, dup := c.seen[k]; dup {
			continue
		}
		c.seen[k] = struct{}{}
		c.findings = append(c.findings, f)
	}
}

// Len returns the number of distinct findings.
func (c *Collection) Len() int {
	return len(c.findings)
}

// Sorted returns a copy of the findings ordered by document, then by the
// rendered line.
func (c *Collection) Sorted() []Finding {
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	Sort(out)
	return out
}

// Lines returns the rendered, sorted report lines.
func (c *Collection) Lines() []string {
	sorted := c.Sorted()
	lines := make([]string, len(sorted))
	for i, f := range sorted {
		lines[i] = f.String()
	}
	return lines
}

// Sort orders findings in place by document, then by rendered line.
func Sort(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Document != fs[j].Document {
			return fs[i].Document < fs[j].Document
		}
		return fs[i].String() < fs[j].String()
	})
}
