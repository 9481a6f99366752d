package textpart

import (
	"errors"
	"strings"

	"github.com/roach88/bptcheck/internal/finding"
)

// Check validates the textpart labels of one document and returns its
// findings. Labels are partitioned by type tag and each type is checked on
// its own:
//
//   - a malformed label abandons its type for this document;
//   - an empty label, or one whose tag is not in tags, stops label collection
//     entirely, and only the labels read before it are checked;
//   - duplicates short-circuit gap detection for their type;
//   - otherwise every identifier reported by Missing becomes a finding.
func Check(doc string, labels []string, tags string) []finding.Finding {
	var out []finding.Finding
	byType := make(map[byte][]Identifier)
	abandoned := make(map[byte]bool)

	for _, label := range labels {
		id, err := Parse(label, tags)
		if err != nil {
			var malformed *MalformedIdentifierError
			if !errors.As(err, &malformed) {
				continue
			}
			out = append(out, finding.New(doc, finding.KindMalformed,
				"textpart(s) not formatted correctly: %s", label))
			if malformed.UnknownTag() || label == "" {
				break
			}
			abandoned[label[0]] = true
			continue
		}
		if id.Extra != "" {
			out = append(out, finding.New(doc, finding.KindMalformed,
				"textpart(s) %s has unsupported multi-letter suffix", label))
		}
		byType[id.Type] = append(byType[id.Type], id)
	}

	for i := 0; i < len(tags); i++ {
		typ := tags[i]
		if abandoned[typ] || len(byType[typ]) == 0 {
			continue
		}
		set, err := NewSet(typ, byType[typ])
		if err != nil {
			var dup *DuplicateIdentifierError
			if errors.As(err, &dup) {
				out = append(out, finding.New(doc, finding.KindDuplicate,
					"Duplicate textpart(s): %s", joinIdentifiers(dup.Identifiers)))
			}
			continue
		}
		for _, id := range Missing(set) {
			out = append(out, finding.New(doc, finding.KindMissing,
				"textpart(s) %s missing", id))
		}
	}
	return out
}

func joinIdentifiers(ids []Identifier) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = id.String()
	}
	return strings.Join(labels, " ")
}
