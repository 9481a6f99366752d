package textpart

import "sort"

// DuplicateIdentifierError reports identifiers observed more than once.
type DuplicateIdentifierError struct {
	Identifiers []Identifier
}

func (e *DuplicateIdentifierError) Error() string {
	return "duplicate identifiers: " + joinIdentifiers(e.Identifiers)
}

// Set is the identifiers of one type observed in one document.
// A Set is immutable once built.
type Set struct {
	typ       byte
	members   map[string]Identifier
	ordinals  map[int][]Identifier
	max       int
	duplicate []Identifier
}

// NewSet builds the set for type typ. Identifiers of other types are ignored.
// Duplicates collapse to one member; when any exist the set is still
// returned together with a *DuplicateIdentifierError listing them in
// order of first repetition.
func NewSet(typ byte, ids []Identifier) (*Set, error) {
	s := &Set{
		typ:      typ,
		members:  make(map[string]Identifier, len(ids)),
		ordinals: make(map[int][]Identifier),
	}
	reported := make(map[string]bool)
	for _, id := range ids {
		if id.Type != typ {
			continue
		}
		key := id.String()
		if _, ok := s.members[key]; ok {
			if !reported[key] {
				reported[key] = true
				s.duplicate = append(s.duplicate, id)
			}
			continue
		}
		s.members[key] = id
		s.ordinals[id.Ordinal] = append(s.ordinals[id.Ordinal], id)
		if id.Ordinal > s.max {
			s.max = id.Ordinal
		}
	}
	if len(s.duplicate) > 0 {
		return s, &DuplicateIdentifierError{Identifiers: s.Duplicates()}
	}
	return s, nil
}

// Type returns the type tag of the set.
func (s *Set) Type() byte { return s.typ }

// Len returns the number of distinct identifiers.
func (s *Set) Len() int { return len(s.members) }

// MaxOrdinal returns the highest ordinal observed, or 0 for an empty set.
func (s *Set) MaxOrdinal() int { return s.max }

// Contains reports whether exactly id was observed.
func (s *Set) Contains(id Identifier) bool {
	if id.Type != s.typ {
		return false
	}
	_, ok := s.members[id.String()]
	return ok
}

// HasOrdinal reports whether any identifier with ordinal n was observed,
// with or without a suffix.
func (s *Set) HasOrdinal(n int) bool {
	return len(s.ordinals[n]) > 0
}

// Duplicates returns the identifiers observed more than once.
func (s *Set) Duplicates() []Identifier {
	out := make([]Identifier, len(s.duplicate))
	copy(out, s.duplicate)
	return out
}

// Identifiers returns the distinct identifiers in ascending order.
func (s *Set) Identifiers() []Identifier {
	out := make([]Identifier, 0, len(s.members))
	for _, id := range s.members {
		out = append(out, id)
	}
	sortIdentifiers(out)
	return out
}

func sortIdentifiers(ids []Identifier) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
