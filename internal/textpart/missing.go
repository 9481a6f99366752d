package textpart

// Missing returns the identifiers implied by s but absent from it, in
// ascending order and without repeats. See the package documentation for
// the rules and for what the scan cannot detect.
func Missing(s *Set) []Identifier {
	var out []Identifier
	seen := make(map[string]bool)
	emit := func(id Identifier) {
		key := id.String()
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, id)
	}

	top := 0
	for _, id := range s.members {
		if id.introduces() && id.Ordinal > top {
			top = id.Ordinal
		}
	}

	for n := s.max; n > 1; n-- {
		if n <= top && !s.HasOrdinal(n) {
			emit(Identifier{Type: s.typ, Ordinal: n})
			continue
		}
		for _, id := range s.ordinals[n] {
			if id.introduces() {
				continue
			}
			for x := id.Suffix; x >= 'a'; x-- {
				want := Identifier{Type: s.typ, Ordinal: n, Suffix: x}
				if !s.Contains(want) {
					emit(want)
				}
			}
		}
	}

	sortIdentifiers(out)
	return out
}
