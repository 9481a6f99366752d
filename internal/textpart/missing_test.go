package textpart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, labels ...string) *Set {
	t.Helper()
	ids := make([]Identifier, 0, len(labels))
	for _, l := range labels {
		id, err := Parse(l, DefaultTags)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	s, err := NewSet(ids[0].Type, ids)
	require.NoError(t, err)
	return s
}

func render(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   []string
	}{
		{"base only", []string{"F1"}, []string{}},
		{"base with a", []string{"F1", "F1a"}, []string{}},
		{"a only at base", []string{"F1a"}, []string{}},
		{"letter gap", []string{"F1", "F12c"}, []string{"F12a", "F12b"}},
		{"ordinal gap", []string{"F1", "F5"}, []string{"F2", "F3", "F4"}},
		{"suffix a introduces ordinal", []string{"F1", "F3a"}, []string{"F2"}},
		{"complete", []string{"F1", "F2", "F2a", "F2b", "F3"}, []string{}},
		{"missing base is never reported", []string{"F2"}, []string{}},
		{"letters walk only their own ordinal", []string{"F1", "F2", "F4b"}, []string{"F4a"}},
		{
			name:   "letter and ordinal gaps together",
			labels: []string{"F1", "F3", "F3c", "F6"},
			want:   []string{"F2", "F3a", "F3b", "F4", "F5"},
		},
		{
			name:   "overlapping letter walks deduplicate",
			labels: []string{"F1", "F2", "F2c", "F2e"},
			want:   []string{"F2a", "F2b", "F2d"},
		},
		{"ordinal 1 letters are skipped", []string{"F1", "F1c"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Missing(mustSet(t, tt.labels...)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// An ordinal with no identifiers at all, above every identifier that
// introduces an ordinal, is not detected.
func TestMissingDownwardScanLimitation(t *testing.T) {
	got := Missing(mustSet(t, "F1", "F2", "F5c"))
	assert.Equal(t, []string{"F5a", "F5b"}, render(got))
}

func TestMissingInsertionOrderIrrelevant(t *testing.T) {
	a := render(Missing(mustSet(t, "F7", "F1", "F4c")))
	b := render(Missing(mustSet(t, "F4c", "F7", "F1")))
	assert.Equal(t, a, b)
}

func TestNewSetDuplicates(t *testing.T) {
	f2 := Identifier{Type: 'F', Ordinal: 2}
	f3 := Identifier{Type: 'F', Ordinal: 3}

	s, err := NewSet('F', []Identifier{f2, f3, f2, f2, f3})
	require.Error(t, err)

	var dup *DuplicateIdentifierError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []Identifier{f2, f3}, dup.Identifiers)
	assert.Equal(t, "duplicate identifiers: F2 F3", err.Error())

	require.NotNil(t, s)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(f2))
}

func TestSetIgnoresOtherTypes(t *testing.T) {
	s, err := NewSet('F', []Identifier{
		{Type: 'F', Ordinal: 1},
		{Type: 'T', Ordinal: 9},
	})
	require.NoError(t, err)

	assert.Equal(t, byte('F'), s.Type())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.MaxOrdinal())
	assert.False(t, s.Contains(Identifier{Type: 'T', Ordinal: 9}))
	assert.False(t, s.HasOrdinal(9))
}

func TestSetLookup(t *testing.T) {
	s := mustSet(t, "F3c", "F1", "F12", "F12aa")

	assert.True(t, s.HasOrdinal(3))
	assert.False(t, s.HasOrdinal(2))
	assert.False(t, s.Contains(Identifier{Type: 'F', Ordinal: 3}))
	assert.False(t, s.Contains(Identifier{Type: 'F', Ordinal: 12, Suffix: 'a'}), "F12aa does not stand in for F12a")
	assert.Equal(t, 12, s.MaxOrdinal())
	assert.Equal(t, []string{"F1", "F3c", "F12", "F12aa"}, render(s.Identifiers()))
	assert.Empty(t, s.Duplicates())
}
