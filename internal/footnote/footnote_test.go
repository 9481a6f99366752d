package footnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bptcheck/internal/document"
	"github.com/roach88/bptcheck/internal/finding"
)

func TestExtractInline(t *testing.T) {
	content := "First[^1] and second[^2b].\nThird [^A3] but not [^] or [^a-b] or [1]."
	assert.Equal(t, []string{"[^1]", "[^2b]", "[^A3]"}, ExtractInline(content))
	assert.Empty(t, ExtractInline(""))
}

func TestExtractDefined(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  []string
	}{
		{"empty", "", nil},
		{"at start", "[^1]: one", []string{"[^1]"}},
		{"after newline", "\n[^1]: one\n\n[^2]: two\n", []string{"[^1]", "[^2]"}},
		{"colon optional", "\n[^1] one\n\n[^2]two", []string{"[^1]", "[^2]"}},
		{"multi-line definition", "\n[^1]: one\ncontinued\n\n[^2]: two", []string{"[^1]", "[^2]"}},
		{"no blank line swallows next", "\n[^1]: one\n[^2]: two\n", []string{"[^1]"}},
		{"not at line start", "\ntext [^1]: one", nil},
		{"several blank lines", "[^1]: one\n\n\n\n[^2]: two", []string{"[^1]", "[^2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDefined(tt.notes))
		})
	}
}

func TestCompareCount(t *testing.T) {
	tests := []struct {
		name    string
		inline  []string
		defined []string
		want    []string
	}{
		{"equal", []string{"[^1]", "[^2]"}, []string{"[^1]", "[^2]"}, nil},
		{"defined missing", []string{"[^1]", "[^2]", "[^3]"}, []string{"[^1]", "[^2]"}, []string{"a.md, 1 defined note(s) missing"}},
		{"inline missing", []string{"[^1]"}, []string{"[^1]", "[^2]", "[^3]"}, []string{"a.md, 2 inline note(s) missing"}},
		// Only cardinalities are compared.
		{"mismatched keys pass", []string{"[^1]", "[^2]"}, []string{"[^3]", "[^4]"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare("a.md", tt.inline, tt.defined, ModeCount)
			assert.Equal(t, tt.want, render(got))
			for _, f := range got {
				assert.Equal(t, finding.KindNoteMismatch, f.Kind)
			}
		})
	}
}

func TestCompareKeys(t *testing.T) {
	got := Compare("a.md",
		[]string{"[^1]", "[^2]", "[^5]"},
		[]string{"[^3]", "[^1]", "[^4]"},
		ModeKeys)

	assert.Equal(t, []string{
		"a.md, defined note [^2] missing",
		"a.md, defined note [^5] missing",
		"a.md, inline note [^3] missing",
		"a.md, inline note [^4] missing",
	}, render(got))

	assert.Empty(t, Compare("a.md", []string{"[^1]"}, []string{"[^1]"}, ModeKeys))
}

func TestCompareDuplicates(t *testing.T) {
	got := Compare("a.md", []string{"[^1]", "[^2]", "[^1]", "[^2]", "[^1]"}, []string{"[^9]", "[^9]"}, ModeCount)
	require.Len(t, got, 1)
	assert.Equal(t, finding.KindDuplicate, got[0].Kind)
	assert.Equal(t, "a.md, Duplicate inline footnotes: [^1] [^2]", got[0].String())

	got = Compare("a.md", []string{"[^1]"}, []string{"[^1]", "[^1]"}, ModeKeys)
	require.Len(t, got, 1)
	assert.Equal(t, "a.md, Duplicate defined footnotes: [^1]", got[0].String())
}

func TestCheckDocument(t *testing.T) {
	text := "Body[^1] with[^2] and[^3].\n\n### Notes\n[^1]: one\n\n[^2]: two\n"
	doc := document.Parse("a.md", text, document.DefaultNotesMarker)

	assert.Equal(t, []string{"a.md, 1 defined note(s) missing"}, render(Check(doc, ModeCount)))
	assert.Equal(t, []string{"a.md, defined note [^3] missing"}, render(Check(doc, ModeKeys)))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("count")
	require.NoError(t, err)
	assert.Equal(t, ModeCount, m)

	m, err = ParseMode("keys")
	require.NoError(t, err)
	assert.Equal(t, ModeKeys, m)

	_, err = ParseMode("KEYS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid footnote mode")
}

func render(fs []finding.Finding) []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}
