package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idp-tools/codebook/pkg/fuzzy"
)

var columns = []string{
	"variable name", "variable description", "variable type",
	"unit of measurement", "formula", "visual exclude",
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 100, fuzzy.Ratio("formula", "formula"), 0.001)
	assert.InDelta(t, 100, fuzzy.Ratio("", ""), 0.001)
	assert.InDelta(t, 0, fuzzy.Ratio("abc", "xyz"), 0.001)
	// "domain" vs "domains": 2*6/13
	assert.InDelta(t, 92.307, fuzzy.Ratio("domain", "domains"), 0.01)
}

func TestMatcher_Match(t *testing.T) {
	m := fuzzy.New()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "exact", input: "variable name", want: "variable name", wantOK: true},
		{name: "typo", input: "varaible name", want: "variable name", wantOK: true},
		{name: "missing letter", input: "unit of measurment", want: "unit of measurement", wantOK: true},
		{name: "unrelated", input: "comments", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.input, columns)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_ResultIsCandidate(t *testing.T) {
	m := fuzzy.New()
	inputs := []string{"variable nam", "formulas", "x", "visual exclude", "variable", "unit"}
	for _, in := range inputs {
		got, ok := m.Match(in, columns)
		if !ok {
			assert.Empty(t, got)
			continue
		}
		assert.Contains(t, columns, got, "match for %q must be a candidate", in)
	}

	// the name itself is only returned when it is a candidate
	_, ok := m.Match("comments", []string{"notes"})
	assert.False(t, ok)
}

func TestMatcher_TieKeepsFirstCandidate(t *testing.T) {
	constant := func(string, string) float64 { return 95 }
	m := fuzzy.New(fuzzy.WithScorer(constant))

	got, ok := m.Match("anything", []string{"first", "second", "third"})
	require.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestMatcher_SkipsEmptyCandidates(t *testing.T) {
	m := fuzzy.New()
	got, ok := m.Match("formula", []string{"", "formula"})
	require.True(t, ok)
	assert.Equal(t, "formula", got)
}

func TestMatcher_Cutoff(t *testing.T) {
	strict := fuzzy.New(fuzzy.WithCutoff(100))
	_, ok := strict.Match("varaible name", columns)
	assert.False(t, ok)

	loose := fuzzy.New(fuzzy.WithCutoff(50))
	got, ok := loose.Match("variable", columns)
	require.True(t, ok)
	assert.Equal(t, "variable name", got)
}

func TestMatcher_MatchOrSelf(t *testing.T) {
	m := fuzzy.New()
	assert.Equal(t, "variable type", m.MatchOrSelf("varible type", columns))
	assert.Equal(t, "source notes", m.MatchOrSelf("source notes", columns))
}

func TestScorerByName(t *testing.T) {
	for _, name := range fuzzy.ScorerNames() {
		s, err := fuzzy.ScorerByName(name)
		require.NoError(t, err)
		assert.InDelta(t, 100, s("same", "same"), 0.001)
	}

	s, err := fuzzy.ScorerByName("")
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = fuzzy.ScorerByName("jaro")
	assert.Error(t, err)
}

func TestTokenSortRatio(t *testing.T) {
	assert.InDelta(t, 100, fuzzy.TokenSortRatio("name variable", "variable name"), 0.001)
	assert.Less(t, fuzzy.Ratio("name variable", "variable name"), 100.0)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "variable name", fuzzy.Normalize("  Variable Name \n"))
}
