// Package fuzzy resolves free-text labels to canonical names.
//
// A Matcher scores a name against every candidate with a pluggable Scorer and
// returns the best candidate whose score clears the cutoff. The whole policy
// (scorer, cutoff, tie-break) lives on the Matcher so it can be tested in
// isolation and injected into the sheet and critic packages.
package fuzzy

import "strings"

// DefaultCutoff is the minimum score a candidate needs to be considered a match.
const DefaultCutoff = 90

// Matcher finds the closest canonical name for a label.
type Matcher struct {
	Scorer Scorer
	Cutoff float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithCutoff sets the minimum score (0-100).
func WithCutoff(cutoff float64) Option {
	return func(m *Matcher) {
		m.Cutoff = cutoff
	}
}

// WithScorer replaces the similarity function.
func WithScorer(s Scorer) Option {
	return func(m *Matcher) {
		if s != nil {
			m.Scorer = s
		}
	}
}

// New creates a Matcher using Ratio and DefaultCutoff unless overridden.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		Scorer: Ratio,
		Cutoff: DefaultCutoff,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Default returns a Matcher with the default scorer and cutoff.
func Default() *Matcher {
	return New()
}

// Match returns the highest scoring candidate whose score is at least the
// cutoff. When several candidates share the best score the first one wins.
// Empty names and empty candidates never match.
func (m *Matcher) Match(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}
	scorer := m.Scorer
	if scorer == nil {
		scorer = Ratio
	}

	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		if c == "" {
			continue
		}
		score := scorer(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if best == "" || bestScore < m.Cutoff {
		return "", false
	}
	return best, true
}

// Matches reports whether name matches any candidate.
func (m *Matcher) Matches(name string, candidates []string) bool {
	_, ok := m.Match(name, candidates)
	return ok
}

// MatchOrSelf returns the matched candidate, or name unchanged when nothing
// clears the cutoff. Custom columns survive normalization this way.
func (m *Matcher) MatchOrSelf(name string, candidates []string) string {
	if match, ok := m.Match(name, candidates); ok {
		return match
	}
	return name
}

// Normalize lower-cases and trims a label the way every caller prepares
// input for the matcher.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
