package fuzzy

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Scorer returns the similarity of two strings on a 0-100 scale.
type Scorer func(a, b string) float64

// Ratio is the normalized indel similarity: 2*LCS / (len(a)+len(b)) * 100.
// Two empty strings score 100.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	return float64(2*edlib.LCS(a, b)) / float64(total) * 100
}

// LevenshteinRatio scores by Levenshtein distance relative to the longer string.
func LevenshteinRatio(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}
	d := edlib.LevenshteinDistance(a, b)
	return (1 - float64(d)/float64(longest)) * 100
}

// TokenSortRatio sorts the whitespace separated tokens of both strings
// before applying Ratio, so word order does not affect the score.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Scorer names accepted by ScorerByName.
const (
	ScorerRatio       = "ratio"
	ScorerLevenshtein = "levenshtein"
	ScorerTokenSort   = "token_sort"
)

// ScorerNames lists the names accepted by ScorerByName.
func ScorerNames() []string {
	return []string{ScorerRatio, ScorerLevenshtein, ScorerTokenSort}
}

// ScorerByName resolves a scorer from its configuration name.
// An empty name selects Ratio.
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerRatio:
		return Ratio, nil
	case ScorerLevenshtein:
		return LevenshteinRatio, nil
	case ScorerTokenSort:
		return TokenSortRatio, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (expected one of: %s)", name, strings.Join(ScorerNames(), ", "))
	}
}
