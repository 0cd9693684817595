// Package config loads the codebook CLI configuration.
//
// Values are layered from lowest to highest precedence: built-in defaults,
// a codebook.yaml file, CODEBOOK_* environment variables and explicitly set
// command-line flags.
package config

import (
	"github.com/idp-tools/codebook/pkg/critic"
	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/sheet"
)

// Config holds all CLI configuration options.
type Config struct {
	// Cutoff is the minimum similarity (0-100) for a label to match a
	// canonical name.
	Cutoff float64 `koanf:"cutoff" validate:"gte=0,lte=100"`
	// Scorer names the similarity function.
	Scorer string `koanf:"scorer" validate:"required,oneof=ratio levenshtein token_sort"`
	// TitleRows are the codebook sheet rows scanned for column titles.
	TitleRows []int `koanf:"title_rows" validate:"required,min=1,dive,gte=0"`
	// ExpectedTitleRow is where the column titles belong.
	ExpectedTitleRow int  `koanf:"expected_title_row" validate:"gte=0"`
	Parallel         bool `koanf:"parallel"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output" validate:"oneof=auto text markdown md json"`
	// FailOn is the lowest severity that makes critique exit non-zero.
	FailOn string `koanf:"fail_on" validate:"oneof=error warning never"`
}

// Default configuration values.
const (
	DefaultCutoff = fuzzy.DefaultCutoff
	DefaultScorer = fuzzy.ScorerRatio
	DefaultOutput = "auto" // text on a terminal, markdown when piped
	DefaultFailOn = "error"
)

// ConfigFileNames are searched in the working directory, in order.
var ConfigFileNames = []string{"codebook.yaml", "codebook.yml", ".codebook.yaml"}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Cutoff:           DefaultCutoff,
		Scorer:           DefaultScorer,
		TitleRows:        append([]int(nil), sheet.DefaultTitleRows...),
		ExpectedTitleRow: sheet.ExpectedTitleRow,
		OutputFormat:     DefaultOutput,
		FailOn:           DefaultFailOn,
	}
}

// CriticOptions turns the configuration into critic options.
func (c *Config) CriticOptions() ([]critic.Option, error) {
	scorer, err := fuzzy.ScorerByName(c.Scorer)
	if err != nil {
		return nil, err
	}
	matcher := fuzzy.New(fuzzy.WithScorer(scorer), fuzzy.WithCutoff(c.Cutoff))
	return []critic.Option{
		critic.WithMatcher(matcher),
		critic.WithTitleRows(c.TitleRows...),
		critic.WithExpectedTitleRow(c.ExpectedTitleRow),
		critic.WithParallel(c.Parallel),
	}, nil
}
