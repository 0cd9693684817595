// Package critic checks codebook workbooks and turns them into records.
//
// A critique runs in a fixed order: the sheet-presence check, then one stage
// per sheet (codebook, metadata information, additional information). Each
// stage appends findings to the result list it is given and returns the
// cleaned sheet. Problems a stage can describe become core.TestResult values;
// structural failures (a malformed sheet, a schema or record violation) are
// caught at the stage boundary and reported as an ERROR with nil data.
package critic

import (
	"log/slog"

	"github.com/idp-tools/codebook/pkg/fuzzy"
	"github.com/idp-tools/codebook/pkg/sheet"
	"github.com/idp-tools/codebook/pkg/table"
)

// Workbook is the read side of a spreadsheet document.
type Workbook interface {
	SheetNames() []string
	Sheet(name string) (*table.Table, error)
}

// Critic runs critique stages with a fixed matching policy.
// A Critic holds no per-document state and may be shared.
type Critic struct {
	matcher          *fuzzy.Matcher
	logger           *slog.Logger
	titleRows        []int
	expectedTitleRow int
	parallel         bool
}

// Option configures a Critic.
type Option func(*Critic)

// WithMatcher sets the matcher used for every title and label.
func WithMatcher(m *fuzzy.Matcher) Option {
	return func(c *Critic) {
		if m != nil {
			c.matcher = m
		}
	}
}

// WithLogger sets the logger for stage progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Critic) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTitleRows sets the rows scanned for the codebook column titles.
func WithTitleRows(rows ...int) Option {
	return func(c *Critic) {
		if len(rows) > 0 {
			c.titleRows = append([]int(nil), rows...)
		}
	}
}

// WithExpectedTitleRow sets the row the codebook column titles belong on.
func WithExpectedTitleRow(row int) Option {
	return func(c *Critic) {
		c.expectedTitleRow = row
	}
}

// WithParallel runs the three sheet stages concurrently. Findings are merged
// in the same order as a sequential run.
func WithParallel(parallel bool) Option {
	return func(c *Critic) {
		c.parallel = parallel
	}
}

// New creates a Critic with the default matcher and title rows.
func New(opts ...Option) *Critic {
	c := &Critic{
		matcher:          fuzzy.Default(),
		logger:           slog.New(slog.DiscardHandler),
		titleRows:        append([]int(nil), sheet.DefaultTitleRows...),
		expectedTitleRow: sheet.ExpectedTitleRow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
