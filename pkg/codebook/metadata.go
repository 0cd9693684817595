package codebook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idp-tools/codebook/pkg/schema"
	"github.com/idp-tools/codebook/pkg/table"
)

// ErrNotSingleRow is returned when a pivoted key-value sheet does not have
// exactly one row.
var ErrNotSingleRow = errors.New("expected exactly one row")

var listFields = []string{"domains", "tags", "similar_datasets"}

// MetadataFromTable builds the metadata record from a pivoted metadata sheet
// whose columns are the metadata field labels.
func MetadataFromTable(row *table.Table) (ResourceMetadata, error) {
	rec, err := singleRecord(&MetadataV0, row)
	if err != nil {
		return ResourceMetadata{}, err
	}

	fields := make(map[string]any, len(rec))
	for label, v := range rec {
		key := strings.ReplaceAll(label, " ", "_")
		if key == "domain" {
			key = "domains"
		}
		fields[key] = v
	}
	for _, key := range listFields {
		fields[key] = splitList(fields[key])
	}

	var m ResourceMetadata
	if err := mapstructure.Decode(fields, &m); err != nil {
		return ResourceMetadata{}, fmt.Errorf("decode metadata: %w", err)
	}
	if err := m.Validate(); err != nil {
		return ResourceMetadata{}, err
	}
	return m, nil
}

// MetadataToSheet lays metadata out as a titled key-value sheet.
func MetadataToSheet(m ResourceMetadata) *table.Table {
	values := []any{
		strings.Join(m.Domains, ", "),
		m.DatasetName,
		m.GranularityLevel,
		m.Frequency,
		m.SourceName,
		m.SourceLink,
		m.DataRetrievalDate,
		m.DataLastUpdated,
		m.DataExtractionPage,
		m.About,
		m.Methodology,
		m.Resource,
		m.DataInsights,
		strings.Join(m.Tags, ", "),
		strings.Join(m.SimilarDatasets, ", "),
	}
	return keyValueSheet(MetadataTitle, MetadataFields(), values)
}

func keyValueSheet(title string, labels []string, values []any) *table.Table {
	caser := cases.Title(language.English)
	t := table.New(table.Positional(2), []any{title, nil})
	for i, label := range labels {
		v := values[i]
		if s, ok := v.(string); ok {
			v = cell(s)
		}
		t.Append([]any{caser.String(label), v})
	}
	return t
}

func singleRecord(s *schema.Schema, row *table.Table) (map[string]any, error) {
	valid, err := s.Validate(row)
	if err != nil {
		return nil, err
	}
	if valid.Len() != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrNotSingleRow, valid.Len())
	}
	return valid.Records()[0], nil
}

// splitList splits a comma separated cell, dropping empty items.
func splitList(v any) []string {
	out := []string{}
	s, ok := v.(string)
	if !ok {
		return out
	}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
