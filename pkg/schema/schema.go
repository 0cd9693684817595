// Package schema validates tables against declarative column tables.
//
// A Schema is an ordered list of Column descriptors. Validate checks that
// every required column exists, fills defaults, coerces each cell to the
// column type and applies the enum, pattern, length and uniqueness checks.
// Columns the schema does not name are dropped from the output. Violations
// are returned together as Errors rather than stopping at the first one.
package schema

import (
	"regexp"
	"strings"
)

// Type is the primitive type a column is coerced to.
type Type string

const (
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeBool   Type = "bool"
	TypeFloat  Type = "float"
)

// Column describes one column of a schema.
type Column struct {
	Name        string
	Type        Type
	Nullable    bool           // null cells are allowed
	Unique      bool           // non-null values must not repeat
	Optional    bool           // the column may be absent; it is then filled with Default
	Default     any            // replaces null cells when set
	Enum        []string       // allowed values after coercion (strings only)
	Pattern     *regexp.Regexp // every string value must match
	MinLength   int
	MaxLength   int      // 0 means unbounded
	TrueTokens  []string // extra lower-case tokens read as true
	FalseTokens []string // extra lower-case tokens read as false
	Description string
}

// Schema is a named, versioned list of columns.
type Schema struct {
	Name    string
	Version string
	Columns []Column
}

// ColumnNames returns the column names in schema order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Required returns the names of the columns that must be present.
func (s *Schema) Required() []string {
	var out []string
	for _, c := range s.Columns {
		if !c.Optional {
			out = append(out, c.Name)
		}
	}
	return out
}

// Constraints summarizes the checks of a column for display.
func (c Column) Constraints() string {
	var parts []string
	if !c.Nullable {
		parts = append(parts, "required")
	}
	if c.Optional {
		parts = append(parts, "optional column")
	}
	if c.Unique {
		parts = append(parts, "unique")
	}
	if len(c.Enum) > 0 {
		parts = append(parts, "one of "+strings.Join(c.Enum, "|"))
	}
	if c.MinLength > 0 || c.MaxLength > 0 {
		parts = append(parts, lengthRange(c.MinLength, c.MaxLength))
	}
	if c.Pattern != nil {
		parts = append(parts, "matches "+c.Pattern.String())
	}
	return strings.Join(parts, ", ")
}
