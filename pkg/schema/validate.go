package schema

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/idp-tools/codebook/pkg/table"
)

var (
	trueTokens  = []string{"true", "yes", "y", "t", "1"}
	falseTokens = []string{"false", "no", "n", "f", "0"}
)

// Validate checks t against the schema and returns a new table holding the
// schema's columns in schema order with coerced values. Extra columns of t
// are dropped. When any check fails the table is nil and the error is Errors.
func (s *Schema) Validate(t *table.Table) (*table.Table, error) {
	if t == nil {
		t = table.New(nil)
	}
	out := table.New(s.ColumnNames())
	for range t.Rows {
		out.Append(nil)
	}

	var errs Errors
	fail := func(col string, row int, check Check, value any, format string, args ...any) {
		errs = append(errs, &Error{
			Schema:  s.Name,
			Column:  col,
			Row:     row,
			Check:   check,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for ci, col := range s.Columns {
		src := t.ColumnIndex(col.Name)
		if src < 0 {
			if !col.Optional {
				fail(col.Name, -1, CheckPresent, nil, "column is missing")
				continue
			}
			for ri := range out.Rows {
				out.Rows[ri][ci] = col.Default
			}
			continue
		}

		seen := make(map[any]int)
		for ri, row := range t.Rows {
			raw := row[src]
			if table.IsNull(raw) {
				switch {
				case col.Default != nil:
					out.Rows[ri][ci] = col.Default
				case !col.Nullable:
					fail(col.Name, ri, CheckNullable, nil, "value is required")
				}
				continue
			}

			v, err := col.Coerce(raw)
			if err != nil {
				fail(col.Name, ri, CheckType, raw, "%v", err)
				continue
			}

			if str, ok := v.(string); ok {
				if len(col.Enum) > 0 && !slices.Contains(col.Enum, str) {
					fail(col.Name, ri, CheckEnum, str, "must be one of %s", strings.Join(col.Enum, ", "))
					continue
				}
				if col.Pattern != nil && !col.Pattern.MatchString(str) {
					fail(col.Name, ri, CheckPattern, str, "does not match %s", col.Pattern)
					continue
				}
				if n := utf8.RuneCountInString(str); n < col.MinLength || (col.MaxLength > 0 && n > col.MaxLength) {
					fail(col.Name, ri, CheckLength, str, "length must be %s", lengthRange(col.MinLength, col.MaxLength))
					continue
				}
			}

			if col.Unique {
				if first, dup := seen[v]; dup {
					fail(col.Name, ri, CheckUnique, v, "duplicate of row %d", first)
					continue
				}
				seen[v] = ri
			}
			out.Rows[ri][ci] = v
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// Coerce converts a non-null cell to the column type.
func (c Column) Coerce(v any) (any, error) {
	switch c.Type {
	case TypeBool:
		return c.coerceBool(v)
	case TypeInt:
		return coerceInt(v)
	case TypeFloat:
		return coerceFloat(v)
	default:
		s, _ := table.Text(v)
		return s, nil
	}
}

func (c Column) coerceBool(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int:
		if x == 0 || x == 1 {
			return x == 1, nil
		}
	case float64:
		if x == 0 || x == 1 {
			return x == 1, nil
		}
	case string:
		token := strings.ToLower(strings.TrimSpace(x))
		switch {
		case slices.Contains(c.TrueTokens, token), slices.Contains(trueTokens, token):
			return true, nil
		case slices.Contains(c.FalseTokens, token), slices.Contains(falseTokens, token):
			return false, nil
		}
	}
	return nil, fmt.Errorf("cannot read %q as a boolean", fmt.Sprint(v))
}

func coerceInt(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if n, ok := floatToInt(x); ok {
			return n, nil
		}
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if n, ok := floatToInt(f); ok {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("cannot read %q as an integer", fmt.Sprint(v))
}

// floatToInt converts integral floats that fit in an int. -float64(MinInt)
// is the first value past MaxInt and is exact, unlike float64(MaxInt).
func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

func coerceFloat(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("cannot read %q as a number", fmt.Sprint(v))
}
