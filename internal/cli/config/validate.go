package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.ExpectedTitleRow >= maxRow(c.TitleRows)+1 {
		return fmt.Errorf("config validation failed: expected_title_row %d is outside title_rows %v", c.ExpectedTitleRow, c.TitleRows)
	}
	return nil
}

func maxRow(rows []int) int {
	m := 0
	for _, r := range rows {
		m = max(m, r)
	}
	return m
}
