// Package workbook reads and writes codebook spreadsheets.
//
// A Book holds every sheet of a workbook as a raw table: cells are strings
// as the spreadsheet shows them, empty cells are nil and trailing empty
// columns are dropped. Books come from an xlsx file, from a Codebook, or are
// assembled in memory.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/idp-tools/codebook/pkg/table"
)

// ErrSheetNotFound is returned by Sheet for unknown sheet names.
var ErrSheetNotFound = errors.New("sheet not found")

// Book is an ordered set of named sheets.
type Book struct {
	names  []string
	sheets map[string]*table.Table
}

// NewMemory creates an empty in-memory workbook.
func NewMemory() *Book {
	return &Book{sheets: make(map[string]*table.Table)}
}

// AddRows appends a sheet built from raw rows.
func (b *Book) AddRows(name string, rows [][]any) *Book {
	return b.AddSheet(name, table.FromRows(rows))
}

// AddSheet appends a sheet, replacing any sheet with the same name.
func (b *Book) AddSheet(name string, t *table.Table) *Book {
	if _, ok := b.sheets[name]; !ok {
		b.names = append(b.names, name)
	}
	b.sheets[name] = t
	return b
}

// SheetNames returns the sheet names in workbook order.
func (b *Book) SheetNames() []string {
	return append([]string(nil), b.names...)
}

// Sheet returns a copy of the named sheet. An exact name wins; otherwise
// names are compared trimmed and case-insensitively.
func (b *Book) Sheet(name string) (*table.Table, error) {
	if t, ok := b.sheets[name]; ok {
		return t.Clone(), nil
	}
	want := normalizeName(name)
	for _, n := range b.names {
		if normalizeName(n) == want {
			return b.sheets[n].Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Open reads an xlsx file.
func Open(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

// OpenReader reads an xlsx document from r.
func OpenReader(r io.Reader) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) (*Book, error) {
	b := NewMemory()
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		cells := make([][]any, len(rows))
		for i, row := range rows {
			cells[i] = make([]any, len(row))
			for j, v := range row {
				if strings.TrimSpace(v) != "" {
					cells[i][j] = v
				}
			}
		}
		t := table.FromRows(cells)
		t.TrimTrailingColumns()
		b.AddSheet(name, t)
	}
	return b, nil
}
