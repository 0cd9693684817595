package workbook

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/idp-tools/codebook/pkg/codebook"
)

// FromCodebook lays a codebook out as its three sheets.
func FromCodebook(cb *codebook.Codebook) *Book {
	return NewMemory().
		AddSheet(codebook.SheetVariables, codebook.VariablesToSheet(cb.Variables)).
		AddSheet(codebook.SheetMetadata, codebook.MetadataToSheet(cb.Metadata)).
		AddSheet(codebook.SheetAdditionalInfo, codebook.AdditionalInformationToSheet(cb.AdditionalInformation))
}

// Write renders a codebook as xlsx bytes.
func Write(cb *codebook.Codebook) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if _, err := FromCodebook(cb).WriteTo(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteFile writes a codebook to an xlsx file.
func WriteFile(path string, cb *codebook.Codebook) error {
	return FromCodebook(cb).Save(path)
}

// Template renders an empty codebook with every title and label in place.
func Template() (*bytes.Buffer, error) {
	return Write(&codebook.Codebook{})
}

// WriteTo encodes the book as xlsx. Nil cells are left empty.
func (b *Book) WriteTo(w io.Writer) (int64, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range b.names {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return 0, fmt.Errorf("name sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return 0, fmt.Errorf("add sheet %q: %w", name, err)
		}

		for r, row := range b.sheets[name].Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return 0, err
				}
				if err := f.SetCellValue(name, ref, v); err != nil {
					return 0, fmt.Errorf("write %s!%s: %w", name, ref, err)
				}
			}
		}
	}
	f.SetActiveSheet(0)
	return f.WriteTo(w)
}

// Save writes the book to an xlsx file.
func (b *Book) Save(path string) error {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
