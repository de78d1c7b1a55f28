package serviceImp

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

var templateSamples = []string{"75.5", "1.2", "1500", "45.3"}

// templateRows builds the import template: a timestamp column followed by the
// codes of all active parameter types, plus two example data rows.
func (s *importSvc) templateRows() ([]string, [][]string, error) {
	active, err := s.params.List(false)
	if err != nil {
		return nil, nil, err
	}
	header := []string{"timestamp"}
	for _, p := range active {
		header = append(header, p.Code)
	}

	now := time.Now().Format(defaultLayout)
	rows := make([][]string, 2)
	for i := range rows {
		row := []string{now}
		for j := range active {
			row = append(row, templateSamples[j%len(templateSamples)])
		}
		rows[i] = row
	}
	return header, rows, nil
}

func (s *importSvc) CSVTemplate(w io.Writer) error {
	header, rows, err := s.templateRows()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *importSvc) XLSXTemplate(w io.Writer) error {
	header, rows, err := s.templateRows()
	if err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
