package service

import (
	"io"

	"engineview/pkg/importer"
)

type ImportService interface {
	ImportCSV(r io.Reader, opts importer.Options) (*importer.Result, error)
	ImportXLSX(r io.Reader, opts importer.Options) (*importer.Result, error)
	// ImportRows runs the pipeline over already-parsed tabular data; the CSV
	// and XLSX entry points and the fixture CLI all feed it.
	ImportRows(headers []string, rows [][]string, opts importer.Options) (*importer.Result, error)
	CSVTemplate(w io.Writer) error
	XLSXTemplate(w io.Writer) error
}
