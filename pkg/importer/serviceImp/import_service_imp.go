package serviceImp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"engineview/entities"
	"engineview/pkg/importer"
	"engineview/pkg/importer/service"

	engineRepo "engineview/pkg/engine/repository"
	measRepo "engineview/pkg/measurement/repository"
	paramRepo "engineview/pkg/parameter/repository"
)

type importSvc struct {
	params  paramRepo.ParameterRepository
	meas    measRepo.MeasurementRepository
	engines engineRepo.EngineRepository
}

func New(params paramRepo.ParameterRepository, meas measRepo.MeasurementRepository, engines engineRepo.EngineRepository) service.ImportService {
	return &importSvc{params, meas, engines}
}

// timestampAliases are probed in order to locate the timestamp column.
var timestampAliases = []string{"timestamp", "time", "время", "дата", "date"}

func (s *importSvc) ImportCSV(r io.Reader, opts importer.Options) (*importer.Result, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return s.ImportRows(header, rows, opts)
}

func (s *importSvc) ImportXLSX(r io.Reader, opts importer.Options) (*importer.Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}
	return s.ImportRows(rows[0], rows[1:], opts)
}

func (s *importSvc) ImportRows(headers []string, rows [][]string, opts importer.Options) (*importer.Result, error) {
	if _, err := s.engines.Get(opts.EngineID); err != nil {
		return nil, fmt.Errorf("engine %d: %w", opts.EngineID, err)
	}
	layout, err := timeLayout(opts.TimestampFormat)
	if err != nil {
		return nil, err
	}

	clean := make([]string, len(headers))
	for i, h := range headers {
		clean[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}

	run := &importRun{
		svc:     s,
		opts:    opts,
		layout:  layout,
		headers: clean,
		types:   map[string]*entities.ParameterType{},
	}
	if err := run.buildMapping(); err != nil {
		return nil, err
	}

	// Data rows are numbered from 2: row 1 is the header.
	for i, rec := range rows {
		run.processRow(i+2, rec)
	}

	res := &importer.Result{
		BatchID:           uuid.New(),
		Imported:          run.imported,
		TotalRows:         len(rows),
		CreatedParameters: run.created,
		Errors:            run.errors,
		ErrorCount:        len(run.errors),
	}
	if len(res.Errors) > importer.MaxReportedErrors {
		res.Errors = res.Errors[:importer.MaxReportedErrors]
	}
	log.Printf("[import] batch %s: %d/%d rows imported, %d new parameters, %d errors",
		res.BatchID, res.Imported, res.TotalRows, len(res.CreatedParameters), res.ErrorCount)
	return res, nil
}

// importRun carries the state of one import invocation. The column
// resolution cache lives exactly as long as the run.
type importRun struct {
	svc      *importSvc
	opts     importer.Options
	layout   string
	headers  []string
	types    map[string]*entities.ParameterType // lower-cased code/name/header -> type
	created  []entities.ParameterType
	errors   []string
	imported int
}

// buildMapping indexes the known parameter types, active or not. Codes are
// registered before names so a code match always wins over a name match.
func (run *importRun) buildMapping() error {
	all, err := run.svc.params.List(true)
	if err != nil {
		return err
	}
	for i := range all {
		run.types[strings.ToLower(all[i].Code)] = &all[i]
	}
	for i := range all {
		key := strings.ToLower(all[i].Name)
		if _, ok := run.types[key]; !ok {
			run.types[key] = &all[i]
		}
	}
	return nil
}

func (run *importRun) processRow(rowNum int, rec []string) {
	value := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	var tsStr string
	for _, alias := range timestampAliases {
		for i, h := range run.headers {
			if strings.EqualFold(h, alias) && value(i) != "" {
				tsStr = value(i)
				break
			}
		}
		if tsStr != "" {
			break
		}
	}
	if tsStr == "" {
		run.fail("row %d: no timestamp column found", rowNum)
		return
	}
	ts, err := time.Parse(run.layout, tsStr)
	if err != nil {
		run.fail("row %d: bad timestamp %q: %v", rowNum, tsStr, err)
		return
	}

	// The Measurement is created eagerly; a row whose remaining columns all
	// fail keeps an empty Measurement but does not count as imported.
	m := &entities.Measurement{
		EngineID:  run.opts.EngineID,
		Timestamp: ts,
		CreatedBy: run.opts.CreatedBy,
	}
	if err := run.svc.meas.Create(m); err != nil {
		run.fail("row %d: create measurement: %v", rowNum, err)
		return
	}

	stored := 0
	for i, h := range run.headers {
		if isTimestampHeader(h) {
			continue
		}
		v := value(i)
		if isNullLike(v) {
			continue
		}

		pt, err := run.resolve(h, v)
		if err != nil {
			run.fail("row %d: column %q: %v", rowNum, h, err)
			continue
		}

		num, numOK := parseNumeric(v)
		switch {
		case pt.Unit != "":
			// A unit means the type holds numbers.
			if !numOK {
				run.fail("row %d: bad value %q for parameter %q", rowNum, v, h)
				continue
			}
		case numOK:
			// Numeric data arrived for a unit-less type: adopt the generic
			// unit so later rows are held to numeric parsing too.
			pt.Unit = genericUnit
			if err := run.svc.params.Update(pt); err != nil {
				run.fail("row %d: update parameter %q: %v", rowNum, h, err)
				continue
			}
		default:
			// Only numeric values are stored.
			run.fail("row %d: text value %q for parameter %q", rowNum, v, h)
			continue
		}

		pv := &entities.ParameterValue{
			MeasurementID:   m.MeasurementID,
			ParameterTypeID: pt.ParameterTypeID,
			Value:           num,
		}
		if err := run.svc.meas.CreateValue(pv); err != nil {
			run.fail("row %d: store value for %q: %v", rowNum, h, err)
			continue
		}
		stored++
	}

	if stored > 0 {
		run.imported++
	}
}

func (run *importRun) fail(format string, args ...interface{}) {
	run.errors = append(run.errors, fmt.Sprintf(format, args...))
}

func isTimestampHeader(h string) bool {
	for _, alias := range timestampAliases {
		if strings.EqualFold(strings.TrimSpace(h), alias) {
			return true
		}
	}
	return false
}

func isNullLike(v string) bool {
	switch strings.ToLower(v) {
	case "", "null", "none":
		return true
	}
	return false
}
