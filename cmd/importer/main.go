// Command importer loads a fixture spreadsheet into the database. The sheet
// carries vessel/engine identity columns (vessel_name, imo_number,
// engine_name, engine_model, serial_number) next to a timestamp column and
// any number of parameter columns; vessels and engines are created on first
// sight, measurements go through the regular import pipeline.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"engineview/database"
	"engineview/entities"
	"engineview/pkg/importer"

	engineRepoImp "engineview/pkg/engine/repositoryImp"
	measRepoImp "engineview/pkg/measurement/repositoryImp"
	paramRepoImp "engineview/pkg/parameter/repositoryImp"
	vesselRepoImp "engineview/pkg/vessel/repositoryImp"

	engineRepo "engineview/pkg/engine/repository"
	vesselRepo "engineview/pkg/vessel/repository"

	importSvcImp "engineview/pkg/importer/serviceImp"
)

var fixtureColumns = []string{"vessel_name", "imo_number", "engine_name", "engine_model", "serial_number"}

func main() {
	file := flag.String("file", "", "fixture .xlsx file to import")
	dbPath := flag.String("db", "engineview.db", "sqlite database path")
	format := flag.String("format", "", "timestamp format (strptime or Go layout; default %Y-%m-%d %H:%M:%S)")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*file, *dbPath, *format); err != nil {
		log.Fatalf("import: %v", err)
	}
}

func run(file, dbPath, format string) error {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return errors.New("workbook has no data rows")
	}

	header := rows[0]
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range fixtureColumns {
		if _, ok := col[required]; !ok {
			return fmt.Errorf("missing required column %q", required)
		}
	}

	db := database.OpenSQLite(dbPath)
	if err := database.SeedParameterTypes(db); err != nil {
		return err
	}
	vessels := vesselRepoImp.New(db)
	engines := engineRepoImp.New(db)
	params := paramRepoImp.New(db)
	measurements := measRepoImp.New(db)
	svc := importSvcImp.New(params, measurements, engines)

	// keep only timestamp + parameter columns for the pipeline
	var keepIdx []int
	var keepHeader []string
	for i, h := range header {
		if isFixtureColumn(h) {
			continue
		}
		keepIdx = append(keepIdx, i)
		keepHeader = append(keepHeader, h)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	// group data rows by engine serial, creating vessels/engines on demand
	byEngine := map[uint][][]string{}
	for _, row := range rows[1:] {
		e, err := resolveEngine(vessels, engines,
			cell(row, col["vessel_name"]), cell(row, col["imo_number"]),
			cell(row, col["engine_name"]), cell(row, col["engine_model"]),
			cell(row, col["serial_number"]))
		if err != nil {
			return err
		}
		kept := make([]string, len(keepIdx))
		for j, i := range keepIdx {
			kept[j] = cell(row, i)
		}
		byEngine[e.EngineID] = append(byEngine[e.EngineID], kept)
	}

	for engineID, engineRows := range byEngine {
		res, err := svc.ImportRows(keepHeader, engineRows, importer.Options{
			EngineID:        engineID,
			TimestampFormat: format,
			CreatedBy:       "importer",
		})
		if err != nil {
			return err
		}
		log.Printf("engine %d: imported %d/%d rows, %d errors", engineID, res.Imported, res.TotalRows, res.ErrorCount)
		for _, msg := range res.Errors {
			log.Printf("  %s", msg)
		}
	}
	return nil
}

func isFixtureColumn(h string) bool {
	h = strings.ToLower(strings.TrimSpace(h))
	for _, c := range fixtureColumns {
		if h == c {
			return true
		}
	}
	return false
}

func resolveEngine(vessels vesselRepo.VesselRepository, engines engineRepo.EngineRepository,
	vesselName, imo, engineName, model, serial string) (*entities.Engine, error) {
	if imo == "" || serial == "" {
		return nil, errors.New("imo_number and serial_number must not be empty")
	}

	e, err := engines.GetBySerial(serial)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v, err := vessels.GetByIMO(imo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		v = &entities.Vessel{Name: vesselName, IMONumber: imo}
		if err := vessels.Create(v); err != nil {
			return nil, fmt.Errorf("create vessel %s: %w", imo, err)
		}
	} else if err != nil {
		return nil, err
	}

	e = &entities.Engine{VesselID: v.VesselID, Name: engineName, Model: model, SerialNumber: serial}
	if err := engines.Create(e); err != nil {
		return nil, fmt.Errorf("create engine %s: %w", serial, err)
	}
	return e, nil
}
