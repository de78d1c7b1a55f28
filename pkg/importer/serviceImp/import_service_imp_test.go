package serviceImp

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"engineview/database"
	"engineview/entities"
	"engineview/pkg/importer"
	"engineview/pkg/importer/service"

	engineRepoImp "engineview/pkg/engine/repositoryImp"
	measRepoImp "engineview/pkg/measurement/repositoryImp"
	paramRepoImp "engineview/pkg/parameter/repositoryImp"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func seedEngine(t *testing.T, db *gorm.DB) *entities.Engine {
	t.Helper()
	v := &entities.Vessel{Name: "Test Vessel", IMONumber: "IMO1234567"}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create vessel: %v", err)
	}
	e := &entities.Engine{VesselID: v.VesselID, Name: "Main Engine", Model: "ABC-123", SerialNumber: "SN001"}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("create engine: %v", err)
	}
	return e
}

func newService(db *gorm.DB) service.ImportService {
	return New(paramRepoImp.New(db), measRepoImp.New(db), engineRepoImp.New(db))
}

func TestImportCSVEndToEnd(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	input := "timestamp,temp,pressure\n" +
		"2024-01-01 10:00:00,85.5,15.2\n" +
		"2024-01-01 11:00:00,bad,16.0\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{
		EngineID:        e.EngineID,
		Delimiter:       ',',
		TimestampFormat: "%Y-%m-%d %H:%M:%S",
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Imported != 2 {
		t.Fatalf("imported = %d, want 2 (both rows stored at least one value)", res.Imported)
	}
	if res.TotalRows != 2 {
		t.Fatalf("total rows = %d, want 2", res.TotalRows)
	}
	if len(res.CreatedParameters) != 2 {
		t.Fatalf("created parameters = %d, want 2", len(res.CreatedParameters))
	}
	if res.ErrorCount != 1 || len(res.Errors) != 1 {
		t.Fatalf("errors = %v (count %d), want exactly one", res.Errors, res.ErrorCount)
	}
	if !strings.Contains(res.Errors[0], "temp") {
		t.Fatalf("error should reference the temp column: %q", res.Errors[0])
	}

	var measurements []entities.Measurement
	if err := db.Preload("ParameterValues").Order("timestamp ASC").Find(&measurements).Error; err != nil {
		t.Fatalf("load measurements: %v", err)
	}
	if len(measurements) != 2 {
		t.Fatalf("measurements = %d, want 2", len(measurements))
	}
	if len(measurements[0].ParameterValues) != 2 {
		t.Fatalf("row 1 values = %d, want 2", len(measurements[0].ParameterValues))
	}
	if len(measurements[1].ParameterValues) != 1 {
		t.Fatalf("row 2 values = %d, want 1 (pressure only)", len(measurements[1].ParameterValues))
	}
}

func TestImportRowWithOnlyNullValues(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	input := "timestamp;temp;pressure\n" +
		"2024-01-01 10:00:00;null;NONE\n" +
		"2024-01-02 10:00:00;;\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{
		EngineID:  e.EngineID,
		Delimiter: ';',
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Imported != 0 {
		t.Fatalf("imported = %d, want 0: all-blank rows do not count", res.Imported)
	}
	var valueCount int64
	if err := db.Model(&entities.ParameterValue{}).Count(&valueCount).Error; err != nil {
		t.Fatalf("count values: %v", err)
	}
	if valueCount != 0 {
		t.Fatalf("parameter values = %d, want 0", valueCount)
	}
	// the degenerate Measurement rows are retained
	var measurementCount int64
	if err := db.Model(&entities.Measurement{}).Count(&measurementCount).Error; err != nil {
		t.Fatalf("count measurements: %v", err)
	}
	if measurementCount != 2 {
		t.Fatalf("measurements = %d, want 2", measurementCount)
	}
}

func TestImportReusesKnownTypes(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	types := []entities.ParameterType{
		{Name: "Temperature", Code: "temperature", Unit: "°C", IsActive: true},
		{Name: "Oil Pressure", Code: "oil_pressure", Unit: "bar", IsActive: false},
	}
	for i := range types {
		if err := db.Create(&types[i]).Error; err != nil {
			t.Fatalf("seed type: %v", err)
		}
	}

	// one column matches a code, one matches a name, one matches an inactive
	// type's code
	input := "timestamp,temperature,Oil Pressure,oil_pressure\n" +
		"2024-01-01 10:00:00,85.5,3.1,3.2\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(res.CreatedParameters) != 0 {
		t.Fatalf("created parameters = %v, want none", res.CreatedParameters)
	}
	var typeCount int64
	if err := db.Model(&entities.ParameterType{}).Count(&typeCount).Error; err != nil {
		t.Fatalf("count types: %v", err)
	}
	if typeCount != 2 {
		t.Fatalf("parameter types = %d, want the 2 preexisting ones", typeCount)
	}
}

func TestImportDecimalComma(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	input := "timestamp;temperature\n2024-01-01 10:00:00;12,5\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{
		EngineID:  e.EngineID,
		Delimiter: ';',
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 || res.ErrorCount != 0 {
		t.Fatalf("imported=%d errors=%v, want clean import", res.Imported, res.Errors)
	}

	var pv entities.ParameterValue
	if err := db.First(&pv).Error; err != nil {
		t.Fatalf("load value: %v", err)
	}
	if pv.Value != 12.5 {
		t.Fatalf("value = %v, want 12.5", pv.Value)
	}
}

func TestImportUnitInference(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	input := "timestamp,exhaust_temp,oil_press,shaft_speed,fuel_rate,misc\n" +
		"2024-01-01 10:00:00,420,4.5,96,310,7\n"
	if _, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID}); err != nil {
		t.Fatalf("import: %v", err)
	}

	want := map[string]string{
		"exhaust_temp": "°C",
		"oil_press":    "bar",
		"shaft_speed":  "rpm",
		"fuel_rate":    "l/h",
		"misc":         genericUnit, // no keyword match, numeric data
	}
	for code, unit := range want {
		var p entities.ParameterType
		if err := db.Where("code = ?", code).First(&p).Error; err != nil {
			t.Fatalf("type %q not created: %v", code, err)
		}
		if p.Unit != unit {
			t.Fatalf("type %q unit = %q, want %q", code, p.Unit, unit)
		}
		if !p.IsActive {
			t.Fatalf("type %q should be active", code)
		}
	}
}

func TestImportUnitlessTypeAdoptsGenericUnit(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	pt := &entities.ParameterType{Name: "Vibration", Code: "vibration", IsActive: true}
	if err := db.Create(pt).Error; err != nil {
		t.Fatalf("seed type: %v", err)
	}

	input := "timestamp,vibration\n2024-01-01 10:00:00,0.8\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 {
		t.Fatalf("imported = %d, want 1", res.Imported)
	}

	var reloaded entities.ParameterType
	if err := db.First(&reloaded, pt.ParameterTypeID).Error; err != nil {
		t.Fatalf("reload type: %v", err)
	}
	if reloaded.Unit != genericUnit {
		t.Fatalf("unit = %q, want %q after numeric data arrived", reloaded.Unit, genericUnit)
	}
}

func TestImportRejectsTextValues(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	pt := &entities.ParameterType{Name: "Remark", Code: "remark", IsActive: true}
	if err := db.Create(pt).Error; err != nil {
		t.Fatalf("seed type: %v", err)
	}

	input := "timestamp,remark\n2024-01-01 10:00:00,running hot\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 0 {
		t.Fatalf("imported = %d, want 0", res.Imported)
	}
	if res.ErrorCount != 1 || !strings.Contains(res.Errors[0], "remark") {
		t.Fatalf("errors = %v, want one error naming the remark column", res.Errors)
	}
	var valueCount int64
	db.Model(&entities.ParameterValue{}).Count(&valueCount)
	if valueCount != 0 {
		t.Fatalf("parameter values = %d, want 0", valueCount)
	}
}

func TestImportErrorCap(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	var b strings.Builder
	b.WriteString("timestamp,temperature\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "not-a-time,%d\n", i)
	}
	res, err := svc.ImportCSV(strings.NewReader(b.String()), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.ErrorCount != 15 {
		t.Fatalf("error count = %d, want 15", res.ErrorCount)
	}
	if len(res.Errors) != importer.MaxReportedErrors {
		t.Fatalf("reported errors = %d, want cap of %d", len(res.Errors), importer.MaxReportedErrors)
	}
}

func TestImportTimestampAliases(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	for _, header := range []string{"Time", "Date", "Время", "дата"} {
		input := header + ",temperature\n2024-01-01 10:00:00,50\n"
		res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID})
		if err != nil {
			t.Fatalf("header %q: import: %v", header, err)
		}
		if res.Imported != 1 || res.ErrorCount != 0 {
			t.Fatalf("header %q: imported=%d errors=%v", header, res.Imported, res.Errors)
		}
	}
}

func TestImportStripsHeaderBOM(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	input := "\uFEFFtimestamp,temperature\n2024-01-01 10:00:00,85.5\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 || res.ErrorCount != 0 {
		t.Fatalf("imported=%d errors=%v, want the BOM-prefixed timestamp header recognized", res.Imported, res.Errors)
	}
}

func TestImportMissingTimestampColumn(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	input := "temperature,pressure\n85.5,15.2\n"
	res, err := svc.ImportCSV(strings.NewReader(input), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 0 || res.ErrorCount != 1 {
		t.Fatalf("imported=%d errors=%v, want one row error and nothing imported", res.Imported, res.Errors)
	}
	var measurementCount int64
	db.Model(&entities.Measurement{}).Count(&measurementCount)
	if measurementCount != 0 {
		t.Fatalf("measurements = %d, want 0: row skipped before creation", measurementCount)
	}
}

func TestImportUnknownEngine(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	_, err := svc.ImportCSV(strings.NewReader("timestamp\n"), importer.Options{EngineID: 42})
	if err == nil {
		t.Fatalf("expected error for unknown engine")
	}
}

func TestImportXLSX(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"timestamp", "temperature", "pressure"},
		{"2024-01-01 10:00:00", "85.5", "15.2"},
		{"2024-01-01 11:00:00", "86.0", "15.4"},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			t.Fatalf("build xlsx: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	res, err := svc.ImportXLSX(bytes.NewReader(buf.Bytes()), importer.Options{EngineID: e.EngineID})
	if err != nil {
		t.Fatalf("import xlsx: %v", err)
	}
	if res.Imported != 2 || res.ErrorCount != 0 {
		t.Fatalf("imported=%d errors=%v, want 2 clean rows", res.Imported, res.Errors)
	}
}

func TestImportXLSXGarbage(t *testing.T) {
	db := newTestDB(t)
	e := seedEngine(t, db)
	svc := newService(db)

	_, err := svc.ImportXLSX(strings.NewReader("this is not a workbook"), importer.Options{EngineID: e.EngineID})
	if err == nil {
		t.Fatalf("expected file-level error for malformed xlsx")
	}
}

func TestCSVTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	types := []entities.ParameterType{
		{Name: "Temperature", Code: "temperature", Unit: "°C", IsActive: true},
		{Name: "Pressure", Code: "pressure", Unit: "bar", IsActive: true},
		{Name: "Old", Code: "old", Unit: "bar", IsActive: false},
	}
	for i := range types {
		if err := db.Create(&types[i]).Error; err != nil {
			t.Fatalf("seed type: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := svc.CSVTemplate(&buf); err != nil {
		t.Fatalf("template: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("template rows = %d, want header + 2 examples", len(records))
	}
	wantHeader := []string{"timestamp", "temperature", "pressure"}
	if len(records[0]) != len(wantHeader) {
		t.Fatalf("header = %v, want %v (inactive types excluded)", records[0], wantHeader)
	}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Fatalf("header = %v, want %v", records[0], wantHeader)
		}
	}
}
