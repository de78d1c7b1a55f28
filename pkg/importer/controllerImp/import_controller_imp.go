package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"engineview/pkg/importer"
	"engineview/pkg/importer/controller"
	svc "engineview/pkg/importer/service"
)

type ImportCtrl struct{ svc svc.ImportService }

func New(svc svc.ImportService) controller.ImportController { return &ImportCtrl{svc} }

// Import handles a multipart upload: file, engine_id, delimiter
// (comma|semicolon|tab), timestamp_format. The file may be delimited text or
// .xlsx.
func (h *ImportCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	engineID, err := strconv.Atoi(c.FormValue("engine_id"))
	if err != nil || engineID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "engine_id is required"})
	}
	delim, err := delimiterRune(c.FormValue("delimiter"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	uid, _ := c.Get("uid").(string)
	opts := importer.Options{
		EngineID:        uint(engineID),
		Delimiter:       delim,
		TimestampFormat: c.FormValue("timestamp_format"),
		CreatedBy:       uid,
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read upload"})
	}
	defer f.Close()

	var res *importer.Result
	if strings.HasSuffix(strings.ToLower(fh.Filename), ".xlsx") {
		res, err = h.svc.ImportXLSX(f, opts)
	} else {
		res, err = h.svc.ImportCSV(f, opts)
	}
	if err != nil {
		// file-level failure: nothing from this call was imported
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// Template serves the import template, as CSV by default or as .xlsx with
// ?format=xlsx.
func (h *ImportCtrl) Template(c echo.Context) error {
	if c.QueryParam("format") == "xlsx" {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="template_import.xlsx"`)
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return h.svc.XLSXTemplate(c.Response())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="template_import.csv"`)
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return h.svc.CSVTemplate(c.Response())
}

func delimiterRune(s string) (rune, error) {
	switch s {
	case "", "comma", ",":
		return ',', nil
	case "semicolon", ";":
		return ';', nil
	case "tab", "\t", `\t`:
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter %q", s)
}
