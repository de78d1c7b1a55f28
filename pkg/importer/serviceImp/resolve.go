package serviceImp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"engineview/entities"
)

// genericUnit marks a type whose values turned out numeric but whose header
// gave no hint of a physical unit.
const genericUnit = "unit"

var unitKeywords = []struct {
	unit  string
	words []string
}{
	{"°C", []string{"temp", "temperature", "темп"}},
	{"bar", []string{"press", "pressure", "давлен"}},
	{"rpm", []string{"rpm", "оборот", "speed"}},
	{"l/h", []string{"fuel", "топлив"}},
}

// resolve maps a column header to a ParameterType, creating one when the
// header is unknown. Resolutions are cached for the rest of the run.
func (run *importRun) resolve(header, value string) (*entities.ParameterType, error) {
	key := strings.ToLower(strings.TrimSpace(header))
	if pt, ok := run.types[key]; ok {
		return pt, nil
	}

	dataType := "text"
	unit := ""
	if _, ok := parseNumeric(value); ok {
		dataType = "number"
		unit = inferUnit(key)
	}
	pt := &entities.ParameterType{
		Name:        titleCase(header),
		Code:        slug(header),
		Unit:        unit,
		Description: fmt.Sprintf("Auto-created during import. Type: %s", dataType),
		IsActive:    true,
	}
	existing, created, err := run.svc.params.GetOrCreate(pt)
	if err != nil {
		return nil, err
	}
	if created {
		run.created = append(run.created, *existing)
	}
	run.types[key] = existing
	return existing, nil
}

// parseNumeric parses a float after normalizing comma decimal separators,
// so "12,5" reads as 12.5.
func parseNumeric(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	return f, err == nil
}

func inferUnit(header string) string {
	for _, k := range unitKeywords {
		for _, w := range k.words {
			if strings.Contains(header, w) {
				return k.unit
			}
		}
	}
	return ""
}

func slug(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func titleCase(header string) string {
	words := strings.Fields(strings.TrimSpace(header))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
