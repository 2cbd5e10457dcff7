package report

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/i18n"
)

// maxSheetName is the longest sheet name a workbook accepts.
const maxSheetName = 31

// XLSXWriter adds sheets to a workbook. An existing workbook is opened and
// appended to; sheets are only persisted by Save.
type XLSXWriter struct {
	path string
	file *xlsx.File
	tr   i18n.Translator
}

// ValidateXLSXName rejects file names not ending in .xlsx.
func ValidateXLSXName(path string) error {
	if filepath.Ext(path) != ".xlsx" {
		return eris.Errorf("report: file name must end with .xlsx, got %s", path)
	}
	return nil
}

// OpenXLSX opens path for appending, or starts a new workbook when the file
// does not exist yet.
func OpenXLSX(path string, tr i18n.Translator) (*XLSXWriter, error) {
	if err := ValidateXLSXName(path); err != nil {
		return nil, err
	}

	w := &XLSXWriter{path: path, tr: tr}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		f, err := xlsx.OpenFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "report: open workbook %s", path)
		}
		w.file = f
	case errors.Is(err, fs.ErrNotExist):
		w.file = xlsx.NewFile()
	default:
		return nil, eris.Wrapf(err, "report: stat workbook %s", path)
	}
	return w, nil
}

// SheetNames returns the sheet names in workbook order.
func (w *XLSXWriter) SheetNames() []string {
	names := make([]string, len(w.file.Sheets))
	for i, s := range w.file.Sheets {
		names[i] = s.Name
	}
	return names
}

// UniqueSheetName returns name, suffixed with _01, _02, ... while a sheet
// with that name already exists. The result fits the sheet name limit.
func (w *XLSXWriter) UniqueSheetName(name string) string {
	taken := make(map[string]bool, len(w.file.Sheets))
	for _, s := range w.file.Sheets {
		taken[strings.ToLower(s.Name)] = true
	}

	candidate := truncate(name, maxSheetName)
	for n := 1; taken[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf("_%02d", n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	return candidate
}

// WriteStatistics adds a sheet with one row per field: the localized label
// followed by the value, or one cell per element for list values. It returns
// the sheet name used.
func (w *XLSXWriter) WriteStatistics(sheetName string, fields areastats.Fields) (string, error) {
	sheet, err := w.addSheet(sheetName)
	if err != nil {
		return "", err
	}
	for _, f := range fields {
		row := sheet.AddRow()
		row.AddCell().SetString(w.tr.T(f.Key))
		switch v := f.Value.(type) {
		case []float64:
			for _, x := range v {
				setNumber(row.AddCell(), x)
			}
		default:
			setCell(row.AddCell(), v)
		}
	}
	return sheet.Name, nil
}

// WriteClassTable adds a sheet holding a class summary table under a
// localized header row. It returns the sheet name used.
func (w *XLSXWriter) WriteClassTable(sheetName string, rows []areastats.ClassSummary) (string, error) {
	sheet, err := w.addSheet(sheetName)
	if err != nil {
		return "", err
	}

	cols := ClassTableColumns(rows)
	header := sheet.AddRow()
	for _, c := range cols {
		header.AddCell().SetString(w.tr.T(c))
	}
	for _, r := range rows {
		fields := r.Fields()
		row := sheet.AddRow()
		for _, c := range cols {
			v, _ := fields.Get(c)
			setCell(row.AddCell(), v)
		}
	}
	return sheet.Name, nil
}

// Save writes the workbook to its path.
func (w *XLSXWriter) Save() error {
	if len(w.file.Sheets) == 0 {
		return eris.Errorf("report: workbook %s has no sheets", w.path)
	}
	if err := w.file.Save(w.path); err != nil {
		return eris.Wrapf(err, "report: save workbook %s", w.path)
	}
	return nil
}

func (w *XLSXWriter) addSheet(name string) (*xlsx.Sheet, error) {
	if name == "" {
		name = "Sheet1"
	}
	unique := w.UniqueSheetName(name)
	sheet, err := w.file.AddSheet(unique)
	if err != nil {
		return nil, eris.Wrapf(err, "report: add sheet %s", unique)
	}
	return sheet, nil
}

func setCell(c *xlsx.Cell, v any) {
	switch x := v.(type) {
	case int:
		c.SetInt(x)
	case float64:
		setNumber(c, x)
	case string:
		c.SetString(x)
	default:
		c.SetString(FormatValue(x))
	}
}

func setNumber(c *xlsx.Cell, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		c.SetString("")
		return
	}
	c.SetFloat(f)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
