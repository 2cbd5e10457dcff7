package report

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/area-stats/internal/areastats"
	"github.com/sells-group/area-stats/internal/i18n"
)

// WriteCSV writes one "label,value" row per field using localized labels.
func WriteCSV(path string, fields areastats.Fields, tr i18n.Translator) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	for _, field := range fields {
		if err := w.Write([]string{tr.T(field.Key), FormatValue(field.Value)}); err != nil {
			return eris.Wrapf(err, "report: write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "report: flush %s", path)
	}
	return eris.Wrapf(f.Close(), "report: close %s", path)
}

// WriteClassTableCSV writes a class summary table with a localized header.
func WriteClassTableCSV(path string, rows []areastats.ClassSummary, tr i18n.Translator) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	cols := ClassTableColumns(rows)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = tr.T(c)
	}
	if err := w.Write(header); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	for _, row := range rows {
		fields := row.Fields()
		record := make([]string, len(cols))
		for i, c := range cols {
			v, _ := fields.Get(c)
			record[i] = FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			return eris.Wrapf(err, "report: write %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "report: flush %s", path)
	}
	return eris.Wrapf(f.Close(), "report: close %s", path)
}

// ClassTableColumns returns the canonical columns of rows; the sample area
// ratio column is present when any row carries one.
func ClassTableColumns(rows []areastats.ClassSummary) []string {
	withSample := false
	for _, r := range rows {
		if r.SampleAreaRatio != nil {
			withSample = true
			break
		}
	}
	return areastats.ClassTableColumns(withSample)
}
