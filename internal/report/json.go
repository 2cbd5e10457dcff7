package report

import (
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/area-stats/internal/areastats"
)

// WriteJSON writes fields as an ordered JSON object with canonical keys.
func WriteJSON(path string, fields areastats.Fields) error {
	data, err := MarshalFields(fields)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	return nil
}
