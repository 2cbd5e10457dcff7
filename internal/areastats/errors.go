package areastats

import "github.com/rotisserie/eris"

// Error kinds raised by the statistics and classification engine. Callers
// match them with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidInput reports empty or malformed input: no values, negative or
	// non-finite areas, an unusable class count, or a mixed geometry kind.
	ErrInvalidInput = eris.New("invalid input")

	// ErrClassification reports a label/break mismatch, unordered breaks, or a
	// value outside the classified range.
	ErrClassification = eris.New("classification error")

	// ErrDivisionUndefined reports a ratio or average whose denominator is
	// zero: an empty class, a zero grand total, or a zero reference area.
	ErrDivisionUndefined = eris.New("division undefined")
)

func invalidInput(format string, args ...any) error {
	return eris.Wrapf(ErrInvalidInput, format, args...)
}

func classificationError(format string, args ...any) error {
	return eris.Wrapf(ErrClassification, format, args...)
}

func divisionUndefined(format string, args ...any) error {
	return eris.Wrapf(ErrDivisionUndefined, format, args...)
}
