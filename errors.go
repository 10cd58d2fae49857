package tradestats

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when a date string matches none of the accepted formats.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidFileStructure is returned when an export does not have the expected shape.
	// Nothing is imported.
	ErrInvalidFileStructure = errors.New("invalid file structure")
	// ErrEmptyResult is returned when an export is well formed but has no usable rows.
	ErrEmptyResult = errors.New("no usable records")
	// ErrUnsupportedFormat is returned for exports that are neither CSV nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// MalformedRowError reports a single data row that could not be imported.
type MalformedRowError struct {
	Row    int    // 1-based row number in the export
	Field  string // offending field, if any
	Reason string
	Err    error // underlying error, if any
}

func (e *MalformedRowError) Error() string {
	msg := fmt.Sprintf("row %d", e.Row)
	if e.Field != "" {
		msg += " " + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// Skip records a data row dropped during import.
type Skip struct {
	Row int
	Err error
}

func (s Skip) String() string { return s.Err.Error() }

func (s Skip) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Row    int    `json:"row"`
		Reason string `json:"reason"`
	}{s.Row, s.String()})
}

// Reason returns a message suitable for end users explaining why an import failed.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return "Unsupported file type: upload a .csv realized gains export or a .json transactions export."
	case errors.Is(err, ErrInvalidFileStructure):
		return "Bad file format: " + err.Error()
	case errors.Is(err, ErrEmptyResult):
		return "The file was read but contains no usable rows."
	default:
		return "Import failed: " + err.Error()
	}
}
