package csvsource

import (
	"errors"
	"fmt"
)

// ErrNoHeader indicates the file contained no non-blank rows at all.
var ErrNoHeader = errors.New("csvsource: file has no header row")

// rejectedExtensions lists spreadsheet-native formats that must be rejected
// with a targeted message rather than the generic extension error.
var rejectedExtensions = map[string]bool{
	".xlsx":    true,
	".xls":     true,
	".xlsm":    true,
	".xlsb":    true,
	".numbers": true,
	".ods":     true,
}

// FileError reports a problem locating, opening, or recognising the file
// itself, prior to any CSV parsing.
type FileError struct {
	Path   string
	Reason string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("csvsource: %s: %s", e.Path, e.Reason)
}

// CSVParseError reports a problem with the content of a specific line once
// the file has been opened successfully.
type CSVParseError struct {
	Line   int
	Reason string
}

func (e *CSVParseError) Error() string {
	return fmt.Sprintf("csvsource: line %d: %s", e.Line, e.Reason)
}
