package report

import (
	"errors"
	"fmt"
)

// maxFilenameAttempts bounds the unique-filename search; exceeding it means
// a directory already holds 10,000 prior result files, treated as a
// user-visible error rather than an ever-growing search.
const maxFilenameAttempts = 10000

// DirectoryError reports that the target export directory could not be
// used (missing, not a directory, unwritable).
type DirectoryError struct {
	Dir    string
	Reason string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("report: directory %q: %s", e.Dir, e.Reason)
}

// ErrFilenameExhaustion indicates that bond_results.csv through
// bond_results_10000.csv all already exist in the target directory.
var ErrFilenameExhaustion = errors.New("report: exhausted unique filenames in target directory")
