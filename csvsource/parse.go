package csvsource

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// isBlankRow reports whether every field of rec is empty once trimmed,
// covering both genuinely empty lines and comma-only lines (",,,").
func isBlankRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseHeader validates the header row: cell 0 must be "Tenor"
// (case-insensitive, trimmed), and the remaining cells must be the
// consecutive integers 0, 1, ..., M-1. Returns M.
func parseHeader(header []string, line int) (int, error) {
	if len(header) == 0 || !strings.EqualFold(strings.TrimSpace(header[0]), "tenor") {
		return 0, &CSVParseError{Line: line, Reason: `header cell 0 must be "Tenor"`}
	}
	numMonths := len(header) - 1
	if numMonths == 0 {
		return 0, &CSVParseError{Line: line, Reason: "header has no month columns"}
	}
	for i, cell := range header[1:] {
		v, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return 0, &CSVParseError{Line: line, Reason: fmt.Sprintf("month header %d is not an integer: %q", i, cell)}
		}
		if v != i {
			return 0, &CSVParseError{Line: line, Reason: fmt.Sprintf("month headers must be consecutive from 0: expected %d, got %d", i, v)}
		}
	}
	return numMonths, nil
}

// parseRow validates a single data row: cell 0 is a positive integer tenor,
// followed by exactly numMonths floating-point holding-period returns.
func parseRow(fields []string, line int, numMonths int) (int, []float64, error) {
	if len(fields) == 0 {
		return 0, nil, &CSVParseError{Line: line, Reason: "empty row"}
	}

	tenor, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, nil, &CSVParseError{Line: line, Reason: fmt.Sprintf("tenor %q is not an integer", fields[0])}
	}
	if tenor <= 0 {
		return 0, nil, &CSVParseError{Line: line, Reason: fmt.Sprintf("tenor must be positive, got %d", tenor)}
	}

	rest := fields[1:]
	if len(rest) != numMonths {
		return 0, nil, &CSVParseError{Line: line, Reason: fmt.Sprintf("expected %d monthly returns, got %d", numMonths, len(rest))}
	}

	hprs := make([]float64, numMonths)
	for i, cell := range rest {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return 0, nil, &CSVParseError{Line: line, Reason: fmt.Sprintf("month %d return %q is not a number", i, cell)}
		}
		onePlus := 1 + v
		if math.IsNaN(onePlus) || math.IsInf(onePlus, 0) {
			return 0, nil, &CSVParseError{Line: line, Reason: fmt.Sprintf("month %d return %q is not finite", i, cell)}
		}
		hprs[i] = v
	}
	return tenor, hprs, nil
}

// minTenorLine returns the source line of the row carrying the smallest
// tenor, used to point "horizon shorter than smallest tenor" at the row
// responsible for it.
func minTenorLine(tenors, lines []int) int {
	minIdx := 0
	for i, t := range tenors {
		if t < tenors[minIdx] {
			minIdx = i
		}
	}
	return lines[minIdx]
}

// checkDuplicateTenors returns a CSVParseError naming the line of the
// second occurrence of any tenor value that appears more than once.
func checkDuplicateTenors(tenors []int, lines []int) error {
	seen := make(map[int]int, len(tenors))
	for i, t := range tenors {
		if firstLine, ok := seen[t]; ok {
			return &CSVParseError{Line: lines[i], Reason: fmt.Sprintf("duplicate tenor %d (first seen at line %d)", t, firstLine)}
		}
		seen[t] = lines[i]
	}
	return nil
}
