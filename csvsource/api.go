package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/haldorsen/bondladder/returnmatrix"
)

// maxWorkers bounds the row-validation worker pool regardless of GOMAXPROCS,
// since row parsing is cheap enough that more than a handful of goroutines
// buys nothing on typical bond-ladder sheets (tens to low thousands of rows).
const maxWorkers = 8

// Load reads path, validates it as a bond-return CSV, and returns the
// resulting immutable returnmatrix.Matrix.
//
// Load accepts ".csv" and ".txt" extensions (case-insensitive) and rejects
// spreadsheet-native extensions with a targeted FileError. Once the file is
// open, header and row problems surface as *CSVParseError carrying the
// offending line number; anything wrong with the file itself (missing,
// unreadable, wrong extension) surfaces as *FileError.
func Load(path string) (*returnmatrix.Matrix, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Reason: classifyOpenError(err)}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, headerLine, err := readNextNonBlank(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FileError{Path: path, Reason: ErrNoHeader.Error()}
		}
		return nil, &FileError{Path: path, Reason: fmt.Sprintf("unreadable: %v", err)}
	}

	numMonths, err := parseHeader(header, headerLine)
	if err != nil {
		return nil, err
	}

	type rawRow struct {
		line   int
		fields []string
	}
	var rows []rawRow
	for {
		rec, line, err := readNextNonBlank(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FileError{Path: path, Reason: fmt.Sprintf("unreadable: %v", err)}
		}
		rows = append(rows, rawRow{line: line, fields: rec})
	}

	if len(rows) == 0 {
		return nil, &CSVParseError{Line: headerLine, Reason: "no data rows"}
	}

	tenors := make([]int, len(rows))
	lines := make([]int, len(rows))
	grid := make([]float64, len(rows)*numMonths)
	rowErrs := make([]error, len(rows))

	workers := runtime.GOMAXPROCS(0)
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				tenor, hprs, err := parseRow(rows[idx].fields, rows[idx].line, numMonths)
				lines[idx] = rows[idx].line
				if err != nil {
					rowErrs[idx] = err
					continue
				}
				tenors[idx] = tenor
				copy(grid[idx*numMonths:(idx+1)*numMonths], hprs)
			}
		}()
	}
	for idx := range rows {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, e := range rowErrs {
		if e != nil {
			return nil, e
		}
	}

	if err := checkDuplicateTenors(tenors, lines); err != nil {
		return nil, err
	}

	if minTenor := minInt(tenors); numMonths < minTenor {
		return nil, &CSVParseError{
			Line:   minTenorLine(tenors, lines),
			Reason: fmt.Sprintf("horizon of %d months is shorter than smallest tenor %d", numMonths, minTenor),
		}
	}

	m, err := returnmatrix.Construct(tenors, numMonths, grid, path)
	if err != nil {
		// Any error Construct still raises here is a content problem
		// csvsource's own checks did not anticipate (shape/duplicate
		// issues are already ruled out above); surface it the same way
		// as every other content error, recoverable at the prompt.
		return nil, &CSVParseError{Line: headerLine, Reason: err.Error()}
	}
	return m, nil
}

// minInt returns the smallest value in a non-empty slice of ints.
func minInt(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// readNextNonBlank reads records until it finds one that is not blank
// (skipping lines that are whitespace or commas only), returning the record
// and its 1-based source line number.
func readNextNonBlank(reader *csv.Reader) ([]string, int, error) {
	for {
		rec, err := reader.Read()
		if err != nil {
			return nil, 0, err
		}
		if isBlankRow(rec) {
			continue
		}
		line, _ := reader.FieldPos(0)
		return rec, line, nil
	}
}

func checkExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if rejectedExtensions[ext] {
		return &FileError{Path: path, Reason: fmt.Sprintf("spreadsheet format %q is not supported; export to CSV or TXT first", ext)}
	}
	if ext != ".csv" && ext != ".txt" {
		return &FileError{Path: path, Reason: fmt.Sprintf("unsupported extension %q, expected .csv or .txt", ext)}
	}
	return nil
}

func classifyOpenError(err error) string {
	if os.IsNotExist(err) {
		return "file not found"
	}
	return fmt.Sprintf("unreadable: %v", err)
}
