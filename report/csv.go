package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haldorsen/bondladder/action"
	"github.com/haldorsen/bondladder/prompt"
	"github.com/haldorsen/bondladder/topk"
)

// WriteCSV writes res to a uniquely-named file in dir and returns the path
// written. The base name is "bond_results.csv"; if that already exists,
// "bond_results_2.csv", "bond_results_3.csv", ... are tried up to
// maxFilenameAttempts before ErrFilenameExhaustion is returned.
func WriteCSV(dir string, res topk.OptimalResults, style prompt.RenderStyle) (string, error) {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", &DirectoryError{Dir: dir, Reason: err.Error()}
	}
	if !info.IsDir() {
		return "", &DirectoryError{Dir: dir, Reason: "not a directory"}
	}

	path, err := uniqueFilename(dir)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &DirectoryError{Dir: dir, Reason: err.Error()}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for r, crf := range res.CRFs {
		pct := 100*crf - 100
		record := []string{
			fmt.Sprintf("%d", r+1),
			fmt.Sprintf("%.2f%%", pct),
			renderPath(res.Paths[r], style),
		}
		if err := w.Write(record); err != nil {
			return "", &DirectoryError{Dir: dir, Reason: err.Error()}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", &DirectoryError{Dir: dir, Reason: err.Error()}
	}
	return path, nil
}

func renderPath(seq []action.Action, style prompt.RenderStyle) string {
	if style == prompt.VerboseStyle {
		return action.RenderVerboseForm(seq)
	}
	return action.RenderShortForm(seq)
}

// uniqueFilename returns the first available "bond_results[_n].csv" path in
// dir, scanning sequentially from the unsuffixed base.
func uniqueFilename(dir string) (string, error) {
	base := filepath.Join(dir, "bond_results.csv")
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return base, nil
	}
	for n := 2; n <= maxFilenameAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("bond_results_%d.csv", n))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", ErrFilenameExhaustion
}
