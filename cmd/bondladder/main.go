// Command bondladder computes the top-k highest cumulative-return bond
// laddering sequences for a CSV-supplied return matrix, and separately
// counts the number of distinct action sequences reachable over the same
// horizon.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/haldorsen/bondladder/csvsource"
	"github.com/haldorsen/bondladder/pathcount"
	"github.com/haldorsen/bondladder/prompt"
	"github.com/haldorsen/bondladder/report"
	"github.com/haldorsen/bondladder/returnmatrix"
	"github.com/haldorsen/bondladder/runlog"
	"github.com/haldorsen/bondladder/topk"
)

// version is overridden at release build time via -ldflags.
var version = "dev"

// kWarnThreshold mirrors prompt's soft-warning threshold for a directly
// flag-supplied k, since that path never goes through prompt.AskK.
const kWarnThreshold = 1_000_000

func main() {
	os.Exit(run())
}

func run() int {
	csvPath := flag.String("csv", "", "path to the bond return CSV file")
	kFlag := flag.Int("k", 0, "number of top sequences to report")
	outDir := flag.String("out", "", "directory to write the results CSV")
	export := flag.Bool("export", false, "export results to a CSV file instead of the terminal")
	verbose := flag.Bool("verbose", false, "render action paths in verbose sentence form")
	flag.Parse()

	runID := uuid.NewString()
	runlog.Banner(version, runID)

	var rl *readline.Instance
	if *csvPath == "" || *kFlag <= 0 {
		var err error
		rl, err = readline.New("> ")
		if err != nil {
			runlog.Error("could not start interactive prompt: %v", err)
			return 1
		}
		defer rl.Close()
	}

	matrix, err := resolveMatrix(*csvPath, rl)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return 0
		}
		runlog.Error("%v", err)
		return 1
	}

	k, err := resolveK(*kFlag, rl)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return 0
		}
		runlog.Error("%v", err)
		return 1
	}

	style := prompt.ShortStyle
	switch {
	case *verbose:
		style = prompt.VerboseStyle
	case rl != nil:
		style, err = prompt.AskRenderStyle(rl)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return 0
			}
			runlog.Error("%v", err)
			return 1
		}
	}

	runlog.Section("Optimising")
	result, err := topk.Optimise(matrix, k)
	if err != nil {
		runlog.Error("%v", err)
		return 1
	}
	runlog.Stat("ranks found", len(result.CRFs))

	runlog.Section("Path count")
	count := pathcount.Compute(matrix.Tenors(), matrix.NumMonths())
	runlog.Stat("distinct action sequences", report.FormatPathCount(count))

	decision, err := resolveExport(*export, *outDir, rl)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return 0
		}
		runlog.Error("%v", err)
		return 1
	}

	runlog.Section("Results")
	if !decision.Export {
		report.RenderTerminal(os.Stdout, result, style)
		return 0
	}

	path, writeErr := report.WriteCSV(decision.Dir, result, style)
	if writeErr != nil {
		var dirErr *report.DirectoryError
		if errors.As(writeErr, &dirErr) || errors.Is(writeErr, report.ErrFilenameExhaustion) {
			runlog.Warn("%v; printing results to the terminal instead", writeErr)
			report.RenderTerminal(os.Stdout, result, style)
			return 0
		}
		runlog.Error("%v", writeErr)
		return 1
	}
	runlog.Success("wrote results to %s", path)
	return 0
}

// resolveMatrix loads the return matrix from the flag-supplied path,
// falling back to the interactive prompt (when rl is non-nil) on a
// recoverable FileError or CSVParseError, and retrying there until the user
// supplies a valid path or escapes.
func resolveMatrix(path string, rl *readline.Instance) (*returnmatrix.Matrix, error) {
	if path != "" {
		m, err := csvsource.Load(path)
		if err == nil {
			return m, nil
		}
		var fileErr *csvsource.FileError
		var parseErr *csvsource.CSVParseError
		if !errors.As(err, &fileErr) && !errors.As(err, &parseErr) {
			return nil, err
		}
		runlog.Warn("%v", err)
		if rl == nil {
			return nil, err
		}
	}
	if rl == nil {
		return nil, fmt.Errorf("cmd/bondladder: -csv is required when running non-interactively")
	}
	return prompt.AskCSVPath(rl)
}

func resolveK(k int, rl *readline.Instance) (int, error) {
	if k > 0 {
		if k > kWarnThreshold {
			runlog.Warn("k=%d is very large; this run may use substantial memory and time", k)
		}
		return k, nil
	}
	if rl == nil {
		return 0, fmt.Errorf("cmd/bondladder: -k is required when running non-interactively")
	}
	return prompt.AskK(rl)
}

func resolveExport(export bool, outDir string, rl *readline.Instance) (prompt.ExportDecision, error) {
	if export {
		return prompt.ExportDecision{Export: true, Dir: outDir}, nil
	}
	if rl == nil {
		return prompt.ExportDecision{Export: false}, nil
	}
	return prompt.AskExportDecision(rl)
}
