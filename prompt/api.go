package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/haldorsen/bondladder/csvsource"
	"github.com/haldorsen/bondladder/returnmatrix"
	"github.com/haldorsen/bondladder/runlog"
)

// readLine reads one line with the given prompt, translating Ctrl+C/Ctrl+D
// into ErrAborted so every Ask* caller has a single escape path to check.
func readLine(rl *readline.Instance, question string) (string, error) {
	rl.SetPrompt(question)
	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskK reads and validates k >= 1 from the user, re-prompting on malformed
// input up to maxRetries times. A k above kSoftWarningThreshold is accepted
// but logged as a soft warning about memory and time cost.
func AskK(rl *readline.Instance) (int, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		line, err := readLine(rl, "How many top sequences (k)? ")
		if err != nil {
			return 0, err
		}
		k, convErr := strconv.Atoi(line)
		if convErr != nil || k < 1 {
			runlog.Warn("k must be a positive integer, got %q", line)
			continue
		}
		if k > kSoftWarningThreshold {
			runlog.Warn("k=%d is very large; this run may use substantial memory and time", k)
		}
		return k, nil
	}
	return 0, ErrInvalidK
}

// AskCSVPath repeatedly prompts for a CSV file path and attempts to load it,
// retrying on *csvsource.FileError or *csvsource.CSVParseError so the user
// can correct a typo or a malformed file without restarting the program.
func AskCSVPath(rl *readline.Instance) (*returnmatrix.Matrix, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		line, err := readLine(rl, "Path to bond return CSV: ")
		if err != nil {
			return nil, err
		}
		m, loadErr := csvsource.Load(line)
		if loadErr == nil {
			return m, nil
		}

		var fileErr *csvsource.FileError
		var parseErr *csvsource.CSVParseError
		if errors.As(loadErr, &fileErr) || errors.As(loadErr, &parseErr) {
			runlog.Warn("%v", loadErr)
			continue
		}
		return nil, loadErr
	}
	return nil, fmt.Errorf("prompt: too many invalid CSV attempts")
}

// AskExportDecision asks whether to export results to CSV and, if so, which
// directory to use. An empty directory answer defaults to the working
// directory (signalled by Dir == "").
func AskExportDecision(rl *readline.Instance) (ExportDecision, error) {
	line, err := readLine(rl, "Export results to CSV? [y/N]: ")
	if err != nil {
		return ExportDecision{}, err
	}
	if !strings.EqualFold(line, "y") && !strings.EqualFold(line, "yes") {
		return ExportDecision{Export: false}, nil
	}

	dir, err := readLine(rl, "Output directory (blank for current directory): ")
	if err != nil {
		return ExportDecision{}, err
	}
	return ExportDecision{Export: true, Dir: dir}, nil
}

// AskRenderStyle lets the user choose between short-form and verbose action
// rendering, applied uniformly by the report package to every path.
func AskRenderStyle(rl *readline.Instance) (RenderStyle, error) {
	line, err := readLine(rl, "Render actions as [s]hort or [v]erbose? [s]: ")
	if err != nil {
		return ShortStyle, err
	}
	if strings.EqualFold(line, "v") || strings.EqualFold(line, "verbose") {
		return VerboseStyle, nil
	}
	return ShortStyle, nil
}
