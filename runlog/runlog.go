package runlog

import (
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var colourOnce sync.Once

// initColour decides, once per process, whether stdout supports colour and
// toggles fatih/color's global switch accordingly. Tests that capture
// stdout via an os.Pipe run before this has fired in the real binary, since
// go-isatty correctly reports a pipe as a non-terminal.
func initColour() {
	colourOnce.Do(func() {
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	})
}

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	sectionColor = color.New(color.FgMagenta, color.Bold, color.Underline)
	statColor    = color.New(color.FgWhite)
	bannerColor  = color.New(color.FgCyan, color.Bold)
)

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	initColour()
	infoColor.Printf(format+"\n", args...)
}

// Success logs a completed, non-error outcome.
func Success(format string, args ...interface{}) {
	initColour()
	successColor.Printf(format+"\n", args...)
}

// Warn logs a recoverable problem the user should know about.
func Warn(format string, args ...interface{}) {
	initColour()
	warnColor.Printf("warning: "+format+"\n", args...)
}

// Error logs an unrecovered problem immediately before the process exits
// with a non-zero status.
func Error(format string, args ...interface{}) {
	initColour()
	errorColor.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// Section prints a titled divider separating stages of a run.
func Section(title string) {
	initColour()
	sectionColor.Printf("\n== %s ==\n", title)
}

// Stat logs a single labeled value, e.g. a rank count or elapsed duration.
func Stat(label string, value interface{}) {
	initColour()
	statColor.Printf("  %s: %v\n", label, value)
}

// Banner prints the program's startup banner naming its version and the
// per-run identifier. The identifier appears only in this banner; it is not
// written to other log lines or to the results CSV.
func Banner(version, runID string) {
	initColour()
	bannerColor.Printf("bondladder %s (run %s)\n", version, runID)
}
