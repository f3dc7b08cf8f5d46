// Package runlog is the program's single logging surface: a small set of
// leaf-level functions (Info, Success, Warn, Error, Section, Stat, Banner)
// that colourize their output when stdout is a terminal and fall back to
// plain text otherwise.
//
// Colour-mode detection runs exactly once per process, on first use, via a
// sync.Once-guarded initializer, since probing a terminal's capabilities on
// every call would be wasted work for a property that cannot change for the
// life of the process.
package runlog
