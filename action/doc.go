// Package action defines the two primitive moves a bond-laddering sequence
// is built from: buying a bond at a given tenor, or waiting out a run of
// months with capital uncommitted.
//
// An Action is a tagged sum, never both at once:
//
//	Buy{StartMonth, Tenor}   - purchase a Tenor-month bond at StartMonth.
//	Wait{StartMonth, Length} - hold cash for Length months starting at StartMonth.
//
// Sequences of Actions are ordered by non-decreasing StartMonth, and any two
// adjacent Wait actions are always merged into one (see MergeWaits). Actions
// render in short form ("b12", "w3") or verbose form ("Month 4: buy 12-month
// bond"). Short-form strings round-trip through ParseSequence; the verbose
// form is output only and has no parser.
package action
