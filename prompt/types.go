package prompt

// RenderStyle selects how action sequences are rendered in reports and on
// the terminal: the compact "b12,w3" form or the sentence-per-action form.
type RenderStyle uint8

const (
	// ShortStyle renders sequences as comma-separated tokens ("b6,b3,b3").
	ShortStyle RenderStyle = iota
	// VerboseStyle renders sequences as one sentence per action.
	VerboseStyle
)

// String implements fmt.Stringer for log and banner output.
func (s RenderStyle) String() string {
	if s == VerboseStyle {
		return "verbose"
	}
	return "short"
}

// ExportDecision is the user's answer to "export results to CSV?".
type ExportDecision struct {
	Export bool
	// Dir is the target directory when Export is true; ignored otherwise.
	Dir string
}
