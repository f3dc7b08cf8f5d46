package action

import (
	"fmt"
	"strconv"
	"strings"
)

// ShortForm renders a single Action as "b<tenor>" or "w<length>".
func (a Action) ShortForm() string {
	if a.Kind == Buy {
		return fmt.Sprintf("b%d", a.Tenor)
	}
	return fmt.Sprintf("w%d", a.WaitLength)
}

// VerboseForm renders a single Action as a sentence, e.g.
// "Month 4: buy 12-month bond" or "Month 6: wait for 1 month".
func (a Action) VerboseForm() string {
	if a.Kind == Buy {
		return fmt.Sprintf("Month %d: buy %d-month bond", a.StartMonth, a.Tenor)
	}
	if a.WaitLength == 1 {
		return fmt.Sprintf("Month %d: wait for 1 month", a.StartMonth)
	}
	return fmt.Sprintf("Month %d: wait for %d months", a.StartMonth, a.WaitLength)
}

// RenderShortForm renders a chronologically-ordered sequence as a
// comma-separated short-form string, e.g. "b6,b3,b3".
func RenderShortForm(seq []Action) string {
	tokens := make([]string, len(seq))
	for i, a := range seq {
		tokens[i] = a.ShortForm()
	}
	return strings.Join(tokens, ",")
}

// RenderVerboseForm renders a chronologically-ordered sequence as
// newline-joined sentences.
func RenderVerboseForm(seq []Action) string {
	lines := make([]string, len(seq))
	for i, a := range seq {
		lines[i] = a.VerboseForm()
	}
	return strings.Join(lines, "\n")
}

// ParseToken parses a single short-form token ("b12" or "w3") into its kind
// and numeric extent, without assigning a StartMonth (the caller threads
// StartMonth through ParseSequence, where position in the sequence matters).
func ParseToken(tok string) (kind Kind, extent int, err error) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	n, convErr := strconv.Atoi(tok[1:])
	if convErr != nil || n <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	switch tok[0] {
	case 'b', 'B':
		return Buy, n, nil
	case 'w', 'W':
		return Wait, n, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
}

// ParseSequence parses a comma-separated short-form string back into a
// chronologically-ordered Action sequence, reconstructing each StartMonth
// from the cumulative length of the actions that precede it. ParseSequence
// is the exact inverse of RenderShortForm for any sequence produced by this
// package (contiguous actions covering [0, horizon) with no gaps).
func ParseSequence(s string) ([]Action, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	tokens := strings.Split(s, ",")
	seq := make([]Action, 0, len(tokens))
	month := 0
	for _, tok := range tokens {
		kind, extent, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		var a Action
		if kind == Buy {
			a, err = NewBuy(month, extent)
		} else {
			a, err = NewWait(month, extent)
		}
		if err != nil {
			return nil, err
		}
		seq = append(seq, a)
		month = a.EndMonth()
	}
	return seq, nil
}

// MergeWaits collapses any run of adjacent Wait actions in seq into a
// single Wait spanning their combined length, preserving chronological
// order. Buy actions and isolated Wait actions pass through unchanged.
func MergeWaits(seq []Action) []Action {
	if len(seq) == 0 {
		return seq
	}
	out := make([]Action, 0, len(seq))
	for _, a := range seq {
		if a.Kind == Wait && len(out) > 0 && out[len(out)-1].Kind == Wait {
			last := &out[len(out)-1]
			last.WaitLength += a.WaitLength
			continue
		}
		out = append(out, a)
	}
	return out
}
