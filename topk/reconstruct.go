package topk

import (
	"fmt"

	"github.com/haldorsen/bondladder/action"
)

// reconstructPath walks Decisions backwards from (month=M, rank) to month 0,
// accumulating a chronologically-ordered Action sequence. Adjacent Wait
// steps are naturally merged as they are discovered, since a Wait action is
// only emitted once a run of consecutive wait decisions ends.
func reconstructPath(decisions []decision, k, month, rank int) ([]action.Action, error) {
	currentMonth := month
	currentRank := rank
	waitStreak := 0
	var actions []action.Action

	for currentMonth > 0 {
		d := decisions[currentMonth*k+currentRank]
		if d.Tenor == unfilledTenor {
			return nil, fmt.Errorf("%w: no decision recorded at month %d rank %d", ErrInternalInvariant, currentMonth, currentRank)
		}

		if d.Tenor == 0 {
			waitStreak++
			currentMonth--
			currentRank = d.PrevRank
			continue
		}

		if waitStreak > 0 {
			w, err := action.NewWait(currentMonth, waitStreak)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
			}
			actions = append(actions, w)
			waitStreak = 0
		}

		b, err := action.NewBuy(currentMonth-d.Tenor, d.Tenor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
		}
		actions = append(actions, b)
		currentMonth -= d.Tenor
		currentRank = d.PrevRank
	}

	if waitStreak > 0 {
		w, err := action.NewWait(0, waitStreak)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
		}
		actions = append(actions, w)
	}

	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions, nil
}
