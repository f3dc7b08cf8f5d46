package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/olekukonko/tablewriter"

	"github.com/haldorsen/bondladder/pathcount"
	"github.com/haldorsen/bondladder/prompt"
	"github.com/haldorsen/bondladder/topk"
)

// pathWrapWidth is the column width at which long rendered action paths are
// soft-wrapped for narrow terminals.
const pathWrapWidth = 60

var (
	goldColor   = color.New(color.FgYellow, color.Bold)
	silverColor = color.New(color.FgWhite, color.Bold)
	bronzeColor = color.New(color.FgRed, color.Bold)
	lossColor   = color.New(color.FgRed)
)

// RenderTerminal writes res as an aligned table to w: rank, percentage
// return, and the action path rendered per style. The top three ranks are
// highlighted gold/silver/bronze; the return cell of any rank with a
// negative return is coloured red regardless of its position.
func RenderTerminal(w io.Writer, res topk.OptimalResults, style prompt.RenderStyle) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Return", "Action Path"})
	table.SetAutoWrapText(false)

	for r, crf := range res.CRFs {
		pct := 100*crf - 100
		rankStr := rankLabel(r)
		pctStr := fmt.Sprintf("%.2f%%", pct)
		pathStr := wordwrap.WrapString(renderPath(res.Paths[r], style), pathWrapWidth)

		if pct < 0 {
			pctStr = lossColor.Sprint(pctStr)
		}
		switch r {
		case 0:
			rankStr = goldColor.Sprint(rankStr)
		case 1:
			rankStr = silverColor.Sprint(rankStr)
		case 2:
			rankStr = bronzeColor.Sprint(rankStr)
		}

		table.Append([]string{rankStr, pctStr, pathStr})
	}
	table.Render()
}

func rankLabel(zeroBasedRank int) string {
	return fmt.Sprintf("%d", zeroBasedRank+1)
}

// FormatPathCount renders a pathcount.Count for terminal or log output,
// using an SI-prefixed approximation ("1.2 M (approx)") once the count has
// been promoted past int64 precision. Exact counts are comma-grouped.
func FormatPathCount(c pathcount.Count) string {
	if v, ok := c.Exact(); ok {
		return humanize.Comma(v)
	}
	return humanize.SIWithDigits(c.Float(), 1, "") + " (approx)"
}
