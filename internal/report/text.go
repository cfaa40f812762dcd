package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// TableStyle selects the text table dialect.
type TableStyle string

const (
	TableStylePlain    TableStyle = "plain"
	TableStyleMarkdown TableStyle = "markdown"
)

// TableRenderer writes the summary as a formatted text table, either plain
// for terminals or Markdown for READMEs and issue threads.
type TableRenderer struct {
	Style TableStyle
}

// NewTableRenderer creates a TableRenderer for the given style.
func NewTableRenderer(style TableStyle) *TableRenderer {
	return &TableRenderer{Style: style}
}

func (r *TableRenderer) Name() string {
	if r.Style == TableStyleMarkdown {
		return "team_ages.md"
	}
	return "team_ages.txt"
}

// Render lists teams ascending by weighted mean age. Teams without a
// weighted mean sort last and show NA, with a dash for the missing rank.
func (r *TableRenderer) Render(rep *Report) ([]byte, error) {
	var buf bytes.Buffer

	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader([]string{"Rank", "Team", "Weighted Age", "Roster Age", "Roster Rank", "Players", "Minutes"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	if r.Style == TableStyleMarkdown {
		tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		tw.SetCenterSeparator("|")
	}

	for _, g := range rep.Summary.SortedByWeightedMean() {
		rank := "-"
		weighted := "NA"
		if g.HasWeightedMean {
			rank = strconv.Itoa(g.RankWeighted)
			weighted = fmt.Sprintf("%.1f", g.WeightedMean)
		}
		tw.Append([]string{
			rank,
			g.Key,
			weighted,
			fmt.Sprintf("%.1f", g.Mean),
			strconv.Itoa(g.RankUnweighted),
			strconv.Itoa(g.Rows),
			strconv.FormatFloat(g.TotalWeight, 'f', 0, 64),
		})
	}
	tw.Render()

	return buf.Bytes(), nil
}
