package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVRenderer exports the summary for spreadsheets and further analysis.
// Unlike the text tables, numeric values keep their full precision here.
type CSVRenderer struct{}

func (r *CSVRenderer) Name() string {
	return "team_ages.csv"
}

func (r *CSVRenderer) Render(rep *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"team", "weighted_age", "roster_age", "weighted_rank", "roster_rank", "players", "minutes"},
	}
	for _, g := range rep.Summary.SortedByWeightedMean() {
		weighted, weightedRank := "", ""
		if g.HasWeightedMean {
			weighted = strconv.FormatFloat(g.WeightedMean, 'f', -1, 64)
			weightedRank = strconv.Itoa(g.RankWeighted)
		}
		records = append(records, []string{
			g.Key,
			weighted,
			strconv.FormatFloat(g.Mean, 'f', -1, 64),
			weightedRank,
			strconv.Itoa(g.RankUnweighted),
			strconv.Itoa(g.Rows),
			strconv.FormatFloat(g.TotalWeight, 'f', -1, 64),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("encoding csv: %w", err)
	}
	return buf.Bytes(), nil
}
