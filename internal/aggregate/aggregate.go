package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/table"
)

// Options names the dataset columns driving the aggregation.
type Options struct {
	GroupColumn  string
	ValueColumn  string
	WeightColumn string
}

// GroupSummary holds the aggregates for one group key.
type GroupSummary struct {
	Key             string  `json:"key"`
	Rows            int     `json:"rows"`
	Mean            float64 `json:"mean"`
	WeightedMean    float64 `json:"weighted_mean"`
	HasWeightedMean bool    `json:"has_weighted_mean"`
	TotalWeight     float64 `json:"total_weight"`
	RankUnweighted  int     `json:"rank_unweighted"`
	RankWeighted    int     `json:"rank_weighted,omitempty"`
}

// DegenerateGroupError reports a group whose total weight is zero, leaving
// the weighted mean undefined. The rest of the summary stays usable, so
// callers typically log these and move on.
type DegenerateGroupError struct {
	Group string
}

func (e *DegenerateGroupError) Error() string {
	return fmt.Sprintf("group %q has zero total weight, weighted mean is undefined", e.Group)
}

// Summary is the result of aggregating one dataset.
type Summary struct {
	Groups       []GroupSummary          `json:"groups"`
	ExcludedRows int                     `json:"excluded_rows"`
	Degenerate   []*DegenerateGroupError `json:"-"`
}

// Summarize groups ds by opts.GroupColumn and computes each group's mean and
// weighted mean of the value column. Groups come back sorted by key; use
// SortedByWeightedMean for display order. The only error is a column the
// dataset does not have, which leaves nothing to compute.
func Summarize(ds *table.Dataset, opts Options) (*Summary, error) {
	groupIdx, ok := ds.Column(opts.GroupColumn)
	if !ok {
		return nil, fmt.Errorf("dataset has no group column %q", opts.GroupColumn)
	}
	valueIdx, ok := ds.Column(opts.ValueColumn)
	if !ok {
		return nil, fmt.Errorf("dataset has no value column %q", opts.ValueColumn)
	}
	weightIdx, ok := ds.Column(opts.WeightColumn)
	if !ok {
		return nil, fmt.Errorf("dataset has no weight column %q", opts.WeightColumn)
	}

	type accumulator struct {
		rows        int
		sumValue    float64
		sumWeight   float64
		sumWeighted float64
	}
	groups := make(map[string]*accumulator)
	excluded := 0

	for _, row := range ds.Rows {
		if groupIdx >= len(row) || valueIdx >= len(row) || weightIdx >= len(row) {
			excluded++
			continue
		}
		key := row[groupIdx]
		if key == "" {
			excluded++
			continue
		}
		value, err := parseCell(row[valueIdx])
		if err != nil {
			excluded++
			continue
		}
		weight, err := parseCell(row[weightIdx])
		if err != nil {
			excluded++
			continue
		}

		acc := groups[key]
		if acc == nil {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.rows++
		acc.sumValue += value
		acc.sumWeight += weight
		acc.sumWeighted += value * weight
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary := &Summary{
		Groups:       make([]GroupSummary, 0, len(keys)),
		ExcludedRows: excluded,
	}
	for _, key := range keys {
		acc := groups[key]
		gs := GroupSummary{
			Key:         key,
			Rows:        acc.rows,
			Mean:        acc.sumValue / float64(acc.rows),
			TotalWeight: acc.sumWeight,
		}
		if acc.sumWeight == 0 {
			summary.Degenerate = append(summary.Degenerate, &DegenerateGroupError{Group: key})
		} else {
			gs.WeightedMean = acc.sumWeighted / acc.sumWeight
			gs.HasWeightedMean = true
		}
		summary.Groups = append(summary.Groups, gs)
	}

	rank(summary.Groups)
	return summary, nil
}

// rank assigns competition ranks. The weighted ranking only considers groups
// that have a weighted mean; the rest stay at rank zero.
func rank(groups []GroupSummary) {
	for i := range groups {
		unweighted := 1
		for j := range groups {
			if groups[j].Mean < groups[i].Mean {
				unweighted++
			}
		}
		groups[i].RankUnweighted = unweighted

		if !groups[i].HasWeightedMean {
			continue
		}
		weighted := 1
		for j := range groups {
			if groups[j].HasWeightedMean && groups[j].WeightedMean < groups[i].WeightedMean {
				weighted++
			}
		}
		groups[i].RankWeighted = weighted
	}
}

// SortedByWeightedMean returns the groups in display order: ascending by
// weighted mean, ties broken by key, groups without a weighted mean last.
// The receiver's canonical by-key order is not disturbed.
func (s *Summary) SortedByWeightedMean() []GroupSummary {
	out := append([]GroupSummary(nil), s.Groups...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HasWeightedMean != b.HasWeightedMean {
			return a.HasWeightedMean
		}
		if a.HasWeightedMean && a.WeightedMean != b.WeightedMean {
			return a.WeightedMean < b.WeightedMean
		}
		return a.Key < b.Key
	})
	return out
}

// parseCell parses a numeric cell. Cells are verbatim page text, so
// surrounding whitespace is tolerated; anything else that fails to parse
// excludes the row from the aggregates.
func parseCell(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}
