// Package filter removes artifact rows from extracted datasets before analysis.
//
// Stats pages embed presentation rows inside the data body:
//   - Repeated header rows: every screenful the column labels appear again as
//     a data row, recognizable by the rank cell holding the literal label "Rk"
//   - Combined-total rows: traded players get a season-total row whose team
//     cell holds a sentinel ("TOT"), duplicating the per-team stint rows
//
// Exclusions are declarative column/value pairs, so the same mechanism covers
// both cases plus any ad-hoc exclusion supplied on the command line.
//
// Example usage:
//
//	exclusions := filter.Standard("Rk", "Tm", "TOT")
//	clean := filter.Apply(raw, exclusions)
//
//	// Combined-total rows with no surviving stint rows deserve a warning
//	orphans := filter.SentinelOrphans(raw, "Player", "Tm", "TOT")
package filter

import (
	"sort"

	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/table"
)

// Exclusion drops every row whose cell in Column equals Value exactly.
type Exclusion struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Standard returns the exclusions every season-totals page needs: repeated
// header rows (the rank column holding its own label) and combined-total
// rows for traded players (the team column holding the sentinel).
func Standard(rankColumn, teamColumn, sentinel string) []Exclusion {
	return []Exclusion{
		{Column: rankColumn, Value: rankColumn},
		{Column: teamColumn, Value: sentinel},
	}
}

// Apply returns a new dataset with every row matching any exclusion removed.
// Row order is preserved and the input dataset is left untouched. An
// exclusion naming a column the dataset does not have matches nothing.
// Applying the same exclusions to the result is a no-op.
func Apply(ds *table.Dataset, exclusions []Exclusion) *table.Dataset {
	type test struct {
		index int
		value string
	}
	tests := make([]test, 0, len(exclusions))
	for _, ex := range exclusions {
		idx, ok := ds.Column(ex.Column)
		if !ok {
			continue
		}
		tests = append(tests, test{index: idx, value: ex.Value})
	}

	out := &table.Dataset{
		Columns: append([]string(nil), ds.Columns...),
		Rows:    make([][]string, 0, len(ds.Rows)),
	}
	for _, row := range ds.Rows {
		excluded := false
		for _, tc := range tests {
			if tc.index < len(row) && row[tc.index] == tc.value {
				excluded = true
				break
			}
		}
		if !excluded {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// SentinelOrphans returns the players that have a combined-total row but no
// per-team stint row. Filtering drops those players entirely, so callers
// should surface the returned names as a warning. The result is sorted and
// deduplicated. Returns nil when either column is missing.
func SentinelOrphans(ds *table.Dataset, playerColumn, teamColumn, sentinel string) []string {
	playerIdx, ok := ds.Column(playerColumn)
	if !ok {
		return nil
	}
	teamIdx, ok := ds.Column(teamColumn)
	if !ok {
		return nil
	}

	hasSentinel := make(map[string]bool)
	hasStint := make(map[string]bool)
	for _, row := range ds.Rows {
		if playerIdx >= len(row) || teamIdx >= len(row) {
			continue
		}
		player := row[playerIdx]
		if row[teamIdx] == sentinel {
			hasSentinel[player] = true
		} else {
			hasStint[player] = true
		}
	}

	var orphans []string
	for player := range hasSentinel {
		if !hasStint[player] {
			orphans = append(orphans, player)
		}
	}
	sort.Strings(orphans)
	return orphans
}
