package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/aggregate"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/report"
)

// OutputFormat specifies the stdout format
type OutputFormat string

const (
	FormatTable    OutputFormat = "table"
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
)

// OutputResult contains everything a run reports. Teams are listed in
// display order, ascending by weighted mean age.
type OutputResult struct {
	GeneratedAt  time.Time                `json:"generated_at"`
	Season       int                      `json:"season"`
	SeasonLabel  string                   `json:"season_label"`
	Source       string                   `json:"source"`
	Teams        []aggregate.GroupSummary `json:"teams"`
	RawRows      int                      `json:"raw_rows"`
	FilteredRows int                      `json:"filtered_rows"`
	ExcludedRows int                      `json:"excluded_rows"`
	Degenerate   []string                 `json:"degenerate_groups,omitempty"`
	Orphans      []string                 `json:"orphaned_players,omitempty"`
	Warnings     []string                 `json:"warnings,omitempty"`
	Artifacts    []string                 `json:"artifacts,omitempty"`

	rep *report.Report
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatTable, FormatMarkdown:
		return writeTable(w, result, format, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeTable outputs the ranked team table for humans
func writeTable(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	if len(result.Teams) == 0 {
		fmt.Fprintln(w, "No teams found.")
		return nil
	}

	style := report.TableStylePlain
	if format == FormatMarkdown {
		style = report.TableStyleMarkdown
	}
	data, err := report.NewTableRenderer(style).Render(result.rep)
	if err != nil {
		return err
	}

	if format == FormatMarkdown {
		fmt.Fprintf(w, "## Average Age of NBA Teams, %s Season\n\n", result.SeasonLabel)
	} else {
		fmt.Fprintf(w, "Average Age of NBA Teams, %s Season\n", result.SeasonLabel)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(w, "\nSource: %s\n", result.Source)
		fmt.Fprintf(w, "Rows: %d raw, %d filtered out, %d excluded from aggregation\n",
			result.RawRows, result.FilteredRows, result.ExcludedRows)
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warning)
		}
		if len(result.Artifacts) > 0 {
			fmt.Fprintf(w, "Artifacts: %s\n", strings.Join(result.Artifacts, ", "))
		}
	}

	return nil
}
