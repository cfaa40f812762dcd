package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/aggregate"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/config"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/filter"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/logger"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/report"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/scraper"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/storage"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/table"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitWarnings = 2
)

var (
	flagSeason   int
	flagURL      string
	flagHTMLFile string
	flagOutDir   string
	flagFormat   string
	flagExclude  []string
	flagNoChart  bool
	flagNoCSV    bool
	flagVerbose  bool
)

// NewRootCmd creates the root command. Flag defaults come from the
// environment configuration, so an explicit flag always wins over .env
// values.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nba-team-age",
		Short: "Report the average age of every NBA team for a season",
		Long: `A CLI tool that fetches a Basketball-Reference season totals page and
reports each team's average player age, both across the roster and weighted
by minutes played. Renders a bar chart and export artifacts alongside the
stdout report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cfg)
		},
	}

	// Define flags
	cmd.Flags().IntVar(&flagSeason, "season", cfg.Season, "Season by closing year (2017 means 2016-17)")
	cmd.Flags().StringVar(&flagURL, "url", "", "Fetch this exact page URL instead of the season URL")
	cmd.Flags().StringVar(&flagHTMLFile, "html-file", "", "Read the page from a local HTML file instead of fetching")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", cfg.OutDir, "Directory for rendered artifacts")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "Output format: table, markdown or json")
	cmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "Extra row exclusion as 'Column=Value' (repeatable)")
	cmd.Flags().BoolVar(&flagNoChart, "no-chart", false, "Skip rendering the chart artifact")
	cmd.Flags().BoolVar(&flagNoCSV, "no-csv", false, "Skip rendering the CSV artifact")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runAnalyze is the main command logic
func runAnalyze(cfg *config.Config) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatTable && format != FormatMarkdown && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'table', 'markdown' or 'json')", flagFormat)
	}

	extra, err := filter.ParseExclusions(flagExclude)
	if err != nil {
		return err
	}

	result, err := analyze(context.Background(), cfg, analysisOptions{
		season:   flagSeason,
		pageURL:  flagURL,
		htmlFile: flagHTMLFile,
		outDir:   flagOutDir,
		extra:    extra,
		noChart:  flagNoChart,
		noCSV:    flagNoCSV,
	})
	if err != nil {
		return err
	}

	// Write output
	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("run accounting", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	// A degraded run (dropped rows, degenerate groups, orphaned players)
	// still produces output but signals it through the exit code.
	if len(result.Warnings) > 0 {
		os.Exit(ExitWarnings)
	}
	return nil
}

// retryCount converts the configured retry count for the scraper. A negative
// value from the environment means no retries, not a wrapped-around huge one.
func retryCount(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

// analysisOptions carries the per-run settings after flags and environment
// are reconciled.
type analysisOptions struct {
	season   int
	pageURL  string
	htmlFile string
	outDir   string
	extra    []filter.Exclusion
	noChart  bool
	noCSV    bool
}

// analyze runs the full pipeline. Every artifact is rendered in memory
// before anything is written, so a failed run cannot leave partial output
// behind.
func analyze(ctx context.Context, cfg *config.Config, opts analysisOptions) (*OutputResult, error) {
	var warnings []string
	warn := func(message string, fields logger.Fields) {
		warnings = append(warnings, message)
		logger.Warn(message, fields)
	}

	// Obtain the page
	fetchStart := time.Now()
	var page []byte
	var source string
	switch {
	case opts.htmlFile != "":
		data, err := os.ReadFile(opts.htmlFile)
		if err != nil {
			return nil, fmt.Errorf("reading HTML file: %w", err)
		}
		page = scraper.StripCommentMarkers(data)
		source = opts.htmlFile
	case opts.pageURL != "":
		sc := scraper.NewWithOptions(opts.pageURL, cfg.HTTPTimeout, retryCount(cfg.MaxRetries))
		data, err := sc.Fetch(ctx, opts.pageURL)
		if err != nil {
			return nil, err
		}
		page = data
		source = opts.pageURL
	default:
		sc := scraper.NewWithOptions(cfg.URLTemplate, cfg.HTTPTimeout, retryCount(cfg.MaxRetries))
		source = sc.TotalsURL(opts.season)
		data, err := sc.FetchTotals(ctx, opts.season)
		if err != nil {
			return nil, err
		}
		page = data
	}
	logger.RecordTiming("fetch", time.Since(fetchStart))
	logger.Info("loaded season page", logger.Fields{"source": source, "bytes": len(page)})

	// Extract the stats table
	raw, err := table.Extract(bytes.NewReader(page), cfg.TableSelector)
	if err != nil {
		return nil, err
	}
	logger.Debug("extracted table", logger.Fields{"columns": len(raw.Columns), "rows": raw.Len()})

	// Combined-total rows with no stint rows would disappear entirely when
	// filtered; call those players out instead of dropping them silently.
	orphans := filter.SentinelOrphans(raw, cfg.PlayerColumn, cfg.TeamColumn, cfg.CombinedSentinel)
	for _, player := range orphans {
		warn(fmt.Sprintf("player %q has a %s row but no per-team rows and is dropped by filtering",
			player, cfg.CombinedSentinel), logger.Fields{"player": player})
	}

	// Drop artifact rows
	exclusions := append(filter.Standard(cfg.RankColumn, cfg.TeamColumn, cfg.CombinedSentinel), opts.extra...)
	clean := filter.Apply(raw, exclusions)
	removed := raw.Len() - clean.Len()
	logger.AddCounter("rows.filtered", int64(removed))
	logger.Info("filtered artifact rows", logger.Fields{"removed": removed, "remaining": clean.Len()})
	if clean.Len() == 0 {
		warn("no rows left after filtering; the page layout may have changed", nil)
	}

	// Aggregate per team
	summary, err := aggregate.Summarize(clean, aggregate.Options{
		GroupColumn:  cfg.TeamColumn,
		ValueColumn:  cfg.AgeColumn,
		WeightColumn: cfg.MinutesColumn,
	})
	if err != nil {
		return nil, err
	}
	logger.AddCounter("rows.excluded", int64(summary.ExcludedRows))
	if summary.ExcludedRows > 0 {
		warn(fmt.Sprintf("%d rows had unparseable age or minutes cells and were excluded",
			summary.ExcludedRows), logger.Fields{"rows": summary.ExcludedRows})
	}
	degenerate := make([]string, 0, len(summary.Degenerate))
	for _, deg := range summary.Degenerate {
		degenerate = append(degenerate, deg.Group)
		warn(deg.Error(), logger.Fields{"team": deg.Group})
	}

	// Render artifacts
	rep := &report.Report{Season: opts.season, Summary: summary}
	renderStart := time.Now()
	type artifact struct {
		name string
		data []byte
	}
	var artifacts []artifact

	if len(summary.Groups) > 0 {
		if !opts.noChart {
			chartable := false
			for _, g := range summary.Groups {
				if g.HasWeightedMean {
					chartable = true
					break
				}
			}
			if chartable {
				r := report.NewChartRenderer()
				data, err := r.Render(rep)
				if err != nil {
					return nil, err
				}
				artifacts = append(artifacts, artifact{r.Name(), data})
			} else {
				warn("skipping chart: no team has a weighted mean age", nil)
			}
		}
		if !opts.noCSV {
			r := &report.CSVRenderer{}
			data, err := r.Render(rep)
			if err != nil {
				return nil, err
			}
			artifacts = append(artifacts, artifact{r.Name(), data})
		}
	}
	logger.RecordTiming("render", time.Since(renderStart))

	names := make([]string, 0, len(artifacts)+1)
	for _, a := range artifacts {
		names = append(names, a.name)
	}
	names = append(names, "summary.json")

	result := &OutputResult{
		GeneratedAt:  time.Now().UTC(),
		Season:       opts.season,
		SeasonLabel:  report.SeasonLabel(opts.season),
		Source:       source,
		Teams:        summary.SortedByWeightedMean(),
		RawRows:      raw.Len(),
		FilteredRows: removed,
		ExcludedRows: summary.ExcludedRows,
		Degenerate:   degenerate,
		Orphans:      orphans,
		Warnings:     warnings,
		Artifacts:    names,
		rep:          rep,
	}

	// Write artifacts
	store, err := storage.New(opts.outDir)
	if err != nil {
		return nil, err
	}
	for _, a := range artifacts {
		if err := store.WriteFile(a.name, a.data); err != nil {
			return nil, err
		}
		logger.Info("wrote artifact", logger.Fields{"path": store.Path(a.name)})
	}
	if err := store.WriteJSON("summary.json", result); err != nil {
		return nil, err
	}

	return result, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
