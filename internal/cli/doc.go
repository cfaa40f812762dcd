// Package cli implements the command-line interface for the team age report.
//
// The cli package provides the Cobra-based CLI that drives the full pipeline:
// fetch the season totals page (or read a saved copy), extract the stats
// table, drop artifact rows, aggregate per-team ages, and render the chart
// and export artifacts. Results print to stdout as a formatted table,
// Markdown or JSON; diagnostics go to stderr as structured log lines, so
// redirecting stdout captures a clean report.
package cli
