// Package report renders season summaries into presentation artifacts.
//
// The report package turns the per-team age summary into a bar chart PNG,
// plain-text and Markdown tables, and a CSV export. Renderers produce
// complete artifacts in memory; writing them to disk is the storage
// package's job, so a rendering failure never leaves a partial file behind.
package report
