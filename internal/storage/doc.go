// Package storage writes analysis artifacts to the local filesystem.
//
// The storage package manages the output directory that receives rendered
// artifacts: the age chart PNG, the formatted summary tables and the CSV and
// JSON exports. Artifacts are rendered fully in memory by their producers
// and handed over as byte slices, so a failed run never leaves a truncated
// file behind. The default output location is ./out.
package storage
