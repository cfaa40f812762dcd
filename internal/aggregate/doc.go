// Package aggregate computes per-group summary statistics over extracted
// datasets.
//
// Rows are grouped by the verbatim text of a key column (team abbreviations
// in practice). Each group gets an unweighted mean and a weighted mean of a
// numeric value column, with weights drawn from a third column. For team age
// the value is Age and the weight is minutes played, so the weighted mean
// reflects the age of the lineup actually on the floor rather than the
// roster sheet.
//
// Rows whose group key is empty, or whose value or weight cell does not
// parse as a number, are excluded from every aggregate and counted, never
// coerced to zero. A group whose
// total weight is zero has no weighted mean; it is reported through
// DegenerateGroupError, carries no weighted rank, and sorts after every
// ranked group.
//
// Ranks use competition ranking: a group's rank is one plus the number of
// groups with a strictly smaller mean, so tied groups share the lowest rank
// and the next rank is skipped.
package aggregate
