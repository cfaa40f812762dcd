package report

import (
	"fmt"

	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/aggregate"
)

// Report bundles everything a renderer needs to produce an artifact.
type Report struct {
	Season  int
	Summary *aggregate.Summary
}

// Renderer defines the interface for producing one artifact from a report
type Renderer interface {
	// Name returns the filename the artifact should be stored under
	Name() string
	// Render produces the complete artifact in memory
	Render(rep *Report) ([]byte, error)
}

// SeasonLabel formats a season's closing year as the conventional span,
// so 2017 becomes "2016-17".
func SeasonLabel(season int) string {
	return fmt.Sprintf("%d-%02d", season-1, season%100)
}
