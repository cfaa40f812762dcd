package filter

import (
	"fmt"
	"strings"
)

// ParseExclusion parses a "Column=Value" expression into an Exclusion.
//
// The column name is trimmed of surrounding whitespace. The value is kept
// exactly as written, including whitespace, because dataset cells are
// verbatim page text and the comparison is exact.
//
// An empty value is allowed: "Pos=" drops rows with an empty position cell.
func ParseExclusion(input string) (Exclusion, error) {
	column, value, found := strings.Cut(input, "=")
	if !found {
		return Exclusion{}, fmt.Errorf("invalid exclusion format. Use 'Column=Value', e.g. 'Tm=TOT'")
	}

	column = strings.TrimSpace(column)
	if column == "" {
		return Exclusion{}, fmt.Errorf("exclusion column cannot be empty")
	}

	return Exclusion{Column: column, Value: value}, nil
}

// ParseExclusions parses a list of "Column=Value" expressions, typically
// collected from repeated command-line flags. The first invalid expression
// aborts the whole parse.
func ParseExclusions(inputs []string) ([]Exclusion, error) {
	exclusions := make([]Exclusion, 0, len(inputs))
	for _, input := range inputs {
		ex, err := ParseExclusion(input)
		if err != nil {
			return nil, fmt.Errorf("parsing exclusion %q: %w", input, err)
		}
		exclusions = append(exclusions, ex)
	}
	return exclusions, nil
}
