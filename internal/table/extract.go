package table

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ExtractionError reports that no usable table could be extracted for a
// selector. It is fatal: without a dataset the rest of the pipeline has
// nothing to work on.
type ExtractionError struct {
	Selector string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting table %q: %s", e.Selector, e.Reason)
}

// Extract parses an HTML document and returns the table identified by the
// CSS selector as a Dataset.
//
// Column names come from the table's header row: the last row of a thead
// when one exists (stat tables often stack a spanning over-header above the
// real column row), otherwise the first table row. Every subsequent row
// becomes a data row with cell text taken verbatim. Rows shorter than the
// header are padded with empty cells; extra trailing cells are dropped.
//
// When the selector matches several elements the first match is used; the
// caller's selector is expected to identify exactly one table. A selector
// that matches nothing, or matches an element with no header cells, yields
// an *ExtractionError.
func Extract(r io.Reader, selector string) (*Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ExtractionError{Selector: selector, Reason: fmt.Sprintf("parsing HTML: %v", err)}
	}

	match := doc.Find(selector)
	if match.Length() == 0 {
		return nil, &ExtractionError{Selector: selector, Reason: "selector matched no element"}
	}
	el := match.First()

	header := el.Find("thead tr").Last()
	headerInThead := header.Length() > 0
	if !headerInThead {
		header = el.Find("tr").First()
	}

	var columns []string
	header.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		columns = append(columns, cell.Text())
	})
	if len(columns) == 0 {
		return nil, &ExtractionError{Selector: selector, Reason: "no parseable tabular structure (no header cells)"}
	}

	// Data rows: everything that is not part of the header. Repeated header
	// rows that the source re-inserts into tbody (tr class="thead") are NOT
	// skipped here — they come out as ordinary rows carrying the header
	// labels as cell text, and the row filter removes them.
	var body *goquery.Selection
	if headerInThead {
		body = el.Find("tr").Not("thead tr")
	} else {
		body = el.Find("tr").Slice(1, goquery.ToEnd)
	}

	ds := &Dataset{Columns: columns}
	body.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("th,td")
		if cells.Length() == 0 {
			return
		}
		row := make([]string, len(columns))
		cells.Each(func(i int, cell *goquery.Selection) {
			if i < len(row) {
				row[i] = cell.Text()
			}
		})
		ds.Rows = append(ds.Rows, row)
	})

	return ds, nil
}
