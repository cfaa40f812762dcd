package table

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestExtractFromFixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/totals_2017.html")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	ds, err := Extract(strings.NewReader(string(data)), "table#totals_stats")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	wantColumns := []string{"Rk", "Player", "Pos", "Age", "Tm", "G", "GS", "MP", "PTS"}
	if len(ds.Columns) != len(wantColumns) {
		t.Fatalf("expected %d columns, got %d: %v", len(wantColumns), len(ds.Columns), ds.Columns)
	}
	for i, want := range wantColumns {
		if ds.Columns[i] != want {
			t.Errorf("column %d: expected %q, got %q", i, want, ds.Columns[i])
		}
	}

	// 14 player rows plus the repeated header row embedded in tbody.
	if ds.Len() != 15 {
		t.Fatalf("expected 15 raw rows, got %d", ds.Len())
	}

	if v, ok := ds.Value(0, "Player"); !ok || v != "Alex Abrines" {
		t.Errorf("row 0 Player: expected %q, got %q (ok=%v)", "Alex Abrines", v, ok)
	}
	if v, ok := ds.Value(0, "Age"); !ok || v != "23" {
		t.Errorf("row 0 Age: expected %q, got %q (ok=%v)", "23", v, ok)
	}
	if v, ok := ds.Value(1, "Tm"); !ok || v != "TOT" {
		t.Errorf("row 1 Tm: expected TOT, got %q (ok=%v)", v, ok)
	}
	if v, ok := ds.Value(3, "Tm"); !ok || v != "BRK" {
		t.Errorf("row 3 Tm: expected BRK, got %q (ok=%v)", v, ok)
	}
}

func TestExtractKeepsEmbeddedHeaderRows(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/totals_2017.html")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	ds, err := Extract(strings.NewReader(string(data)), "table#totals_stats")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// The raw dataset reports what the page contains. The repeated header
	// row inside tbody comes through verbatim and is removed downstream.
	found := false
	for i := 0; i < ds.Len(); i++ {
		if v, _ := ds.Value(i, "Rk"); v == "Rk" {
			found = true
			if tm, _ := ds.Value(i, "Tm"); tm != "Tm" {
				t.Errorf("embedded header row should carry label cells, got Tm=%q", tm)
			}
		}
	}
	if !found {
		t.Error("expected embedded header row to survive extraction")
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		selector    string
		wantErr     bool
		wantColumns []string
		wantRows    [][]string
	}{
		{
			name: "simple table with thead",
			html: `<table id="t"><thead><tr><th>A</th><th>B</th></tr></thead>
				<tbody><tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr></tbody></table>`,
			selector:    "#t",
			wantColumns: []string{"A", "B"},
			wantRows:    [][]string{{"1", "2"}, {"3", "4"}},
		},
		{
			name: "no thead falls back to first row",
			html: `<table id="t"><tr><th>X</th><th>Y</th></tr>
				<tr><td>p</td><td>q</td></tr></table>`,
			selector:    "#t",
			wantColumns: []string{"X", "Y"},
			wantRows:    [][]string{{"p", "q"}},
		},
		{
			name: "over-header uses last thead row",
			html: `<table id="t"><thead>
				<tr><th colspan="2">Grouping</th></tr>
				<tr><th>Team</th><th>Age</th></tr>
				</thead><tbody><tr><td>BOS</td><td>25</td></tr></tbody></table>`,
			selector:    "#t",
			wantColumns: []string{"Team", "Age"},
			wantRows:    [][]string{{"BOS", "25"}},
		},
		{
			name: "short rows padded to header width",
			html: `<table id="t"><thead><tr><th>A</th><th>B</th><th>C</th></tr></thead>
				<tbody><tr><td>1</td></tr></tbody></table>`,
			selector:    "#t",
			wantColumns: []string{"A", "B", "C"},
			wantRows:    [][]string{{"1", "", ""}},
		},
		{
			name: "long rows truncated to header width",
			html: `<table id="t"><thead><tr><th>A</th></tr></thead>
				<tbody><tr><td>1</td><td>2</td></tr></tbody></table>`,
			selector:    "#t",
			wantColumns: []string{"A"},
			wantRows:    [][]string{{"1"}},
		},
		{
			name: "cell text kept verbatim",
			html: `<table id="t"><thead><tr><th>Tm</th><th>MP</th></tr></thead>
				<tbody><tr><td>TOT</td><td> 1,055 </td></tr></tbody></table>`,
			selector:    "#t",
			wantColumns: []string{"Tm", "MP"},
			wantRows:    [][]string{{"TOT", " 1,055 "}},
		},
		{
			name:     "selector matches nothing",
			html:     `<table id="t"><tr><th>A</th></tr></table>`,
			selector: "#missing",
			wantErr:  true,
		},
		{
			name:     "match has no tabular structure",
			html:     `<div id="t"></div>`,
			selector: "#t",
			wantErr:  true,
		},
		{
			name: "first match wins when selector is ambiguous",
			html: `<table class="stats"><tr><th>One</th></tr><tr><td>a</td></tr></table>
				<table class="stats"><tr><th>Two</th></tr><tr><td>b</td></tr></table>`,
			selector:    "table.stats",
			wantColumns: []string{"One"},
			wantRows:    [][]string{{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Extract(strings.NewReader(tt.html), tt.selector)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var extractErr *ExtractionError
				if !errors.As(err, &extractErr) {
					t.Fatalf("expected *ExtractionError, got %T", err)
				}
				if extractErr.Selector != tt.selector {
					t.Errorf("error selector: expected %q, got %q", tt.selector, extractErr.Selector)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}

			if len(ds.Columns) != len(tt.wantColumns) {
				t.Fatalf("columns: expected %v, got %v", tt.wantColumns, ds.Columns)
			}
			for i := range tt.wantColumns {
				if ds.Columns[i] != tt.wantColumns[i] {
					t.Errorf("column %d: expected %q, got %q", i, tt.wantColumns[i], ds.Columns[i])
				}
			}
			if ds.Len() != len(tt.wantRows) {
				t.Fatalf("rows: expected %d, got %d (%v)", len(tt.wantRows), ds.Len(), ds.Rows)
			}
			for i := range tt.wantRows {
				for j := range tt.wantRows[i] {
					if ds.Rows[i][j] != tt.wantRows[i][j] {
						t.Errorf("row %d col %d: expected %q, got %q", i, j, tt.wantRows[i][j], ds.Rows[i][j])
					}
				}
			}
		})
	}
}

func TestDatasetAccessors(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"Rk", "Player", "Age"},
		Rows: [][]string{
			{"1", "Alex Abrines", "23"},
			{"2", "Quincy Acy", "26"},
		},
	}

	if idx, ok := ds.Column("Player"); !ok || idx != 1 {
		t.Errorf("Column(Player): expected (1, true), got (%d, %v)", idx, ok)
	}
	if _, ok := ds.Column("Salary"); ok {
		t.Error("Column(Salary): expected miss")
	}

	if v, ok := ds.Value(1, "Age"); !ok || v != "26" {
		t.Errorf("Value(1, Age): expected (26, true), got (%q, %v)", v, ok)
	}
	if _, ok := ds.Value(5, "Age"); ok {
		t.Error("Value out of range: expected miss")
	}
	if _, ok := ds.Value(0, "Salary"); ok {
		t.Error("Value unknown column: expected miss")
	}
	if _, ok := ds.Value(-1, "Age"); ok {
		t.Error("Value negative index: expected miss")
	}
}
